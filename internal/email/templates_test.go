package email

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGenerator() *Generator {
	return NewGeneratorWithSource(rand.NewSource(1))
}

func TestGenerateInquiry_Professional(t *testing.T) {
	g := testGenerator()
	data := InquiryData{
		Name:      "Jane Doe",
		FirstName: "Jane",
		Company:   "Acme Corp",
		Phone:     "555-0100",
		Message:   "We need help handling inbound leads",
		Page:      "contact",
	}

	draft, err := g.GenerateInquiry(InquiryProfessional, data)
	require.NoError(t, err)

	assert.Equal(t, "Re: Your Inquiry - Acme Corp", draft.Subject)
	assert.True(t, strings.HasPrefix(draft.Body, "Hi Jane,"))
	assert.Contains(t, draft.Body, "through contact")
	assert.Contains(t, draft.Body, `"We need help handling inbound leads"`)
	assert.Contains(t, draft.Body, "Acme Corp streamline lead management")
	assert.Contains(t, draft.Body, "I can call you at 555-0100.")
}

func TestGenerateInquiry_ProfessionalWithoutOptionalFields(t *testing.T) {
	g := testGenerator()
	draft, err := g.GenerateInquiry(InquiryProfessional, InquiryData{FirstName: "Sam"})
	require.NoError(t, err)

	assert.Equal(t, "Re: Your Inquiry", draft.Subject)
	assert.Contains(t, draft.Body, "your business streamline")
	assert.Contains(t, draft.Body, "share your phone number")
	assert.NotContains(t, draft.Body, "I see you mentioned")
}

func TestGenerateInquiry_ConsultativeExcerpt(t *testing.T) {
	g := testGenerator()
	long := strings.Repeat("x", 250)
	draft, err := g.GenerateInquiry(InquiryConsultative, InquiryData{
		FirstName: "Jane",
		Email:     "jane@example.com",
		Message:   long,
	})
	require.NoError(t, err)

	// Quoted excerpt caps at 200 characters plus ellipsis
	assert.Contains(t, draft.Body, `"`+long[:200]+`..."`)
	assert.Contains(t, draft.Subject, "Jane + EMOR OS")
	assert.Contains(t, draft.Body, "Email: jane@example.com")
}

func TestGenerateInquiry_QuotedMessageKeptVerbatim(t *testing.T) {
	g := testGenerator()
	draft, err := g.GenerateInquiry(InquiryProfessional, InquiryData{
		FirstName: "Jane",
		Message:   `We need "white glove" onboarding for C:\legacy imports`,
	})
	require.NoError(t, err)

	// Quotes and backslashes in the message appear as typed, not escaped
	assert.Contains(t, draft.Body, `I see you mentioned: "We need "white glove" onboarding for C:\legacy imports"`)
	assert.NotContains(t, draft.Body, `\"`)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", excerpt("short", 10))

	got := excerpt(strings.Repeat("é", 12), 10)
	assert.Equal(t, strings.Repeat("é", 10)+"...", got)
	assert.True(t, utf8.ValidString(got))
}

func TestGenerateInquiry_ServiceSpecificSuggestedTime(t *testing.T) {
	g := testGenerator()
	draft, err := g.GenerateInquiry(InquiryServiceSpecific, InquiryData{
		FirstName: "Jane",
		Services:  "Lead Scoring",
	})
	require.NoError(t, err)

	assert.Equal(t, "Lead Scoring + Lead Intelligence - Let's Talk", draft.Subject)

	days := []string{"Tuesday", "Wednesday", "Thursday"}
	found := false
	for _, day := range days {
		if strings.Contains(draft.Body, "does "+day+" at ") {
			found = true
		}
	}
	assert.True(t, found, "body should contain a suggested meeting time")
}

func TestGenerateInquiry_UnknownType(t *testing.T) {
	g := testGenerator()
	_, err := g.GenerateInquiry(TemplateType("bogus"), InquiryData{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown inquiry template type")
}

func TestGenerateProspect_ColdHighScoreRemarks(t *testing.T) {
	g := testGenerator()

	tests := []struct {
		name   string
		score  int
		remark string
	}{
		{"exceptional", 85, "exceptionally high"},
		{"above average", 65, "above average"},
		{"room for improvement", 40, "room for improvement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := g.GenerateProspect(ProspectColdHigh, ProspectData{
				BusinessName:    "Summit Roofing",
				AutomationScore: tt.score,
			})
			require.NoError(t, err)
			assert.Contains(t, draft.Body, tt.remark)
		})
	}
}

func TestGenerateProspect_ColdHighScoreReasonsCapped(t *testing.T) {
	g := testGenerator()
	draft, err := g.GenerateProspect(ProspectColdHigh, ProspectData{
		BusinessName:    "Summit Roofing",
		AutomationScore: 75,
		ScoreReasons:    []string{"reason one", "reason two", "reason three", "reason four"},
	})
	require.NoError(t, err)

	assert.Contains(t, draft.Body, "reason three")
	assert.NotContains(t, draft.Body, "reason four")
}

func TestGenerateProspect_ValueBased(t *testing.T) {
	g := testGenerator()
	draft, err := g.GenerateProspect(ProspectValueBased, ProspectData{
		BusinessName:    "Summit Roofing",
		City:            "Denver",
		Category:        "roofing companies",
		Website:         "https://summit.example.com",
		AutomationScore: 45,
	})
	require.NoError(t, err)

	assert.Equal(t, "Free lead audit for Summit Roofing", draft.Subject)
	assert.Contains(t, draft.Body, "roofing companies in Denver")
	assert.Contains(t, draft.Body, "automation score of 45/100")
	assert.Contains(t, draft.Body, "Checked out https://summit.example.com")
}

func TestGenerateProspect_FollowUp(t *testing.T) {
	g := testGenerator()
	draft, err := g.GenerateProspect(ProspectFollowUp, ProspectData{
		BusinessName:    "Summit Roofing",
		AutomationScore: 55,
	})
	require.NoError(t, err)

	assert.Equal(t, "Following up - Summit Roofing", draft.Subject)
	assert.Contains(t, draft.Body, "automation score of 55/100")
}

func TestGenerateProspect_UnknownType(t *testing.T) {
	g := testGenerator()
	_, err := g.GenerateProspect(TemplateType("bogus"), ProspectData{})
	assert.Error(t, err)
}
