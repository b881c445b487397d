package email

import (
	"strings"
	"testing"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPickTemplateKeyFromPage(t *testing.T) {
	tests := []struct {
		name string
		page string
		want string
	}{
		{"partnership page", "partnership", models.TemplateKeyPartnership},
		{"partnership substring", "xyz-partnership-form", models.TemplateKeyPartnership},
		{"partnership beats consultation", "partnership-consultation", models.TemplateKeyPartnership},
		{"consultation page", "book-consultation", models.TemplateKeyConsultation},
		{"case insensitive", "Free-CONSULTATION", models.TemplateKeyConsultation},
		{"newsletter page", "newsletter-signup", models.TemplateKeyNewsletter},
		{"unmatched defaults to newsletter", "homepage", models.TemplateKeyNewsletter},
		{"empty defaults to newsletter", "", models.TemplateKeyNewsletter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickTemplateKeyFromPage(tt.page))
		})
	}
}

func TestSuggestInquiryTemplate(t *testing.T) {
	tests := []struct {
		name string
		data InquiryData
		want TemplateType
	}{
		{
			name: "long message is consultative",
			data: InquiryData{Message: strings.Repeat("a", 201)},
			want: InquiryConsultative,
		},
		{
			name: "boundary message length is not consultative",
			data: InquiryData{Message: strings.Repeat("a", 200)},
			want: InquiryProfessional,
		},
		{
			name: "services trigger service specific",
			data: InquiryData{Services: "Lead Scoring"},
			want: InquiryServiceSpecific,
		},
		{
			name: "interest triggers service specific",
			data: InquiryData{Interest: "automation"},
			want: InquiryServiceSpecific,
		},
		{
			name: "long message beats services",
			data: InquiryData{Message: strings.Repeat("a", 250), Services: "Lead Scoring"},
			want: InquiryConsultative,
		},
		{
			name: "default is professional",
			data: InquiryData{Message: "short note"},
			want: InquiryProfessional,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestInquiryTemplate(tt.data))
		})
	}
}

func TestKnownTemplates(t *testing.T) {
	for _, v := range []TemplateType{InquiryProfessional, InquiryFriendly, InquiryConsultative, InquiryServiceSpecific} {
		assert.True(t, KnownInquiryTemplate(v), string(v))
		assert.False(t, KnownProspectTemplate(v), string(v))
	}
	for _, v := range []TemplateType{ProspectColdHigh, ProspectColdMedium, ProspectFollowUp, ProspectValueBased} {
		assert.True(t, KnownProspectTemplate(v), string(v))
		assert.False(t, KnownInquiryTemplate(v), string(v))
	}

	assert.False(t, KnownInquiryTemplate(""))
	assert.False(t, KnownProspectTemplate("bogus"))
}

func TestSuggestProspectTemplate(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  TemplateType
	}{
		{"high score", 85, ProspectColdHigh},
		{"high boundary", 70, ProspectColdHigh},
		{"medium score", 60, ProspectColdMedium},
		{"medium boundary", 50, ProspectColdMedium},
		{"low score", 49, ProspectValueBased},
		{"zero score", 0, ProspectValueBased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestProspectTemplate(ProspectData{AutomationScore: tt.score})
			assert.Equal(t, tt.want, got)
		})
	}
}
