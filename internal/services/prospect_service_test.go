package services

import (
	"math/rand"
	"testing"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProspectService(t *testing.T) (db.ProspectRepository, *ProspectService) {
	database := db.SetupTestDB(t)
	repo := db.NewProspectRepository(database)
	service := NewProspectService(repo, email.NewGeneratorWithSource(rand.NewSource(1)))
	return repo, service
}

func TestProspectService_GetProspect(t *testing.T) {
	repo, service := setupProspectService(t)

	prospect := &models.Prospect{
		Name:                "Summit Roofing",
		City:                "Denver",
		AutomationNeedScore: 75,
		ScoreReasons:        []string{"no booking system", "no live chat"},
	}
	require.NoError(t, repo.Create(prospect))

	got, err := service.GetProspect(prospect.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summit Roofing", got.Name)
	assert.Equal(t, []string{"no booking system", "no live chat"}, got.ScoreReasons)

	_, err = service.GetProspect("missing")
	assert.ErrorIs(t, err, ErrProspectNotFound)
}

func TestProspectService_ListProspectsSanitizesSort(t *testing.T) {
	repo, service := setupProspectService(t)

	low := &models.Prospect{Name: "Low Score Co", AutomationNeedScore: 10, LastSeenAt: 200}
	high := &models.Prospect{Name: "High Score Co", AutomationNeedScore: 90, LastSeenAt: 100}
	require.NoError(t, repo.Create(low))
	require.NoError(t, repo.Create(high))

	byScore, err := service.ListProspects("score", 10, 0)
	require.NoError(t, err)
	require.Len(t, byScore, 2)
	assert.Equal(t, "High Score Co", byScore[0].Name)

	// Unknown sort falls back to recency
	byNewest, err := service.ListProspects("alphabetical", 10, 0)
	require.NoError(t, err)
	require.Len(t, byNewest, 2)
	assert.Equal(t, "Low Score Co", byNewest[0].Name)
}

func TestProspectService_SuggestOutreach(t *testing.T) {
	repo, service := setupProspectService(t)

	tests := []struct {
		name    string
		score   int
		variant email.TemplateType
	}{
		{"Alpha Co", 80, email.ProspectColdHigh},
		{"Beta Co", 55, email.ProspectColdMedium},
		{"Gamma Co", 20, email.ProspectValueBased},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prospect := &models.Prospect{Name: tt.name, AutomationNeedScore: tt.score}
			require.NoError(t, repo.Create(prospect))

			variant, draft, err := service.SuggestOutreach(prospect.ID, "")
			require.NoError(t, err)
			assert.Equal(t, tt.variant, variant)
			assert.Contains(t, draft.Subject, tt.name)
			assert.NotEmpty(t, draft.Body)
		})
	}
}

func TestProspectService_SuggestOutreachPinnedVariant(t *testing.T) {
	repo, service := setupProspectService(t)

	prospect := &models.Prospect{Name: "Summit Roofing", AutomationNeedScore: 80}
	require.NoError(t, repo.Create(prospect))

	// A score of 80 would select the cold-high pitch; the pinned variant wins
	variant, draft, err := service.SuggestOutreach(prospect.ID, email.ProspectFollowUp)
	require.NoError(t, err)
	assert.Equal(t, email.ProspectFollowUp, variant)
	assert.Equal(t, "Following up - Summit Roofing", draft.Subject)

	_, _, err = service.SuggestOutreach(prospect.ID, email.TemplateType("bogus"))
	assert.ErrorIs(t, err, ErrUnknownTemplateVariant)

	// Inquiry variants are not valid for prospect outreach
	_, _, err = service.SuggestOutreach(prospect.ID, email.InquiryFriendly)
	assert.ErrorIs(t, err, ErrUnknownTemplateVariant)
}

func TestProspectService_SuggestOutreachNotFound(t *testing.T) {
	_, service := setupProspectService(t)

	_, _, err := service.SuggestOutreach("missing", "")
	assert.ErrorIs(t, err, ErrProspectNotFound)
}
