package services

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupInquiryService(t *testing.T) (db.InquiryRepository, *InquiryService) {
	database := db.SetupTestDB(t)
	repo := db.NewInquiryRepository(database)
	service := NewInquiryService(repo, email.NewGeneratorWithSource(rand.NewSource(1)))
	return repo, service
}

func TestInquiryService_CreateFromForm(t *testing.T) {
	_, service := setupInquiryService(t)

	inquiry, err := service.CreateFromForm(map[string]interface{}{
		"full_name":    "Jane Doe",
		"email":        "jane@example.com",
		"organization": "Acme",
		"details":      "Looking for automation",
	}, " consultation ")
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", inquiry.Form.Name)
	assert.Equal(t, "jane@example.com", inquiry.Form.Email)
	assert.Equal(t, "Acme", inquiry.Form.Company)
	assert.Equal(t, "Looking for automation", inquiry.Form.Message)
	assert.Equal(t, "consultation", inquiry.Page)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)

	stored, err := service.GetInquiry(inquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, inquiry.Form, stored.Form)
}

func TestInquiryService_CreateFromFormRequiresEmail(t *testing.T) {
	_, service := setupInquiryService(t)

	_, err := service.CreateFromForm(map[string]interface{}{"name": "Jane"}, "")
	assert.ErrorIs(t, err, ErrMissingFormEmail)
}

func TestInquiryService_GetInquiryNotFound(t *testing.T) {
	_, service := setupInquiryService(t)

	_, err := service.GetInquiry("missing")
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestInquiryService_UpdateStatus(t *testing.T) {
	_, service := setupInquiryService(t)

	inquiry, err := service.CreateFromForm(map[string]interface{}{"email": "a@example.com"}, "")
	require.NoError(t, err)

	require.NoError(t, service.UpdateStatus(inquiry.ID, models.InquiryStatusQualified))

	got, err := service.GetInquiry(inquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusQualified, got.Status)

	assert.ErrorIs(t, service.UpdateStatus("missing", models.InquiryStatusClosed), ErrInquiryNotFound)
	assert.Error(t, service.UpdateStatus(inquiry.ID, "  "))
}

func TestInquiryService_ArchiveRestorePurge(t *testing.T) {
	_, service := setupInquiryService(t)

	inquiry, err := service.CreateFromForm(map[string]interface{}{"email": "a@example.com"}, "")
	require.NoError(t, err)

	require.NoError(t, service.Archive(inquiry.ID))
	got, err := service.GetInquiry(inquiry.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	require.NoError(t, service.Restore(inquiry.ID))
	got, err = service.GetInquiry(inquiry.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDeleted)

	require.NoError(t, service.Purge(inquiry.ID))
	_, err = service.GetInquiry(inquiry.ID)
	assert.ErrorIs(t, err, ErrInquiryNotFound)

	assert.ErrorIs(t, service.Archive("missing"), ErrInquiryNotFound)
	assert.ErrorIs(t, service.Purge("missing"), ErrInquiryNotFound)
}

func TestInquiryService_BulkApply(t *testing.T) {
	_, service := setupInquiryService(t)

	first, err := service.CreateFromForm(map[string]interface{}{"email": "a@example.com"}, "")
	require.NoError(t, err)
	second, err := service.CreateFromForm(map[string]interface{}{"email": "b@example.com"}, "")
	require.NoError(t, err)

	// Misses are skipped, not fatal
	processed, err := service.BulkApply(BulkActionArchive, []string{first.ID, "missing", second.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	visible, err := service.ListInquiries(false, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, visible)

	_, err = service.BulkApply("rename", []string{first.ID})
	assert.ErrorIs(t, err, ErrInvalidBulkAction)
}

func TestInquiryService_SuggestReply(t *testing.T) {
	_, service := setupInquiryService(t)

	inquiry, err := service.CreateFromForm(map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": strings.Repeat("details ", 40),
	}, "contact")
	require.NoError(t, err)

	variant, draft, err := service.SuggestReply(inquiry.ID, "")
	require.NoError(t, err)
	assert.Equal(t, email.InquiryConsultative, variant)
	assert.Contains(t, draft.Body, "Hi Jane,")
	assert.NotEmpty(t, draft.Subject)
}

func TestInquiryService_SuggestReplyPinnedVariant(t *testing.T) {
	_, service := setupInquiryService(t)

	inquiry, err := service.CreateFromForm(map[string]interface{}{
		"name":  "Jane Doe",
		"email": "jane@example.com",
	}, "contact")
	require.NoError(t, err)

	// A short message would select professional; the pinned variant wins
	variant, draft, err := service.SuggestReply(inquiry.ID, email.InquiryFriendly)
	require.NoError(t, err)
	assert.Equal(t, email.InquiryFriendly, variant)
	assert.Equal(t, "Hey Jane - Let's Talk!", draft.Subject)

	_, _, err = service.SuggestReply(inquiry.ID, email.TemplateType("bogus"))
	assert.ErrorIs(t, err, ErrUnknownTemplateVariant)

	// Prospect variants are not valid for inquiry replies
	_, _, err = service.SuggestReply(inquiry.ID, email.ProspectFollowUp)
	assert.ErrorIs(t, err, ErrUnknownTemplateVariant)
}

func TestInquiryService_SuggestReplyNotFound(t *testing.T) {
	_, service := setupInquiryService(t)

	_, _, err := service.SuggestReply("missing", "")
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}
