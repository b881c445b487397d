package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"go.uber.org/zap"
)

var (
	// ErrInquiryNotFound indicates the inquiry does not exist
	ErrInquiryNotFound = errors.New("inquiry not found")

	// ErrMissingFormEmail indicates a form payload without a usable email
	ErrMissingFormEmail = errors.New("missing email in form payload")

	// ErrInvalidBulkAction indicates an unsupported bulk action name
	ErrInvalidBulkAction = errors.New("bulk action must be archive, restore or purge")

	// ErrUnknownTemplateVariant indicates a preview request naming a template
	// variant that does not exist
	ErrUnknownTemplateVariant = errors.New("unknown template variant")
)

// Bulk action names accepted by BulkApply
const (
	BulkActionArchive = "archive"
	BulkActionRestore = "restore"
	BulkActionPurge   = "purge"
)

// InquiryService provides business logic for form-submitted leads
type InquiryService struct {
	repo      db.InquiryRepository
	generator *email.Generator
}

// NewInquiryService creates a new InquiryService instance
func NewInquiryService(repo db.InquiryRepository, generator *email.Generator) *InquiryService {
	return &InquiryService{
		repo:      repo,
		generator: generator,
	}
}

// CreateFromForm normalizes an arbitrary form payload and records it as a
// new inquiry. The payload must carry a usable email under one of the known
// aliases.
func (s *InquiryService) CreateFromForm(payload map[string]interface{}, page string) (*models.Inquiry, error) {
	form := models.NormalizeForm(payload)
	if form.Email == "" {
		return nil, ErrMissingFormEmail
	}

	inquiry := models.NewInquiry(form, strings.TrimSpace(page))
	if err := s.repo.Create(inquiry); err != nil {
		return nil, fmt.Errorf("failed to save inquiry: %w", err)
	}

	logger.Info("Inquiry recorded",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("page", inquiry.Page),
	)
	return inquiry, nil
}

// GetInquiry retrieves an inquiry by ID
func (s *InquiryService) GetInquiry(id string) (*models.Inquiry, error) {
	if id == "" {
		return nil, errors.New("inquiry ID cannot be empty")
	}

	inquiry, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	if inquiry == nil {
		return nil, ErrInquiryNotFound
	}

	return inquiry, nil
}

// ListInquiries retrieves inquiries newest first
func (s *InquiryService) ListInquiries(includeDeleted bool, limit, offset int) ([]*models.Inquiry, error) {
	return s.repo.List(includeDeleted, limit, offset)
}

// UpdateStatus changes the dashboard workflow status of an inquiry
func (s *InquiryService) UpdateStatus(id, status string) error {
	if id == "" {
		return errors.New("inquiry ID cannot be empty")
	}
	if strings.TrimSpace(status) == "" {
		return errors.New("status cannot be empty")
	}

	if err := s.repo.UpdateStatus(id, status); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrInquiryNotFound
		}
		return err
	}
	return nil
}

// Archive soft-deletes an inquiry. The row stays in the store and can be
// restored.
func (s *InquiryService) Archive(id string) error {
	return s.setDeleted(id, true)
}

// Restore clears the soft-delete flag on an inquiry
func (s *InquiryService) Restore(id string) error {
	return s.setDeleted(id, false)
}

// Purge removes an inquiry permanently. Notes cascade with it.
func (s *InquiryService) Purge(id string) error {
	if id == "" {
		return errors.New("inquiry ID cannot be empty")
	}

	if err := s.repo.Purge(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrInquiryNotFound
		}
		return err
	}
	return nil
}

// BulkApply runs one action over a set of inquiry IDs and returns how many
// succeeded. Individual misses are logged and skipped rather than aborting
// the batch.
func (s *InquiryService) BulkApply(action string, ids []string) (int, error) {
	var apply func(string) error
	switch action {
	case BulkActionArchive:
		apply = s.Archive
	case BulkActionRestore:
		apply = s.Restore
	case BulkActionPurge:
		apply = s.Purge
	default:
		return 0, ErrInvalidBulkAction
	}

	processed := 0
	for _, id := range ids {
		if err := apply(id); err != nil {
			logger.Warn("Bulk inquiry action failed for one row",
				zap.String("action", action),
				zap.String("inquiry_id", id),
				zap.Error(err),
			)
			continue
		}
		processed++
	}

	return processed, nil
}

// SuggestReply composes a reply draft for an inquiry. An empty variant lets
// the selector pick from the inquiry's data; a named variant pins the
// template, so the dashboard can regenerate the draft for any of them.
func (s *InquiryService) SuggestReply(id string, variant email.TemplateType) (email.TemplateType, email.Draft, error) {
	if variant != "" && !email.KnownInquiryTemplate(variant) {
		return "", email.Draft{}, ErrUnknownTemplateVariant
	}

	inquiry, err := s.GetInquiry(id)
	if err != nil {
		return "", email.Draft{}, err
	}

	data := inquiryTemplateData(inquiry)
	if variant == "" {
		variant = email.SuggestInquiryTemplate(data)
	}

	draft, err := s.generator.GenerateInquiry(variant, data)
	if err != nil {
		return "", email.Draft{}, fmt.Errorf("failed to compose reply: %w", err)
	}

	return variant, draft, nil
}

func (s *InquiryService) setDeleted(id string, deleted bool) error {
	if id == "" {
		return errors.New("inquiry ID cannot be empty")
	}

	if err := s.repo.SetDeleted(id, deleted); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrInquiryNotFound
		}
		return err
	}
	return nil
}

// inquiryTemplateData maps an inquiry onto the generator's parameter set
func inquiryTemplateData(inquiry *models.Inquiry) email.InquiryData {
	return email.InquiryData{
		Name:         inquiry.Form.Name,
		FirstName:    email.DeriveFirstName(inquiry.Form.Name, inquiry.Form.Company),
		Email:        inquiry.Form.Email,
		Company:      inquiry.Form.Company,
		Phone:        inquiry.Form.Phone,
		Message:      inquiry.Form.Message,
		Services:     inquiry.Form.Services,
		Interest:     inquiry.Form.Interest,
		Page:         inquiry.Page,
		ReceivedDate: time.Unix(inquiry.CreatedAt, 0).Format("January 2, 2006"),
	}
}
