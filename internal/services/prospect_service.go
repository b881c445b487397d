package services

import (
	"errors"
	"fmt"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
)

// ErrProspectNotFound indicates the prospect does not exist
var ErrProspectNotFound = errors.New("prospect not found")

// ProspectService provides read access to discovered leads and composes
// outreach drafts for them
type ProspectService struct {
	repo      db.ProspectRepository
	generator *email.Generator
}

// NewProspectService creates a new ProspectService instance
func NewProspectService(repo db.ProspectRepository, generator *email.Generator) *ProspectService {
	return &ProspectService{
		repo:      repo,
		generator: generator,
	}
}

// GetProspect retrieves a prospect by ID
func (s *ProspectService) GetProspect(id string) (*models.Prospect, error) {
	if id == "" {
		return nil, errors.New("prospect ID cannot be empty")
	}

	prospect, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get prospect: %w", err)
	}
	if prospect == nil {
		return nil, ErrProspectNotFound
	}

	return prospect, nil
}

// ListProspects retrieves prospects sorted by recency or score
func (s *ProspectService) ListProspects(sort string, limit, offset int) ([]*models.Prospect, error) {
	if sort != db.ProspectSortScore {
		sort = db.ProspectSortNewest
	}
	return s.repo.List(sort, limit, offset)
}

// SuggestOutreach composes a cold-outreach draft for a prospect. An empty
// variant lets the automation score select; a named variant pins the
// template, so the dashboard can regenerate the draft for any of them.
func (s *ProspectService) SuggestOutreach(id string, variant email.TemplateType) (email.TemplateType, email.Draft, error) {
	if variant != "" && !email.KnownProspectTemplate(variant) {
		return "", email.Draft{}, ErrUnknownTemplateVariant
	}

	prospect, err := s.GetProspect(id)
	if err != nil {
		return "", email.Draft{}, err
	}

	data := email.ProspectData{
		BusinessName:    prospect.Name,
		City:            prospect.City,
		Category:        prospect.Category,
		Phone:           prospect.Phone,
		Website:         prospect.Website,
		AutomationScore: prospect.AutomationNeedScore,
		ScoreReasons:    prospect.ScoreReasons,
	}

	if variant == "" {
		variant = email.SuggestProspectTemplate(data)
	}
	draft, err := s.generator.GenerateProspect(variant, data)
	if err != nil {
		return "", email.Draft{}, fmt.Errorf("failed to compose outreach: %w", err)
	}

	return variant, draft, nil
}
