package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/utils"

	"go.uber.org/zap"
)

const maxUnsubscribeReasonLen = 500

var (
	// ErrInvalidUnsubscribeToken indicates no preferences row matches a token
	ErrInvalidUnsubscribeToken = errors.New("invalid or expired unsubscribe link")

	// ErrEmptyRecipient indicates a send attempt without a recipient address
	ErrEmptyRecipient = errors.New("recipient email cannot be empty")
)

// PreferencesService manages per-recipient send permissions and unsubscribe
// links
type PreferencesService struct {
	repo    db.PreferencesRepository
	baseURL string
}

// NewPreferencesService creates a new PreferencesService. baseURL is the
// externally visible origin used for unsubscribe links.
func NewPreferencesService(repo db.PreferencesRepository, baseURL string) *PreferencesService {
	return &PreferencesService{
		repo:    repo,
		baseURL: baseURL,
	}
}

// Ensure returns the preferences row for an address, creating it with a
// fresh opaque token when missing. Creation is at-least-once: a concurrent
// insert for the same address loses the race and falls back to re-reading
// the winner's row. Existing tokens are never rotated; a row missing its
// token gets one backfilled.
func (s *PreferencesService) Ensure(email string) (*models.EmailPreferences, error) {
	normalized := models.NormalizeEmail(email)
	if normalized == "" {
		return nil, ErrEmptyRecipient
	}

	prefs, err := s.repo.GetByEmail(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to load email preferences: %w", err)
	}

	if prefs != nil && prefs.UnsubscribeToken != "" {
		return prefs, nil
	}

	token, err := utils.NewUnsubscribeToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate unsubscribe token: %w", err)
	}

	if prefs == nil {
		created := models.NewEmailPreferences(normalized, token)
		if createErr := s.repo.Create(created); createErr != nil {
			// A concurrent attempt may have inserted the row first
			existing, readErr := s.repo.GetByEmail(normalized)
			if readErr == nil && existing != nil {
				return existing, nil
			}
			return nil, fmt.Errorf("failed to create email preferences: %w", createErr)
		}
		return created, nil
	}

	// Row exists but has no token (legacy import); backfill once
	if err := s.repo.SetToken(prefs.ID, token); err != nil {
		return nil, fmt.Errorf("failed to backfill unsubscribe token: %w", err)
	}
	prefs.UnsubscribeToken = token

	return prefs, nil
}

// UnsubscribeURL builds the public unsubscribe link for a token
func (s *PreferencesService) UnsubscribeURL(token string) string {
	base := strings.TrimSuffix(s.baseURL, "/")
	return fmt.Sprintf("%s/unsubscribe?token=%s", base, url.QueryEscape(token))
}

// Unsubscribe flips every marketing channel off for the row matching the
// token and returns the updated row. Repeat calls with the same token are
// idempotent. Unknown tokens yield ErrInvalidUnsubscribeToken.
func (s *PreferencesService) Unsubscribe(token, reason string) (*models.EmailPreferences, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("token cannot be empty")
	}

	if len(reason) > maxUnsubscribeReasonLen {
		reason = reason[:maxUnsubscribeReasonLen]
	}

	prefs, err := s.repo.UnsubscribeAll(token, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to unsubscribe: %w", err)
	}
	if prefs == nil {
		return nil, ErrInvalidUnsubscribeToken
	}

	logger.Info("Recipient unsubscribed",
		zap.String("email", prefs.Email),
	)

	return prefs, nil
}
