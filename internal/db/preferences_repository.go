package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/google/uuid"
)

// PreferencesRepository defines the interface for email preference data
// access. The email column is unique; a concurrent duplicate insert fails
// and callers are expected to fall back to re-reading the existing row.
type PreferencesRepository interface {
	Create(prefs *models.EmailPreferences) error
	GetByEmail(email string) (*models.EmailPreferences, error)
	GetByToken(token string) (*models.EmailPreferences, error)
	SetToken(id, token string) error
	UnsubscribeAll(token, reason string) (*models.EmailPreferences, error)
}

type preferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository creates a new PreferencesRepository
func NewPreferencesRepository(db *sql.DB) PreferencesRepository {
	return &preferencesRepository{db: db}
}

// Create inserts a preferences row. Fails on duplicate email.
func (r *preferencesRepository) Create(prefs *models.EmailPreferences) error {
	if prefs == nil {
		return fmt.Errorf("preferences cannot be nil")
	}
	if prefs.Email == "" {
		return fmt.Errorf("preferences email cannot be empty")
	}
	if prefs.UnsubscribeToken == "" {
		return fmt.Errorf("preferences token cannot be empty")
	}

	if prefs.ID == "" {
		prefs.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if prefs.CreatedAt == 0 {
		prefs.CreatedAt = now
	}
	prefs.UpdatedAt = now

	query := `
		INSERT INTO email_preferences (id, email, allow_newsletter, allow_outreach,
			unsubscribed_all, unsubscribe_token, unsubscribed_at, unsubscribed_reason,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		prefs.ID,
		prefs.Email,
		prefs.AllowNewsletter,
		prefs.AllowOutreach,
		prefs.UnsubscribedAll,
		prefs.UnsubscribeToken,
		prefs.UnsubscribedAt,
		nullableString(prefs.UnsubscribedReason),
		prefs.CreatedAt,
		prefs.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create email preferences: %w", err)
	}

	return nil
}

// GetByEmail retrieves preferences by normalized email
func (r *preferencesRepository) GetByEmail(email string) (*models.EmailPreferences, error) {
	if email == "" {
		return nil, fmt.Errorf("email cannot be empty")
	}

	prefs, err := scanPreferences(r.db.QueryRow(preferencesSelect+" WHERE email = ?", email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences by email: %w", err)
	}

	return prefs, nil
}

// GetByToken retrieves preferences by unsubscribe token
func (r *preferencesRepository) GetByToken(token string) (*models.EmailPreferences, error) {
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}

	prefs, err := scanPreferences(r.db.QueryRow(preferencesSelect+" WHERE unsubscribe_token = ?", token))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences by token: %w", err)
	}

	return prefs, nil
}

// SetToken backfills the unsubscribe token on a row that is missing one
func (r *preferencesRepository) SetToken(id, token string) error {
	if id == "" {
		return fmt.Errorf("preferences ID cannot be empty")
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	result, err := r.db.Exec(
		"UPDATE email_preferences SET unsubscribe_token = ?, updated_at = ? WHERE id = ?",
		token, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to set preferences token: %w", err)
	}

	return requireRowAffected(result, "email preferences")
}

// UnsubscribeAll flips every marketing channel off for the row matching the
// token, stamps the time and optional reason, and returns the updated row.
// Returns (nil, nil) when no row matches the token.
func (r *preferencesRepository) UnsubscribeAll(token, reason string) (*models.EmailPreferences, error) {
	if token == "" {
		return nil, fmt.Errorf("token cannot be empty")
	}

	now := time.Now().Unix()
	result, err := r.db.Exec(`
		UPDATE email_preferences
		SET allow_newsletter = 0, allow_outreach = 0, unsubscribed_all = 1,
			unsubscribed_at = ?, unsubscribed_reason = ?, updated_at = ?
		WHERE unsubscribe_token = ?
	`, now, nullableString(reason), now, token)
	if err != nil {
		return nil, fmt.Errorf("failed to unsubscribe: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return r.GetByToken(token)
}

const preferencesSelect = `
	SELECT id, email, allow_newsletter, allow_outreach, unsubscribed_all,
		unsubscribe_token, unsubscribed_at, unsubscribed_reason, created_at, updated_at
	FROM email_preferences
`

func scanPreferences(row rowScanner) (*models.EmailPreferences, error) {
	prefs := &models.EmailPreferences{}
	var reason sql.NullString

	err := row.Scan(
		&prefs.ID,
		&prefs.Email,
		&prefs.AllowNewsletter,
		&prefs.AllowOutreach,
		&prefs.UnsubscribedAll,
		&prefs.UnsubscribeToken,
		&prefs.UnsubscribedAt,
		&reason,
		&prefs.CreatedAt,
		&prefs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	prefs.UnsubscribedReason = reason.String
	return prefs, nil
}
