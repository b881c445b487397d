package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/google/uuid"
)

// BotConfigRepository defines the interface for stored email template data
// access. The send pipeline reads templates at send time; nothing is cached.
type BotConfigRepository interface {
	Create(config *models.BotConfig) error
	GetByKey(key string) (*models.BotConfig, error)
	List() ([]*models.BotConfig, error)
	Update(key string, subject, htmlTemplate *string, enabled *bool) (*models.BotConfig, error)
}

type botConfigRepository struct {
	db *sql.DB
}

// NewBotConfigRepository creates a new BotConfigRepository
func NewBotConfigRepository(db *sql.DB) BotConfigRepository {
	return &botConfigRepository{db: db}
}

// Create inserts a bot config row
func (r *botConfigRepository) Create(config *models.BotConfig) error {
	if config == nil {
		return fmt.Errorf("bot config cannot be nil")
	}
	if config.Key == "" {
		return fmt.Errorf("bot config key cannot be empty")
	}

	if config.ID == "" {
		config.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if config.CreatedAt == 0 {
		config.CreatedAt = now
	}
	config.UpdatedAt = now

	query := `
		INSERT INTO email_bot_configs (id, key, label, subject, html_template, channel, enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		config.ID,
		config.Key,
		nullableString(config.Label),
		config.Subject,
		config.HTMLTemplate,
		config.Channel,
		config.Enabled,
		config.CreatedAt,
		config.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create bot config: %w", err)
	}

	return nil
}

// GetByKey retrieves a bot config by its stable key
func (r *botConfigRepository) GetByKey(key string) (*models.BotConfig, error) {
	if key == "" {
		return nil, fmt.Errorf("bot config key cannot be empty")
	}

	config, err := scanBotConfig(r.db.QueryRow(botConfigSelect+" WHERE key = ?", key))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bot config by key: %w", err)
	}

	return config, nil
}

// List retrieves all bot configs ordered by key
func (r *botConfigRepository) List() ([]*models.BotConfig, error) {
	rows, err := r.db.Query(botConfigSelect + " ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("failed to list bot configs: %w", err)
	}
	defer rows.Close()

	var configs []*models.BotConfig
	for rows.Next() {
		config, err := scanBotConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bot config: %w", err)
		}
		configs = append(configs, config)
	}

	return configs, rows.Err()
}

// Update modifies the editable fields of a bot config and returns the
// updated row. Nil fields are left unchanged.
func (r *botConfigRepository) Update(key string, subject, htmlTemplate *string, enabled *bool) (*models.BotConfig, error) {
	if key == "" {
		return nil, fmt.Errorf("bot config key cannot be empty")
	}

	existing, err := r.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if subject != nil {
		existing.Subject = *subject
	}
	if htmlTemplate != nil {
		existing.HTMLTemplate = *htmlTemplate
	}
	if enabled != nil {
		existing.Enabled = *enabled
	}
	existing.UpdatedAt = time.Now().Unix()

	_, err = r.db.Exec(
		"UPDATE email_bot_configs SET subject = ?, html_template = ?, enabled = ?, updated_at = ? WHERE key = ?",
		existing.Subject, existing.HTMLTemplate, existing.Enabled, existing.UpdatedAt, key,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update bot config: %w", err)
	}

	return existing, nil
}

const botConfigSelect = `
	SELECT id, key, label, subject, html_template, channel, enabled, created_at, updated_at
	FROM email_bot_configs
`

func scanBotConfig(row rowScanner) (*models.BotConfig, error) {
	config := &models.BotConfig{}
	var label sql.NullString

	err := row.Scan(
		&config.ID,
		&config.Key,
		&label,
		&config.Subject,
		&config.HTMLTemplate,
		&config.Channel,
		&config.Enabled,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	config.Label = label.String
	return config, nil
}
