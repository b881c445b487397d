package models

import (
	"time"

	"github.com/google/uuid"
)

// Template keys for the DB-backed auto-reply templates
const (
	TemplateKeyNewsletter   = "newsletter_auto"
	TemplateKeyConsultation = "consultation_auto"
	TemplateKeyPartnership  = "partnership_auto"
)

// BotConfig is a stored auto-reply template: subject and HTML body with
// {{token}} placeholders, editable from the email-bot dashboard and read by
// the send pipeline at send time (never cached).
type BotConfig struct {
	ID           string `json:"id"`  // UUID
	Key          string `json:"key"` // Stable template key
	Label        string `json:"label"`
	Subject      string `json:"subject"`
	HTMLTemplate string `json:"html_template"`
	Channel      string `json:"channel"` // Opt-out channel classification
	Enabled      bool   `json:"enabled"`
	CreatedAt    int64  `json:"created_at"` // Unix timestamp
	UpdatedAt    int64  `json:"updated_at"` // Unix timestamp
}

// UpdateBotConfigRequest represents a bot config edit from the dashboard
type UpdateBotConfigRequest struct {
	Key          string  `json:"key" binding:"required"`
	Subject      *string `json:"subject,omitempty"`
	HTMLTemplate *string `json:"html_template,omitempty"`
	Enabled      *bool   `json:"enabled,omitempty"`
}

// TestSendRequest represents a "send test email" action for a template key
type TestSendRequest struct {
	Key     string `json:"key"`
	ToEmail string `json:"toEmail"`
}

// NewBotConfig creates a new BotConfig with generated UUID and timestamps
func NewBotConfig(key, label, subject, htmlTemplate, channel string) *BotConfig {
	now := time.Now().Unix()
	return &BotConfig{
		ID:           uuid.New().String(),
		Key:          key,
		Label:        label,
		Subject:      subject,
		HTMLTemplate: htmlTemplate,
		Channel:      channel,
		Enabled:      true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
