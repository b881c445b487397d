package models

import (
	"time"

	"github.com/google/uuid"
)

// Email log directions
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// Email log statuses
const (
	EmailStatusSent                = "sent"
	EmailStatusFailed              = "failed"
	EmailStatusBlockedUnsubscribed = "blocked_unsubscribed"
)

// BlockedSubjectPrefix marks log rows for sends stopped by the preference
// gate so they are visible in the inbox view.
const BlockedSubjectPrefix = "[BLOCKED: unsubscribed] "

// bodyPreviewLimit caps the stored body preview length
const bodyPreviewLimit = 300

// EmailLog records one email attempt tied to an inquiry. Rows are
// append-only: they are never edited after insert.
type EmailLog struct {
	ID                string `json:"id"`         // UUID
	InquiryID         string `json:"inquiry_id"` // Owning inquiry; empty for unattached sends
	Direction         string `json:"direction"`
	FromEmail         string `json:"from_email"`
	ToEmail           string `json:"to_email"`
	Subject           string `json:"subject"`
	BodyPreview       string `json:"body_preview,omitempty"` // Truncated to 300 chars
	Status            string `json:"status"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
	ErrorMessage      string `json:"error_message,omitempty"`
	SentAt            int64  `json:"sent_at"` // Unix timestamp
}

// NewEmailLog creates a new EmailLog with generated UUID and timestamp
func NewEmailLog(inquiryID, direction, from, to, subject string) *EmailLog {
	return &EmailLog{
		ID:        uuid.New().String(),
		InquiryID: inquiryID,
		Direction: direction,
		FromEmail: from,
		ToEmail:   to,
		Subject:   subject,
		SentAt:    time.Now().Unix(),
	}
}

// MakeBodyPreview truncates a message body for storage. Bodies longer than
// 300 characters keep the first 297 followed by "...". Counts runes so a
// multi-byte character at the boundary is never split.
func MakeBodyPreview(body string) string {
	runes := []rune(body)
	if len(runes) > bodyPreviewLimit {
		return string(runes[:bodyPreviewLimit-3]) + "..."
	}
	return body
}
