package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Email channels used for opt-out granularity
const (
	ChannelNewsletter    = "newsletter"
	ChannelOutreach      = "outreach"
	ChannelTransactional = "transactional"
)

// EmailPreferences holds per-recipient send permissions. There is exactly
// one row per normalized (lowercased) email address, created lazily on the
// first send attempt. The unsubscribe token is never rotated once set.
type EmailPreferences struct {
	ID                 string `json:"id"` // UUID
	Email              string `json:"email"`
	AllowNewsletter    bool   `json:"allow_newsletter"`
	AllowOutreach      bool   `json:"allow_outreach"`
	UnsubscribedAll    bool   `json:"unsubscribed_all"`
	UnsubscribeToken   string `json:"unsubscribe_token"`
	UnsubscribedAt     *int64 `json:"unsubscribed_at,omitempty"` // Unix timestamp
	UnsubscribedReason string `json:"unsubscribed_reason,omitempty"`
	CreatedAt          int64  `json:"created_at"` // Unix timestamp
	UpdatedAt          int64  `json:"updated_at"` // Unix timestamp
}

// UnsubscribeRequest represents an unsubscribe-by-token call
type UnsubscribeRequest struct {
	Token  string `json:"token"`
	Reason string `json:"reason"`
}

// NormalizeEmail canonicalizes a recipient address for preference lookups
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewEmailPreferences creates a preferences row for an address with all
// channels allowed and the given unsubscribe token.
func NewEmailPreferences(email, token string) *EmailPreferences {
	now := time.Now().Unix()
	return &EmailPreferences{
		ID:               uuid.New().String(),
		Email:            NormalizeEmail(email),
		AllowNewsletter:  true,
		AllowOutreach:    true,
		UnsubscribedAll:  false,
		UnsubscribeToken: token,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// CanSendOnChannel reports whether a send on the given channel is allowed.
// The global unsubscribe flag wins over everything, including transactional
// mail; otherwise transactional is always allowed and the marketing channels
// follow their flags. Unknown channels are denied.
func (p *EmailPreferences) CanSendOnChannel(channel string) bool {
	if p.UnsubscribedAll {
		return false
	}

	switch channel {
	case ChannelNewsletter:
		return p.AllowNewsletter
	case ChannelOutreach:
		return p.AllowOutreach
	case ChannelTransactional:
		return true
	default:
		return false
	}
}
