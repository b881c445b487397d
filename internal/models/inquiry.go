package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Inquiry statuses used by the dashboard. Status is a free-form string in
// the store; these are the values the UI assigns.
const (
	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusQualified = "qualified"
	InquiryStatusClosed    = "closed"
)

// Inquiry represents one public-form submission captured by the system
type Inquiry struct {
	ID              string      `json:"id"` // UUID
	Form            InquiryForm `json:"form"`
	Page            string      `json:"page,omitempty"`   // Source page the form was submitted from
	Status          string      `json:"status"`           // Dashboard workflow status
	IsDeleted       bool        `json:"is_deleted"`       // Soft-delete flag; archived inquiries stay queryable
	LastContactedAt *int64      `json:"last_contacted_at,omitempty"` // Unix timestamp of the last outbound email
	EmailsSent      int         `json:"emails_sent"`      // Count of outbound emails tied to this inquiry
	CreatedAt       int64       `json:"created_at"`       // Unix timestamp
	UpdatedAt       int64       `json:"updated_at"`       // Unix timestamp
}

// InquiryForm is the normalized shape of an arbitrary form payload.
// Public forms submit loosely-shaped JSON; NormalizeForm maps it into this
// struct exactly once at the API boundary so downstream code never chases
// field aliases.
type InquiryForm struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Message  string `json:"message,omitempty"`
	Services string `json:"services,omitempty"`
	Interest string `json:"interest,omitempty"`
}

// Field alias precedence for form normalization. First present, non-empty
// key wins.
var formFieldAliases = map[string][]string{
	"name":     {"name", "full_name", "first_name", "role"},
	"email":    {"email", "Email", "email_address"},
	"company":  {"company", "Company", "business", "organization"},
	"phone":    {"phone", "Phone", "phone_number"},
	"message":  {"message", "Message", "details"},
	"services": {"services", "service"},
	"interest": {"interest"},
}

// NormalizeForm maps an arbitrary key-value form payload into an InquiryForm
// using the documented alias precedence per field. Non-string values are
// ignored; surrounding whitespace is trimmed.
func NormalizeForm(payload map[string]interface{}) InquiryForm {
	pick := func(field string) string {
		for _, key := range formFieldAliases[field] {
			if raw, ok := payload[key]; ok {
				if s, ok := raw.(string); ok {
					if trimmed := strings.TrimSpace(s); trimmed != "" {
						return trimmed
					}
				}
			}
		}
		return ""
	}

	return InquiryForm{
		Name:     pick("name"),
		Email:    pick("email"),
		Company:  pick("company"),
		Phone:    pick("phone"),
		Message:  pick("message"),
		Services: pick("services"),
		Interest: pick("interest"),
	}
}

// CreateInquiryRequest represents the public form intake payload. The form
// shape is intentionally loose; it is normalized server-side.
type CreateInquiryRequest struct {
	Form map[string]interface{} `json:"form"`
	Data map[string]interface{} `json:"data"`
	Page string                 `json:"page"`
	// SourcePage is an accepted alias for Page used by older form embeds
	SourcePage string `json:"source_page"`
}

// UpdateInquiryRequest represents a dashboard status update
type UpdateInquiryRequest struct {
	Status *string `json:"status,omitempty"`
}

// PreviewRequest optionally pins the template variant for a draft preview.
// An empty template lets the selector pick.
type PreviewRequest struct {
	Template string `json:"template"`
}

// BulkInquiryRequest represents a bulk archive/restore/purge action
type BulkInquiryRequest struct {
	Action string   `json:"action" binding:"required"`
	IDs    []string `json:"ids" binding:"required"`
}

// NewInquiry creates a new Inquiry with generated UUID and timestamps
func NewInquiry(form InquiryForm, page string) *Inquiry {
	now := time.Now().Unix()
	return &Inquiry{
		ID:        uuid.New().String(),
		Form:      form,
		Page:      page,
		Status:    InquiryStatusNew,
		IsDeleted: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
