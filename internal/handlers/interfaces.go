package handlers

import (
	"github.com/FallenDelta563/EMOR-OS-V1/internal/config"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/services"
)

// InquiryServiceInterface defines the inquiry operations handlers depend on
type InquiryServiceInterface interface {
	CreateFromForm(payload map[string]interface{}, page string) (*models.Inquiry, error)
	GetInquiry(id string) (*models.Inquiry, error)
	ListInquiries(includeDeleted bool, limit, offset int) ([]*models.Inquiry, error)
	UpdateStatus(id, status string) error
	Archive(id string) error
	Restore(id string) error
	Purge(id string) error
	BulkApply(action string, ids []string) (int, error)
	SuggestReply(id string, variant email.TemplateType) (email.TemplateType, email.Draft, error)
}

// AutoReplyServiceInterface defines the automated reply trigger
type AutoReplyServiceInterface interface {
	SendAutoReply(inquiry *models.Inquiry) error
}

// NoteServiceInterface defines the note operations handlers depend on
type NoteServiceInterface interface {
	AddNote(inquiryID, body string) (*models.Note, error)
	ListNotes(inquiryID string) ([]*models.Note, error)
	UpdateNote(id, body string) error
	DeleteNote(id string) error
}

// ProspectServiceInterface defines the prospect operations handlers depend on
type ProspectServiceInterface interface {
	GetProspect(id string) (*models.Prospect, error)
	ListProspects(sort string, limit, offset int) ([]*models.Prospect, error)
	SuggestOutreach(id string, variant email.TemplateType) (email.TemplateType, email.Draft, error)
}

// BotConfigServiceInterface defines the template-editor operations
type BotConfigServiceInterface interface {
	ListConfigs() ([]*models.BotConfig, error)
	UpdateConfig(req *models.UpdateBotConfigRequest) (*models.BotConfig, error)
}

// EmailServiceInterface defines the dashboard send operations
type EmailServiceInterface interface {
	SendTest(key, toEmail string) (string, error)
	SendManual(req *services.ManualSendRequest) (string, error)
	ListByInquiry(inquiryID string) ([]*models.EmailLog, error)
	Accounts() []config.EmailAccount
}

// PreferencesServiceInterface defines the unsubscribe operations
type PreferencesServiceInterface interface {
	Unsubscribe(token, reason string) (*models.EmailPreferences, error)
}
