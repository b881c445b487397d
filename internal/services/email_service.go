package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/config"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/mailer"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"go.uber.org/zap"
)

var (
	// ErrMissingSendFields indicates a manual send without to/subject/message
	ErrMissingSendFields = errors.New("missing to / subject / message")

	// ErrMissingTestFields indicates a test send without key or recipient
	ErrMissingTestFields = errors.New("missing key or toEmail")

	// ErrTemplateNotFound indicates the requested template key does not exist
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateDisabled indicates the template exists but is switched off
	ErrTemplateDisabled = errors.New("template is disabled")

	// ErrUnknownAccount indicates the requested outbound account is not configured
	ErrUnknownAccount = errors.New("unknown email account")
)

// ManualSendRequest is a hand-edited email sent from the dashboard
type ManualSendRequest struct {
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	InquiryID string `json:"inquiryId"`
	AccountID string `json:"accountId"`
}

// EmailService handles dashboard-initiated sends: manual emails tied to an
// inquiry and template test sends. Unlike the automated auto-reply path,
// every failure here is surfaced to the caller.
type EmailService struct {
	configs   db.BotConfigRepository
	logs      db.EmailLogRepository
	inquiries db.InquiryRepository
	mail      mailer.Mailer
	accounts  []config.EmailAccount
	fromEmail string
}

// NewEmailService creates a new EmailService
func NewEmailService(
	configs db.BotConfigRepository,
	logs db.EmailLogRepository,
	inquiries db.InquiryRepository,
	mail mailer.Mailer,
	accounts []config.EmailAccount,
	fromEmail string,
) *EmailService {
	return &EmailService{
		configs:   configs,
		logs:      logs,
		inquiries: inquiries,
		mail:      mail,
		accounts:  accounts,
		fromEmail: fromEmail,
	}
}

// Accounts returns the configured outbound accounts with credentials
// stripped, for the account picker in the send dialog.
func (s *EmailService) Accounts() []config.EmailAccount {
	sanitized := make([]config.EmailAccount, 0, len(s.accounts))
	for _, account := range s.accounts {
		sanitized = append(sanitized, config.EmailAccount{
			ID:    account.ID,
			Label: account.Label,
			Email: account.Email,
		})
	}
	return sanitized
}

// SendTest renders the stored template for a key with sample data and sends
// it to the given address. Test sends are not logged to email_logs.
func (s *EmailService) SendTest(key, toEmail string) (string, error) {
	if key == "" || toEmail == "" {
		return "", ErrMissingTestFields
	}

	tpl, err := s.configs.GetByKey(key)
	if err != nil {
		return "", fmt.Errorf("failed to load template: %w", err)
	}
	if tpl == nil {
		return "", ErrTemplateNotFound
	}
	if !tpl.Enabled {
		return "", ErrTemplateDisabled
	}

	ctx := map[string]string{
		"name":       "Test User",
		"email":      toEmail,
		"company":    "Sample Company",
		"message":    "This is a test email from EMOR OS.",
		"inquiry_id": "test-inquiry-id",
		"page":       key,
	}

	subject := email.Render(tpl.Subject, ctx)
	html := email.Render(tpl.HTMLTemplate, ctx)

	messageID, err := s.mail.Send(&mailer.Message{
		To:      toEmail,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return "", fmt.Errorf("failed to send test email: %w", err)
	}

	logger.Info("Sent test email",
		zap.String("key", key),
		zap.String("to", toEmail),
		zap.String("message_id", messageID),
	)
	return messageID, nil
}

// SendManual transmits a hand-edited email and logs the attempt against its
// inquiry. The selected account's address becomes both the transmission
// origin and the logged from address. Transport errors are logged as failed
// and returned to the caller; a failed log write alone never fails the send.
func (s *EmailService) SendManual(req *ManualSendRequest) (string, error) {
	if req == nil || req.To == "" || req.Subject == "" || req.Message == "" {
		return "", ErrMissingSendFields
	}

	fromEmail := s.fromEmail
	var account *mailer.Account
	if req.AccountID != "" {
		selected := s.accountByID(req.AccountID)
		if selected == nil {
			return "", ErrUnknownAccount
		}
		fromEmail = selected.Email
		account = &mailer.Account{
			Email:    selected.Email,
			Username: selected.Username,
			Password: selected.Password,
		}
	}

	html := strings.ReplaceAll(req.Message, "\n", "<br />")

	log := models.NewEmailLog(req.InquiryID, models.DirectionOutbound, fromEmail, req.To, req.Subject)
	log.BodyPreview = models.MakeBodyPreview(req.Message)

	messageID, sendErr := s.mail.Send(&mailer.Message{
		To:      req.To,
		Subject: req.Subject,
		HTML:    html,
		Account: account,
	})
	if sendErr != nil {
		log.Status = models.EmailStatusFailed
		log.ErrorMessage = sendErr.Error()
		s.writeLog(log)
		return "", fmt.Errorf("failed to send email: %w", sendErr)
	}

	log.Status = models.EmailStatusSent
	log.ProviderMessageID = messageID
	s.writeLog(log)

	if req.InquiryID != "" {
		if err := s.inquiries.RecordEmailSent(req.InquiryID, time.Now().Unix()); err != nil {
			logger.Warn("Failed to update inquiry send counters",
				zap.String("inquiry_id", req.InquiryID),
				zap.Error(err),
			)
		}
	}

	logger.Info("Sent manual email",
		zap.String("to", req.To),
		zap.String("from", fromEmail),
		zap.String("inquiry_id", req.InquiryID),
	)
	return messageID, nil
}

// ListByInquiry returns the email history of one inquiry, newest first
func (s *EmailService) ListByInquiry(inquiryID string) ([]*models.EmailLog, error) {
	if inquiryID == "" {
		return nil, errors.New("inquiry ID cannot be empty")
	}
	return s.logs.ListByInquiry(inquiryID)
}

func (s *EmailService) accountByID(id string) *config.EmailAccount {
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			return &s.accounts[i]
		}
	}
	return nil
}

// writeLog appends an email log row, swallowing failures with a warning
func (s *EmailService) writeLog(log *models.EmailLog) {
	if err := s.logs.Create(log); err != nil {
		logger.Warn("Failed to write email log",
			zap.String("inquiry_id", log.InquiryID),
			zap.Error(err),
		)
	}
}
