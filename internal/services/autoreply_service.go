package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/mailer"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"go.uber.org/zap"
)

// AutoReplyService sends the automated reply after an inquiry is recorded.
// The whole path is best-effort from the submitter's point of view: a
// missing or disabled template drops the attempt silently, while an
// eligibility-check failure aborts fail-closed with an error the caller is
// expected to catch and ignore.
type AutoReplyService struct {
	configs   db.BotConfigRepository
	logs      db.EmailLogRepository
	inquiries db.InquiryRepository
	prefs     *PreferencesService
	mail      mailer.Mailer
	fromEmail string
}

// NewAutoReplyService creates a new AutoReplyService
func NewAutoReplyService(
	configs db.BotConfigRepository,
	logs db.EmailLogRepository,
	inquiries db.InquiryRepository,
	prefs *PreferencesService,
	mail mailer.Mailer,
	fromEmail string,
) *AutoReplyService {
	return &AutoReplyService{
		configs:   configs,
		logs:      logs,
		inquiries: inquiries,
		prefs:     prefs,
		mail:      mail,
		fromEmail: fromEmail,
	}
}

// SendAutoReply runs the auto-reply pipeline for one inquiry: pick the
// template key from the source page, load the stored template, check the
// recipient's preferences, render, transmit, and log the outcome. Every
// attempt that reaches the eligibility decision leaves a log row; transport
// failures are recorded as failed, not returned.
func (s *AutoReplyService) SendAutoReply(inquiry *models.Inquiry) error {
	if inquiry == nil {
		return fmt.Errorf("inquiry cannot be nil")
	}

	toEmail := strings.TrimSpace(inquiry.Form.Email)
	if toEmail == "" {
		// Nothing to send to
		return nil
	}

	templateKey := email.PickTemplateKeyFromPage(inquiry.Page)

	tpl, err := s.configs.GetByKey(templateKey)
	if err != nil {
		return fmt.Errorf("failed to load auto-reply template: %w", err)
	}
	if tpl == nil || !tpl.Enabled {
		// Template missing or disabled: skip quietly, no log entry
		logger.Info("Auto-reply skipped",
			zap.String("inquiry_id", inquiry.ID),
			zap.String("template_key", templateKey),
		)
		return nil
	}

	// Fail-closed: if eligibility cannot be determined, do not send
	prefs, err := s.prefs.Ensure(toEmail)
	if err != nil {
		return fmt.Errorf("failed to ensure email preferences: %w", err)
	}

	ctx := renderContext(inquiry, s.prefs.UnsubscribeURL(prefs.UnsubscribeToken))
	subject := email.Render(tpl.Subject, ctx)
	html := email.Render(tpl.HTMLTemplate, ctx)

	if !prefs.CanSendOnChannel(tpl.Channel) {
		log := models.NewEmailLog(inquiry.ID, models.DirectionOutbound, s.fromEmail, toEmail,
			models.BlockedSubjectPrefix+subject)
		log.Status = models.EmailStatusBlockedUnsubscribed
		s.writeLog(log)

		logger.Info("Auto-reply blocked by preferences",
			zap.String("inquiry_id", inquiry.ID),
			zap.String("to", toEmail),
		)
		return nil
	}

	log := models.NewEmailLog(inquiry.ID, models.DirectionOutbound, s.fromEmail, toEmail, subject)
	log.BodyPreview = models.MakeBodyPreview(html)

	messageID, sendErr := s.mail.Send(&mailer.Message{
		To:      toEmail,
		Subject: subject,
		HTML:    html,
	})
	if sendErr != nil {
		log.Status = models.EmailStatusFailed
		log.ErrorMessage = sendErr.Error()
		s.writeLog(log)

		logger.Error("Auto-reply send failed",
			zap.String("inquiry_id", inquiry.ID),
			zap.String("to", toEmail),
			zap.Error(sendErr),
		)
		return nil
	}

	log.Status = models.EmailStatusSent
	log.ProviderMessageID = messageID
	s.writeLog(log)

	if err := s.inquiries.RecordEmailSent(inquiry.ID, time.Now().Unix()); err != nil {
		logger.Warn("Failed to update inquiry send counters",
			zap.String("inquiry_id", inquiry.ID),
			zap.Error(err),
		)
	}

	logger.Info("Auto-reply sent",
		zap.String("inquiry_id", inquiry.ID),
		zap.String("to", toEmail),
		zap.String("template_key", templateKey),
	)
	return nil
}

// writeLog appends an email log row. Logging is best-effort: a failed write
// never changes the outcome of the send itself.
func (s *AutoReplyService) writeLog(log *models.EmailLog) {
	if err := s.logs.Create(log); err != nil {
		logger.Warn("Failed to write email log",
			zap.String("inquiry_id", log.InquiryID),
			zap.Error(err),
		)
	}
}

// renderContext builds the placeholder context for a stored template
func renderContext(inquiry *models.Inquiry, unsubscribeURL string) map[string]string {
	name := inquiry.Form.Name
	if name == "" {
		name = "there"
	}

	return map[string]string{
		"name":            name,
		"email":           inquiry.Form.Email,
		"company":         inquiry.Form.Company,
		"message":         inquiry.Form.Message,
		"inquiry_id":      inquiry.ID,
		"page":            inquiry.Page,
		"unsubscribe_url": unsubscribeURL,
	}
}
