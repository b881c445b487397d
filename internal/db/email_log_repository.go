package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/google/uuid"
)

// EmailLogRepository defines the interface for email log data access.
// Logs are append-only; there is no update operation.
type EmailLogRepository interface {
	Create(log *models.EmailLog) error
	ListByInquiry(inquiryID string) ([]*models.EmailLog, error)
}

type emailLogRepository struct {
	db *sql.DB
}

// NewEmailLogRepository creates a new EmailLogRepository
func NewEmailLogRepository(db *sql.DB) EmailLogRepository {
	return &emailLogRepository{db: db}
}

// Create appends an email log row
func (r *emailLogRepository) Create(log *models.EmailLog) error {
	if log == nil {
		return fmt.Errorf("email log cannot be nil")
	}
	if log.ToEmail == "" {
		return fmt.Errorf("email log recipient cannot be empty")
	}

	if log.ID == "" {
		log.ID = uuid.New().String()
	}
	if log.SentAt == 0 {
		log.SentAt = time.Now().Unix()
	}

	query := `
		INSERT INTO email_logs (id, inquiry_id, direction, from_email, to_email,
			subject, body_preview, status, provider_message_id, error_message, sent_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		log.ID,
		nullableString(log.InquiryID),
		log.Direction,
		nullableString(log.FromEmail),
		log.ToEmail,
		nullableString(log.Subject),
		nullableString(log.BodyPreview),
		log.Status,
		nullableString(log.ProviderMessageID),
		nullableString(log.ErrorMessage),
		log.SentAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create email log: %w", err)
	}

	return nil
}

// ListByInquiry retrieves all email logs for an inquiry, newest first
func (r *emailLogRepository) ListByInquiry(inquiryID string) ([]*models.EmailLog, error) {
	if inquiryID == "" {
		return nil, fmt.Errorf("inquiry ID cannot be empty")
	}

	query := `
		SELECT id, inquiry_id, direction, from_email, to_email,
			subject, body_preview, status, provider_message_id, error_message, sent_at
		FROM email_logs
		WHERE inquiry_id = ?
		ORDER BY sent_at DESC
	`

	rows, err := r.db.Query(query, inquiryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list email logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.EmailLog
	for rows.Next() {
		log := &models.EmailLog{}
		var inquiry, from, subject, preview, messageID, errMsg sql.NullString

		err := rows.Scan(
			&log.ID,
			&inquiry,
			&log.Direction,
			&from,
			&log.ToEmail,
			&subject,
			&preview,
			&log.Status,
			&messageID,
			&errMsg,
			&log.SentAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan email log: %w", err)
		}

		log.InquiryID = inquiry.String
		log.FromEmail = from.String
		log.Subject = subject.String
		log.BodyPreview = preview.String
		log.ProviderMessageID = messageID.String
		log.ErrorMessage = errMsg.String
		logs = append(logs, log)
	}

	return logs, rows.Err()
}
