package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/google/uuid"
)

// InquiryRepository defines the interface for inquiry data access
type InquiryRepository interface {
	Create(inquiry *models.Inquiry) error
	GetByID(id string) (*models.Inquiry, error)
	List(includeDeleted bool, limit, offset int) ([]*models.Inquiry, error)
	UpdateStatus(id, status string) error
	SetDeleted(id string, deleted bool) error
	Purge(id string) error
	RecordEmailSent(id string, sentAt int64) error
}

type inquiryRepository struct {
	db *sql.DB
}

// NewInquiryRepository creates a new InquiryRepository
func NewInquiryRepository(db *sql.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

// Create inserts a new inquiry
func (r *inquiryRepository) Create(inquiry *models.Inquiry) error {
	if inquiry == nil {
		return fmt.Errorf("inquiry cannot be nil")
	}

	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}

	now := time.Now().Unix()
	if inquiry.CreatedAt == 0 {
		inquiry.CreatedAt = now
	}
	inquiry.UpdatedAt = now
	if inquiry.Status == "" {
		inquiry.Status = models.InquiryStatusNew
	}

	formJSON, err := json.Marshal(inquiry.Form)
	if err != nil {
		return fmt.Errorf("failed to encode inquiry form: %w", err)
	}

	query := `
		INSERT INTO inquiries (id, form, page, status, is_deleted, last_contacted_at, emails_sent, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		inquiry.ID,
		string(formJSON),
		nullableString(inquiry.Page),
		inquiry.Status,
		inquiry.IsDeleted,
		inquiry.LastContactedAt,
		inquiry.EmailsSent,
		inquiry.CreatedAt,
		inquiry.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", err)
	}

	return nil
}

// GetByID retrieves an inquiry by ID
func (r *inquiryRepository) GetByID(id string) (*models.Inquiry, error) {
	if id == "" {
		return nil, fmt.Errorf("inquiry ID cannot be empty")
	}

	query := `
		SELECT id, form, page, status, is_deleted, last_contacted_at, emails_sent, created_at, updated_at
		FROM inquiries
		WHERE id = ?
	`

	inquiry, err := scanInquiry(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry by ID: %w", err)
	}

	return inquiry, nil
}

// List retrieves inquiries newest first, optionally including soft-deleted
// rows
func (r *inquiryRepository) List(includeDeleted bool, limit, offset int) ([]*models.Inquiry, error) {
	if limit < 0 || offset < 0 {
		return nil, fmt.Errorf("limit and offset cannot be negative")
	}

	query := `
		SELECT id, form, page, status, is_deleted, last_contacted_at, emails_sent, created_at, updated_at
		FROM inquiries
	`
	if !includeDeleted {
		query += " WHERE is_deleted = 0"
	}
	query += " ORDER BY created_at DESC LIMIT ? OFFSET ?"

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*models.Inquiry
	for rows.Next() {
		inquiry, err := scanInquiry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, inquiry)
	}

	return inquiries, rows.Err()
}

// UpdateStatus updates the dashboard status of an inquiry
func (r *inquiryRepository) UpdateStatus(id, status string) error {
	if id == "" {
		return fmt.Errorf("inquiry ID cannot be empty")
	}

	result, err := r.db.Exec(
		"UPDATE inquiries SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update inquiry status: %w", err)
	}

	return requireRowAffected(result, "inquiry")
}

// SetDeleted flips the soft-delete flag (archive / restore)
func (r *inquiryRepository) SetDeleted(id string, deleted bool) error {
	if id == "" {
		return fmt.Errorf("inquiry ID cannot be empty")
	}

	result, err := r.db.Exec(
		"UPDATE inquiries SET is_deleted = ?, updated_at = ? WHERE id = ?",
		deleted, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update inquiry delete flag: %w", err)
	}

	return requireRowAffected(result, "inquiry")
}

// Purge removes an inquiry permanently
func (r *inquiryRepository) Purge(id string) error {
	if id == "" {
		return fmt.Errorf("inquiry ID cannot be empty")
	}

	result, err := r.db.Exec("DELETE FROM inquiries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to purge inquiry: %w", err)
	}

	return requireRowAffected(result, "inquiry")
}

// RecordEmailSent bumps the sent counter and last-contacted timestamp
func (r *inquiryRepository) RecordEmailSent(id string, sentAt int64) error {
	if id == "" {
		return fmt.Errorf("inquiry ID cannot be empty")
	}

	_, err := r.db.Exec(
		"UPDATE inquiries SET emails_sent = emails_sent + 1, last_contacted_at = ?, updated_at = ? WHERE id = ?",
		sentAt, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to record email sent: %w", err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanInquiry(row rowScanner) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{}
	var formJSON string
	var page sql.NullString

	err := row.Scan(
		&inquiry.ID,
		&formJSON,
		&page,
		&inquiry.Status,
		&inquiry.IsDeleted,
		&inquiry.LastContactedAt,
		&inquiry.EmailsSent,
		&inquiry.CreatedAt,
		&inquiry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(formJSON), &inquiry.Form); err != nil {
		return nil, fmt.Errorf("failed to decode inquiry form: %w", err)
	}
	inquiry.Page = page.String

	return inquiry, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func requireRowAffected(result sql.Result, entity string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%s not found", entity)
	}
	return nil
}
