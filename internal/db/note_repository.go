package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/google/uuid"
)

// NoteRepository defines the interface for lead note data access
type NoteRepository interface {
	Create(note *models.Note) error
	GetByID(id string) (*models.Note, error)
	ListByInquiry(inquiryID string) ([]*models.Note, error)
	Update(id, body string) error
	Delete(id string) error
}

type noteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts a new note
func (r *noteRepository) Create(note *models.Note) error {
	if note == nil {
		return fmt.Errorf("note cannot be nil")
	}
	if note.InquiryID == "" {
		return fmt.Errorf("note inquiry ID cannot be empty")
	}

	if note.ID == "" {
		note.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if note.CreatedAt == 0 {
		note.CreatedAt = now
	}
	note.UpdatedAt = now

	_, err := r.db.Exec(
		"INSERT INTO lead_notes (id, inquiry_id, body, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		note.ID, note.InquiryID, note.Body, note.CreatedAt, note.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	return nil
}

// GetByID retrieves a note by ID
func (r *noteRepository) GetByID(id string) (*models.Note, error) {
	if id == "" {
		return nil, fmt.Errorf("note ID cannot be empty")
	}

	note := &models.Note{}
	err := r.db.QueryRow(
		"SELECT id, inquiry_id, body, created_at, updated_at FROM lead_notes WHERE id = ?",
		id,
	).Scan(&note.ID, &note.InquiryID, &note.Body, &note.CreatedAt, &note.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note by ID: %w", err)
	}

	return note, nil
}

// ListByInquiry retrieves all notes for an inquiry, newest first
func (r *noteRepository) ListByInquiry(inquiryID string) ([]*models.Note, error) {
	if inquiryID == "" {
		return nil, fmt.Errorf("inquiry ID cannot be empty")
	}

	rows, err := r.db.Query(
		"SELECT id, inquiry_id, body, created_at, updated_at FROM lead_notes WHERE inquiry_id = ? ORDER BY created_at DESC",
		inquiryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.Note
	for rows.Next() {
		note := &models.Note{}
		if err := rows.Scan(&note.ID, &note.InquiryID, &note.Body, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// Update edits the body of a note
func (r *noteRepository) Update(id, body string) error {
	if id == "" {
		return fmt.Errorf("note ID cannot be empty")
	}

	result, err := r.db.Exec(
		"UPDATE lead_notes SET body = ?, updated_at = ? WHERE id = ?",
		body, time.Now().Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	return requireRowAffected(result, "note")
}

// Delete removes a note
func (r *noteRepository) Delete(id string) error {
	if id == "" {
		return fmt.Errorf("note ID cannot be empty")
	}

	result, err := r.db.Exec("DELETE FROM lead_notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	return requireRowAffected(result, "note")
}
