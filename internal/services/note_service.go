package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
)

var (
	// ErrNoteNotFound indicates the note does not exist
	ErrNoteNotFound = errors.New("note not found")

	// ErrEmptyNoteBody indicates an empty note body
	ErrEmptyNoteBody = errors.New("note body cannot be empty")
)

// NoteService provides business logic for inquiry annotations
type NoteService struct {
	notes     db.NoteRepository
	inquiries db.InquiryRepository
}

// NewNoteService creates a new NoteService instance
func NewNoteService(notes db.NoteRepository, inquiries db.InquiryRepository) *NoteService {
	return &NoteService{
		notes:     notes,
		inquiries: inquiries,
	}
}

// AddNote attaches a note to an inquiry
func (s *NoteService) AddNote(inquiryID, body string) (*models.Note, error) {
	if inquiryID == "" {
		return nil, errors.New("inquiry ID cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyNoteBody
	}

	inquiry, err := s.inquiries.GetByID(inquiryID)
	if err != nil {
		return nil, fmt.Errorf("failed to check inquiry: %w", err)
	}
	if inquiry == nil {
		return nil, ErrInquiryNotFound
	}

	note := models.NewNote(inquiryID, body)
	if err := s.notes.Create(note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return note, nil
}

// ListNotes retrieves the notes of an inquiry, newest first
func (s *NoteService) ListNotes(inquiryID string) ([]*models.Note, error) {
	if inquiryID == "" {
		return nil, errors.New("inquiry ID cannot be empty")
	}
	return s.notes.ListByInquiry(inquiryID)
}

// UpdateNote edits a note body
func (s *NoteService) UpdateNote(id, body string) error {
	if id == "" {
		return errors.New("note ID cannot be empty")
	}
	if strings.TrimSpace(body) == "" {
		return ErrEmptyNoteBody
	}

	if err := s.notes.Update(id, body); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}

// DeleteNote removes a note
func (s *NoteService) DeleteNote(id string) error {
	if id == "" {
		return errors.New("note ID cannot be empty")
	}

	if err := s.notes.Delete(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			return ErrNoteNotFound
		}
		return err
	}
	return nil
}
