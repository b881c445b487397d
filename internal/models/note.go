package models

import (
	"time"

	"github.com/google/uuid"
)

// Note is a free-text annotation attached to one inquiry
type Note struct {
	ID        string `json:"id"`         // UUID
	InquiryID string `json:"inquiry_id"` // Parent inquiry
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"` // Unix timestamp
	UpdatedAt int64  `json:"updated_at"` // Unix timestamp
}

// CreateNoteRequest represents the request body for adding a note
type CreateNoteRequest struct {
	Body string `json:"body" binding:"required"`
}

// UpdateNoteRequest represents the request body for editing a note
type UpdateNoteRequest struct {
	Body string `json:"body" binding:"required"`
}

// NewNote creates a new Note with generated UUID and timestamps
func NewNote(inquiryID, body string) *Note {
	now := time.Now().Unix()
	return &Note{
		ID:        uuid.New().String(),
		InquiryID: inquiryID,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
