package handlers

import (
	"errors"
	"net/http"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/services"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteHandler handles inquiry annotation requests
type NoteHandler struct {
	noteService NoteServiceInterface
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(noteService NoteServiceInterface) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

// Create handles adding a note to an inquiry (POST /api/inquiries/:id/notes)
func (h *NoteHandler) Create(c *gin.Context) {
	var req models.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	note, err := h.noteService.AddNote(c.Param("id"), req.Body)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInquiryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		case errors.Is(err, services.ErrEmptyNoteBody):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create note", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
		}
		return
	}

	c.JSON(http.StatusCreated, note)
}

// List handles listing the notes of an inquiry (GET /api/inquiries/:id/notes)
func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.noteService.ListNotes(c.Param("id"))
	if err != nil {
		logger.Error("Failed to list notes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

// Update handles editing a note (PUT /api/notes/:id)
func (h *NoteHandler) Update(c *gin.Context) {
	var req models.UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.noteService.UpdateNote(c.Param("id"), req.Body); err != nil {
		h.respondNoteError(c, err, "Failed to update note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Delete handles removing a note (DELETE /api/notes/:id)
func (h *NoteHandler) Delete(c *gin.Context) {
	if err := h.noteService.DeleteNote(c.Param("id")); err != nil {
		h.respondNoteError(c, err, "Failed to delete note")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *NoteHandler) respondNoteError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
	case errors.Is(err, services.ErrEmptyNoteBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
