package services

import (
	"testing"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/db"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNoteService(t *testing.T) (*models.Inquiry, *NoteService) {
	database := db.SetupTestDB(t)
	inquiries := db.NewInquiryRepository(database)
	notes := db.NewNoteRepository(database)

	inquiry := models.NewInquiry(models.InquiryForm{Email: "jane@example.com"}, "")
	require.NoError(t, inquiries.Create(inquiry))

	return inquiry, NewNoteService(notes, inquiries)
}

func TestNoteService_AddNote(t *testing.T) {
	inquiry, service := setupNoteService(t)

	note, err := service.AddNote(inquiry.ID, "called, left voicemail")
	require.NoError(t, err)
	assert.NotEmpty(t, note.ID)
	assert.Equal(t, inquiry.ID, note.InquiryID)
	assert.Equal(t, "called, left voicemail", note.Body)
}

func TestNoteService_AddNoteValidation(t *testing.T) {
	inquiry, service := setupNoteService(t)

	_, err := service.AddNote(inquiry.ID, "   ")
	assert.ErrorIs(t, err, ErrEmptyNoteBody)

	_, err = service.AddNote("missing", "body")
	assert.ErrorIs(t, err, ErrInquiryNotFound)
}

func TestNoteService_ListNotes(t *testing.T) {
	inquiry, service := setupNoteService(t)

	_, err := service.AddNote(inquiry.ID, "first")
	require.NoError(t, err)
	_, err = service.AddNote(inquiry.ID, "second")
	require.NoError(t, err)

	notes, err := service.ListNotes(inquiry.ID)
	require.NoError(t, err)
	assert.Len(t, notes, 2)
}

func TestNoteService_UpdateAndDelete(t *testing.T) {
	inquiry, service := setupNoteService(t)

	note, err := service.AddNote(inquiry.ID, "original")
	require.NoError(t, err)

	require.NoError(t, service.UpdateNote(note.ID, "edited"))

	notes, err := service.ListNotes(inquiry.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "edited", notes[0].Body)

	require.NoError(t, service.DeleteNote(note.ID))

	notes, err = service.ListNotes(inquiry.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	assert.ErrorIs(t, service.UpdateNote("missing", "body"), ErrNoteNotFound)
	assert.ErrorIs(t, service.DeleteNote("missing"), ErrNoteNotFound)
}
