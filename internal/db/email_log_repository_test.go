package db

import (
	"testing"
	"time"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailLogRepository_CreateAndList(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewEmailLogRepository(database)

	now := time.Now().Unix()

	first := models.NewEmailLog("inq-1", models.DirectionOutbound, "from@example.com", "to@example.com", "First")
	first.Status = models.EmailStatusSent
	first.BodyPreview = "hello"
	first.ProviderMessageID = "<msg-1@example.com>"
	first.SentAt = now - 60
	require.NoError(t, repo.Create(first))

	second := models.NewEmailLog("inq-1", models.DirectionOutbound, "from@example.com", "to@example.com", "Second")
	second.Status = models.EmailStatusFailed
	second.ErrorMessage = "connection refused"
	second.SentAt = now
	require.NoError(t, repo.Create(second))

	other := models.NewEmailLog("inq-2", models.DirectionOutbound, "from@example.com", "to@example.com", "Other")
	other.Status = models.EmailStatusSent
	require.NoError(t, repo.Create(other))

	logs, err := repo.ListByInquiry("inq-1")
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Newest first
	assert.Equal(t, "Second", logs[0].Subject)
	assert.Equal(t, models.EmailStatusFailed, logs[0].Status)
	assert.Equal(t, "connection refused", logs[0].ErrorMessage)
	assert.Equal(t, "First", logs[1].Subject)
	assert.Equal(t, "<msg-1@example.com>", logs[1].ProviderMessageID)
	assert.Equal(t, "hello", logs[1].BodyPreview)
}

func TestEmailLogRepository_CreateValidation(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewEmailLogRepository(database)

	assert.Error(t, repo.Create(nil))

	log := models.NewEmailLog("inq-1", models.DirectionOutbound, "from@example.com", "", "no recipient")
	assert.Error(t, repo.Create(log))
}

func TestEmailLogRepository_ListEmpty(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewEmailLogRepository(database)

	logs, err := repo.ListByInquiry("inq-none")
	require.NoError(t, err)
	assert.Empty(t, logs)
}
