package db

import (
	"testing"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRepository_CreateAndGet(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewPreferencesRepository(database)

	prefs := models.NewEmailPreferences("jane@example.com", "tok-1")
	require.NoError(t, repo.Create(prefs))

	byEmail, err := repo.GetByEmail("jane@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, prefs.ID, byEmail.ID)
	assert.True(t, byEmail.AllowNewsletter)
	assert.True(t, byEmail.AllowOutreach)
	assert.False(t, byEmail.UnsubscribedAll)

	byToken, err := repo.GetByToken("tok-1")
	require.NoError(t, err)
	require.NotNil(t, byToken)
	assert.Equal(t, prefs.ID, byToken.ID)
}

func TestPreferencesRepository_DuplicateEmailRejected(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewPreferencesRepository(database)

	require.NoError(t, repo.Create(models.NewEmailPreferences("jane@example.com", "tok-1")))

	err := repo.Create(models.NewEmailPreferences("jane@example.com", "tok-2"))
	assert.Error(t, err)
}

func TestPreferencesRepository_GetMissing(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewPreferencesRepository(database)

	prefs, err := repo.GetByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, prefs)

	prefs, err = repo.GetByToken("no-such-token")
	require.NoError(t, err)
	assert.Nil(t, prefs)
}

func TestPreferencesRepository_UnsubscribeAll(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewPreferencesRepository(database)

	require.NoError(t, repo.Create(models.NewEmailPreferences("jane@example.com", "tok-1")))

	updated, err := repo.UnsubscribeAll("tok-1", "too many emails")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.UnsubscribedAll)
	assert.False(t, updated.AllowNewsletter)
	assert.False(t, updated.AllowOutreach)
	assert.Equal(t, "too many emails", updated.UnsubscribedReason)
	require.NotNil(t, updated.UnsubscribedAt)

	// Repeating with the same token stays a success
	again, err := repo.UnsubscribeAll("tok-1", "")
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.True(t, again.UnsubscribedAll)
}

func TestPreferencesRepository_UnsubscribeAllUnknownToken(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewPreferencesRepository(database)

	updated, err := repo.UnsubscribeAll("no-such-token", "")
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPreferencesRepository_SetToken(t *testing.T) {
	database := SetupTestDB(t)
	repo := NewPreferencesRepository(database)

	prefs := models.NewEmailPreferences("jane@example.com", "tok-1")
	require.NoError(t, repo.Create(prefs))

	require.NoError(t, repo.SetToken(prefs.ID, "tok-2"))

	got, err := repo.GetByToken("tok-2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, prefs.ID, got.ID)

	assert.Error(t, repo.SetToken("missing", "tok-3"))
}
