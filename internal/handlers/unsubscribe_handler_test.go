package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPreferencesService is a mock implementation of PreferencesServiceInterface
type MockPreferencesService struct {
	mock.Mock
}

func (m *MockPreferencesService) Unsubscribe(token, reason string) (*models.EmailPreferences, error) {
	args := m.Called(token, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailPreferences), args.Error(1)
}

func setupUnsubscribeRouter(prefsService *MockPreferencesService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUnsubscribeHandler(prefsService)

	router := gin.New()
	router.POST("/api/unsubscribe", handler.Unsubscribe)
	return router
}

func TestUnsubscribeHandler_Success(t *testing.T) {
	prefsService := new(MockPreferencesService)
	router := setupUnsubscribeRouter(prefsService)

	prefs := &models.EmailPreferences{Email: "jane@example.com", UnsubscribedAll: true}
	prefsService.On("Unsubscribe", "tok-1", "too many emails").Return(prefs, nil)

	w := performJSON(router, http.MethodPost, "/api/unsubscribe", map[string]interface{}{
		"token":  "tok-1",
		"reason": "too many emails",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.Equal(t, "jane@example.com", resp["email"])
	prefsService.AssertExpectations(t)
}

func TestUnsubscribeHandler_MissingToken(t *testing.T) {
	prefsService := new(MockPreferencesService)
	router := setupUnsubscribeRouter(prefsService)

	w := performJSON(router, http.MethodPost, "/api/unsubscribe", map[string]interface{}{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing token")
	prefsService.AssertNotCalled(t, "Unsubscribe", mock.Anything, mock.Anything)
}

func TestUnsubscribeHandler_InvalidToken(t *testing.T) {
	prefsService := new(MockPreferencesService)
	router := setupUnsubscribeRouter(prefsService)

	prefsService.On("Unsubscribe", "bad", "").Return(nil, services.ErrInvalidUnsubscribeToken)

	w := performJSON(router, http.MethodPost, "/api/unsubscribe", map[string]interface{}{
		"token": "bad",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired unsubscribe link")
}

func TestUnsubscribeHandler_InternalError(t *testing.T) {
	prefsService := new(MockPreferencesService)
	router := setupUnsubscribeRouter(prefsService)

	prefsService.On("Unsubscribe", "tok-1", "").Return(nil, errors.New("db down"))

	w := performJSON(router, http.MethodPost, "/api/unsubscribe", map[string]interface{}{
		"token": "tok-1",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
