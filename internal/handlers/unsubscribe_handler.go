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

// UnsubscribeHandler handles unsubscribe-by-token requests from email links
type UnsubscribeHandler struct {
	prefsService PreferencesServiceInterface
}

// NewUnsubscribeHandler creates a new unsubscribe handler
func NewUnsubscribeHandler(prefsService PreferencesServiceInterface) *UnsubscribeHandler {
	return &UnsubscribeHandler{prefsService: prefsService}
}

// Unsubscribe handles POST /api/unsubscribe
func (h *UnsubscribeHandler) Unsubscribe(c *gin.Context) {
	var req models.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}

	prefs, err := h.prefsService.Unsubscribe(req.Token, req.Reason)
	if err != nil {
		if errors.Is(err, services.ErrInvalidUnsubscribeToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired unsubscribe link"})
			return
		}
		logger.Error("Failed to unsubscribe", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsubscribe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "email": prefs.Email})
}
