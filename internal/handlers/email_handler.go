package handlers

import (
	"errors"
	"net/http"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/services"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EmailHandler handles manual sends and the per-inquiry email history
type EmailHandler struct {
	emailService EmailServiceInterface
}

// NewEmailHandler creates a new email handler
func NewEmailHandler(emailService EmailServiceInterface) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// Send handles a hand-edited dashboard email (POST /api/send-email)
func (h *EmailHandler) Send(c *gin.Context) {
	var req services.ManualSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	messageID, err := h.emailService.SendManual(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingSendFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing to / subject / message"})
		case errors.Is(err, services.ErrUnknownAccount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown email account"})
		default:
			logger.Error("Failed to send email",
				zap.String("to", req.To),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "messageId": messageID})
}

// History handles listing the email log of one inquiry
// (GET /api/inquiries/:id/emails)
func (h *EmailHandler) History(c *gin.Context) {
	logs, err := h.emailService.ListByInquiry(c.Param("id"))
	if err != nil {
		logger.Error("Failed to list email logs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list email logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"emails": logs})
}

// Accounts handles listing the configured outbound accounts
// (GET /api/accounts). Credentials are never included.
func (h *EmailHandler) Accounts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"accounts": h.emailService.Accounts()})
}
