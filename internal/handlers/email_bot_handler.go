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

// EmailBotHandler handles the template-editor endpoints
type EmailBotHandler struct {
	botService   BotConfigServiceInterface
	emailService EmailServiceInterface
}

// NewEmailBotHandler creates a new email bot handler
func NewEmailBotHandler(botService BotConfigServiceInterface, emailService EmailServiceInterface) *EmailBotHandler {
	return &EmailBotHandler{
		botService:   botService,
		emailService: emailService,
	}
}

// List handles listing all bot configs (GET /api/email-bots)
func (h *EmailBotHandler) List(c *gin.Context) {
	bots, err := h.botService.ListConfigs()
	if err != nil {
		logger.Error("Failed to list bot configs", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bot configs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bots": bots})
}

// Update handles editing a bot config (POST /api/email-bots)
func (h *EmailBotHandler) Update(c *gin.Context) {
	var req models.UpdateBotConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	if req.Key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing bot key"})
		return
	}

	bot, err := h.botService.UpdateConfig(&req)
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
			return
		}
		logger.Error("Failed to update bot config", zap.String("key", req.Key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update bot config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"bot": bot})
}

// SendTest handles sending a rendered test email for a template key
// (POST /api/email-bots/test). Unlike the automated auto-reply, a missing
// or disabled template is an explicit error here.
func (h *EmailBotHandler) SendTest(c *gin.Context) {
	var req models.TestSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	messageID, err := h.emailService.SendTest(req.Key, req.ToEmail)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingTestFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing key or toEmail"})
		case errors.Is(err, services.ErrTemplateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		case errors.Is(err, services.ErrTemplateDisabled):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Template is disabled"})
		default:
			logger.Error("Failed to send test email",
				zap.String("key", req.Key),
				zap.Error(err),
			)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send test email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "messageId": messageID})
}
