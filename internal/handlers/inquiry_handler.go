package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/FallenDelta563/EMOR-OS-V1/internal/email"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/models"
	"github.com/FallenDelta563/EMOR-OS-V1/internal/services"
	"github.com/FallenDelta563/EMOR-OS-V1/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InquiryHandler handles the public form intake and the dashboard inquiry
// endpoints
type InquiryHandler struct {
	inquiryService InquiryServiceInterface
	autoReply      AutoReplyServiceInterface
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiryService InquiryServiceInterface, autoReply AutoReplyServiceInterface) *InquiryHandler {
	return &InquiryHandler{
		inquiryService: inquiryService,
		autoReply:      autoReply,
	}
}

// Create handles the public form intake (POST /api/inquiry).
// The submitter always gets a success response once the inquiry is saved;
// the auto-reply runs best-effort and its failures never reach the form.
func (h *InquiryHandler) Create(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	payload, page := splitFormPayload(raw)

	inquiry, err := h.inquiryService.CreateFromForm(payload, page)
	if err != nil {
		if errors.Is(err, services.ErrMissingFormEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email in form payload"})
			return
		}
		logger.Error("Failed to save inquiry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save inquiry"})
		return
	}

	// Best-effort: the form submitter still gets a success response when
	// the auto-reply fails
	if err := h.autoReply.SendAutoReply(inquiry); err != nil {
		logger.Error("Auto-reply failed",
			zap.String("inquiry_id", inquiry.ID),
			zap.Error(err),
		)
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "inquiryId": inquiry.ID})
}

// List handles listing inquiries (GET /api/inquiries)
func (h *InquiryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	includeDeleted := c.Query("include_deleted") == "true"

	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	inquiries, err := h.inquiryService.ListInquiries(includeDeleted, limit, offset)
	if err != nil {
		logger.Error("Failed to list inquiries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list inquiries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"inquiries": inquiries,
		"limit":     limit,
		"offset":    offset,
	})
}

// Get handles retrieving one inquiry (GET /api/inquiries/:id)
func (h *InquiryHandler) Get(c *gin.Context) {
	inquiry, err := h.inquiryService.GetInquiry(c.Param("id"))
	if err != nil {
		h.respondInquiryError(c, err, "Failed to retrieve inquiry")
		return
	}

	c.JSON(http.StatusOK, inquiry)
}

// Update handles a status change (PATCH /api/inquiries/:id)
func (h *InquiryHandler) Update(c *gin.Context) {
	var req models.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status"})
		return
	}

	if err := h.inquiryService.UpdateStatus(c.Param("id"), *req.Status); err != nil {
		h.respondInquiryError(c, err, "Failed to update inquiry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Archive handles soft-deleting an inquiry (POST /api/inquiries/:id/archive)
func (h *InquiryHandler) Archive(c *gin.Context) {
	if err := h.inquiryService.Archive(c.Param("id")); err != nil {
		h.respondInquiryError(c, err, "Failed to archive inquiry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Restore handles restoring a soft-deleted inquiry (POST /api/inquiries/:id/restore)
func (h *InquiryHandler) Restore(c *gin.Context) {
	if err := h.inquiryService.Restore(c.Param("id")); err != nil {
		h.respondInquiryError(c, err, "Failed to restore inquiry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Purge handles permanently deleting an inquiry (DELETE /api/inquiries/:id)
func (h *InquiryHandler) Purge(c *gin.Context) {
	if err := h.inquiryService.Purge(c.Param("id")); err != nil {
		h.respondInquiryError(c, err, "Failed to delete inquiry")
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Bulk handles a bulk archive/restore/purge action (POST /api/inquiries/bulk)
func (h *InquiryHandler) Bulk(c *gin.Context) {
	var req models.BulkInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	processed, err := h.inquiryService.BulkApply(req.Action, req.IDs)
	if err != nil {
		if errors.Is(err, services.ErrInvalidBulkAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Bulk inquiry action failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Bulk action failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "processed": processed})
}

// Preview composes a suggested reply draft (POST /api/inquiries/:id/preview).
// The optional request body pins a template variant; otherwise the selector
// picks one. Nothing is sent; the dashboard shows the draft for editing.
func (h *InquiryHandler) Preview(c *gin.Context) {
	var req models.PreviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	variant, draft, err := h.inquiryService.SuggestReply(c.Param("id"), email.TemplateType(req.Template))
	if err != nil {
		if errors.Is(err, services.ErrUnknownTemplateVariant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
			return
		}
		h.respondInquiryError(c, err, "Failed to compose reply")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template": variant,
		"subject":  draft.Subject,
		"body":     draft.Body,
	})
}

func (h *InquiryHandler) respondInquiryError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrInquiryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Inquiry not found"})
		return
	}
	logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// splitFormPayload accepts the loose shapes public forms submit: the form
// object may live under "form" or "data" or be the body itself, and the
// source page under "page" or "source_page" at either level.
func splitFormPayload(raw map[string]interface{}) (map[string]interface{}, string) {
	payload := raw
	if nested, ok := raw["form"].(map[string]interface{}); ok {
		payload = nested
	} else if nested, ok := raw["data"].(map[string]interface{}); ok {
		payload = nested
	}

	page := ""
	for _, source := range []map[string]interface{}{raw, payload} {
		for _, key := range []string{"page", "source_page"} {
			if s, ok := source[key].(string); ok && s != "" && page == "" {
				page = s
			}
		}
	}

	return payload, page
}
