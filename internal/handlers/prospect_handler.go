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

// ProspectHandler handles the discovered-lead endpoints
type ProspectHandler struct {
	prospectService ProspectServiceInterface
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(prospectService ProspectServiceInterface) *ProspectHandler {
	return &ProspectHandler{prospectService: prospectService}
}

// List handles listing prospects (GET /api/prospects)
func (h *ProspectHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	sort := c.DefaultQuery("sort", "newest")

	if limit < 1 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	prospects, err := h.prospectService.ListProspects(sort, limit, offset)
	if err != nil {
		logger.Error("Failed to list prospects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list prospects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prospects": prospects,
		"limit":     limit,
		"offset":    offset,
	})
}

// Get handles retrieving one prospect (GET /api/prospects/:id)
func (h *ProspectHandler) Get(c *gin.Context) {
	prospect, err := h.prospectService.GetProspect(c.Param("id"))
	if err != nil {
		h.respondProspectError(c, err, "Failed to retrieve prospect")
		return
	}

	c.JSON(http.StatusOK, prospect)
}

// Preview composes a cold-outreach draft (POST /api/prospects/:id/preview).
// The optional request body pins a template variant; otherwise the automation
// score picks one. Nothing is sent; the dashboard shows the draft for editing.
func (h *ProspectHandler) Preview(c *gin.Context) {
	var req models.PreviewRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
			return
		}
	}

	variant, draft, err := h.prospectService.SuggestOutreach(c.Param("id"), email.TemplateType(req.Template))
	if err != nil {
		if errors.Is(err, services.ErrUnknownTemplateVariant) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown template"})
			return
		}
		h.respondProspectError(c, err, "Failed to compose outreach")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"template": variant,
		"subject":  draft.Subject,
		"body":     draft.Body,
	})
}

func (h *ProspectHandler) respondProspectError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, services.ErrProspectNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prospect not found"})
		return
	}
	logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
