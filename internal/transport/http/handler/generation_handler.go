package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/application/dto"
	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
)

// GenerationHandler handles content generation endpoints
type GenerationHandler struct {
	generationService *service.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(generationService *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// SubmitJob starts a generation job with the configured provider
func (h *GenerationHandler) SubmitJob(c *gin.Context) {
	var req dto.SubmitGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUserFromContext(c)
	job, err := h.generationService.Submit(c.Request.Context(), user, service.SubmitGenerationRequest{
		Kind:      models.GenerationKind(req.Kind),
		Prompt:    req.Prompt,
		BrandID:   req.BrandID,
		ProductID: req.ProductID,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, job)
}

// GetJob returns a job, refreshing its status from the provider when it
// has not reached a terminal state
func (h *GenerationHandler) GetJob(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	job, err := h.generationService.Get(c.Request.Context(), user, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs lists the caller's generation jobs
func (h *GenerationHandler) ListJobs(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	jobs, err := h.generationService.List(c.Request.Context(), user, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}
