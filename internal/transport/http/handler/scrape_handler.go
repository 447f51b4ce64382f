package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/application/dto"
	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
)

// ScrapeHandler handles social media scraping endpoints
type ScrapeHandler struct {
	scrapeService *service.ScrapeService
}

// NewScrapeHandler creates a new ScrapeHandler instance
func NewScrapeHandler(scrapeService *service.ScrapeService) *ScrapeHandler {
	return &ScrapeHandler{scrapeService: scrapeService}
}

// SubmitJob starts a scrape of a social media URL. The platform is
// derived from the URL host.
func (h *ScrapeHandler) SubmitJob(c *gin.Context) {
	var req dto.SubmitScrapeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUserFromContext(c)
	job, err := h.scrapeService.Submit(c.Request.Context(), user, req.URL)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, job)
}

// GetJob returns a scrape job, polling the provider when still running
func (h *ScrapeHandler) GetJob(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	job, err := h.scrapeService.Get(c.Request.Context(), user, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs lists the caller's scrape jobs
func (h *ScrapeHandler) ListJobs(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	jobs, err := h.scrapeService.List(c.Request.Context(), user, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"count": len(jobs),
	})
}
