package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// ScrapeService orchestrates social-media scraping through the external
// scraper provider.
type ScrapeService struct {
	scrapeRepo repository.ScrapeRepository
	client     *resty.Client
	log        *logger.Logger
}

// scraperSubmitRequest is the payload sent to the scraper provider
type scraperSubmitRequest struct {
	JobID    string `json:"job_id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// scraperJobResponse is the provider's view of a scrape job
type scraperJobResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewScrapeService creates a new ScrapeService instance
func NewScrapeService(scrapeRepo repository.ScrapeRepository, cfg *config.ProviderConfig) *ScrapeService {
	client := resty.New().SetBaseURL(cfg.BaseURL).SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetHeader("X-API-Key", cfg.APIKey)
	}

	return &ScrapeService{
		scrapeRepo: scrapeRepo,
		client:     client,
		log:        logger.Get().WithFields(logger.Component("scrape-service")),
	}
}

// ParsePlatform determines the social platform from a source URL
func ParsePlatform(sourceURL string) (models.ScrapePlatform, error) {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Host == "" {
		return "", apperrors.ValidationError("url", "invalid source URL")
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	switch {
	case host == "instagram.com" || strings.HasSuffix(host, ".instagram.com"):
		return models.PlatformInstagram, nil
	case host == "tiktok.com" || strings.HasSuffix(host, ".tiktok.com"):
		return models.PlatformTikTok, nil
	case host == "x.com" || host == "twitter.com":
		return models.PlatformX, nil
	case host == "youtube.com" || strings.HasSuffix(host, ".youtube.com") || host == "youtu.be":
		return models.PlatformYouTube, nil
	default:
		return "", apperrors.ValidationError("url", fmt.Sprintf("unsupported platform: %s", host))
	}
}

// Submit creates a scrape job record and hands it to the provider
func (s *ScrapeService) Submit(ctx context.Context, actingUser *models.User, sourceURL string) (*models.ScrapeJob, error) {
	platform, err := ParsePlatform(sourceURL)
	if err != nil {
		return nil, err
	}

	job := &models.ScrapeJob{
		OwnerID:   actingUser.ID,
		Platform:  platform,
		SourceURL: sourceURL,
		Status:    models.JobQueued,
	}
	if err := s.scrapeRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	var result scraperJobResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(scraperSubmitRequest{
			JobID:    job.ID.String(),
			Platform: string(platform),
			URL:      sourceURL,
		}).
		SetResult(&result).
		Post("/v1/scrapes")

	if err != nil || resp.IsError() {
		if err == nil {
			err = fmt.Errorf("provider returned status %d: %s", resp.StatusCode(), resp.String())
		}
		job.Status = models.JobFailed
		job.FailureReason = err.Error()
		if updateErr := s.scrapeRepo.Update(ctx, job); updateErr != nil {
			s.log.Error("Failed to record scraper submission failure",
				logger.String("job_id", job.ID.String()),
				logger.Error(updateErr),
			)
		}
		return nil, apperrors.ProviderError("scraper", err)
	}

	job.ProviderJobID = result.JobID
	job.Status = models.JobProcessing
	if err := s.scrapeRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info("Scrape job submitted",
		logger.String("job_id", job.ID.String()),
		logger.String("platform", string(platform)),
	)
	return job, nil
}

// Get retrieves a scrape job the acting user owns, refreshing non-terminal
// jobs from the provider.
func (s *ScrapeService) Get(ctx context.Context, actingUser *models.User, id uuid.UUID) (*models.ScrapeJob, error) {
	job, err := s.scrapeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != actingUser.ID && !actingUser.IsAdmin() {
		return nil, apperrors.NotFound("scrape job", apperrors.ErrNotFound)
	}

	if job.Status == models.JobSucceeded || job.Status == models.JobFailed || job.ProviderJobID == "" {
		return job, nil
	}

	var result scraperJobResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/v1/scrapes/" + job.ProviderJobID)
	if err != nil || resp.IsError() {
		if err == nil {
			err = fmt.Errorf("provider returned status %d: %s", resp.StatusCode(), resp.String())
		}
		s.log.Warn("Scraper status poll failed",
			logger.String("job_id", job.ID.String()),
			logger.Error(err),
		)
		return job, nil
	}

	switch result.Status {
	case "succeeded":
		job.Status = models.JobSucceeded
		job.Result = result.Result
	case "failed":
		job.Status = models.JobFailed
		job.FailureReason = result.Error
	default:
		job.Status = models.JobProcessing
	}

	if err := s.scrapeRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// List retrieves the acting user's scrape jobs, newest first
func (s *ScrapeService) List(ctx context.Context, actingUser *models.User, limit, offset int) ([]*models.ScrapeJob, error) {
	return s.scrapeRepo.ListByOwner(ctx, actingUser.ID, limit, offset)
}
