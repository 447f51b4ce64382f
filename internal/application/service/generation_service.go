package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	domainservice "github.com/adstudio-ai/adstudio/internal/domain/service"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// GenerationService orchestrates image, video and storyboard generation
// against external provider services. Job state is the database row; the
// provider is polled on demand and finished assets are copied into media
// storage.
type GenerationService struct {
	genRepo   repository.GenerationRepository
	brandRepo repository.BrandRepository
	storage   domainservice.StorageService
	clients   map[models.GenerationKind]*resty.Client
	download  *resty.Client
	log       *logger.Logger
}

// SubmitGenerationRequest represents a request to start a generation job
type SubmitGenerationRequest struct {
	Kind      models.GenerationKind
	Prompt    string
	BrandID   *uuid.UUID
	ProductID *uuid.UUID
}

// providerSubmitRequest is the payload sent to a generation provider
type providerSubmitRequest struct {
	JobID  string `json:"job_id"`
	Prompt string `json:"prompt"`
	Brand  string `json:"brand,omitempty"`
}

// providerJobResponse is the provider's view of a job
type providerJobResponse struct {
	JobID     string `json:"job_id"`
	Status    string `json:"status"` // "queued", "processing", "succeeded", "failed"
	OutputURL string `json:"output_url,omitempty"`
	Error     string `json:"error,omitempty"`
}

// NewGenerationService creates a new GenerationService instance
func NewGenerationService(
	genRepo repository.GenerationRepository,
	brandRepo repository.BrandRepository,
	storage domainservice.StorageService,
	cfg *config.ProvidersConfig,
) *GenerationService {
	newClient := func(pc config.ProviderConfig) *resty.Client {
		c := resty.New().SetBaseURL(pc.BaseURL).SetTimeout(pc.Timeout)
		if pc.APIKey != "" {
			c.SetHeader("X-API-Key", pc.APIKey)
		}
		return c
	}

	return &GenerationService{
		genRepo:   genRepo,
		brandRepo: brandRepo,
		storage:   storage,
		clients: map[models.GenerationKind]*resty.Client{
			models.GenerationImage:      newClient(cfg.Image),
			models.GenerationVideo:      newClient(cfg.Video),
			models.GenerationStoryboard: newClient(cfg.Storyboard),
		},
		download: resty.New().SetTimeout(cfg.Video.Timeout),
		log:      logger.Get().WithFields(logger.Component("generation-service")),
	}
}

// Submit creates a job record and hands it to the matching provider.
// The record survives a failed provider call with status failed so the
// attempt stays auditable.
func (s *GenerationService) Submit(ctx context.Context, actingUser *models.User, req SubmitGenerationRequest) (*models.GenerationJob, error) {
	client, ok := s.clients[req.Kind]
	if !ok {
		return nil, apperrors.ValidationError("kind", fmt.Sprintf("unsupported generation kind: %s", req.Kind))
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, apperrors.ValidationError("prompt", "prompt is required")
	}

	var brandName string
	if req.BrandID != nil {
		brand, err := s.brandRepo.FindByID(ctx, *req.BrandID)
		if err != nil {
			return nil, err
		}
		if brand.OwnerID != actingUser.ID && !actingUser.IsAdmin() {
			return nil, apperrors.NotFound("brand", apperrors.ErrNotFound)
		}
		brandName = brand.Name
	}

	job := &models.GenerationJob{
		OwnerID:   actingUser.ID,
		BrandID:   req.BrandID,
		ProductID: req.ProductID,
		Kind:      req.Kind,
		Prompt:    req.Prompt,
		Status:    models.JobQueued,
	}
	if err := s.genRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	var result providerJobResponse
	resp, err := client.R().
		SetContext(ctx).
		SetBody(providerSubmitRequest{
			JobID:  job.ID.String(),
			Prompt: job.Prompt,
			Brand:  brandName,
		}).
		SetResult(&result).
		Post("/v1/jobs")

	if err != nil || resp.IsError() {
		if err == nil {
			err = fmt.Errorf("provider returned status %d: %s", resp.StatusCode(), resp.String())
		}
		job.Status = models.JobFailed
		job.FailureReason = err.Error()
		if updateErr := s.genRepo.Update(ctx, job); updateErr != nil {
			s.log.Error("Failed to record provider submission failure",
				logger.String("job_id", job.ID.String()),
				logger.Error(updateErr),
			)
		}
		return nil, apperrors.ProviderError(string(req.Kind), err)
	}

	job.ProviderJobID = result.JobID
	job.Status = models.JobProcessing
	if err := s.genRepo.Update(ctx, job); err != nil {
		return nil, err
	}

	s.log.Info("Generation job submitted",
		logger.String("job_id", job.ID.String()),
		logger.String("kind", string(job.Kind)),
		logger.String("provider_job_id", job.ProviderJobID),
	)
	return job, nil
}

// Get retrieves a job the acting user owns, refreshing non-terminal jobs
// from the provider.
func (s *GenerationService) Get(ctx context.Context, actingUser *models.User, id uuid.UUID) (*models.GenerationJob, error) {
	job, err := s.genRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.OwnerID != actingUser.ID && !actingUser.IsAdmin() {
		return nil, apperrors.NotFound("generation job", apperrors.ErrNotFound)
	}

	if job.IsTerminal() || job.ProviderJobID == "" {
		return job, nil
	}
	return s.refresh(ctx, job)
}

// List retrieves the acting user's jobs, newest first
func (s *GenerationService) List(ctx context.Context, actingUser *models.User, limit, offset int) ([]*models.GenerationJob, error) {
	return s.genRepo.ListByOwner(ctx, actingUser.ID, limit, offset)
}

// refresh polls the provider and folds its status into the job row.
// A finished output is copied into media storage before the job is
// marked succeeded, so AssetKey is always valid once visible.
func (s *GenerationService) refresh(ctx context.Context, job *models.GenerationJob) (*models.GenerationJob, error) {
	client := s.clients[job.Kind]

	var result providerJobResponse
	resp, err := client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/v1/jobs/" + job.ProviderJobID)
	if err != nil || resp.IsError() {
		if err == nil {
			err = fmt.Errorf("provider returned status %d: %s", resp.StatusCode(), resp.String())
		}
		// The provider being briefly unreachable is not a job failure;
		// report the stored state and let the next poll retry.
		s.log.Warn("Provider status poll failed",
			logger.String("job_id", job.ID.String()),
			logger.Error(err),
		)
		return job, nil
	}

	switch result.Status {
	case "succeeded":
		assetKey, err := s.persistOutput(ctx, job, result.OutputURL)
		if err != nil {
			s.log.Error("Failed to persist generation output",
				logger.String("job_id", job.ID.String()),
				logger.Error(err),
			)
			return job, nil
		}
		job.Status = models.JobSucceeded
		job.AssetKey = assetKey
	case "failed":
		job.Status = models.JobFailed
		job.FailureReason = result.Error
	case "processing", "queued":
		job.Status = models.JobProcessing
	}

	if err := s.genRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// persistOutput downloads the provider's output and stores it under the job
func (s *GenerationService) persistOutput(ctx context.Context, job *models.GenerationJob, outputURL string) (string, error) {
	if outputURL == "" {
		return "", fmt.Errorf("provider reported success without an output URL")
	}

	resp, err := s.download.R().SetContext(ctx).Get(outputURL)
	if err != nil {
		return "", fmt.Errorf("failed to download output: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("output download returned status %d", resp.StatusCode())
	}

	key := fmt.Sprintf("generations/%s/output%s", job.ID, outputExt(job.Kind))
	contentType := resp.Header().Get("Content-Type")
	if err := s.storage.Put(ctx, key, bytes.NewReader(resp.Body()), contentType); err != nil {
		return "", fmt.Errorf("failed to store output: %w", err)
	}
	return key, nil
}

func outputExt(kind models.GenerationKind) string {
	switch kind {
	case models.GenerationVideo:
		return ".mp4"
	case models.GenerationStoryboard:
		return ".json"
	default:
		return ".png"
	}
}
