package repository

import (
	"context"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/google/uuid"
)

// GenerationRepository defines the interface for generation job persistence
type GenerationRepository interface {
	// Create creates a new generation job record
	Create(ctx context.Context, job *models.GenerationJob) error

	// FindByID retrieves a generation job by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error)

	// ListByOwner retrieves generation jobs owned by a user, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.GenerationJob, error)

	// Update updates an existing generation job
	Update(ctx context.Context, job *models.GenerationJob) error
}

// ScrapeRepository defines the interface for scrape job persistence
type ScrapeRepository interface {
	// Create creates a new scrape job record
	Create(ctx context.Context, job *models.ScrapeJob) error

	// FindByID retrieves a scrape job by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.ScrapeJob, error)

	// ListByOwner retrieves scrape jobs owned by a user, newest first
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.ScrapeJob, error)

	// Update updates an existing scrape job
	Update(ctx context.Context, job *models.ScrapeJob) error
}
