package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	apperror "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/google/uuid"
)

// GenerationRepoImpl implements the GenerationRepository interface using GORM
type GenerationRepoImpl struct {
	db *gorm.DB
}

// NewGenerationRepository creates a new GenerationRepoImpl instance
func NewGenerationRepository(db *gorm.DB) repository.GenerationRepository {
	return &GenerationRepoImpl{db: db}
}

// Create creates a new generation job record
func (r *GenerationRepoImpl) Create(ctx context.Context, job *models.GenerationJob) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return apperror.DatabaseError("create generation job", err)
	}
	return nil
}

// FindByID retrieves a generation job by its ID
func (r *GenerationRepoImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.GenerationJob, error) {
	var job models.GenerationJob
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("generation job", apperror.ErrNotFound)
		}
		return nil, apperror.DatabaseError("find generation job by id", err)
	}
	return &job, nil
}

// ListByOwner retrieves generation jobs owned by a user, newest first
func (r *GenerationRepoImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.GenerationJob, error) {
	var jobs []*models.GenerationJob
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, apperror.DatabaseError("list generation jobs", err)
	}
	return jobs, nil
}

// Update updates an existing generation job
func (r *GenerationRepoImpl) Update(ctx context.Context, job *models.GenerationJob) error {
	result := r.db.WithContext(ctx).Save(job)
	if result.Error != nil {
		return apperror.DatabaseError("update generation job", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("generation job", apperror.ErrNotFound)
	}
	return nil
}

// ScrapeRepoImpl implements the ScrapeRepository interface using GORM
type ScrapeRepoImpl struct {
	db *gorm.DB
}

// NewScrapeRepository creates a new ScrapeRepoImpl instance
func NewScrapeRepository(db *gorm.DB) repository.ScrapeRepository {
	return &ScrapeRepoImpl{db: db}
}

// Create creates a new scrape job record
func (r *ScrapeRepoImpl) Create(ctx context.Context, job *models.ScrapeJob) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return apperror.DatabaseError("create scrape job", err)
	}
	return nil
}

// FindByID retrieves a scrape job by its ID
func (r *ScrapeRepoImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.ScrapeJob, error) {
	var job models.ScrapeJob
	if err := r.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("scrape job", apperror.ErrNotFound)
		}
		return nil, apperror.DatabaseError("find scrape job by id", err)
	}
	return &job, nil
}

// ListByOwner retrieves scrape jobs owned by a user, newest first
func (r *ScrapeRepoImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.ScrapeJob, error) {
	var jobs []*models.ScrapeJob
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&jobs).Error; err != nil {
		return nil, apperror.DatabaseError("list scrape jobs", err)
	}
	return jobs, nil
}

// Update updates an existing scrape job
func (r *ScrapeRepoImpl) Update(ctx context.Context, job *models.ScrapeJob) error {
	result := r.db.WithContext(ctx).Save(job)
	if result.Error != nil {
		return apperror.DatabaseError("update scrape job", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("scrape job", apperror.ErrNotFound)
	}
	return nil
}
