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

// BrandRepoImpl implements the BrandRepository interface using GORM
type BrandRepoImpl struct {
	db *gorm.DB
}

// NewBrandRepository creates a new BrandRepoImpl instance
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &BrandRepoImpl{db: db}
}

// Create creates a new brand
func (r *BrandRepoImpl) Create(ctx context.Context, brand *models.Brand) error {
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("brand already exists", apperror.ErrBrandExists)
		}
		return apperror.DatabaseError("create brand", err)
	}
	return nil
}

// FindByID retrieves a brand by its ID
func (r *BrandRepoImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.WithContext(ctx).Preload("Products").First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("brand", apperror.ErrNotFound)
		}
		return nil, apperror.DatabaseError("find brand by id", err)
	}
	return &brand, nil
}

// ListByOwner retrieves all brands owned by a user
func (r *BrandRepoImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Brand, error) {
	var brands []*models.Brand
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&brands).Error; err != nil {
		return nil, apperror.DatabaseError("list brands", err)
	}
	return brands, nil
}

// Update updates an existing brand
func (r *BrandRepoImpl) Update(ctx context.Context, brand *models.Brand) error {
	result := r.db.WithContext(ctx).Save(brand)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return apperror.Conflict("brand name already taken", apperror.ErrBrandExists)
		}
		return apperror.DatabaseError("update brand", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("brand", apperror.ErrNotFound)
	}
	return nil
}

// Delete removes a brand and cascades to its products
func (r *BrandRepoImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Select("Products").Delete(&models.Brand{ID: id})
	if result.Error != nil {
		return apperror.DatabaseError("delete brand", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("brand", apperror.ErrNotFound)
	}
	return nil
}
