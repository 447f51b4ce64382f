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

// ProductRepoImpl implements the ProductRepository interface using GORM
type ProductRepoImpl struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepoImpl instance
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &ProductRepoImpl{db: db}
}

// Create creates a new product
func (r *ProductRepoImpl) Create(ctx context.Context, product *models.Product) error {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return apperror.DatabaseError("create product", err)
	}
	return nil
}

// FindByID retrieves a product by its ID
func (r *ProductRepoImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("product", apperror.ErrNotFound)
		}
		return nil, apperror.DatabaseError("find product by id", err)
	}
	return &product, nil
}

// ListByBrand retrieves all products belonging to a brand
func (r *ProductRepoImpl) ListByBrand(ctx context.Context, brandID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	var products []*models.Product
	query := r.db.WithContext(ctx).Where("brand_id = ?", brandID).Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, apperror.DatabaseError("list products", err)
	}
	return products, nil
}

// Update updates an existing product
func (r *ProductRepoImpl) Update(ctx context.Context, product *models.Product) error {
	result := r.db.WithContext(ctx).Save(product)
	if result.Error != nil {
		return apperror.DatabaseError("update product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product", apperror.ErrNotFound)
	}
	return nil
}

// Delete removes a product
func (r *ProductRepoImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return apperror.DatabaseError("delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("product", apperror.ErrNotFound)
	}
	return nil
}
