package repository

import (
	"context"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/google/uuid"
)

// BrandRepository defines the interface for brand data access operations
type BrandRepository interface {
	// Create creates a new brand
	Create(ctx context.Context, brand *models.Brand) error

	// FindByID retrieves a brand by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)

	// ListByOwner retrieves all brands owned by a user
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Brand, error)

	// Update updates an existing brand
	Update(ctx context.Context, brand *models.Brand) error

	// Delete removes a brand and its products
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository defines the interface for product data access operations
type ProductRepository interface {
	// Create creates a new product
	Create(ctx context.Context, product *models.Product) error

	// FindByID retrieves a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// ListByBrand retrieves all products belonging to a brand
	ListByBrand(ctx context.Context, brandID uuid.UUID, limit, offset int) ([]*models.Product, error)

	// Update updates an existing product
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product
	Delete(ctx context.Context, id uuid.UUID) error
}
