package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/internal/domain/repository"
	domainservice "github.com/adstudio-ai/adstudio/internal/domain/service"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// ProductService handles product catalog business logic. Access to a
// product is governed by ownership of its brand.
type ProductService struct {
	productRepo repository.ProductRepository
	brandRepo   repository.BrandRepository
	storage     domainservice.StorageService
	log         *logger.Logger
}

// NewProductService creates a new ProductService instance
func NewProductService(
	productRepo repository.ProductRepository,
	brandRepo repository.BrandRepository,
	storage domainservice.StorageService,
) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		brandRepo:   brandRepo,
		storage:     storage,
		log:         logger.Get().WithFields(logger.Component("product-service")),
	}
}

// CreateProductRequest represents a request to create a product
type CreateProductRequest struct {
	Name        string
	Description string
	Category    string
	Price       string
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name        *string
	Description *string
	Category    *string
	Price       *string
}

// CreateProduct creates a product under a brand the acting user owns
func (s *ProductService) CreateProduct(ctx context.Context, actingUser *models.User, brandID uuid.UUID, req CreateProductRequest) (*models.Product, error) {
	if _, err := s.ownedBrand(ctx, actingUser, brandID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError("name", "product name is required")
	}

	product := &models.Product{
		BrandID:     brandID,
		Name:        name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.log.Info("Product created",
		logger.String("product_id", product.ID.String()),
		logger.String("brand_id", brandID.String()),
	)
	return product, nil
}

// GetProduct retrieves a product, enforcing brand ownership
func (s *ProductService) GetProduct(ctx context.Context, actingUser *models.User, id uuid.UUID) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedBrand(ctx, actingUser, product.BrandID); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts retrieves the products of a brand the acting user owns
func (s *ProductService) ListProducts(ctx context.Context, actingUser *models.User, brandID uuid.UUID, limit, offset int) ([]*models.Product, error) {
	if _, err := s.ownedBrand(ctx, actingUser, brandID); err != nil {
		return nil, err
	}
	return s.productRepo.ListByBrand(ctx, brandID, limit, offset)
}

// UpdateProduct applies a partial update to a product
func (s *ProductService) UpdateProduct(ctx context.Context, actingUser *models.User, id uuid.UUID, req UpdateProductRequest) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedBrand(ctx, actingUser, product.BrandID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.ValidationError("name", "product name cannot be empty")
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Price != nil {
		product.Price = *req.Price
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product and its stored image
func (s *ProductService) DeleteProduct(ctx context.Context, actingUser *models.User, id uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if _, err := s.ownedBrand(ctx, actingUser, product.BrandID); err != nil {
		return err
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if product.ImageKey != "" {
		if err := s.storage.Delete(ctx, product.ImageKey); err != nil {
			s.log.Warn("Failed to delete product image from storage",
				logger.String("product_id", id.String()),
				logger.Error(err),
			)
		}
	}
	return nil
}

// UploadImage stores a product image and records its storage key
func (s *ProductService) UploadImage(ctx context.Context, actingUser *models.User, id uuid.UUID, filename, contentType string, body io.Reader) (*models.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if _, err := s.ownedBrand(ctx, actingUser, product.BrandID); err != nil {
		return nil, err
	}

	ext := path.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("products/%s/image%s", product.ID, ext)

	if err := s.storage.Put(ctx, key, body, contentType); err != nil {
		return nil, apperrors.StorageError("upload image", err)
	}

	product.ImageKey = key
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// ownedBrand resolves the brand and enforces ownership
func (s *ProductService) ownedBrand(ctx context.Context, actingUser *models.User, brandID uuid.UUID) (*models.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, brandID)
	if err != nil {
		return nil, err
	}
	if brand.OwnerID != actingUser.ID && !actingUser.IsAdmin() {
		return nil, apperrors.NotFound("brand", apperrors.ErrNotFound)
	}
	return brand, nil
}
