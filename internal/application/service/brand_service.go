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

// BrandService handles brand catalog business logic
type BrandService struct {
	brandRepo repository.BrandRepository
	storage   domainservice.StorageService
	log       *logger.Logger
}

// NewBrandService creates a new BrandService instance
func NewBrandService(brandRepo repository.BrandRepository, storage domainservice.StorageService) *BrandService {
	return &BrandService{
		brandRepo: brandRepo,
		storage:   storage,
		log:       logger.Get().WithFields(logger.Component("brand-service")),
	}
}

// CreateBrandRequest represents a request to create a brand
type CreateBrandRequest struct {
	Name        string
	Description string
	Industry    string
	ToneOfVoice string
}

// UpdateBrandRequest represents a request to update a brand
type UpdateBrandRequest struct {
	Name        *string
	Description *string
	Industry    *string
	ToneOfVoice *string
}

// CreateBrand creates a new brand owned by the given user
func (s *BrandService) CreateBrand(ctx context.Context, ownerID uuid.UUID, req CreateBrandRequest) (*models.Brand, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.ValidationError("name", "brand name is required")
	}

	brand := &models.Brand{
		OwnerID:     ownerID,
		Name:        name,
		Description: req.Description,
		Industry:    req.Industry,
		ToneOfVoice: req.ToneOfVoice,
	}

	if err := s.brandRepo.Create(ctx, brand); err != nil {
		return nil, err
	}

	s.log.Info("Brand created",
		logger.String("brand_id", brand.ID.String()),
		logger.UserID(ownerID.String()),
	)
	return brand, nil
}

// GetBrand retrieves a brand, enforcing ownership
func (s *BrandService) GetBrand(ctx context.Context, actingUser *models.User, id uuid.UUID) (*models.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(actingUser, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// ListBrands retrieves the brands owned by the acting user
func (s *BrandService) ListBrands(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.Brand, error) {
	return s.brandRepo.ListByOwner(ctx, ownerID, limit, offset)
}

// UpdateBrand applies a partial update to a brand
func (s *BrandService) UpdateBrand(ctx context.Context, actingUser *models.User, id uuid.UUID, req UpdateBrandRequest) (*models.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(actingUser, brand); err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.ValidationError("name", "brand name cannot be empty")
		}
		brand.Name = name
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}
	if req.Industry != nil {
		brand.Industry = *req.Industry
	}
	if req.ToneOfVoice != nil {
		brand.ToneOfVoice = *req.ToneOfVoice
	}

	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// DeleteBrand removes a brand and its stored logo
func (s *BrandService) DeleteBrand(ctx context.Context, actingUser *models.User, id uuid.UUID) error {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwnership(actingUser, brand); err != nil {
		return err
	}

	if err := s.brandRepo.Delete(ctx, id); err != nil {
		return err
	}

	if brand.LogoKey != "" {
		if err := s.storage.Delete(ctx, brand.LogoKey); err != nil {
			s.log.Warn("Failed to delete brand logo from storage",
				logger.String("brand_id", id.String()),
				logger.Error(err),
			)
		}
	}
	return nil
}

// UploadLogo stores a brand logo and records its storage key
func (s *BrandService) UploadLogo(ctx context.Context, actingUser *models.User, id uuid.UUID, filename, contentType string, body io.Reader) (*models.Brand, error) {
	brand, err := s.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwnership(actingUser, brand); err != nil {
		return nil, err
	}

	ext := path.Ext(filename)
	if ext == "" {
		ext = ".png"
	}
	key := fmt.Sprintf("brands/%s/logo%s", brand.ID, ext)

	if err := s.storage.Put(ctx, key, body, contentType); err != nil {
		return nil, apperrors.StorageError("upload logo", err)
	}

	brand.LogoKey = key
	if err := s.brandRepo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return brand, nil
}

// checkOwnership allows the owner and admins; everyone else gets not found
// so brand ids are not probeable across accounts.
func (s *BrandService) checkOwnership(actingUser *models.User, brand *models.Brand) error {
	if brand.OwnerID == actingUser.ID || actingUser.IsAdmin() {
		return nil
	}
	return apperrors.NotFound("brand", apperrors.ErrNotFound)
}
