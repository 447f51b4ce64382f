package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adstudio-ai/adstudio/internal/application/dto"
	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

// maxUploadBytes caps logo and product image uploads
const maxUploadBytes = 10 << 20

// BrandHandler handles brand catalog endpoints
type BrandHandler struct {
	brandService *service.BrandService
}

// NewBrandHandler creates a new BrandHandler instance
func NewBrandHandler(brandService *service.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// CreateBrand creates a brand owned by the caller
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUserFromContext(c)
	brand, err := h.brandService.CreateBrand(c.Request.Context(), user.ID, service.CreateBrandRequest{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		ToneOfVoice: req.ToneOfVoice,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, brand)
}

// ListBrands lists the caller's brands
func (h *BrandHandler) ListBrands(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	brands, err := h.brandService.ListBrands(c.Request.Context(), user.ID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"brands": brands,
		"count":  len(brands),
	})
}

// GetBrand returns a single brand with its products
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	brand, err := h.brandService.GetBrand(c.Request.Context(), user, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

// UpdateBrand applies a partial update to a brand
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUserFromContext(c)
	brand, err := h.brandService.UpdateBrand(c.Request.Context(), user, id, service.UpdateBrandRequest{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		ToneOfVoice: req.ToneOfVoice,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

// DeleteBrand removes a brand and its products
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	if err := h.brandService.DeleteBrand(c.Request.Context(), user, id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "brand deleted"})
}

// UploadLogo stores a logo image for a brand
func (h *BrandHandler) UploadLogo(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		handleError(c, apperrors.ValidationError("file", "file upload is required"))
		return
	}
	defer file.Close()

	if header.Size > maxUploadBytes {
		handleError(c, apperrors.ValidationError("file", "file exceeds maximum upload size"))
		return
	}

	user := middleware.GetUserFromContext(c)
	brand, err := h.brandService.UploadLogo(
		c.Request.Context(),
		user,
		id,
		header.Filename,
		header.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, brand)
}

func parseResourceID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		handleError(c, apperrors.ValidationError(param, "invalid resource id"))
		return uuid.Nil, false
	}
	return id, true
}
