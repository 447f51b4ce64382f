package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/application/dto"
	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
	apperrors "github.com/adstudio-ai/adstudio/pkg/errors"
)

// ProductHandler handles product catalog endpoints
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new ProductHandler instance
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProduct creates a product under a brand
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	brandID, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUserFromContext(c)
	product, err := h.productService.CreateProduct(c.Request.Context(), user, brandID, service.CreateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts lists the products of a brand
func (h *ProductHandler) ListProducts(c *gin.Context) {
	brandID, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	limit := intQuery(c, "limit", 50)
	offset := intQuery(c, "offset", 0)

	products, err := h.productService.ListProducts(c.Request.Context(), user, brandID, limit, offset)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetProduct returns a single product
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	product, err := h.productService.GetProduct(c.Request.Context(), user, id)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct applies a partial update to a product
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	user := middleware.GetUserFromContext(c)
	product, err := h.productService.UpdateProduct(c.Request.Context(), user, id, service.UpdateProductRequest{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := parseResourceID(c, "id")
	if !ok {
		return
	}

	user := middleware.GetUserFromContext(c)
	if err := h.productService.DeleteProduct(c.Request.Context(), user, id); err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// UploadImage stores an image for a product
func (h *ProductHandler) UploadImage(c *gin.Context) {
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
	product, err := h.productService.UploadImage(
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

	c.JSON(http.StatusOK, product)
}
