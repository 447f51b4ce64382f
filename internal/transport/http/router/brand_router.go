package router

import "github.com/gin-gonic/gin"

// registerBrandRoutes sets up brand and product catalog routes
func (r *Router) registerBrandRoutes(api *gin.RouterGroup) {
	brands := api.Group("/brands", r.auth.RequireApproved())
	{
		brands.POST("", r.handlers.Brand.CreateBrand)
		brands.GET("", r.handlers.Brand.ListBrands)
		brands.GET("/:id", r.handlers.Brand.GetBrand)
		brands.PUT("/:id", r.handlers.Brand.UpdateBrand)
		brands.DELETE("/:id", r.handlers.Brand.DeleteBrand)
		brands.POST("/:id/logo", r.handlers.Brand.UploadLogo)

		brands.POST("/:id/products", r.handlers.Product.CreateProduct)
		brands.GET("/:id/products", r.handlers.Product.ListProducts)
	}

	products := api.Group("/products", r.auth.RequireApproved())
	{
		products.GET("/:id", r.handlers.Product.GetProduct)
		products.PUT("/:id", r.handlers.Product.UpdateProduct)
		products.DELETE("/:id", r.handlers.Product.DeleteProduct)
		products.POST("/:id/image", r.handlers.Product.UploadImage)
	}
}
