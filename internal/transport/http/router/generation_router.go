package router

import "github.com/gin-gonic/gin"

// registerGenerationRoutes sets up content generation routes
func (r *Router) registerGenerationRoutes(api *gin.RouterGroup) {
	generations := api.Group("/generations", r.auth.RequireApproved())
	{
		generations.POST("", r.handlers.Generation.SubmitJob)
		generations.GET("", r.handlers.Generation.ListJobs)
		generations.GET("/:id", r.handlers.Generation.GetJob)
	}
}
