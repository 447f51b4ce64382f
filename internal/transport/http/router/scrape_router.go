package router

import "github.com/gin-gonic/gin"

// registerScrapeRoutes sets up social media scraping routes
func (r *Router) registerScrapeRoutes(api *gin.RouterGroup) {
	scrapes := api.Group("/scrapes", r.auth.RequireApproved())
	{
		scrapes.POST("", r.handlers.Scrape.SubmitJob)
		scrapes.GET("", r.handlers.Scrape.ListJobs)
		scrapes.GET("/:id", r.handlers.Scrape.GetJob)
	}
}
