package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/transport/http/handler"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Auth       *handler.AuthHandler
	Admin      *handler.AdminHandler
	Brand      *handler.BrandHandler
	Product    *handler.ProductHandler
	Generation *handler.GenerationHandler
	Scrape     *handler.ScrapeHandler
	Health     *handler.HealthHandler
}

// Router wires middleware and handlers onto a gin engine
type Router struct {
	engine   *gin.Engine
	cfg      *config.Config
	auth     *middleware.AuthMiddleware
	handlers Handlers
}

// New creates a new Router instance
func New(engine *gin.Engine, cfg *config.Config, auth *middleware.AuthMiddleware, handlers Handlers) *Router {
	return &Router{
		engine:   engine,
		cfg:      cfg,
		auth:     auth,
		handlers: handlers,
	}
}

// RegisterRoutes sets up all routes
func (r *Router) RegisterRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger())
	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     r.cfg.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	r.registerHealthRoutes()

	api := r.engine.Group("/api/v1")
	r.registerAuthRoutes(api)
	r.registerAdminRoutes(api)
	r.registerBrandRoutes(api)
	r.registerGenerationRoutes(api)
	r.registerScrapeRoutes(api)
}
