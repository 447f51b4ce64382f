package injectable

import (
	"context"

	"github.com/adstudio-ai/adstudio/internal/application/service"
	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/infrastructure/database"
	infrarepo "github.com/adstudio-ai/adstudio/internal/infrastructure/repository"
	"github.com/adstudio-ai/adstudio/internal/infrastructure/storage"
	"github.com/adstudio-ai/adstudio/internal/transport/http/handler"
	"github.com/adstudio-ai/adstudio/internal/transport/http/middleware"
	"github.com/adstudio-ai/adstudio/internal/transport/http/router"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	Config   *config.Config
	Database *database.Database

	AuthService       *service.AuthService
	UserService       *service.UserService
	BrandService      *service.BrandService
	ProductService    *service.ProductService
	GenerationService *service.GenerationService
	ScrapeService     *service.ScrapeService

	AuthMiddleware *middleware.AuthMiddleware
	Handlers       router.Handlers
}

// LoadDependencies wires repositories, services, middleware and handlers
func LoadDependencies(ctx context.Context, cfg *config.Config, db *database.Database) (*Dependencies, error) {
	userRepo := infrarepo.NewUserRepository(db.DB())
	brandRepo := infrarepo.NewBrandRepository(db.DB())
	productRepo := infrarepo.NewProductRepository(db.DB())
	generationRepo := infrarepo.NewGenerationRepository(db.DB())
	scrapeRepo := infrarepo.NewScrapeRepository(db.DB())

	store, err := storage.NewFactory(&cfg.Storage).Create(ctx)
	if err != nil {
		return nil, err
	}

	googleService := service.NewGoogleService(&cfg.Auth)
	if err := googleService.Initialize(ctx); err != nil {
		return nil, err
	}

	tokenService := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifetime)
	authService := service.NewAuthService(userRepo, googleService, tokenService)
	userService := service.NewUserService(userRepo)
	brandService := service.NewBrandService(brandRepo, store)
	productService := service.NewProductService(productRepo, brandRepo, store)
	generationService := service.NewGenerationService(generationRepo, brandRepo, store, &cfg.Providers)
	scrapeService := service.NewScrapeService(scrapeRepo, &cfg.Providers.Scraper)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, cfg.Auth.CookieSecure),
		Admin:      handler.NewAdminHandler(userService),
		Brand:      handler.NewBrandHandler(brandService),
		Product:    handler.NewProductHandler(productService),
		Generation: handler.NewGenerationHandler(generationService),
		Scrape:     handler.NewScrapeHandler(scrapeService),
		Health:     handler.NewHealthHandler(db),
	}

	return &Dependencies{
		Config:            cfg,
		Database:          db,
		AuthService:       authService,
		UserService:       userService,
		BrandService:      brandService,
		ProductService:    productService,
		GenerationService: generationService,
		ScrapeService:     scrapeService,
		AuthMiddleware:    authMiddleware,
		Handlers:          handlers,
	}, nil
}
