package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// Server wraps the gin engine and HTTP server lifecycle
type Server struct {
	engine *gin.Engine
	cfg    *config.Config
	http   *http.Server
	log    *logger.Logger
}

// New creates a new Server instance
func New(cfg *config.Config) *Server {
	gin.SetMode(ginMode(cfg.Server.Mode))

	engine := gin.New()

	return &Server{
		engine: engine,
		cfg:    cfg,
		log:    logger.Get().WithFields(logger.Component("server")),
	}
}

// Engine returns the underlying gin engine for route registration
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins serving HTTP requests and blocks until the server stops
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:              s.cfg.Server.Address(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("HTTP server starting", logger.String("address", s.http.Addr))

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server, draining in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.log.Info("HTTP server shutting down")
	return s.http.Shutdown(ctx)
}

func ginMode(mode string) string {
	switch mode {
	case gin.ReleaseMode, gin.TestMode:
		return mode
	default:
		return gin.DebugMode
	}
}
