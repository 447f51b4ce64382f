package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/infrastructure/database"
	"github.com/adstudio-ai/adstudio/internal/injectable"
	"github.com/adstudio-ai/adstudio/internal/server"
	"github.com/adstudio-ai/adstudio/internal/transport/http/router"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// ServeCommand runs the HTTP API server
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the configuration file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := initLogger(cfg); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer logger.Get().Sync()

			log := logger.Get().WithFields(logger.Component("serve"))

			db, err := database.NewDatabase(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := db.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			deps, err := injectable.LoadDependencies(ctx, cfg, db)
			if err != nil {
				return fmt.Errorf("failed to load dependencies: %w", err)
			}

			srv := server.New(cfg)
			router.New(srv.Engine(), cfg, deps.AuthMiddleware, deps.Handlers).RegisterRoutes()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start()
			}()

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-stop:
				log.Info("Shutdown signal received", logger.String("signal", sig.String()))
				return srv.Shutdown(context.Background())
			case <-ctx.Done():
				return srv.Shutdown(context.Background())
			}
		},
	}
}

func initLogger(cfg *config.Config) error {
	return logger.Init(&logger.Config{
		Level:    cfg.Logging.Level,
		Output:   logger.OutputType(cfg.Logging.Output),
		Format:   cfg.Logging.Format,
		FilePath: cfg.Logging.OutputPath,
	})
}
