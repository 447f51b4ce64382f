package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/adstudio-ai/adstudio/internal/config"
	"github.com/adstudio-ai/adstudio/internal/infrastructure/database"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// MigrateCommand applies the database schema
func MigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database schema migrations",
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

			db, err := database.NewDatabase(&cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()

			if err := db.Migrate(); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}

			logger.Get().Info("Migrations applied")
			return nil
		},
	}
}
