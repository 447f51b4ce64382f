package database

import (
	"fmt"

	"github.com/adstudio-ai/adstudio/internal/domain/models"
	"github.com/adstudio-ai/adstudio/pkg/logger"
)

// Migrate brings the schema up to date for all registered models.
// Uniqueness constraints on users.email and users.google_subject are
// created here and are the authority for concurrent-login races.
func (d *Database) Migrate() error {
	d.log.Info("Running database migrations")

	// gen_random_uuid() needs pgcrypto on PostgreSQL < 13
	if err := d.db.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		return fmt.Errorf("failed to enable pgcrypto extension: %w", err)
	}

	err := d.db.AutoMigrate(
		&models.User{},
		&models.Brand{},
		&models.Product{},
		&models.GenerationJob{},
		&models.ScrapeJob{},
	)
	if err != nil {
		d.log.Error("Database migration failed", logger.Error(err))
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	d.log.Info("Database migrations completed")
	return nil
}
