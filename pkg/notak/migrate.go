package notak

import (
	"context"
	"fmt"
)

// Migrate initializes or updates the database schema for the configured
// store. For PostgreSQL and SQLite alike this runs GORM's AutoMigrate,
// which only creates missing tables, columns and indexes and never
// drops existing data, so it is safe to run multiple times.
func (a *App) Migrate(ctx context.Context, cmd *MigrateCommand) error {
	a.logger.Info().Msg("running database migrations")
	if err := a.store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	a.logger.Info().Msg("migrations completed")
	return nil
}
