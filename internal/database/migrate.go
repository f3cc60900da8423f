package database

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/at-ishikawa/flashcardgen/schemas"
)

// NewMigrationProvider returns a goose provider over the embedded migrations.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(schemas.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub(migrations) > %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectMySQL, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("goose.NewProvider() > %w", err)
	}
	return provider, nil
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	provider, err := NewMigrationProvider(db)
	if err != nil {
		return fmt.Errorf("NewMigrationProvider() > %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("provider.Up() > %w", err)
	}
	for _, result := range results {
		logger.Info("applied a migration",
			slog.Int64("version", result.Source.Version),
			slog.String("path", result.Source.Path),
			slog.Duration("duration", result.Duration),
		)
	}
	if len(results) == 0 {
		logger.Info("no pending migrations")
	}
	return nil
}
