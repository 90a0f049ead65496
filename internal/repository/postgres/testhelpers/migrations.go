package testhelpers

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/repository/postgres"
)

// ApplyMigrations applies the embedded migrations; already applied versions are skipped
func ApplyMigrations(db *sqlx.DB, logger *zap.Logger) error {
	applied, err := postgres.NewDBForTest(db, logger).Migrate(context.Background())
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	for _, v := range applied {
		fmt.Printf("Applied migration: %s\n", v)
	}
	return nil
}
