package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version    VARCHAR(100) PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Migrations returns the embedded migration files, for tooling that applies them itself.
func Migrations() fs.FS {
	sub, _ := fs.Sub(migrationFiles, "migrations")
	return sub
}

func migrationVersions(suffix string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}
	var versions []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), suffix) {
			versions = append(versions, strings.TrimSuffix(e.Name(), suffix))
		}
	}
	sort.Strings(versions)
	return versions, nil
}

// Migrate applies every pending up migration in lexical order and returns
// the versions it applied. Each migration runs in its own transaction.
func (db *DB) Migrate(ctx context.Context) ([]string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("create schema_migrations: %w", err)
	}

	versions, err := migrationVersions(upSuffix)
	if err != nil {
		return nil, err
	}

	var applied []string
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	var ran []string
	for _, version := range versions {
		if done[version] {
			continue
		}
		body, err := migrationFiles.ReadFile("migrations/" + version + upSuffix)
		if err != nil {
			return ran, fmt.Errorf("read migration %s: %w", version, err)
		}
		err = db.withTx(ctx, func(tx *sqlx.Tx) error {
			if _, err := tx.ExecContext(ctx, string(body)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, version)
			return err
		})
		if err != nil {
			return ran, fmt.Errorf("apply migration %s: %w", version, err)
		}
		db.logger.Info("Applied migration", zap.String("version", version))
		ran = append(ran, version)
	}

	return ran, nil
}

// Rollback reverts the most recently applied migration. It returns an empty
// version when nothing is applied.
func (db *DB) Rollback(ctx context.Context) (string, error) {
	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return "", fmt.Errorf("create schema_migrations: %w", err)
	}

	var versions []string
	err := db.SelectContext(ctx, &versions, `SELECT version FROM schema_migrations ORDER BY version DESC LIMIT 1`)
	if err != nil {
		return "", fmt.Errorf("load applied migrations: %w", err)
	}
	if len(versions) == 0 {
		return "", nil
	}
	version := versions[0]

	body, err := migrationFiles.ReadFile("migrations/" + version + downSuffix)
	if err != nil {
		return "", fmt.Errorf("read down migration %s: %w", version, err)
	}
	err = db.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, string(body)); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DELETE FROM schema_migrations WHERE version = $1`, version)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("revert migration %s: %w", version, err)
	}
	db.logger.Info("Reverted migration", zap.String("version", version))
	return version, nil
}

// Bootstrap migrates the schema and seeds the status vocabulary.
func (db *DB) Bootstrap(ctx context.Context) error {
	if _, err := db.Migrate(ctx); err != nil {
		return err
	}
	added, err := NewStatusTypeRepository(db).Seed(ctx, domain.StatusVocabulary())
	if err != nil {
		return fmt.Errorf("seed status types: %w", err)
	}
	db.logger.Info("Status vocabulary seeded", zap.Int("added", added))
	return nil
}
