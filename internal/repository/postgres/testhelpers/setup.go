package testhelpers

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
)

const (
	connectAttempts = 3
	connectDelay    = 250 * time.Millisecond
)

var domainTables = []string{
	"network_incident_modes",
	"network_incidents",
	"route_statuses",
	"route_vehicle_types",
	"routes",
	"tickets",
	"operator_vehicle_types",
	"operators",
	"fares",
	"maps",
	"service_status_types",
	"vehicle_types",
	"modes",
}

// TestDB is a lib/pq connection to the integration test database.
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// TestDatabaseConfig reads TEST_DB_* variables, defaulting to the
// docker-compose test instance on port 5433.
func TestDatabaseConfig() config.DatabaseConfig {
	port, err := strconv.Atoi(envOr("TEST_DB_PORT", "5433"))
	if err != nil {
		port = 5433
	}
	return config.DatabaseConfig{
		Host:     envOr("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     envOr("TEST_DB_USER", "postgres"),
		Password: envOr("TEST_DB_PASSWORD", "postgres"),
		DBName:   envOr("TEST_DB_NAME", "transit_test"),
		SSLMode:  envOr("TEST_DB_SSLMODE", "disable"),
	}
}

// SetupTestDB connects to the test database, skipping the test when it is unreachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()
	dsn := TestDatabaseConfig().DSN()

	var (
		db  *sqlx.DB
		err error
	)
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		if db, err = sqlx.Connect("postgres", dsn); err == nil {
			break
		}
		if attempt < connectAttempts {
			t.Logf("Database not ready (attempt %d/%d): %v", attempt, connectAttempts, err)
			time.Sleep(time.Duration(attempt) * connectDelay)
		}
	}
	if err != nil {
		t.Skipf("Test database not available: %v", err)
	}

	return &TestDB{DB: db, Logger: zap.NewNop()}
}

func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		_ = tdb.DB.Close()
	}
}

// Cleanup empties every domain table in one statement, keeping the schema
// and schema_migrations.
func (tdb *TestDB) Cleanup(ctx context.Context) error {
	_, err := tdb.DB.ExecContext(ctx,
		"TRUNCATE TABLE "+strings.Join(domainTables, ", ")+" RESTART IDENTITY CASCADE")
	return err
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
