package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// InsertMode inserts a mode and returns its id
func InsertMode(db *sqlx.DB, name, slug string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(),
		`INSERT INTO modes (name, slug) VALUES ($1, $2) RETURNING id`, name, slug).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert mode %s: %w", name, err)
	}
	return id, nil
}

// InsertOperator inserts an operator with the given name and slug and returns its id
func InsertOperator(db *sqlx.DB, name, slug, primaryHex string) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO operators (uuid, operator_name, bustimes_slug, primary_hex)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, uuid.New().String(), name, slug, primaryHex).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert operator %s: %w", slug, err)
	}
	return id, nil
}

// InsertRoute inserts a route and returns its id
func InsertRoute(db *sqlx.DB, service string, modeID, operatorID, bustimesID int64, displayOrder int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO routes (uuid, service, mode_id, operator_id, origin, destination, bustimes_id, display_order)
		VALUES ($1, $2, $3, $4, 'Fareham', 'Gosport', $5, $6) RETURNING id
	`, uuid.New().String(), service, modeID, operatorID, bustimesID, displayOrder).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert route %s: %w", service, err)
	}
	return id, nil
}

// InsertStatusType inserts a status type and returns its id
func InsertStatusType(db *sqlx.DB, name string, severity int) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO service_status_types (name, colour_hex, severity)
		VALUES ($1, '#DC241F', $2) RETURNING id
	`, name, severity).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert status type %s: %w", name, err)
	}
	return id, nil
}

// InsertRouteStatus inserts a status record and returns its id
func InsertRouteStatus(db *sqlx.DB, routeID, statusTypeID int64, active bool, validFrom time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(context.Background(), `
		INSERT INTO route_statuses (route_id, status_type_id, summary, is_active, valid_from)
		VALUES ($1, $2, 'Roadworks', $3, $4) RETURNING id
	`, routeID, statusTypeID, active, validFrom).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert route status: %w", err)
	}
	return id, nil
}
