package repository

import (
	"context"

	"github.com/transit-site/internal/domain"
)

// RouteRepository - routes joined with their mode and operator.
// Listings are ordered by mode name, display order, then service.
type RouteRepository interface {
	// List returns all routes with VehiclesUsed populated
	List(ctx context.Context) ([]domain.Route, error)
	ListByOperator(ctx context.Context, operatorID int64) ([]domain.Route, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Route, error)
	GetByID(ctx context.Context, id int64) (*domain.Route, error)
	GetByUUID(ctx context.Context, id string) (*domain.Route, error)

	// Create and Update replace the vehicle type set with VehiclesUsed
	Create(ctx context.Context, r *domain.Route) error
	Update(ctx context.Context, r *domain.Route) error
	UpdateDisplayOrder(ctx context.Context, id int64, order int) error
	Delete(ctx context.Context, id int64) error

	// Upsert inserts or updates the route keyed by BustimesID and reports
	// whether a new row was created
	Upsert(ctx context.Context, ri domain.RouteImport) (bool, error)
}

// RouteStatusRepository - per-route status records with their status type
type RouteStatusRepository interface {
	// List returns every status, newest valid_from first
	List(ctx context.Context) ([]domain.RouteStatus, error)
	// ListActive returns statuses with is_active set, newest first
	ListActive(ctx context.Context) ([]domain.RouteStatus, error)
	ListByRoute(ctx context.Context, routeID int64) ([]domain.RouteStatus, error)
	GetByID(ctx context.Context, id int64) (*domain.RouteStatus, error)
	Create(ctx context.Context, s *domain.RouteStatus) error
	Update(ctx context.Context, s *domain.RouteStatus) error
	Delete(ctx context.Context, id int64) error
}

// IncidentRepository - network incidents with their affected modes.
// Create and Update replace the affected mode set with AffectsModes.
type IncidentRepository interface {
	// List returns incidents newest start_time first
	List(ctx context.Context) ([]domain.NetworkIncident, error)
	ListActive(ctx context.Context) ([]domain.NetworkIncident, error)
	GetByID(ctx context.Context, id int64) (*domain.NetworkIncident, error)
	Create(ctx context.Context, n *domain.NetworkIncident) error
	Update(ctx context.Context, n *domain.NetworkIncident) error
	Delete(ctx context.Context, id int64) error
}
