package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewRouteRepository(db *DB) repository.RouteRepository {
	return &routeRepository{
		db:     db,
		logger: db.logger,
	}
}

const routeSelect = `
	SELECT r.id, r.uuid, r.service, r.mode_id, r.operator_id, r.origin, r.destination,
		r.via, r.route_group, r.route_hex, r.bustimes_id, r.display_order,
		r.created_at, r.updated_at,
		m.id AS "mode.id", m.name AS "mode.name", m.slug AS "mode.slug",
		o.id AS "operator.id", o.uuid AS "operator.uuid",
		o.operator_name AS "operator.operator_name",
		o.bustimes_slug AS "operator.bustimes_slug",
		o.primary_hex AS "operator.primary_hex"
	FROM routes r
	JOIN modes m ON m.id = r.mode_id
	JOIN operators o ON o.id = r.operator_id
`

const routeOrder = ` ORDER BY m.name, r.display_order, r.service, r.id`

// boardOrder also sorts by operator so the status board can group in row order.
const boardOrder = ` ORDER BY m.name, m.id, o.name, o.id, r.display_order, r.service, r.id`

func (r *routeRepository) List(ctx context.Context) ([]domain.Route, error) {
	return r.list(ctx, routeSelect+routeOrder)
}

func (r *routeRepository) ListByOperator(ctx context.Context, operatorID int64) ([]domain.Route, error) {
	return r.list(ctx, routeSelect+` WHERE r.operator_id = $1`+routeOrder, operatorID)
}

func (r *routeRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Route, error) {
	if len(ids) == 0 {
		return []domain.Route{}, nil
	}
	var routes []domain.Route
	if err := selectIn(ctx, r.db, &routes, routeSelect+` WHERE r.id IN (?)`+boardOrder, ids); err != nil {
		r.logger.Error("Failed to list routes by ids", zap.Int("count", len(ids)), zap.Error(err))
		return nil, classify(err, errors.ErrRouteNotFound)
	}
	if err := r.attachVehicles(ctx, routes); err != nil {
		return nil, classify(err, errors.ErrRouteNotFound)
	}
	return emptyIfNil(routes), nil
}

func (r *routeRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Route, error) {
	var routes []domain.Route
	if err := r.db.SelectContext(ctx, &routes, query, args...); err != nil {
		r.logger.Error("Failed to list routes", zap.Error(err))
		return nil, classify(err, errors.ErrRouteNotFound)
	}
	if err := r.attachVehicles(ctx, routes); err != nil {
		r.logger.Error("Failed to load route vehicle types", zap.Error(err))
		return nil, classify(err, errors.ErrRouteNotFound)
	}
	return emptyIfNil(routes), nil
}

func (r *routeRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	return r.get(ctx, routeSelect+` WHERE r.id = $1`, id)
}

// GetByUUID treats a malformed uuid as not found.
func (r *routeRepository) GetByUUID(ctx context.Context, id string) (*domain.Route, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.ErrRouteNotFound
	}
	return r.get(ctx, routeSelect+` WHERE r.uuid = $1`, parsed)
}

func (r *routeRepository) get(ctx context.Context, query string, arg interface{}) (*domain.Route, error) {
	var route domain.Route
	if err := r.db.GetContext(ctx, &route, query, arg); err != nil {
		return nil, classify(err, errors.ErrRouteNotFound)
	}
	routes := []domain.Route{route}
	if err := r.attachVehicles(ctx, routes); err != nil {
		r.logger.Error("Failed to load route vehicle types", zap.Int64("id", route.ID), zap.Error(err))
		return nil, classify(err, errors.ErrRouteNotFound)
	}
	return &routes[0], nil
}

func (r *routeRepository) attachVehicles(ctx context.Context, routes []domain.Route) error {
	ids := make([]int64, len(routes))
	for i := range routes {
		ids[i] = routes[i].ID
	}
	byOwner, err := loadVehicleTypes(ctx, r.db, routeVehicles, ids)
	if err != nil {
		return err
	}
	for i := range routes {
		routes[i].VehiclesUsed = emptyIfNil(byOwner[routes[i].ID])
	}
	return nil
}

func (r *routeRepository) Create(ctx context.Context, route *domain.Route) error {
	if route.UUID == uuid.Nil {
		route.UUID = uuid.New()
	}
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO routes (
				uuid, service, mode_id, operator_id, origin, destination, via,
				route_group, route_hex, bustimes_id, display_order
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at, updated_at
		`,
			route.UUID, route.Service, route.ModeID, route.OperatorID, route.Origin,
			route.Destination, route.Via, route.RouteGroup, route.RouteHex,
			route.BustimesID, route.DisplayOrder,
		).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
		if err != nil {
			return err
		}
		return routeVehicles.replace(ctx, tx, route.ID, vehicleTypeIDs(route.VehiclesUsed))
	})
	if err != nil {
		r.logger.Error("Failed to create route",
			zap.String("service", route.Service),
			zap.Int64("operator_id", route.OperatorID),
			zap.Error(err))
		return classify(err, errors.ErrRouteNotFound)
	}
	return nil
}

func (r *routeRepository) Update(ctx context.Context, route *domain.Route) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			UPDATE routes SET
				service = $2, mode_id = $3, operator_id = $4, origin = $5, destination = $6,
				via = $7, route_group = $8, route_hex = $9, bustimes_id = $10, display_order = $11
			WHERE id = $1
			RETURNING uuid, created_at, updated_at
		`,
			route.ID, route.Service, route.ModeID, route.OperatorID, route.Origin,
			route.Destination, route.Via, route.RouteGroup, route.RouteHex,
			route.BustimesID, route.DisplayOrder,
		).Scan(&route.UUID, &route.CreatedAt, &route.UpdatedAt)
		if err != nil {
			return err
		}
		return routeVehicles.replace(ctx, tx, route.ID, vehicleTypeIDs(route.VehiclesUsed))
	})
	if err != nil {
		r.logger.Error("Failed to update route", zap.Int64("id", route.ID), zap.Error(err))
		return classify(err, errors.ErrRouteNotFound)
	}
	return nil
}

func (r *routeRepository) UpdateDisplayOrder(ctx context.Context, id int64, order int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE routes SET display_order = $2 WHERE id = $1`, id, order)
	if err != nil {
		r.logger.Error("Failed to update display order", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRouteNotFound)
	}
	return checkAffected(res, errors.ErrRouteNotFound)
}

// Delete cascades to the route's statuses.
func (r *routeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete route", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRouteNotFound)
	}
	return checkAffected(res, errors.ErrRouteNotFound)
}

// Upsert relies on the bustimes_id unique key. xmax is 0 only for a row
// inserted by this statement.
func (r *routeRepository) Upsert(ctx context.Context, ri domain.RouteImport) (bool, error) {
	var created bool
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO routes (
			uuid, service, mode_id, operator_id, origin, destination, via, bustimes_id, display_order
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (bustimes_id) DO UPDATE SET
			service = EXCLUDED.service,
			mode_id = EXCLUDED.mode_id,
			operator_id = EXCLUDED.operator_id,
			origin = EXCLUDED.origin,
			destination = EXCLUDED.destination,
			via = EXCLUDED.via
		RETURNING (xmax = 0) AS created
	`,
		uuid.New(), ri.Service, ri.ModeID, ri.OperatorID, ri.Origin,
		ri.Destination, ri.Via, ri.BustimesID, domain.DefaultDisplayOrder,
	).Scan(&created)
	if err != nil {
		r.logger.Error("Failed to upsert route",
			zap.Int64("bustimes_id", ri.BustimesID),
			zap.String("service", ri.Service),
			zap.Error(err))
		return false, classify(err, errors.ErrRouteNotFound)
	}
	return created, nil
}
