package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type routeStatusRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewRouteStatusRepository(db *DB) repository.RouteStatusRepository {
	return &routeStatusRepository{
		db:     db,
		logger: db.logger,
	}
}

const routeStatusSelect = `
	SELECT rs.id, rs.route_id, rs.status_type_id, rs.summary, rs.detail,
		rs.affected_section, rs.is_planned, rs.is_active, rs.valid_from,
		rs.valid_to, rs.last_updated,
		st.id AS "status_type.id", st.name AS "status_type.name",
		st.description AS "status_type.description",
		st.colour_hex AS "status_type.colour_hex",
		st.severity AS "status_type.severity"
	FROM route_statuses rs
	JOIN service_status_types st ON st.id = rs.status_type_id
`

const routeStatusOrder = ` ORDER BY rs.valid_from DESC, rs.id DESC`

func (r *routeStatusRepository) List(ctx context.Context) ([]domain.RouteStatus, error) {
	return r.list(ctx, routeStatusSelect+routeStatusOrder)
}

func (r *routeStatusRepository) ListActive(ctx context.Context) ([]domain.RouteStatus, error) {
	return r.list(ctx, routeStatusSelect+` WHERE rs.is_active`+routeStatusOrder)
}

func (r *routeStatusRepository) ListByRoute(ctx context.Context, routeID int64) ([]domain.RouteStatus, error) {
	return r.list(ctx, routeStatusSelect+` WHERE rs.route_id = $1`+routeStatusOrder, routeID)
}

func (r *routeStatusRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.RouteStatus, error) {
	var statuses []domain.RouteStatus
	if err := r.db.SelectContext(ctx, &statuses, query, args...); err != nil {
		r.logger.Error("Failed to list route statuses", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(statuses), nil
}

func (r *routeStatusRepository) GetByID(ctx context.Context, id int64) (*domain.RouteStatus, error) {
	var s domain.RouteStatus
	if err := r.db.GetContext(ctx, &s, routeStatusSelect+` WHERE rs.id = $1`, id); err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &s, nil
}

func (r *routeStatusRepository) Create(ctx context.Context, s *domain.RouteStatus) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO route_statuses (
			route_id, status_type_id, summary, detail, affected_section,
			is_planned, is_active, valid_from, valid_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, last_updated
	`,
		s.RouteID, s.StatusTypeID, s.Summary, s.Detail, s.AffectedSection,
		s.IsPlanned, s.IsActive, s.ValidFrom, s.ValidTo,
	).Scan(&s.ID, &s.LastUpdated)
	if err != nil {
		r.logger.Error("Failed to create route status", zap.Int64("route_id", s.RouteID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

// Update refreshes last_updated through the table trigger.
func (r *routeStatusRepository) Update(ctx context.Context, s *domain.RouteStatus) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE route_statuses SET
			route_id = $2, status_type_id = $3, summary = $4, detail = $5,
			affected_section = $6, is_planned = $7, is_active = $8,
			valid_from = $9, valid_to = $10
		WHERE id = $1
		RETURNING last_updated
	`,
		s.ID, s.RouteID, s.StatusTypeID, s.Summary, s.Detail,
		s.AffectedSection, s.IsPlanned, s.IsActive, s.ValidFrom, s.ValidTo,
	).Scan(&s.LastUpdated)
	if err != nil {
		r.logger.Error("Failed to update route status", zap.Int64("id", s.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *routeStatusRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM route_statuses WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete route status", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}
