package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type incidentRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewIncidentRepository(db *DB) repository.IncidentRepository {
	return &incidentRepository{
		db:     db,
		logger: db.logger,
	}
}

const incidentSelect = `
	SELECT n.id, n.title, n.description, n.status_type_id, n.start_time,
		n.expected_end_time, n.active, n.created_at,
		st.id AS "status_type.id", st.name AS "status_type.name",
		st.description AS "status_type.description",
		st.colour_hex AS "status_type.colour_hex",
		st.severity AS "status_type.severity"
	FROM network_incidents n
	JOIN service_status_types st ON st.id = n.status_type_id
`

const incidentOrder = ` ORDER BY n.start_time DESC, n.id DESC`

func (r *incidentRepository) List(ctx context.Context) ([]domain.NetworkIncident, error) {
	return r.list(ctx, incidentSelect+incidentOrder)
}

func (r *incidentRepository) ListActive(ctx context.Context) ([]domain.NetworkIncident, error) {
	return r.list(ctx, incidentSelect+` WHERE n.active`+incidentOrder)
}

func (r *incidentRepository) list(ctx context.Context, query string) ([]domain.NetworkIncident, error) {
	var incidents []domain.NetworkIncident
	if err := r.db.SelectContext(ctx, &incidents, query); err != nil {
		r.logger.Error("Failed to list incidents", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	if err := r.attachModes(ctx, incidents); err != nil {
		r.logger.Error("Failed to load incident modes", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(incidents), nil
}

func (r *incidentRepository) GetByID(ctx context.Context, id int64) (*domain.NetworkIncident, error) {
	var n domain.NetworkIncident
	if err := r.db.GetContext(ctx, &n, incidentSelect+` WHERE n.id = $1`, id); err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	incidents := []domain.NetworkIncident{n}
	if err := r.attachModes(ctx, incidents); err != nil {
		r.logger.Error("Failed to load incident modes", zap.Int64("id", id), zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &incidents[0], nil
}

func (r *incidentRepository) attachModes(ctx context.Context, incidents []domain.NetworkIncident) error {
	ids := make([]int64, len(incidents))
	for i := range incidents {
		ids[i] = incidents[i].ID
	}
	byIncident, err := loadIncidentModes(ctx, r.db, ids)
	if err != nil {
		return err
	}
	for i := range incidents {
		incidents[i].AffectsModes = emptyIfNil(byIncident[incidents[i].ID])
	}
	return nil
}

func (r *incidentRepository) Create(ctx context.Context, n *domain.NetworkIncident) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO network_incidents (
				title, description, status_type_id, start_time, expected_end_time, active
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`,
			n.Title, n.Description, n.StatusTypeID, n.StartTime, n.ExpectedEndTime, n.Active,
		).Scan(&n.ID, &n.CreatedAt)
		if err != nil {
			return err
		}
		return incidentModes.replace(ctx, tx, n.ID, modeIDs(n.AffectsModes))
	})
	if err != nil {
		r.logger.Error("Failed to create incident", zap.String("title", n.Title), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *incidentRepository) Update(ctx context.Context, n *domain.NetworkIncident) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			UPDATE network_incidents SET
				title = $2, description = $3, status_type_id = $4,
				start_time = $5, expected_end_time = $6, active = $7
			WHERE id = $1
			RETURNING created_at
		`,
			n.ID, n.Title, n.Description, n.StatusTypeID, n.StartTime, n.ExpectedEndTime, n.Active,
		).Scan(&n.CreatedAt)
		if err != nil {
			return err
		}
		return incidentModes.replace(ctx, tx, n.ID, modeIDs(n.AffectsModes))
	})
	if err != nil {
		r.logger.Error("Failed to update incident", zap.Int64("id", n.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *incidentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM network_incidents WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete incident", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}
