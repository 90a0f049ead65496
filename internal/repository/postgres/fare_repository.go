package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type fareRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewFareRepository(db *DB) repository.FareRepository {
	return &fareRepository{
		db:     db,
		logger: db.logger,
	}
}

const fareSelect = `
	SELECT f.id, f.mode_id, f.name, f.description,
		m.id AS "mode.id", m.name AS "mode.name", m.slug AS "mode.slug"
	FROM fares f
	JOIN modes m ON m.id = f.mode_id
`

func (r *fareRepository) List(ctx context.Context) ([]domain.Fare, error) {
	var fares []domain.Fare
	if err := r.db.SelectContext(ctx, &fares, fareSelect+` ORDER BY m.name, f.name, f.id`); err != nil {
		r.logger.Error("Failed to list fares", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(fares), nil
}

func (r *fareRepository) GetByID(ctx context.Context, id int64) (*domain.Fare, error) {
	var f domain.Fare
	if err := r.db.GetContext(ctx, &f, fareSelect+` WHERE f.id = $1`, id); err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &f, nil
}

func (r *fareRepository) Create(ctx context.Context, f *domain.Fare) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO fares (mode_id, name, description) VALUES ($1, $2, $3) RETURNING id`,
		f.ModeID, f.Name, f.Description,
	).Scan(&f.ID)
	if err != nil {
		r.logger.Error("Failed to create fare", zap.String("name", f.Name), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *fareRepository) Update(ctx context.Context, f *domain.Fare) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE fares SET mode_id = $2, name = $3, description = $4 WHERE id = $1`,
		f.ID, f.ModeID, f.Name, f.Description,
	)
	if err != nil {
		r.logger.Error("Failed to update fare", zap.Int64("id", f.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}

func (r *fareRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM fares WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete fare", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}
