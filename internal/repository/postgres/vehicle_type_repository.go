package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type vehicleTypeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewVehicleTypeRepository(db *DB) repository.VehicleTypeRepository {
	return &vehicleTypeRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *vehicleTypeRepository) List(ctx context.Context) ([]domain.VehicleType, error) {
	var vts []domain.VehicleType
	if err := r.db.SelectContext(ctx, &vts, `SELECT id, name FROM vehicle_types ORDER BY name`); err != nil {
		r.logger.Error("Failed to list vehicle types", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(vts), nil
}

func (r *vehicleTypeRepository) GetByID(ctx context.Context, id int64) (*domain.VehicleType, error) {
	var vt domain.VehicleType
	if err := r.db.GetContext(ctx, &vt, `SELECT id, name FROM vehicle_types WHERE id = $1`, id); err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &vt, nil
}

func (r *vehicleTypeRepository) Create(ctx context.Context, vt *domain.VehicleType) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO vehicle_types (name) VALUES ($1) RETURNING id`, vt.Name,
	).Scan(&vt.ID)
	if err != nil {
		r.logger.Error("Failed to create vehicle type", zap.String("name", vt.Name), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *vehicleTypeRepository) Update(ctx context.Context, vt *domain.VehicleType) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicle_types SET name = $2 WHERE id = $1`, vt.ID, vt.Name)
	if err != nil {
		r.logger.Error("Failed to update vehicle type", zap.Int64("id", vt.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}

// Delete also drops the type from every operator and route that listed it.
func (r *vehicleTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vehicle_types WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete vehicle type", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}
