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

type operatorRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewOperatorRepository(db *DB) repository.OperatorRepository {
	return &operatorRepository{
		db:     db,
		logger: db.logger,
	}
}

const operatorColumns = `
	id, uuid, operator_name, bustimes_slug, website, telephone, email,
	logo_circular, logo_banner, primary_hex, secondary_hex,
	has_custom_page, custom_template, is_featured, created_at, updated_at
`

func (r *operatorRepository) List(ctx context.Context) ([]domain.Operator, error) {
	return r.list(ctx, `SELECT `+operatorColumns+` FROM operators ORDER BY operator_name, id`)
}

func (r *operatorRepository) ListFeatured(ctx context.Context) ([]domain.Operator, error) {
	return r.list(ctx, `SELECT `+operatorColumns+` FROM operators WHERE is_featured ORDER BY operator_name, id`)
}

func (r *operatorRepository) list(ctx context.Context, query string) ([]domain.Operator, error) {
	var ops []domain.Operator
	if err := r.db.SelectContext(ctx, &ops, query); err != nil {
		r.logger.Error("Failed to list operators", zap.Error(err))
		return nil, classify(err, errors.ErrOperatorNotFound)
	}
	if err := r.attachVehicles(ctx, ops); err != nil {
		r.logger.Error("Failed to load operator vehicle types", zap.Error(err))
		return nil, classify(err, errors.ErrOperatorNotFound)
	}
	return emptyIfNil(ops), nil
}

func (r *operatorRepository) GetByID(ctx context.Context, id int64) (*domain.Operator, error) {
	return r.get(ctx, `SELECT `+operatorColumns+` FROM operators WHERE id = $1`, id)
}

func (r *operatorRepository) GetBySlug(ctx context.Context, slug string) (*domain.Operator, error) {
	return r.get(ctx, `SELECT `+operatorColumns+` FROM operators WHERE bustimes_slug = $1`, slug)
}

func (r *operatorRepository) get(ctx context.Context, query string, arg interface{}) (*domain.Operator, error) {
	var op domain.Operator
	if err := r.db.GetContext(ctx, &op, query, arg); err != nil {
		return nil, classify(err, errors.ErrOperatorNotFound)
	}
	ops := []domain.Operator{op}
	if err := r.attachVehicles(ctx, ops); err != nil {
		r.logger.Error("Failed to load operator vehicle types", zap.Int64("id", op.ID), zap.Error(err))
		return nil, classify(err, errors.ErrOperatorNotFound)
	}
	return &ops[0], nil
}

func (r *operatorRepository) attachVehicles(ctx context.Context, ops []domain.Operator) error {
	ids := make([]int64, len(ops))
	for i := range ops {
		ids[i] = ops[i].ID
	}
	byOwner, err := loadVehicleTypes(ctx, r.db, operatorVehicles, ids)
	if err != nil {
		return err
	}
	for i := range ops {
		ops[i].VehiclesOperated = emptyIfNil(byOwner[ops[i].ID])
	}
	return nil
}

func (r *operatorRepository) Create(ctx context.Context, op *domain.Operator) error {
	if op.UUID == uuid.Nil {
		op.UUID = uuid.New()
	}
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO operators (
				uuid, operator_name, bustimes_slug, website, telephone, email,
				logo_circular, logo_banner, primary_hex, secondary_hex,
				has_custom_page, custom_template, is_featured
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			RETURNING id, created_at, updated_at
		`,
			op.UUID, op.Name, op.BustimesSlug, op.Website, op.Telephone, op.Email,
			op.LogoCircular, op.LogoBanner, op.PrimaryHex, op.SecondaryHex,
			op.HasCustomPage, op.CustomTemplate, op.IsFeatured,
		).Scan(&op.ID, &op.CreatedAt, &op.UpdatedAt)
		if err != nil {
			return err
		}
		return operatorVehicles.replace(ctx, tx, op.ID, vehicleTypeIDs(op.VehiclesOperated))
	})
	if err != nil {
		r.logger.Error("Failed to create operator", zap.String("slug", op.BustimesSlug), zap.Error(err))
		return classify(err, errors.ErrOperatorNotFound)
	}
	return nil
}

func (r *operatorRepository) Update(ctx context.Context, op *domain.Operator) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			UPDATE operators SET
				operator_name = $2, bustimes_slug = $3, website = $4, telephone = $5, email = $6,
				logo_circular = $7, logo_banner = $8, primary_hex = $9, secondary_hex = $10,
				has_custom_page = $11, custom_template = $12, is_featured = $13
			WHERE id = $1
			RETURNING uuid, created_at, updated_at
		`,
			op.ID, op.Name, op.BustimesSlug, op.Website, op.Telephone, op.Email,
			op.LogoCircular, op.LogoBanner, op.PrimaryHex, op.SecondaryHex,
			op.HasCustomPage, op.CustomTemplate, op.IsFeatured,
		).Scan(&op.UUID, &op.CreatedAt, &op.UpdatedAt)
		if err != nil {
			return err
		}
		return operatorVehicles.replace(ctx, tx, op.ID, vehicleTypeIDs(op.VehiclesOperated))
	})
	if err != nil {
		r.logger.Error("Failed to update operator", zap.Int64("id", op.ID), zap.Error(err))
		return classify(err, errors.ErrOperatorNotFound)
	}
	return nil
}

// Delete cascades to the operator's tickets and fails with ErrReferenced
// while it still runs routes.
func (r *operatorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM operators WHERE id = $1`, id)
	if err != nil {
		r.logger.Warn("Failed to delete operator", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrOperatorNotFound)
	}
	return checkAffected(res, errors.ErrOperatorNotFound)
}
