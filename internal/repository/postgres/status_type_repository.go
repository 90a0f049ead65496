package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type statusTypeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewStatusTypeRepository(db *DB) repository.StatusTypeRepository {
	return &statusTypeRepository{
		db:     db,
		logger: db.logger,
	}
}

const statusTypeColumns = `id, name, description, colour_hex, severity`

func (r *statusTypeRepository) List(ctx context.Context) ([]domain.ServiceStatusType, error) {
	var types []domain.ServiceStatusType
	err := r.db.SelectContext(ctx, &types,
		`SELECT `+statusTypeColumns+` FROM service_status_types ORDER BY severity, name`)
	if err != nil {
		r.logger.Error("Failed to list status types", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(types), nil
}

func (r *statusTypeRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceStatusType, error) {
	var st domain.ServiceStatusType
	err := r.db.GetContext(ctx, &st,
		`SELECT `+statusTypeColumns+` FROM service_status_types WHERE id = $1`, id)
	if err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &st, nil
}

func (r *statusTypeRepository) Create(ctx context.Context, st *domain.ServiceStatusType) error {
	rows, err := r.db.NamedQueryContext(ctx, `
		INSERT INTO service_status_types (name, description, colour_hex, severity)
		VALUES (:name, :description, :colour_hex, :severity)
		RETURNING id
	`, st)
	if err != nil {
		r.logger.Error("Failed to create status type", zap.String("name", st.Name), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&st.ID); err != nil {
			return classify(err, errors.ErrRecordNotFound)
		}
	}
	return classify(rows.Err(), errors.ErrRecordNotFound)
}

func (r *statusTypeRepository) Update(ctx context.Context, st *domain.ServiceStatusType) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE service_status_types
		SET name = :name, description = :description, colour_hex = :colour_hex, severity = :severity
		WHERE id = :id
	`, st)
	if err != nil {
		r.logger.Error("Failed to update status type", zap.Int64("id", st.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}

// Delete fails with ErrReferenced while any route status or incident uses the type.
func (r *statusTypeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_status_types WHERE id = $1`, id)
	if err != nil {
		r.logger.Warn("Failed to delete status type", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}

// Seed never overwrites an existing row, so editor changes survive re-runs.
func (r *statusTypeRepository) Seed(ctx context.Context, types []domain.ServiceStatusType) (int, error) {
	added := 0
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, st := range types {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO service_status_types (name, description, colour_hex, severity)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (name) DO NOTHING
			`, st.Name, st.Description, st.ColourHex, st.Severity)
			if err != nil {
				return err
			}
			n, err := res.RowsAffected()
			if err != nil {
				return err
			}
			added += int(n)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to seed status types", zap.Error(err))
		return 0, classify(err, errors.ErrRecordNotFound)
	}
	return added, nil
}
