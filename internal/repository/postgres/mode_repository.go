package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type modeRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewModeRepository(db *DB) repository.ModeRepository {
	return &modeRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *modeRepository) List(ctx context.Context) ([]domain.Mode, error) {
	var modes []domain.Mode
	if err := r.db.SelectContext(ctx, &modes, `SELECT id, name, slug FROM modes ORDER BY name`); err != nil {
		r.logger.Error("Failed to list modes", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(modes), nil
}

func (r *modeRepository) GetByID(ctx context.Context, id int64) (*domain.Mode, error) {
	var m domain.Mode
	err := r.db.GetContext(ctx, &m, `SELECT id, name, slug FROM modes WHERE id = $1`, id)
	if err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &m, nil
}

func (r *modeRepository) Create(ctx context.Context, m *domain.Mode) error {
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO modes (name, slug) VALUES ($1, $2) RETURNING id`,
		m.Name, m.Slug,
	).Scan(&m.ID)
	if err != nil {
		r.logger.Error("Failed to create mode", zap.String("name", m.Name), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *modeRepository) Update(ctx context.Context, m *domain.Mode) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE modes SET name = $2, slug = $3 WHERE id = $1`,
		m.ID, m.Name, m.Slug,
	)
	if err != nil {
		r.logger.Error("Failed to update mode", zap.Int64("id", m.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}

// Delete fails with ErrReferenced while routes use the mode. Fares and the
// mode's incident links cascade.
func (r *modeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM modes WHERE id = $1`, id)
	if err != nil {
		r.logger.Warn("Failed to delete mode", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}

func (r *modeRepository) Ensure(ctx context.Context, name, slug string) (*domain.Mode, error) {
	var m domain.Mode
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO modes (name, slug) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			name, slug,
		)
		if err != nil {
			return err
		}
		return tx.GetContext(ctx, &m, `SELECT id, name, slug FROM modes WHERE name = $1`, name)
	})
	if err != nil {
		r.logger.Error("Failed to ensure mode", zap.String("name", name), zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &m, nil
}
