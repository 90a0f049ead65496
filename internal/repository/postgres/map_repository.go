package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type mapRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewMapRepository(db *DB) repository.MapRepository {
	return &mapRepository{
		db:     db,
		logger: db.logger,
	}
}

const mapColumns = `id, title, description, path, preview_image, hex_colour, slug`

func (r *mapRepository) List(ctx context.Context) ([]domain.Map, error) {
	var maps []domain.Map
	if err := r.db.SelectContext(ctx, &maps, `SELECT `+mapColumns+` FROM maps ORDER BY title, id`); err != nil {
		r.logger.Error("Failed to list maps", zap.Error(err))
		return nil, classify(err, errors.ErrMapNotFound)
	}
	return emptyIfNil(maps), nil
}

func (r *mapRepository) GetByID(ctx context.Context, id int64) (*domain.Map, error) {
	var m domain.Map
	if err := r.db.GetContext(ctx, &m, `SELECT `+mapColumns+` FROM maps WHERE id = $1`, id); err != nil {
		return nil, classify(err, errors.ErrMapNotFound)
	}
	return &m, nil
}

func (r *mapRepository) GetBySlug(ctx context.Context, slug string) (*domain.Map, error) {
	var m domain.Map
	if err := r.db.GetContext(ctx, &m, `SELECT `+mapColumns+` FROM maps WHERE slug = $1`, slug); err != nil {
		return nil, classify(err, errors.ErrMapNotFound)
	}
	return &m, nil
}

func (r *mapRepository) Create(ctx context.Context, m *domain.Map) error {
	rows, err := r.db.NamedQueryContext(ctx, `
		INSERT INTO maps (title, description, path, preview_image, hex_colour, slug)
		VALUES (:title, :description, :path, :preview_image, :hex_colour, :slug)
		RETURNING id
	`, m)
	if err != nil {
		r.logger.Error("Failed to create map", zap.String("slug", m.Slug), zap.Error(err))
		return classify(err, errors.ErrMapNotFound)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&m.ID); err != nil {
			return classify(err, errors.ErrMapNotFound)
		}
	}
	return classify(rows.Err(), errors.ErrMapNotFound)
}

func (r *mapRepository) Update(ctx context.Context, m *domain.Map) error {
	res, err := r.db.NamedExecContext(ctx, `
		UPDATE maps SET
			title = :title, description = :description, path = :path,
			preview_image = :preview_image, hex_colour = :hex_colour, slug = :slug
		WHERE id = :id
	`, m)
	if err != nil {
		r.logger.Error("Failed to update map", zap.Int64("id", m.ID), zap.Error(err))
		return classify(err, errors.ErrMapNotFound)
	}
	return checkAffected(res, errors.ErrMapNotFound)
}

func (r *mapRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maps WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete map", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrMapNotFound)
	}
	return checkAffected(res, errors.ErrMapNotFound)
}
