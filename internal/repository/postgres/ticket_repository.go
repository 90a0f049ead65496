package postgres

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/pkg/errors"
)

type ticketRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewTicketRepository(db *DB) repository.TicketRepository {
	return &ticketRepository{
		db:     db,
		logger: db.logger,
	}
}

const ticketColumns = `t.id, t.uuid, t.operator_id, t.name, t.price, t.duration, t.description`

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	err := r.db.SelectContext(ctx, &tickets, `
		SELECT `+ticketColumns+`
		FROM tickets t
		JOIN operators o ON o.id = t.operator_id
		ORDER BY o.operator_name, t.operator_id, t.price, t.name
	`)
	if err != nil {
		r.logger.Error("Failed to list tickets", zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(tickets), nil
}

func (r *ticketRepository) ListByOperator(ctx context.Context, operatorID int64) ([]domain.Ticket, error) {
	var tickets []domain.Ticket
	err := r.db.SelectContext(ctx, &tickets, `
		SELECT `+ticketColumns+`
		FROM tickets t
		WHERE t.operator_id = $1
		ORDER BY t.price, t.name
	`, operatorID)
	if err != nil {
		r.logger.Error("Failed to list operator tickets", zap.Int64("operator_id", operatorID), zap.Error(err))
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return emptyIfNil(tickets), nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	var t domain.Ticket
	if err := r.db.GetContext(ctx, &t, `SELECT `+ticketColumns+` FROM tickets t WHERE t.id = $1`, id); err != nil {
		return nil, classify(err, errors.ErrRecordNotFound)
	}
	return &t, nil
}

func (r *ticketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	if t.UUID == uuid.Nil {
		t.UUID = uuid.New()
	}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO tickets (uuid, operator_id, name, price, duration, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, t.UUID, t.OperatorID, t.Name, t.Price, t.Duration, t.Description).Scan(&t.ID)
	if err != nil {
		r.logger.Error("Failed to create ticket", zap.String("name", t.Name), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *ticketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE tickets SET operator_id = $2, name = $3, price = $4, duration = $5, description = $6
		WHERE id = $1
		RETURNING uuid
	`, t.ID, t.OperatorID, t.Name, t.Price, t.Duration, t.Description).Scan(&t.UUID)
	if err != nil {
		r.logger.Error("Failed to update ticket", zap.Int64("id", t.ID), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tickets WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete ticket", zap.Int64("id", id), zap.Error(err))
		return classify(err, errors.ErrRecordNotFound)
	}
	return checkAffected(res, errors.ErrRecordNotFound)
}
