package repository

import (
	"context"

	"github.com/transit-site/internal/domain"
)

// OperatorRepository - operators and their operated vehicle types.
// Create and Update replace the vehicle type set with VehiclesOperated.
type OperatorRepository interface {
	// List returns operators alphabetical by name
	List(ctx context.Context) ([]domain.Operator, error)
	ListFeatured(ctx context.Context) ([]domain.Operator, error)
	GetByID(ctx context.Context, id int64) (*domain.Operator, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Operator, error)
	Create(ctx context.Context, op *domain.Operator) error
	Update(ctx context.Context, op *domain.Operator) error
	Delete(ctx context.Context, id int64) error
}

// TicketRepository - operator tickets
type TicketRepository interface {
	// List returns all tickets ordered by operator, then price
	List(ctx context.Context) ([]domain.Ticket, error)
	// ListByOperator returns tickets ordered by price ascending
	ListByOperator(ctx context.Context, operatorID int64) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Create(ctx context.Context, t *domain.Ticket) error
	Update(ctx context.Context, t *domain.Ticket) error
	Delete(ctx context.Context, id int64) error
}

// FareRepository - free-text fare content per mode
type FareRepository interface {
	// List returns fares ordered by mode name, then fare name
	List(ctx context.Context) ([]domain.Fare, error)
	GetByID(ctx context.Context, id int64) (*domain.Fare, error)
	Create(ctx context.Context, f *domain.Fare) error
	Update(ctx context.Context, f *domain.Fare) error
	Delete(ctx context.Context, id int64) error
}

// MapRepository - downloadable maps
type MapRepository interface {
	// List returns maps ordered by title
	List(ctx context.Context) ([]domain.Map, error)
	GetByID(ctx context.Context, id int64) (*domain.Map, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Map, error)
	Create(ctx context.Context, m *domain.Map) error
	Update(ctx context.Context, m *domain.Map) error
	Delete(ctx context.Context, id int64) error
}
