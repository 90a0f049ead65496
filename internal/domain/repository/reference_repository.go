package repository

import (
	"context"

	"github.com/transit-site/internal/domain"
)

// ModeRepository - transport modes
type ModeRepository interface {
	// List returns modes alphabetical by name
	List(ctx context.Context) ([]domain.Mode, error)
	GetByID(ctx context.Context, id int64) (*domain.Mode, error)
	Create(ctx context.Context, mode *domain.Mode) error
	Update(ctx context.Context, mode *domain.Mode) error
	Delete(ctx context.Context, id int64) error

	// Ensure returns the mode with the given name, creating it if absent
	Ensure(ctx context.Context, name, slug string) (*domain.Mode, error)
}

type VehicleTypeRepository interface {
	List(ctx context.Context) ([]domain.VehicleType, error)
	GetByID(ctx context.Context, id int64) (*domain.VehicleType, error)
	Create(ctx context.Context, vt *domain.VehicleType) error
	Update(ctx context.Context, vt *domain.VehicleType) error
	Delete(ctx context.Context, id int64) error
}

// StatusTypeRepository - service status vocabulary
type StatusTypeRepository interface {
	// List returns types ordered by severity, then name
	List(ctx context.Context) ([]domain.ServiceStatusType, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceStatusType, error)
	Create(ctx context.Context, st *domain.ServiceStatusType) error
	Update(ctx context.Context, st *domain.ServiceStatusType) error
	Delete(ctx context.Context, id int64) error

	// Seed inserts missing types by name and returns how many were added
	Seed(ctx context.Context, types []domain.ServiceStatusType) (int, error)
}
