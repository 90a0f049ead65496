package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain/repository"
	"github.com/transit-site/internal/repository/postgres"
)

// Repositories bundles every postgres repository over one test connection
type Repositories struct {
	DB            *postgres.DB
	Modes         repository.ModeRepository
	VehicleTypes  repository.VehicleTypeRepository
	Operators     repository.OperatorRepository
	Routes        repository.RouteRepository
	Tickets       repository.TicketRepository
	Fares         repository.FareRepository
	StatusTypes   repository.StatusTypeRepository
	RouteStatuses repository.RouteStatusRepository
	Incidents     repository.IncidentRepository
	Maps          repository.MapRepository
}

// NewRepositoriesForTest wraps the test connection and builds every repository
func NewRepositoriesForTest(db *sqlx.DB, logger *zap.Logger) *Repositories {
	pgDB := postgres.NewDBForTest(db, logger)
	return &Repositories{
		DB:            pgDB,
		Modes:         postgres.NewModeRepository(pgDB),
		VehicleTypes:  postgres.NewVehicleTypeRepository(pgDB),
		Operators:     postgres.NewOperatorRepository(pgDB),
		Routes:        postgres.NewRouteRepository(pgDB),
		Tickets:       postgres.NewTicketRepository(pgDB),
		Fares:         postgres.NewFareRepository(pgDB),
		StatusTypes:   postgres.NewStatusTypeRepository(pgDB),
		RouteStatuses: postgres.NewRouteStatusRepository(pgDB),
		Incidents:     postgres.NewIncidentRepository(pgDB),
		Maps:          postgres.NewMapRepository(pgDB),
	}
}
