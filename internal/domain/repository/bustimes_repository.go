package repository

import (
	"context"

	"github.com/transit-site/internal/domain"
)

// BustimesRepository fetches services from the bustimes.org API
type BustimesRepository interface {
	// FetchServices returns every service for the operator code, following pagination
	FetchServices(ctx context.Context, operatorCode string) ([]domain.BustimesService, error)
}
