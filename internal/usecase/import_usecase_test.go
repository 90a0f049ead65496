package usecase_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/pkg/metrics"
	"github.com/transit-site/internal/usecase"
)

type importMocks struct {
	operators *MockOperatorRepository
	modes     *MockModeRepository
	routes    *MockRouteRepository
	bustimes  *MockBustimesRepository
	cache     *MockCacheRepository
}

func newImportUseCase() (*usecase.ImportUseCase, importMocks) {
	m := importMocks{
		operators: &MockOperatorRepository{},
		modes:     &MockModeRepository{},
		routes:    &MockRouteRepository{},
		bustimes:  &MockBustimesRepository{},
		cache:     &MockCacheRepository{},
	}
	uc := usecase.NewImportUseCase(m.operators, m.modes, m.routes, m.bustimes, m.cache, zap.NewNop())
	return uc, m
}

func TestImportUseCase_Import(t *testing.T) {
	ctx := context.Background()
	operator := &domain.Operator{ID: 7, Name: "First Hampshire", BustimesSlug: "first-hampshire"}
	bus := &domain.Mode{ID: 1, Name: domain.BusModeName, Slug: domain.BusModeSlug}

	t.Run("creates and updates routes", func(t *testing.T) {
		uc, m := newImportUseCase()
		before := testutil.ToFloat64(metrics.ImportRunsTotal.WithLabelValues(metrics.OutcomeSuccess))

		m.operators.On("GetBySlug", ctx, "first-hampshire").Return(operator, nil)
		m.bustimes.On("FetchServices", ctx, "FHAM").Return([]domain.BustimesService{
			{ID: 101, LineName: "X5", Description: "Fareham - Gosport"},
			{ID: 102, LineName: "9", Description: "Fareham - Stubbington - Gosport"},
		}, nil)
		m.modes.On("Ensure", ctx, "Bus", "bus").Return(bus, nil)
		m.routes.On("Upsert", ctx, domain.RouteImport{
			BustimesID: 101, Service: "X5", Origin: "Fareham", Destination: "Gosport",
			OperatorID: 7, ModeID: 1,
		}).Return(true, nil)
		m.routes.On("Upsert", ctx, domain.RouteImport{
			BustimesID: 102, Service: "9", Origin: "Fareham", Destination: "Gosport", Via: "Stubbington",
			OperatorID: 7, ModeID: 1,
		}).Return(false, nil)
		m.cache.On("Delete", ctx, mock.Anything).Return(nil)

		result, err := uc.Import(ctx, "FHAM", "first-hampshire")
		require.NoError(t, err)
		assert.Equal(t, 2, result.Fetched)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, "First Hampshire", result.OperatorName)

		after := testutil.ToFloat64(metrics.ImportRunsTotal.WithLabelValues(metrics.OutcomeSuccess))
		assert.Equal(t, before+1, after)

		m.routes.AssertExpectations(t)
		m.cache.AssertExpectations(t)
	})

	t.Run("unknown operator writes nothing", func(t *testing.T) {
		uc, m := newImportUseCase()
		m.operators.On("GetBySlug", ctx, "nobody").Return(nil, errors.ErrOperatorNotFound)

		result, err := uc.Import(ctx, "FHAM", "nobody")
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errors.ErrOperatorNotFound))
		m.bustimes.AssertNotCalled(t, "FetchServices", mock.Anything, mock.Anything)
		m.routes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("empty results write nothing", func(t *testing.T) {
		uc, m := newImportUseCase()
		m.operators.On("GetBySlug", ctx, "first-hampshire").Return(operator, nil)
		m.bustimes.On("FetchServices", ctx, "FHAM").Return([]domain.BustimesService{}, nil)

		result, err := uc.Import(ctx, "FHAM", "first-hampshire")
		require.NoError(t, err)
		assert.True(t, result.Empty())
		m.modes.AssertNotCalled(t, "Ensure", mock.Anything, mock.Anything, mock.Anything)
		m.routes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
		m.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("external failure aborts", func(t *testing.T) {
		uc, m := newImportUseCase()
		m.operators.On("GetBySlug", ctx, "first-hampshire").Return(operator, nil)
		m.bustimes.On("FetchServices", ctx, "FHAM").Return(nil, errors.ErrExternalService)

		result, err := uc.Import(ctx, "FHAM", "first-hampshire")
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errors.ErrExternalService))
		m.routes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	})

	t.Run("upsert failure stops the run", func(t *testing.T) {
		uc, m := newImportUseCase()
		m.operators.On("GetBySlug", ctx, "first-hampshire").Return(operator, nil)
		m.bustimes.On("FetchServices", ctx, "FHAM").Return([]domain.BustimesService{
			{ID: 1, LineName: "1", Description: "A - B"},
			{ID: 2, LineName: "1", Description: "A - B"},
			{ID: 3, LineName: "3", Description: "C - D"},
		}, nil)
		m.modes.On("Ensure", ctx, "Bus", "bus").Return(bus, nil)
		m.routes.On("Upsert", ctx, mock.MatchedBy(func(ri domain.RouteImport) bool { return ri.BustimesID == 1 })).
			Return(true, nil)
		m.routes.On("Upsert", ctx, mock.MatchedBy(func(ri domain.RouteImport) bool { return ri.BustimesID == 2 })).
			Return(false, errors.ErrDuplicate)
		m.cache.On("Delete", ctx, mock.Anything).Return(nil)

		result, err := uc.Import(ctx, "FHAM", "first-hampshire")
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, errors.ErrDuplicate))
		m.routes.AssertNumberOfCalls(t, "Upsert", 2)
		m.cache.AssertExpectations(t)
	})
}
