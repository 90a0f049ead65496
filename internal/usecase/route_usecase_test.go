package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/repository/cache"
	"github.com/transit-site/internal/usecase"
)

type routeMocks struct {
	routes   *MockRouteRepository
	modes    *MockModeRepository
	statuses *MockRouteStatusRepository
	maps     *MockMapRepository
	tickets  *MockTicketRepository
}

func newRouteUseCase() (*usecase.RouteUseCase, routeMocks) {
	m := routeMocks{
		routes:   &MockRouteRepository{},
		modes:    &MockModeRepository{},
		statuses: &MockRouteStatusRepository{},
		maps:     &MockMapRepository{},
		tickets:  &MockTicketRepository{},
	}
	uc := usecase.NewRouteUseCase(m.routes, m.modes, m.statuses, m.maps, m.tickets,
		cache.NewNoopCache(), zap.NewNop(), time.Minute)
	return uc, m
}

func TestRouteUseCase_List(t *testing.T) {
	ctx := context.Background()
	uc, m := newRouteUseCase()

	m.routes.On("List", ctx).Return([]domain.Route{
		{ID: 1, Service: "1", Mode: busMode, Operator: domain.OperatorRef{PrimaryHex: "#111111"},
			VehiclesUsed: []domain.VehicleType{{ID: 1, Name: "Double deck"}}},
	}, nil)
	m.modes.On("List", ctx).Return([]domain.Mode{busMode, ferryMode}, nil)

	resp, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Routes, 1)
	assert.Equal(t, "#111111", resp.Routes[0].DisplayHex)
	assert.Len(t, resp.Routes[0].VehiclesUsed, 1)
	assert.Equal(t, []domain.Mode{busMode, ferryMode}, resp.Modes)
}

func TestRouteUseCase_GetDetail(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	id := uuid.New()

	t.Run("current status is the latest active one", func(t *testing.T) {
		uc, m := newRouteUseCase()

		route := &domain.Route{ID: 4, UUID: id, OperatorID: 9, Service: "X5",
			Operator: domain.OperatorRef{ID: 9, PrimaryHex: "#ABCDEF"}}
		m.routes.On("GetByUUID", ctx, id.String()).Return(route, nil)
		m.statuses.On("ListByRoute", ctx, int64(4)).Return([]domain.RouteStatus{
			{ID: 1, IsActive: true, ValidFrom: now, StatusType: goodService},
			{ID: 2, IsActive: true, ValidFrom: now.Add(time.Hour), StatusType: severe},
			{ID: 3, IsActive: false, ValidFrom: now.Add(2 * time.Hour), StatusType: severe},
		}, nil)
		m.maps.On("List", ctx).Return([]domain.Map{{ID: 1, Slug: "network"}, {ID: 2, Slug: "town"}}, nil)
		m.tickets.On("ListByOperator", ctx, int64(9)).Return([]domain.Ticket{{ID: 5}}, nil)

		resp, err := uc.GetDetail(ctx, id.String())
		require.NoError(t, err)
		require.NotNil(t, resp.CurrentStatus)
		assert.Equal(t, int64(2), resp.CurrentStatus.ID)
		assert.Equal(t, "#ABCDEF", resp.Route.DisplayHex)
		assert.Len(t, resp.Maps, 2, "maps are not filtered by route")
		assert.Len(t, resp.Tickets, 1)
	})

	t.Run("no active status", func(t *testing.T) {
		uc, m := newRouteUseCase()

		m.routes.On("GetByUUID", ctx, id.String()).Return(&domain.Route{ID: 4, OperatorID: 9}, nil)
		m.statuses.On("ListByRoute", ctx, int64(4)).Return([]domain.RouteStatus{
			{ID: 1, IsActive: false, ValidFrom: now, StatusType: severe},
		}, nil)
		m.maps.On("List", ctx).Return([]domain.Map{}, nil)
		m.tickets.On("ListByOperator", ctx, int64(9)).Return([]domain.Ticket{}, nil)

		resp, err := uc.GetDetail(ctx, id.String())
		require.NoError(t, err)
		assert.Nil(t, resp.CurrentStatus)
	})

	t.Run("unknown uuid", func(t *testing.T) {
		uc, m := newRouteUseCase()
		m.routes.On("GetByUUID", ctx, "not-a-uuid").Return(nil, errors.ErrRouteNotFound)

		resp, err := uc.GetDetail(ctx, "not-a-uuid")
		assert.Nil(t, resp)
		assert.True(t, errors.Is(err, errors.ErrRouteNotFound))
	})
}
