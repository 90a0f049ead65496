package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/transit-site/internal/domain"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// MockOperatorRepository is a mock of OperatorRepository
type MockOperatorRepository struct {
	mock.Mock
}

func (m *MockOperatorRepository) List(ctx context.Context) ([]domain.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) ListFeatured(ctx context.Context) ([]domain.Operator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetByID(ctx context.Context, id int64) (*domain.Operator, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) GetBySlug(ctx context.Context, slug string) (*domain.Operator, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Operator), args.Error(1)
}

func (m *MockOperatorRepository) Create(ctx context.Context, op *domain.Operator) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperatorRepository) Update(ctx context.Context, op *domain.Operator) error {
	args := m.Called(ctx, op)
	return args.Error(0)
}

func (m *MockOperatorRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRouteRepository is a mock of RouteRepository
type MockRouteRepository struct {
	mock.Mock
}

func (m *MockRouteRepository) List(ctx context.Context) ([]domain.Route, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) ListByOperator(ctx context.Context, operatorID int64) ([]domain.Route, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Route, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByID(ctx context.Context, id int64) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) GetByUUID(ctx context.Context, id string) (*domain.Route, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockRouteRepository) Create(ctx context.Context, r *domain.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, r *domain.Route) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRouteRepository) UpdateDisplayOrder(ctx context.Context, id int64, order int) error {
	args := m.Called(ctx, id, order)
	return args.Error(0)
}

func (m *MockRouteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRouteRepository) Upsert(ctx context.Context, ri domain.RouteImport) (bool, error) {
	args := m.Called(ctx, ri)
	return args.Bool(0), args.Error(1)
}

// MockRouteStatusRepository is a mock of RouteStatusRepository
type MockRouteStatusRepository struct {
	mock.Mock
}

func (m *MockRouteStatusRepository) List(ctx context.Context) ([]domain.RouteStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RouteStatus), args.Error(1)
}

func (m *MockRouteStatusRepository) ListActive(ctx context.Context) ([]domain.RouteStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RouteStatus), args.Error(1)
}

func (m *MockRouteStatusRepository) ListByRoute(ctx context.Context, routeID int64) ([]domain.RouteStatus, error) {
	args := m.Called(ctx, routeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RouteStatus), args.Error(1)
}

func (m *MockRouteStatusRepository) GetByID(ctx context.Context, id int64) (*domain.RouteStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteStatus), args.Error(1)
}

func (m *MockRouteStatusRepository) Create(ctx context.Context, s *domain.RouteStatus) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRouteStatusRepository) Update(ctx context.Context, s *domain.RouteStatus) error {
	return m.Called(ctx, s).Error(0)
}

func (m *MockRouteStatusRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockIncidentRepository is a mock of IncidentRepository
type MockIncidentRepository struct {
	mock.Mock
}

func (m *MockIncidentRepository) List(ctx context.Context) ([]domain.NetworkIncident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NetworkIncident), args.Error(1)
}

func (m *MockIncidentRepository) ListActive(ctx context.Context) ([]domain.NetworkIncident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NetworkIncident), args.Error(1)
}

func (m *MockIncidentRepository) GetByID(ctx context.Context, id int64) (*domain.NetworkIncident, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkIncident), args.Error(1)
}

func (m *MockIncidentRepository) Create(ctx context.Context, n *domain.NetworkIncident) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockIncidentRepository) Update(ctx context.Context, n *domain.NetworkIncident) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockIncidentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockTicketRepository is a mock of TicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) ListByOperator(ctx context.Context, operatorID int64) ([]domain.Ticket, error) {
	args := m.Called(ctx, operatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockTicketRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockModeRepository is a mock of ModeRepository
type MockModeRepository struct {
	mock.Mock
}

func (m *MockModeRepository) List(ctx context.Context) ([]domain.Mode, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mode), args.Error(1)
}

func (m *MockModeRepository) GetByID(ctx context.Context, id int64) (*domain.Mode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mode), args.Error(1)
}

func (m *MockModeRepository) Create(ctx context.Context, mode *domain.Mode) error {
	return m.Called(ctx, mode).Error(0)
}

func (m *MockModeRepository) Update(ctx context.Context, mode *domain.Mode) error {
	return m.Called(ctx, mode).Error(0)
}

func (m *MockModeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockModeRepository) Ensure(ctx context.Context, name, slug string) (*domain.Mode, error) {
	args := m.Called(ctx, name, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mode), args.Error(1)
}

// MockMapRepository is a mock of MapRepository
type MockMapRepository struct {
	mock.Mock
}

func (m *MockMapRepository) List(ctx context.Context) ([]domain.Map, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Map), args.Error(1)
}

func (m *MockMapRepository) GetByID(ctx context.Context, id int64) (*domain.Map, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Map), args.Error(1)
}

func (m *MockMapRepository) GetBySlug(ctx context.Context, slug string) (*domain.Map, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Map), args.Error(1)
}

func (m *MockMapRepository) Create(ctx context.Context, mp *domain.Map) error {
	return m.Called(ctx, mp).Error(0)
}

func (m *MockMapRepository) Update(ctx context.Context, mp *domain.Map) error {
	return m.Called(ctx, mp).Error(0)
}

func (m *MockMapRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockFareRepository is a mock of FareRepository
type MockFareRepository struct {
	mock.Mock
}

func (m *MockFareRepository) List(ctx context.Context) ([]domain.Fare, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Fare), args.Error(1)
}

func (m *MockFareRepository) GetByID(ctx context.Context, id int64) (*domain.Fare, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Fare), args.Error(1)
}

func (m *MockFareRepository) Create(ctx context.Context, f *domain.Fare) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFareRepository) Update(ctx context.Context, f *domain.Fare) error {
	return m.Called(ctx, f).Error(0)
}

func (m *MockFareRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockBustimesRepository is a mock of BustimesRepository
type MockBustimesRepository struct {
	mock.Mock
}

func (m *MockBustimesRepository) FetchServices(ctx context.Context, operatorCode string) ([]domain.BustimesService, error) {
	args := m.Called(ctx, operatorCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BustimesService), args.Error(1)
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}
