package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/usecase/dto"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Meta  *struct {
		Total int `json:"total"`
	} `json:"meta"`
	Error *errors.AppError `json:"error"`
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetHome(ctx context.Context) (*dto.HomeResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.HomeResponse), args.Error(1)
}

func (m *MockCatalogService) GetFares(ctx context.Context) (*dto.FaresResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FaresResponse), args.Error(1)
}

func (m *MockCatalogService) ListMaps(ctx context.Context) ([]domain.Map, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Map), args.Error(1)
}

func (m *MockCatalogService) ResolveMap(ctx context.Context, slug string) (string, error) {
	args := m.Called(ctx, slug)
	return args.String(0), args.Error(1)
}

type MockStatusService struct {
	mock.Mock
}

func (m *MockStatusService) GetBoard(ctx context.Context) (*domain.DisruptionBoard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DisruptionBoard), args.Error(1)
}

func (m *MockStatusService) GetIncident(ctx context.Context) (*domain.NetworkIncident, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkIncident), args.Error(1)
}

type MockOperatorService struct {
	mock.Mock
}

func (m *MockOperatorService) List(ctx context.Context) ([]domain.Operator, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Operator), args.Error(1)
}

func (m *MockOperatorService) GetDetail(ctx context.Context, slug string) (*dto.OperatorDetailResponse, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.OperatorDetailResponse), args.Error(1)
}

type MockRouteService struct {
	mock.Mock
}

func (m *MockRouteService) List(ctx context.Context) (*dto.RouteListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteListResponse), args.Error(1)
}

func (m *MockRouteService) GetDetail(ctx context.Context, routeUUID string) (*dto.RouteDetailResponse, error) {
	args := m.Called(ctx, routeUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RouteDetailResponse), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) Schema() []domain.AdminEntity {
	return m.Called().Get(0).([]domain.AdminEntity)
}

func (m *MockAdminService) SetDisplayOrder(ctx context.Context, routeID int64, req dto.DisplayOrderRequest) (*domain.Route, error) {
	args := m.Called(ctx, routeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Route), args.Error(1)
}

func (m *MockAdminService) EnqueueImport(ctx context.Context, req dto.ImportRequest) (*dto.ImportQueuedResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportQueuedResponse), args.Error(1)
}

type MockModeResource struct {
	mock.Mock
}

func (m *MockModeResource) Name() string { return "mode" }

func (m *MockModeResource) List(ctx context.Context) ([]domain.Mode, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Mode), args.Error(1)
}

func (m *MockModeResource) Get(ctx context.Context, id int64) (*domain.Mode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mode), args.Error(1)
}

func (m *MockModeResource) Create(ctx context.Context, req *dto.ModeRequest) (*domain.Mode, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mode), args.Error(1)
}

func (m *MockModeResource) Update(ctx context.Context, id int64, req *dto.ModeRequest) (*domain.Mode, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mode), args.Error(1)
}

func (m *MockModeResource) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

var nopLogger = zap.NewNop()
