package handler

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
)

func newStatusApp(svc StatusService) *fiber.App {
	h := NewStatusHandler(svc, nopLogger)
	app := fiber.New()
	app.Get("/status", h.GetBoard)
	app.Get("/incident", h.GetIncident)
	return app
}

func TestStatusHandler_GetBoard(t *testing.T) {
	svc := new(MockStatusService)
	svc.On("GetBoard", mock.Anything).Return(&domain.DisruptionBoard{
		Modes:       []domain.ModeDisruptions{},
		RouteCount:  3,
		StatusCount: 4,
	}, nil)

	resp, env := doRequest(t, newStatusApp(svc), http.MethodGet, "/status", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	if assert.NotNil(t, env.Meta) {
		assert.Equal(t, 3, env.Meta.Total)
	}
	assert.Contains(t, string(env.Data), `"status_count":4`)
}

func TestStatusHandler_GetBoardDatabaseError(t *testing.T) {
	svc := new(MockStatusService)
	svc.On("GetBoard", mock.Anything).Return(nil, errors.ErrDatabaseError)

	resp, env := doRequest(t, newStatusApp(svc), http.MethodGet, "/status", "")

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	if assert.NotNil(t, env.Error) {
		assert.Equal(t, "DATABASE_ERROR", env.Error.Code)
	}
}

func TestStatusHandler_GetIncident(t *testing.T) {
	t.Run("no incident is null data", func(t *testing.T) {
		svc := new(MockStatusService)
		svc.On("GetIncident", mock.Anything).Return(nil, nil)

		resp, env := doRequest(t, newStatusApp(svc), http.MethodGet, "/incident", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "null", string(env.Data))
	})

	t.Run("active incident", func(t *testing.T) {
		svc := new(MockStatusService)
		svc.On("GetIncident", mock.Anything).Return(&domain.NetworkIncident{ID: 7, Title: "Power failure"}, nil)

		resp, env := doRequest(t, newStatusApp(svc), http.MethodGet, "/incident", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(env.Data), "Power failure")
	})
}
