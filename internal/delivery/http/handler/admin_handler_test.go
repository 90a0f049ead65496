package handler

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
	"github.com/transit-site/internal/usecase/dto"
)

func newModeResourceApp(svc ResourceService[domain.Mode, dto.ModeRequest]) *fiber.App {
	app := fiber.New()
	RegisterResource[domain.Mode, dto.ModeRequest](app, "modes", svc, nopLogger)
	return app
}

func TestResourceHandler_List(t *testing.T) {
	svc := new(MockModeResource)
	svc.On("List", mock.Anything).Return([]domain.Mode{{ID: 1, Name: "Bus", Slug: "bus"}}, nil)

	resp, env := doRequest(t, newModeResourceApp(svc), http.MethodGet, "/modes", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	if assert.NotNil(t, env.Meta) {
		assert.Equal(t, 1, env.Meta.Total)
	}
}

func TestResourceHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockModeResource)
		svc.On("Get", mock.Anything, int64(4)).Return(&domain.Mode{ID: 4, Name: "Tram", Slug: "tram"}, nil)

		resp, env := doRequest(t, newModeResourceApp(svc), http.MethodGet, "/modes/4", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, string(env.Data), `"tram"`)
	})

	t.Run("non numeric id", func(t *testing.T) {
		svc := new(MockModeResource)

		resp, env := doRequest(t, newModeResourceApp(svc), http.MethodGet, "/modes/abc", "")

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
		}
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("missing record", func(t *testing.T) {
		svc := new(MockModeResource)
		svc.On("Get", mock.Anything, int64(9)).Return(nil, errors.ErrRecordNotFound)

		resp, _ := doRequest(t, newModeResourceApp(svc), http.MethodGet, "/modes/9", "")

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestResourceHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockModeResource)
		svc.On("Create", mock.Anything, &dto.ModeRequest{Name: "Ferry", Slug: "ferry"}).
			Return(&domain.Mode{ID: 3, Name: "Ferry", Slug: "ferry"}, nil)

		resp, env := doRequest(t, newModeResourceApp(svc), http.MethodPost, "/modes",
			`{"name":"Ferry","slug":"ferry"}`)

		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
		assert.Contains(t, string(env.Data), `"id":3`)
		svc.AssertExpectations(t)
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockModeResource)

		resp, env := doRequest(t, newModeResourceApp(svc), http.MethodPost, "/modes", `{"name":`)

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "INVALID_REQUEST", env.Error.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		svc := new(MockModeResource)
		svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.ErrDuplicate)

		resp, env := doRequest(t, newModeResourceApp(svc), http.MethodPost, "/modes",
			`{"name":"Bus","slug":"bus"}`)

		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "DUPLICATE_RECORD", env.Error.Code)
		}
	})
}

func TestResourceHandler_UpdateAndDelete(t *testing.T) {
	svc := new(MockModeResource)
	svc.On("Update", mock.Anything, int64(2), &dto.ModeRequest{Name: "Coach", Slug: "coach"}).
		Return(&domain.Mode{ID: 2, Name: "Coach", Slug: "coach"}, nil)
	svc.On("Delete", mock.Anything, int64(2)).Return(nil)
	svc.On("Delete", mock.Anything, int64(1)).Return(errors.ErrReferenced)

	app := newModeResourceApp(svc)

	resp, _ := doRequest(t, app, http.MethodPut, "/modes/2", `{"name":"Coach","slug":"coach"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = doRequest(t, app, http.MethodDelete, "/modes/2", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, env := doRequest(t, app, http.MethodDelete, "/modes/1", "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	if assert.NotNil(t, env.Error) {
		assert.Equal(t, "REFERENTIAL_INTEGRITY", env.Error.Code)
	}

	svc.AssertExpectations(t)
}

func newAdminApp(svc AdminService) *fiber.App {
	h := NewAdminHandler(svc, nopLogger)
	app := fiber.New()
	app.Get("/schema", h.Schema)
	app.Get("/schema/:entity", h.SchemaEntity)
	app.Patch("/routes/:id/display-order", h.SetDisplayOrder)
	app.Post("/imports", h.EnqueueImport)
	return app
}

func TestAdminHandler_Schema(t *testing.T) {
	svc := new(MockAdminService)
	svc.On("Schema").Return(domain.AdminSchema())

	resp, env := doRequest(t, newAdminApp(svc), http.MethodGet, "/schema", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	if assert.NotNil(t, env.Meta) {
		assert.Equal(t, len(domain.AdminSchema()), env.Meta.Total)
	}
}

func TestAdminHandler_SetDisplayOrder(t *testing.T) {
	order := 5
	svc := new(MockAdminService)
	svc.On("SetDisplayOrder", mock.Anything, int64(12), dto.DisplayOrderRequest{DisplayOrder: &order}).
		Return(&domain.Route{ID: 12, DisplayOrder: 5}, nil)

	resp, env := doRequest(t, newAdminApp(svc), http.MethodPatch, "/routes/12/display-order", `{"display_order":5}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"display_order":5`)
	svc.AssertExpectations(t)
}

func TestAdminHandler_EnqueueImport(t *testing.T) {
	req := dto.ImportRequest{OperatorCode: "ANWE", OperatorSlug: "arriva-north-west"}

	t.Run("accepted", func(t *testing.T) {
		requestID := uuid.New()
		svc := new(MockAdminService)
		svc.On("EnqueueImport", mock.Anything, req).
			Return(&dto.ImportQueuedResponse{RequestID: requestID.String(), MessageID: "1-0"}, nil)

		resp, env := doRequest(t, newAdminApp(svc), http.MethodPost, "/imports",
			`{"operator_code":"ANWE","operator_slug":"arriva-north-west"}`)

		assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
		assert.Contains(t, string(env.Data), requestID.String())
	})

	t.Run("queue failure", func(t *testing.T) {
		svc := new(MockAdminService)
		svc.On("EnqueueImport", mock.Anything, req).Return(nil, errors.ErrQueueError)

		resp, env := doRequest(t, newAdminApp(svc), http.MethodPost, "/imports",
			`{"operator_code":"ANWE","operator_slug":"arriva-north-west"}`)

		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "QUEUE_ERROR", env.Error.Code)
		}
	})
}

func TestAdminHandler_SchemaEntity(t *testing.T) {
	app := newAdminApp(new(MockAdminService))

	resp, env := doRequest(t, app, http.MethodGet, "/schema/routes", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"path":"routes"`)

	resp, env = doRequest(t, app, http.MethodGet, "/schema/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	if assert.NotNil(t, env.Error) {
		assert.Equal(t, "RECORD_NOT_FOUND", env.Error.Code)
	}
}
