package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-site/internal/config"
	"github.com/transit-site/internal/delivery/http/handler"
	"github.com/transit-site/internal/usecase"
)

func newTestServer(password string) *Server {
	cfg := &config.Config{
		Admin: config.AdminConfig{User: "admin", Password: password},
	}
	logger := zap.NewNop()
	return NewServer(cfg, logger, Handlers{
		Status:   handler.NewStatusHandler(nil, logger),
		Operator: handler.NewOperatorHandler(nil, logger),
		Route:    handler.NewRouteHandler(nil, logger),
		Catalog:  handler.NewCatalogHandler(nil, logger),
		Admin:    handler.NewAdminHandler(nil, logger),
		AdminUC:  &usecase.AdminUseCase{},
	})
}

func TestServer_Health(t *testing.T) {
	s := newTestServer("secret")

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	s := newTestServer("secret")

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestServer_AdminRequiresCredentials(t *testing.T) {
	s := newTestServer("secret")

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/admin/api/schema", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("WWW-Authenticate"), "Basic")

	req := httptest.NewRequest(http.MethodGet, "/admin/api/schema", nil)
	req.SetBasicAuth("admin", "wrong")
	resp, err = s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_AdminDisabledWithoutPassword(t *testing.T) {
	s := newTestServer("")

	req := httptest.NewRequest(http.MethodGet, "/admin/api/schema", nil)
	req.SetBasicAuth("admin", "")
	resp, err := s.App().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer("secret")

	_, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/api/v1/health", nil), -1)
	require.NoError(t, err)

	resp, err := s.App().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "http_requests_total")
}
