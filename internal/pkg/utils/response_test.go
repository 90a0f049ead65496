package utils

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-site/internal/pkg/errors"
)

func call(t *testing.T, h fiber.Handler) (int, fiber.Map, []byte, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body fiber.Map
	if len(raw) > 0 && resp.Header.Get(fiber.HeaderContentType) == fiber.MIMEApplicationJSON {
		require.NoError(t, json.Unmarshal(raw, &body))
	}
	return resp.StatusCode, body, raw, resp.Header.Get(fiber.HeaderLocation)
}

func TestSendRedirect(t *testing.T) {
	status, _, raw, location := call(t, func(c *fiber.Ctx) error {
		return SendRedirect(c, "/media/maps/Night Buses.pdf")
	})

	assert.Equal(t, fiber.StatusFound, status)
	assert.Equal(t, "/media/maps/Night Buses.pdf", location)
	assert.Empty(t, raw)
}

func TestSendList(t *testing.T) {
	t.Run("counts items", func(t *testing.T) {
		status, body, _, _ := call(t, func(c *fiber.Ctx) error {
			return SendList(c, []string{"bus", "ferry"})
		})

		assert.Equal(t, fiber.StatusOK, status)
		assert.Len(t, body["data"], 2)
		assert.Equal(t, float64(2), body["meta"].(map[string]interface{})["total"])
	})

	t.Run("nil slice is an empty array", func(t *testing.T) {
		_, body, _, _ := call(t, func(c *fiber.Ctx) error {
			return SendList[string](c, nil)
		})

		assert.Equal(t, []interface{}{}, body["data"])
	})
}

func TestSendAcceptedAndNoContent(t *testing.T) {
	status, body, _, _ := call(t, func(c *fiber.Ctx) error {
		return SendAccepted(c, fiber.Map{"request_id": "abc"})
	})
	assert.Equal(t, fiber.StatusAccepted, status)
	assert.Equal(t, "abc", body["data"].(map[string]interface{})["request_id"])

	status, _, raw, _ := call(t, SendNoContent)
	assert.Equal(t, fiber.StatusNoContent, status)
	assert.Empty(t, raw)
}

func TestSendError(t *testing.T) {
	t.Run("app error keeps its status", func(t *testing.T) {
		status, body, _, _ := call(t, func(c *fiber.Ctx) error {
			return SendError(c, errors.ErrMapNotFound)
		})

		assert.Equal(t, fiber.StatusNotFound, status)
		assert.Equal(t, "MAP_NOT_FOUND", body["error"].(map[string]interface{})["code"])
	})

	t.Run("plain error is internal", func(t *testing.T) {
		status, _, _, _ := call(t, func(c *fiber.Ctx) error {
			return SendError(c, io.ErrUnexpectedEOF)
		})

		assert.Equal(t, fiber.StatusInternalServerError, status)
	})
}
