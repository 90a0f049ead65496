package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/transit-site/internal/pkg/errors"
)

func idParam(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"id": raw,
		})
	}
	return id, nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		})
	}
	return nil
}
