package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/transit-site/internal/pkg/errors"
)

// SuccessResponse is the envelope of every JSON body the site serves.
type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *errors.AppError `json:"error"`
}

// Meta carries listing counts. Total is the number of top-level items, or
// the number of disrupted routes on the status board.
type Meta struct {
	Total int `json:"total,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendList wraps a slice and sets Meta.Total to its length.
func SendList[T any](c *fiber.Ctx, items []T) error {
	if items == nil {
		items = []T{}
	}
	return SendSuccess(c, items, &Meta{Total: len(items)})
}

func SendCreated(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{Data: data})
}

// SendAccepted answers a request whose work continues in the background,
// such as a queued route import.
func SendAccepted(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusAccepted).JSON(SuccessResponse{Data: data})
}

func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// SendRedirect answers 302 with location copied verbatim and no body.
// Stored map paths may contain spaces and are not re-encoded.
func SendRedirect(c *fiber.Ctx, location string) error {
	c.Set(fiber.HeaderLocation, location)
	c.Status(fiber.StatusFound)
	return c.Send(nil)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer,
	})
}
