package serverutils

import (
	"errors"

	"ai-humanizer-be/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the envelope returned on every failed request.
// Successful responses return the resource itself.
type ErrorBody struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse writes the error envelope with the given status code.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorBody{
		Status:  status,
		Message: message,
	})
}

// WriteError maps a domain error onto the HTTP surface.
func WriteError(c *fiber.Ctx, err error) error {
	var validationErr *dto.ValidationError
	if errors.As(err, &validationErr) {
		return ErrorResponse(c, fiber.StatusBadRequest, validationErr.Message)
	}

	var notFoundErr *dto.NotFoundError
	if errors.As(err, &notFoundErr) {
		return ErrorResponse(c, fiber.StatusNotFound, notFoundErr.Error())
	}

	var transientErr *dto.TransientError
	if errors.As(err, &transientErr) {
		return ErrorResponse(c, fiber.StatusServiceUnavailable, "service temporarily unavailable")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}

	return ErrorResponse(c, fiber.StatusInternalServerError, "internal server error")
}

// ErrorHandler is installed as the fiber app-level error handler so
// errors escaping handlers still produce the envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return WriteError(c, err)
}
