package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"storefront-app/approval"
)

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StatusForError maps workflow errors onto HTTP statuses. Anything
// unrecognized is a backing-store failure and comes back as a 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, approval.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, approval.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, approval.ErrValidation):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
