package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hirewise/cv-matcher/internal/services"
)

// statusForError maps service failures onto HTTP statuses: unusable input
// is the client's fault, transport trouble is a gateway problem, a model
// that breaks its output contract is a server-side processing error.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrUnsupportedFormat),
		errors.Is(err, services.ErrEmptyDocument),
		errors.Is(err, services.ErrDocumentDecode),
		errors.Is(err, services.ErrUnreadableDocument):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotConfigured):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, services.ErrUpstream):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	code := statusForError(err)
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
