package Controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"DailyTodo/Services"
)

// statusFromError maps the service error taxonomy onto HTTP statuses.
func statusFromError(err error) int {
	var validationErr *Services.ValidationError
	var notFoundErr *Services.NotFoundError
	var immutableErr *Services.ImmutableStateError

	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return fiber.StatusNotFound
	case errors.As(err, &immutableErr):
		return fiber.StatusForbidden
	}
	return fiber.StatusInternalServerError
}

func errorJSON(ctx *fiber.Ctx, err error) error {
	return ctx.Status(statusFromError(err)).JSON(fiber.Map{"error": err.Error()})
}
