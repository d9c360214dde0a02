package errors

import (
	"github.com/gofiber/fiber/v2"
)

// RaiseError sends a generic error body. Detailed causes belong in the server
// log, never in the response.
func RaiseError(context *fiber.Ctx, status int, message string) error {
	return context.Status(status).JSON(fiber.Map{"error": message})
}

func RaiseInternalServerError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusInternalServerError, message)
}

func RaiseBadRequestError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusBadRequest, message)
}

func RaiseNotFoundError(context *fiber.Ctx, message string) error {
	return RaiseError(context, fiber.StatusNotFound, message)
}
