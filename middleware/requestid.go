package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestId tags every request with an id so server-side log lines can be
// correlated with a client report. An incoming X-Request-ID is kept.
func RequestId() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestid", id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}
