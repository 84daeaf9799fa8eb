package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UserIDKey is the fiber locals key holding the caller's *uuid.UUID.
const UserIDKey = "user_id"

// Identity extracts the caller identity from the X-User-ID header set by
// the API gateway. Missing or malformed headers leave the request
// anonymous; handlers decide whether an identity is required.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("X-User-ID")
		if header != "" {
			if id, err := uuid.Parse(header); err == nil {
				c.Locals(UserIDKey, &id)
			}
		}
		return c.Next()
	}
}

// UserID reads the identity stored by Identity. Returns nil for
// anonymous requests.
func UserID(c *fiber.Ctx) *uuid.UUID {
	if id, ok := c.Locals(UserIDKey).(*uuid.UUID); ok {
		return id
	}
	return nil
}
