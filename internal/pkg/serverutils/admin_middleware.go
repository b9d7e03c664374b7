package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

const AdminSecretHeader = "X-Admin-Secret"

// AdminAuthMiddleware guards the admin surface with a shared secret
// header. The compare is constant time.
func AdminAuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return ErrorResponse(c, fiber.StatusInternalServerError, "admin secret not configured")
		}

		provided := c.Get(AdminSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return ErrorResponse(c, fiber.StatusUnauthorized, "unauthorized")
		}

		return c.Next()
	}
}
