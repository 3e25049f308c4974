package middleware

import (
	"strings"

	"github.com/near/pagoda-console-sub002/internal/api"
	"github.com/near/pagoda-console-sub002/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UserIDKey is the locals key under which the bearer guard stores the caller id.
const UserIDKey = "user_id"

// Auth validates the bearer token and stores the caller's user id in locals.
func Auth(secret string, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return unauthorized(c, "missing bearer token")
		}

		claims, err := jwt.Parse(strings.TrimPrefix(header, prefix), secret)
		if err != nil {
			log.Infow("rejected bearer token", "error", err.Error(), "path", c.Path())
			return unauthorized(c, "invalid bearer token")
		}
		if claims.UserID == "" {
			return unauthorized(c, "invalid bearer token")
		}

		c.Locals(UserIDKey, claims.UserID)
		return c.Next()
	}
}

// UserID extracts the authenticated caller id set by Auth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.UNAUTHORIZED, Message: msg},
	})
}
