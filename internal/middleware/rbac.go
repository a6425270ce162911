package middleware

import (
	"github.com/gofiber/fiber/v2"

	"facilitrack/internal/domain"
)

func RequireRole(requiredRole domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("user not found")
		}

		if !user.HasRole(requiredRole) {
			return Forbidden("insufficient permissions for this operation")
		}

		return c.Next()
	}
}

func RequireAnyRole(roles ...domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetCurrentUser(c)
		if user == nil {
			return Unauthorized("user not found")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return Forbidden("insufficient permissions for this operation")
	}
}
