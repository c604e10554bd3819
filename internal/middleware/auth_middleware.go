package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"go-travel-agency/pkg/jwt"
)

// RequireAuth validates the bearer token and sets the caller's identity
// in the request context. An expired token answers with the "jwt expired"
// message the client interceptor matches on.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing authorization token"})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid authorization format. Use: Bearer <token>"})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return c.Status(401).JSON(fiber.Map{"error": "jwt expired"})
			}
			return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_email", claims.Email)
		c.Locals("user_name", claims.Name)
		c.Locals("user_permissions", claims.Permissions)

		return c.Next()
	}
}

// RequirePermission checks the authenticated caller for a
// "module:action" permission code.
func RequirePermission(required string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		permissions, ok := c.Locals("user_permissions").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No permissions found"})
		}

		for _, p := range permissions {
			if p == required {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires '" + required + "' permission",
		})
	}
}
