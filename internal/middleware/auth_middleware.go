package middleware

import (
	"strings"

	"go-agroprod-ws/internal/model"
	"go-agroprod-ws/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth validates the bearer token and sets user info in context.
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
			return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired token"})
		}

		c.Locals("user_id", claims.UserID.String())
		c.Locals("user_name", claims.Name)
		c.Locals("user_role", claims.Role)
		c.Locals("user_tabs", claims.Tabs)

		return c.Next()
	}
}

// RequireTab gates a route on tab access. Admins pass every gate.
func RequireTab(tab model.Tab) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, ok := c.Locals("user_role").(string); ok && role == model.RoleAdmin {
			return c.Next()
		}

		tabs, ok := c.Locals("user_tabs").([]string)
		if !ok {
			return c.Status(403).JSON(fiber.Map{"error": "No tab access found"})
		}

		for _, t := range tabs {
			if t == string(tab) {
				return c.Next()
			}
		}

		return c.Status(403).JSON(fiber.Map{
			"error": "Forbidden: requires access to the '" + string(tab) + "' tab",
		})
	}
}

// RequireAdmin restricts a route to admin users. Edits and deletes of
// existing records are admin-only.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("user_role").(string)
		if !ok || role != model.RoleAdmin {
			return c.Status(403).JSON(fiber.Map{"error": "Forbidden: admin only"})
		}
		return c.Next()
	}
}
