package middleware

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/db"
	"storefront-app/rbac"
)

// RequirePermission gates a route on one admin-panel section tag. Access
// is resolved fresh from the database on every request; admins pass every
// gate without their custom roles being consulted.
func RequirePermission(tag string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No authenticated identity",
			})
		}

		access := rbac.ResolveAccess(db.DB, email)
		if !access.Allows(tag) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have permission to perform this action",
			})
		}

		c.Locals("access", access)
		return c.Next()
	}
}

// RequireAdmin gates a route on an active admin grant.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No authenticated identity",
			})
		}

		access := rbac.ResolveAccess(db.DB, email)
		if !access.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "You don't have the required role to perform this action",
			})
		}

		c.Locals("access", access)
		return c.Next()
	}
}
