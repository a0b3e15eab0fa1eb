package routes

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/controllers"
	"storefront-app/middleware"
)

// SetupRBACRoutes configures roles, permissions and admin grants
func SetupRBACRoutes(app *fiber.App) {
	rbac := app.Group("/rbac", middleware.Protected())

	// Resolved access for the caller; the UI re-fetches this after any
	// role change instead of relying on push invalidation.
	rbac.Get("/access", controllers.GetAccess)

	// Permission tag catalog
	rbac.Get("/permissions", middleware.RequirePermission("roles"), controllers.GetPermissions)

	// Custom roles
	rbac.Post("/roles", middleware.RequirePermission("roles"), controllers.CreateRole)
	rbac.Get("/roles", middleware.RequirePermission("roles"), controllers.GetRoles)
	rbac.Put("/roles/:id", middleware.RequirePermission("roles"), controllers.UpdateRole)
	rbac.Delete("/roles/:id", middleware.RequirePermission("roles"), controllers.DeleteRole)

	// Role assignments
	rbac.Post("/users/role", middleware.RequirePermission("roles"), controllers.AssignRoleToUser)
	rbac.Delete("/users/:id/role/:roleId", middleware.RequirePermission("roles"), controllers.UnassignRoleFromUser)

	// Admin grants are admin-only, never delegated through a custom role
	rbac.Get("/admins", middleware.RequireAdmin(), controllers.GetAdmins)
	rbac.Post("/admins", middleware.RequireAdmin(), controllers.GrantAdmin)
	rbac.Delete("/admins/:userId", middleware.RequireAdmin(), controllers.RevokeAdmin)
}
