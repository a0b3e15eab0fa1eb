package routes

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/controllers"
	"storefront-app/middleware"
)

// SetupAdminRoutes configures the registration approval panel
func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.Protected())

	admin.Get("/registrations", middleware.RequirePermission("registrations"), controllers.GetPendingRegistrations)
	admin.Post("/registrations/:id/approve", middleware.RequirePermission("registrations"), controllers.ApproveRegistration)
	admin.Post("/registrations/:id/reject", middleware.RequirePermission("registrations"), controllers.RejectRegistration)

	admin.Get("/blacklist", middleware.RequirePermission("blacklist"), controllers.GetBlacklist)
	admin.Post("/accounts/:id/deactivate", middleware.RequirePermission("blacklist"), controllers.DeactivateAccount)
	admin.Post("/accounts/:id/reactivate", middleware.RequirePermission("blacklist"), controllers.ReactivateAccount)
}
