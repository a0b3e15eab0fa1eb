package routes

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/controllers"
	"storefront-app/middleware"
)

// SetupOrderRoutes configures checkout and order management
func SetupOrderRoutes(app *fiber.App) {
	orders := app.Group("/orders", middleware.Protected())

	orders.Post("/checkout", controllers.Checkout)
	orders.Get("/", controllers.GetMyOrders)

	orders.Get("/all", middleware.RequirePermission("orders"), controllers.GetAllOrders)
	orders.Patch("/:id/status", middleware.RequirePermission("orders"), controllers.UpdateOrderStatus)
}
