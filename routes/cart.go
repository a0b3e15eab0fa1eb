package routes

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/controllers"
	"storefront-app/middleware"
)

// SetupCartRoutes configures the cart; everything is scoped to the caller
func SetupCartRoutes(app *fiber.App) {
	cart := app.Group("/cart", middleware.Protected())

	cart.Get("/", controllers.GetCart)
	cart.Post("/items", controllers.AddToCart)
	cart.Delete("/items/:productId", controllers.RemoveFromCart)
	cart.Delete("/", controllers.ClearCart)
}
