package routes

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/controllers"
	"storefront-app/middleware"
)

// SetupCatalogRoutes configures products and categories. Reads are
// public; writes need the matching admin-panel permission.
func SetupCatalogRoutes(app *fiber.App) {
	products := app.Group("/products")
	products.Get("/", controllers.GetAllProducts)
	products.Get("/:id", controllers.GetProduct)
	products.Post("/", middleware.Protected(), middleware.RequirePermission("products"), controllers.CreateProduct)
	products.Put("/:id", middleware.Protected(), middleware.RequirePermission("products"), controllers.UpdateProduct)
	products.Delete("/:id", middleware.Protected(), middleware.RequirePermission("products"), controllers.DeleteProduct)
	products.Post("/:id/image", middleware.Protected(), middleware.RequirePermission("products"), controllers.UploadProductImage)

	categories := app.Group("/categories")
	categories.Get("/", controllers.GetAllCategories)
	categories.Post("/", middleware.Protected(), middleware.RequirePermission("categories"), controllers.CreateCategory)
	categories.Put("/:id", middleware.Protected(), middleware.RequirePermission("categories"), controllers.UpdateCategory)
	categories.Delete("/:id", middleware.Protected(), middleware.RequirePermission("categories"), controllers.DeleteCategory)
}
