package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/gofiber/fiber/v2/middleware/cors"

	"storefront-app/cron"

	"storefront-app/db"

	"storefront-app/redis"

	"storefront-app/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()
	cron.StartCronJobs()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello, World!")
	})
	routes.SetupAuthRoutes(app)
	routes.SetupRBACRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupCatalogRoutes(app)
	routes.SetupCartRoutes(app)
	routes.SetupOrderRoutes(app)

	app.Listen(":8000")
	fmt.Println("Server started on port 8000")
}
