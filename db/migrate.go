package db

import (
	"fmt"
	"log"

	"storefront-app/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.RegistrationRequest{},
		&models.User{},
		&models.AdminGrant{},
		&models.Role{},
		&models.Permission{},
		&models.UserRole{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	SeedPermissions(DB)

	fmt.Println("✅ Migrations applied successfully!")
}
