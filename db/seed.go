package db

import (
	"log"

	"gorm.io/gorm"

	"storefront-app/models"
)

// SeedPermissions creates the fixed catalog of admin-panel section tags.
// Custom roles can only reference tags from this list.
func SeedPermissions(database *gorm.DB) {
	permissions := []models.Permission{
		{Name: "products", Description: "Manage the product catalog"},
		{Name: "categories", Description: "Manage product categories"},
		{Name: "orders", Description: "View and update orders"},
		{Name: "registrations", Description: "Review pending registrations"},
		{Name: "blacklist", Description: "View and reactivate deactivated accounts"},
		{Name: "roles", Description: "Manage custom roles"},
		{Name: "admins", Description: "Grant and revoke admin access"},
	}

	for _, permission := range permissions {
		var existing models.Permission
		if database.Where("name = ?", permission.Name).First(&existing).RowsAffected == 0 {
			if err := database.Create(&permission).Error; err != nil {
				log.Printf("Failed to seed permission %s: %v", permission.Name, err)
			}
		}
	}
}
