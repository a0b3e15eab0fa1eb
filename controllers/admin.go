package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"storefront-app/db"
	"storefront-app/models"
)

// GetAdmins returns users with an active admin grant.
func GetAdmins(c *fiber.Ctx) error {
	var grants []models.AdminGrant

	if err := db.DB.Preload("User").Where("removed_at IS NULL").Find(&grants).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get admins",
		})
	}

	return c.JSON(grants)
}

// GrantAdmin creates an admin grant for an approved user
func GrantAdmin(c *fiber.Ctx) error {
	type GrantInput struct {
		UserID uint `json:"user_id"`
	}

	input := new(GrantInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var user models.User
	if db.DB.First(&user, input.UserID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	var existing models.AdminGrant
	if db.DB.Where("user_id = ? AND removed_at IS NULL", input.UserID).
		First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User is already an admin",
		})
	}

	grant := models.AdminGrant{
		UserID:    input.UserID,
		GrantedBy: c.Locals("userID").(uint),
	}
	if err := db.DB.Create(&grant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to grant admin",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(grant)
}

// RevokeAdmin sets RemovedAt on the active grant. The row itself stays
// for the audit trail.
func RevokeAdmin(c *fiber.Ctx) error {
	userID := c.Params("userId")

	now := time.Now()
	result := db.DB.Model(&models.AdminGrant{}).
		Where("user_id = ? AND removed_at IS NULL", userID).
		Update("removed_at", now)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to revoke admin",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No active admin grant for this user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Admin access revoked",
	})
}
