package controllers

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/db"
	"storefront-app/models"
	"storefront-app/rbac"
)

// GetAccess returns the caller's resolved access. The UI calls this once
// when a session opens and again on demand after role changes.
func GetAccess(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	return c.JSON(rbac.ResolveAccess(db.DB, email))
}

// GetPermissions returns the fixed catalog of admin-panel section tags.
func GetPermissions(c *fiber.Ctx) error {
	var permissions []models.Permission

	if err := db.DB.Find(&permissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get permissions",
		})
	}

	return c.JSON(permissions)
}

type roleInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

// catalogPermissions resolves tag names against the seeded catalog.
func catalogPermissions(tags []string) ([]models.Permission, bool) {
	permissions := make([]models.Permission, 0, len(tags))
	for _, tag := range tags {
		var permission models.Permission
		if db.DB.Where("name = ?", tag).First(&permission).RowsAffected == 0 {
			return nil, false
		}
		permissions = append(permissions, permission)
	}
	return permissions, true
}

// CreateRole creates a new custom role from catalog tags
func CreateRole(c *fiber.Ctx) error {
	input := new(roleInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if input.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Role name is required",
		})
	}

	// Check if role already exists
	var existingRole models.Role
	if db.DB.Where("name = ?", input.Name).First(&existingRole).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Role with this name already exists",
		})
	}

	permissions, ok := catalogPermissions(input.Permissions)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown permission tag",
		})
	}

	role := models.Role{
		Name:        input.Name,
		Description: input.Description,
		Permissions: permissions,
	}
	if err := db.DB.Create(&role).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create role",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(role)
}

// GetRoles returns all custom roles with their permission tags
func GetRoles(c *fiber.Ctx) error {
	var roles []models.Role

	if err := db.DB.Preload("Permissions").Find(&roles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get roles",
		})
	}

	return c.JSON(roles)
}

// UpdateRole replaces a role's name, description and permission tags
func UpdateRole(c *fiber.Ctx) error {
	id := c.Params("id")

	var role models.Role
	if db.DB.First(&role, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Role not found",
		})
	}

	input := new(roleInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	permissions, ok := catalogPermissions(input.Permissions)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown permission tag",
		})
	}

	if input.Name != "" {
		role.Name = input.Name
	}
	role.Description = input.Description

	if err := db.DB.Save(&role).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update role",
		})
	}
	if err := db.DB.Model(&role).Association("Permissions").Replace(permissions); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update role permissions",
		})
	}

	return c.JSON(role)
}

// DeleteRole deletes a custom role and its assignments
func DeleteRole(c *fiber.Ctx) error {
	id := c.Params("id")

	var role models.Role
	if db.DB.First(&role, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Role not found",
		})
	}

	if err := db.DB.Where("role_id = ?", role.ID).Delete(&models.UserRole{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete role assignments",
		})
	}
	if err := db.DB.Delete(&role).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete role",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AssignRoleToUser assigns a custom role to an approved user
func AssignRoleToUser(c *fiber.Ctx) error {
	type AssignRoleInput struct {
		UserID uint `json:"user_id"`
		RoleID uint `json:"role_id"`
	}

	input := new(AssignRoleInput)

	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Check if user exists
	var user models.User
	if db.DB.First(&user, input.UserID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	// Check if role exists
	var role models.Role
	if db.DB.First(&role, input.RoleID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Role not found",
		})
	}

	// Duplicate assignments are an error, not a no-op
	var existing models.UserRole
	if db.DB.Where("user_id = ? AND role_id = ?", input.UserID, input.RoleID).
		First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Role already assigned to user",
		})
	}

	assignment := models.UserRole{UserID: input.UserID, RoleID: input.RoleID}
	if err := db.DB.Create(&assignment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to assign role to user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Role assigned successfully",
	})
}

// UnassignRoleFromUser removes a role assignment
func UnassignRoleFromUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	roleID := c.Params("roleId")

	result := db.DB.Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&models.UserRole{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to unassign role",
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assignment not found",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
