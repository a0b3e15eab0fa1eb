package controllers

import (
	"github.com/gofiber/fiber/v2"

	"storefront-app/db"
	"storefront-app/models"
)

// GetAllCategories returns all categories with their products
func GetAllCategories(c *fiber.Ctx) error {
	var categories []models.Category

	if err := db.DB.Preload("Products").Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(categories)
}

// CreateCategory creates a new category
func CreateCategory(c *fiber.Ctx) error {
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if category.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Category name is required",
		})
	}

	var existing models.Category
	if db.DB.Where("name = ?", category.Name).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Category with this name already exists",
		})
	}

	if err := db.DB.Create(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create category",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory updates a category
func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	category := new(models.Category)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var existingCategory models.Category
	if db.DB.First(&existingCategory, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}

	category.ID = existingCategory.ID
	db.DB.Save(&category)
	return c.JSON(category)
}

// DeleteCategory deletes a category
func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.Category
	if db.DB.First(&category, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	db.DB.Delete(&category)
	return c.SendStatus(fiber.StatusNoContent)
}
