package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"storefront-app/db"
	"storefront-app/models"
	"storefront-app/redis"
)

func cartKey(userID uint) string {
	return fmt.Sprintf("cart:%d", userID)
}

// GetCart returns the caller's cart joined against the current catalog.
// Products deleted since they were added are dropped from the response.
func GetCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	entries, err := redis.Client.HGetAll(redis.Ctx, cartKey(userID)).Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read cart",
		})
	}

	type CartLine struct {
		Product  models.Product `json:"product"`
		Quantity int            `json:"quantity"`
		Subtotal int64          `json:"subtotal"`
	}

	lines := []CartLine{}
	var total int64
	for productID, quantity := range entries {
		qty, err := strconv.Atoi(quantity)
		if err != nil || qty <= 0 {
			continue
		}

		var product models.Product
		if db.DB.First(&product, productID).RowsAffected == 0 {
			continue
		}

		subtotal := product.Price * int64(qty)
		total += subtotal
		lines = append(lines, CartLine{Product: product, Quantity: qty, Subtotal: subtotal})
	}

	return c.JSON(fiber.Map{
		"items": lines,
		"total": total,
	})
}

// AddToCart puts a product into the caller's cart or bumps its quantity
func AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type AddInput struct {
		ProductID uint `json:"product_id"`
		Quantity  int  `json:"quantity"`
	}
	input := new(AddInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	var product models.Product
	if db.DB.First(&product, input.ProductID).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not found",
		})
	}
	if product.Stock < input.Quantity {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Not enough stock",
		})
	}

	field := strconv.FormatUint(uint64(input.ProductID), 10)
	if err := redis.Client.HIncrBy(redis.Ctx, cartKey(userID), field, int64(input.Quantity)).Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update cart",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Added to cart",
	})
}

// RemoveFromCart drops one product from the cart
func RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	productID := c.Params("productId")

	removed, err := redis.Client.HDel(redis.Ctx, cartKey(userID), productID).Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update cart",
		})
	}
	if removed == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Product not in cart",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ClearCart empties the caller's cart
func ClearCart(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if err := redis.Client.Del(redis.Ctx, cartKey(userID)).Err(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to clear cart",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
