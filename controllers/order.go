package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-app/db"
	"storefront-app/models"
	"storefront-app/redis"
	"storefront-app/utils"
)

// Checkout drains the caller's cart into an order. Prices are re-read
// from the catalog at checkout time and stock is decremented in the same
// transaction. The Discord webhook gets the order summary.
func Checkout(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	entries, err := redis.Client.HGetAll(redis.Ctx, cartKey(userID)).Result()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read cart",
		})
	}
	if len(entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cart is empty",
		})
	}

	order := models.Order{
		Reference: uuid.NewString(),
		UserID:    userID,
		Status:    models.OrderPlaced,
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		for productID, quantity := range entries {
			qty, convErr := strconv.Atoi(quantity)
			if convErr != nil || qty <= 0 {
				continue
			}

			var product models.Product
			if err := tx.First(&product, productID).Error; err != nil {
				return fmt.Errorf("product %s is no longer available", productID)
			}
			if product.Stock < qty {
				return fmt.Errorf("not enough stock for %s", product.Name)
			}

			product.Stock -= qty
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			order.Items = append(order.Items, models.OrderItem{
				ProductID: product.ID,
				Quantity:  qty,
				UnitPrice: product.Price,
			})
			order.Total += product.Price * int64(qty)
		}

		if len(order.Items) == 0 {
			return fmt.Errorf("cart is empty")
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := redis.Client.Del(redis.Ctx, cartKey(userID)).Err(); err != nil {
		// The order exists either way; a stale cart just needs a manual clear.
		fmt.Printf("Failed to clear cart for user %d: %v\n", userID, err)
	}

	utils.NotifyDiscord(
		"New order",
		fmt.Sprintf("Order %s has been placed.", order.Reference),
		utils.WebhookField{Name: "Items", Value: strconv.Itoa(len(order.Items))},
		utils.WebhookField{Name: "Total", Value: fmt.Sprintf("%.2f", float64(order.Total)/100)},
	)

	return c.Status(fiber.StatusCreated).JSON(order)
}

// GetMyOrders returns the caller's orders, newest first
func GetMyOrders(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var orders []models.Order
	if err := db.DB.Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}

	return c.JSON(orders)
}

// GetAllOrders returns every order for the admin panel
func GetAllOrders(c *fiber.Ctx) error {
	var orders []models.Order

	query := db.DB.Preload("Items.Product").Preload("User").Order("created_at desc")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get orders",
		})
	}

	return c.JSON(orders)
}

// UpdateOrderStatus moves an order through its lifecycle and notifies the
// webhook about the change.
func UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	type StatusInput struct {
		Status string `json:"status"`
	}
	input := new(StatusInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	switch input.Status {
	case models.OrderConfirmed, models.OrderShipped, models.OrderCancelled:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order status",
		})
	}

	var order models.Order
	if db.DB.First(&order, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Order not found",
		})
	}

	previous := order.Status
	order.Status = input.Status
	if err := db.DB.Save(&order).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update order",
		})
	}

	utils.NotifyDiscord(
		"Order status changed",
		fmt.Sprintf("Order %s: %s → %s", order.Reference, previous, order.Status),
	)

	return c.JSON(order)
}
