package models

import (
	"time"
)

const (
	OrderPlaced    = "placed"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Reference string      `json:"reference" gorm:"unique"`
	UserID    uint        `json:"user_id" gorm:"index"`
	User      User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Status    string      `json:"status" gorm:"default:placed"`
	Total     int64       `json:"total"` // cents
	Items     []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"index"`
	ProductID uint    `json:"product_id"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unit_price"` // price at checkout time, cents
}
