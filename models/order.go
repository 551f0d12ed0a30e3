package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing" // set on checkout
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type Order struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef   string      `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID     uint        `gorm:"index;not null" json:"user_id"`
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Items      []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalPrice float64     `json:"total_price"`
	Status     OrderStatus `gorm:"type:VARCHAR(20);default:'Processing'" json:"status"`
	PlacedAt   time.Time   `json:"placed_at"`
}

// OrderItem is a purchase-time snapshot. It deliberately carries no live
// Product reference so later catalog edits never alter historical orders.
type OrderItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"index" json:"order_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}
