package domain

import "time"

// OrderStatus tracks fulfillment progress.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order is a placed purchase. Line items snapshot product prices at
// placement time so later price edits never change past orders.
type Order struct {
	ID         int64
	UserID     int64
	Status     OrderStatus
	TotalCents int64
	Items      []OrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItem is a single product line within an order.
type OrderItem struct {
	ID             int64
	OrderID        int64
	ProductID      int64
	ProductName    string
	UnitPriceCents int64
	Quantity       int32
}
