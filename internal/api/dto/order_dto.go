package dto

import (
	"time"

	"github.com/craftside/marketplace/internal/domain"
)

// CartItemRequest payload for cart mutations.
type CartItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// CartLineResponse is one cart line with live product data.
type CartLineResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int32           `json:"quantity"`
}

// WishlistRequest payload for wishlist mutations.
type WishlistRequest struct {
	ProductID int64 `json:"product_id"`
}

// OrderItemResponse is a snapshotted order line.
type OrderItemResponse struct {
	ProductID      int64  `json:"product_id"`
	ProductName    string `json:"product_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int32  `json:"quantity"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID         int64               `json:"id"`
	Status     domain.OrderStatus  `json:"status"`
	TotalCents int64               `json:"total_cents"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
		})
	}
	return OrderResponse{
		ID:         o.ID,
		Status:     o.Status,
		TotalCents: o.TotalCents,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}
