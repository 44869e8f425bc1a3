package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/events"
	"github.com/craftside/marketplace/internal/repository"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// OrderService turns cart contents into orders.
type OrderService struct {
	orders     repository.OrderRepository
	carts      repository.CartRepository
	products   repository.ProductRepository
	dispatcher events.Dispatcher
}

// NewOrderService builds the service.
func NewOrderService(orders repository.OrderRepository, carts repository.CartRepository,
	products repository.ProductRepository, dispatcher events.Dispatcher) *OrderService {
	return &OrderService{orders: orders, carts: carts, products: products, dispatcher: dispatcher}
}

// PlaceOrder snapshots the cart into an order at current prices, persists
// order and items in one transaction, then clears the cart. The cart clear
// happens after commit; a failure there leaves a stale cart, not a broken
// order.
func (s *OrderService) PlaceOrder(ctx context.Context, userID int64) (*domain.Order, error) {
	items, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.NewValidationError("cart is empty", nil)
	}

	order := &domain.Order{
		UserID: userID,
		Status: domain.OrderStatusPending,
	}
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("cart contains a delisted product", nil)
			}
			return nil, err
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:      product.ID,
			ProductName:    product.Name,
			UnitPriceCents: product.PriceCents,
			Quantity:       item.Quantity,
		})
		order.TotalCents += product.PriceCents * int64(item.Quantity)
	}

	if err := s.orders.CreateWithItems(ctx, order); err != nil {
		return nil, err
	}
	_ = s.carts.Clear(ctx, userID)

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventOrderPlaced,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload: events.OrderPlacedPayload{
				OrderID:    order.ID,
				TotalCents: order.TotalCents,
				Status:     order.Status,
				ItemCount:  len(order.Items),
			},
		})
	}
	return order, nil
}

// GetOrder fetches one of the caller's orders.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID int64) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("order", nil)
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, apperrors.NewNotFound("order", nil)
	}
	return order, nil
}

// ListOrders returns the caller's orders, newest first.
func (s *OrderService) ListOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}
