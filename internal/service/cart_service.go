package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/repository"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// CartService manages per-user cart state.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartService builds the service.
func NewCartService(carts repository.CartRepository, products repository.ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// CartLine is a cart item joined with its current product record.
type CartLine struct {
	Product  domain.Product
	Quantity int32
}

// Get returns the cart with live product data. Items whose product has been
// delisted since they were added are silently dropped.
func (s *CartService) Get(ctx context.Context, userID int64) ([]CartLine, error) {
	items, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				_ = s.carts.RemoveItem(ctx, userID, item.ProductID)
				continue
			}
			return nil, err
		}
		lines = append(lines, CartLine{Product: *product, Quantity: item.Quantity})
	}
	return lines, nil
}

// SetItem sets the quantity for a product; zero removes it.
func (s *CartService) SetItem(ctx context.Context, userID, productID int64, quantity int32) error {
	if quantity < 0 {
		return apperrors.NewValidationError("quantity must not be negative", nil)
	}
	if quantity > 0 {
		if _, err := s.products.GetByID(ctx, productID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFound("product", nil)
			}
			return err
		}
	}
	return s.carts.SetItem(ctx, userID, domain.CartItem{ProductID: productID, Quantity: quantity})
}

// RemoveItem drops a product from the cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID int64) error {
	return s.carts.RemoveItem(ctx, userID, productID)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.carts.Clear(ctx, userID)
}
