package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/dto"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// CartHandler exposes cart endpoints. All routes require a session.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cart: cartService}
}

// Get GET /api/cart.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	lines, err := h.cart.Get(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	out := make([]dto.CartLineResponse, 0, len(lines))
	for i := range lines {
		out = append(out, dto.CartLineResponse{
			Product:  dto.NewProductResponse(&lines[i].Product),
			Quantity: lines[i].Quantity,
		})
	}
	return c.JSON(fiber.Map{"data": out})
}

// SetItem POST /api/cart/items.
func (h *CartHandler) SetItem(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == 0 {
		return apperrors.NewValidationError("product_id required", nil)
	}

	if err := h.cart.SetItem(c.Context(), identity.UserID, req.ProductID, req.Quantity); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"updated": true}})
}

// RemoveItem DELETE /api/cart/items/:productID.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	productID, err := c.ParamsInt("productID")
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}

	if err := h.cart.RemoveItem(c.Context(), identity.UserID, int64(productID)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"removed": true}})
}

// Clear DELETE /api/cart.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.cart.Clear(c.Context(), identity.UserID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"cleared": true}})
}
