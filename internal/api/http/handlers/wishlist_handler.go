package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/dto"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/repository"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// WishlistHandler exposes wishlist endpoints. All routes require a session.
type WishlistHandler struct {
	wishlist repository.WishlistRepository
}

// NewWishlistHandler constructs handler.
func NewWishlistHandler(wishlistRepo repository.WishlistRepository) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlistRepo}
}

// List GET /api/wishlist.
func (h *WishlistHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	products, err := h.wishlist.ListByUser(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductResponse(&products[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Add POST /api/wishlist.
func (h *WishlistHandler) Add(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == 0 {
		return apperrors.NewValidationError("product_id required", nil)
	}

	if err := h.wishlist.Add(c.Context(), identity.UserID, req.ProductID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"added": true}})
}

// Remove DELETE /api/wishlist/:productID.
func (h *WishlistHandler) Remove(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	productID, err := c.ParamsInt("productID")
	if err != nil {
		return apperrors.NewValidationError("invalid product id", nil)
	}

	if err := h.wishlist.Remove(c.Context(), identity.UserID, int64(productID)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"removed": true}})
}
