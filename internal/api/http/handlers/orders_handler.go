package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/dto"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// OrdersHandler exposes order endpoints. All routes require a session.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Place POST /api/orders.
func (h *OrdersHandler) Place(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	order, err := h.orders.PlaceOrder(c.Context(), identity.UserID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}

// List GET /api/orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	orders, err := h.orders.ListOrders(c.Context(), identity.UserID)
	if err != nil {
		return err
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, dto.NewOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// Get GET /api/orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	orderID, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("invalid order id", nil)
	}

	order, err := h.orders.GetOrder(c.Context(), identity.UserID, int64(orderID))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewOrderResponse(order)})
}
