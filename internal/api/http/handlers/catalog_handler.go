package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/dto"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// CatalogHandler exposes category and product endpoints.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalogService}
}

// ListCategories GET /api/categories.
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.catalog.ListCategories(c.Context())
	if err != nil {
		return err
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, dto.CategoryResponse{ID: category.ID, Name: category.Name, Slug: category.Slug})
	}
	return c.JSON(fiber.Map{"data": out})
}

// ListProducts GET /api/products.
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	filter := domain.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("q"),
		Limit:        c.QueryInt("limit", 50),
		Offset:       c.QueryInt("offset", 0),
	}

	products, err := h.catalog.ListProducts(c.Context(), filter)
	if err != nil {
		return err
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, dto.NewProductResponse(&products[i]))
	}
	return c.JSON(fiber.Map{"data": out})
}

// GetProduct GET /api/products/:slug.
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// CreateProduct POST /api/products.
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.catalog.CreateProduct(c.Context(), identity.UserID, service.ProductInput{
		CategorySlug: req.CategorySlug,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		ImageKeys:    req.ImageKeys,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// UpdateProduct PUT /api/products/:slug.
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	product, err := h.catalog.UpdateProduct(c.Context(), identity.UserID, c.Params("slug"), service.ProductInput{
		CategorySlug: req.CategorySlug,
		Name:         req.Name,
		Description:  req.Description,
		PriceCents:   req.PriceCents,
		ImageKeys:    req.ImageKeys,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProductResponse(product)})
}

// DeleteProduct DELETE /api/products/:slug.
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.catalog.DeleteProduct(c.Context(), identity.UserID, c.Params("slug")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
