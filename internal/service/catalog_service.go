package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/repository"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

var slugStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// CatalogService covers category and product browsing plus seller-owned
// product management.
type CatalogService struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
}

// NewCatalogService builds the service.
func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogService {
	return &CatalogService{categories: categories, products: products}
}

// ListCategories returns all categories ordered by name.
func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

// ListProducts returns products matching the filter.
func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	return s.products.List(ctx, filter)
}

// GetProduct fetches a product by slug.
func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*domain.Product, error) {
	product, err := s.products.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", nil)
		}
		return nil, err
	}
	return product, nil
}

// ProductInput carries seller-supplied product fields.
type ProductInput struct {
	CategorySlug string
	Name         string
	Description  string
	PriceCents   int64
	ImageKeys    []string
}

// CreateProduct lists a new product owned by the seller.
func (s *CatalogService) CreateProduct(ctx context.Context, sellerID int64, input ProductInput) (*domain.Product, error) {
	if input.Name == "" {
		return nil, apperrors.NewValidationError("name is required", nil)
	}
	if input.PriceCents <= 0 {
		return nil, apperrors.NewValidationError("price must be positive", nil)
	}

	category, err := s.categories.GetBySlug(ctx, input.CategorySlug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewValidationError("unknown category", nil)
		}
		return nil, err
	}

	product := &domain.Product{
		SellerID:    sellerID,
		CategoryID:  category.ID,
		Name:        input.Name,
		Slug:        Slugify(input.Name),
		Description: input.Description,
		PriceCents:  input.PriceCents,
		ImageKeys:   input.ImageKeys,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct edits a product. Only the owning seller may edit.
func (s *CatalogService) UpdateProduct(ctx context.Context, sellerID int64, slug string, input ProductInput) (*domain.Product, error) {
	product, err := s.GetProduct(ctx, slug)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, apperrors.NewForbidden("not the product owner")
	}

	if input.CategorySlug != "" {
		category, err := s.categories.GetBySlug(ctx, input.CategorySlug)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("unknown category", nil)
			}
			return nil, err
		}
		product.CategoryID = category.ID
	}
	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Description != "" {
		product.Description = input.Description
	}
	if input.PriceCents > 0 {
		product.PriceCents = input.PriceCents
	}
	if input.ImageKeys != nil {
		product.ImageKeys = input.ImageKeys
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a seller's product.
func (s *CatalogService) DeleteProduct(ctx context.Context, sellerID int64, slug string) error {
	product, err := s.GetProduct(ctx, slug)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return apperrors.NewForbidden("not the product owner")
	}
	return s.products.Delete(ctx, product.ID)
}

// Slugify lowercases a name and collapses runs of non-alphanumerics to
// single hyphens.
func Slugify(name string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(slug, "-")
}
