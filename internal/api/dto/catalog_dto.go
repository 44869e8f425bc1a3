package dto

import (
	"time"

	"github.com/craftside/marketplace/internal/domain"
)

// ProductRequest payload for creating or updating a product.
type ProductRequest struct {
	CategorySlug string   `json:"category_slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	PriceCents   int64    `json:"price_cents"`
	ImageKeys    []string `json:"image_keys"`
}

// ProductResponse is the public view of a product.
type ProductResponse struct {
	ID          int64     `json:"id"`
	SellerID    int64     `json:"seller_id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	ImageKeys   []string  `json:"image_keys"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p *domain.Product) ProductResponse {
	keys := p.ImageKeys
	if keys == nil {
		keys = []string{}
	}
	return ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		ImageKeys:   keys,
		CreatedAt:   p.CreatedAt,
	}
}

// CategoryResponse is the public view of a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ReviewRequest payload for submitting a review.
type ReviewRequest struct {
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

// ReviewResponse is the public view of a review.
type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int32     `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
