package domain

import "time"

// Category groups products for browsing.
type Category struct {
	ID        int64
	Name      string
	Slug      string
	CreatedAt time.Time
}

// Product is a handmade item listed by a seller.
type Product struct {
	ID          int64
	SellerID    int64
	CategoryID  int64
	Name        string
	Slug        string
	Description string
	PriceCents  int64
	ImageKeys   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter narrows catalog listings.
type ProductFilter struct {
	CategorySlug string
	Search       string
	Limit        int
	Offset       int
}
