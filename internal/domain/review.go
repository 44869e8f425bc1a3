package domain

import "time"

// Review is a rating plus optional comment, one per user per product.
type Review struct {
	ID        int64
	ProductID int64
	UserID    int64
	UserName  string
	Rating    int32
	Comment   string
	CreatedAt time.Time
}

// RatingSummary aggregates review scores for a product.
type RatingSummary struct {
	ProductID   int64
	ReviewCount int64
	Average     float64
}
