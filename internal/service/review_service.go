package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/craftside/marketplace/internal/domain"
	"github.com/craftside/marketplace/internal/events"
	"github.com/craftside/marketplace/internal/repository"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// ReviewService handles rating submission and product review listings.
type ReviewService struct {
	reviews    repository.ReviewRepository
	catalog    *CatalogService
	dispatcher events.Dispatcher
}

// NewReviewService builds the service.
func NewReviewService(reviews repository.ReviewRepository, catalog *CatalogService, dispatcher events.Dispatcher) *ReviewService {
	return &ReviewService{reviews: reviews, catalog: catalog, dispatcher: dispatcher}
}

// Submit records a review. One review per user per product; a duplicate
// submission is a conflict.
func (s *ReviewService) Submit(ctx context.Context, userID int64, productSlug string, rating int32, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", nil)
	}

	product, err := s.catalog.GetProduct(ctx, productSlug)
	if err != nil {
		return nil, err
	}

	review := &domain.Review{
		ProductID: product.ID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicateReview) {
			return nil, apperrors.NewConflict("product already reviewed", nil)
		}
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventReviewSubmitted,
			UserID:    userID,
			Timestamp: time.Now(),
			Payload:   events.ReviewSubmittedPayload{ProductID: product.ID, Rating: rating},
		})
	}
	return review, nil
}

// List returns a product's reviews and rating summary.
func (s *ReviewService) List(ctx context.Context, productSlug string) ([]domain.Review, *domain.RatingSummary, error) {
	product, err := s.catalog.GetProduct(ctx, productSlug)
	if err != nil {
		return nil, nil, err
	}

	reviews, err := s.reviews.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	summary, err := s.reviews.Summary(ctx, product.ID)
	if err != nil {
		return nil, nil, err
	}
	return reviews, summary, nil
}
