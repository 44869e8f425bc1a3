package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/craftside/marketplace/internal/api/dto"
	"github.com/craftside/marketplace/internal/auth"
	"github.com/craftside/marketplace/internal/service"
	apperrors "github.com/craftside/marketplace/pkg/util"
)

// ReviewsHandler exposes product review endpoints.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// Submit POST /api/products/:slug/reviews.
func (h *ReviewsHandler) Submit(c *fiber.Ctx) error {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	review, err := h.reviews.Submit(c.Context(), identity.UserID, c.Params("slug"), req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.ReviewResponse{
			ID:        review.ID,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		},
	})
}

// List GET /api/products/:slug/reviews.
func (h *ReviewsHandler) List(c *fiber.Ctx) error {
	reviews, summary, err := h.reviews.List(c.Context(), c.Params("slug"))
	if err != nil {
		return err
	}

	out := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, dto.ReviewResponse{
			ID:        review.ID,
			UserName:  review.UserName,
			Rating:    review.Rating,
			Comment:   review.Comment,
			CreatedAt: review.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"reviews":      out,
			"review_count": summary.ReviewCount,
			"average":      summary.Average,
		},
	})
}
