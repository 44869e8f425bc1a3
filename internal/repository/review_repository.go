package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftside/marketplace/internal/domain"
)

// ErrDuplicateReview signals a second review by the same user on a product.
var ErrDuplicateReview = errors.New("review already exists for this product")

// ReviewRepository persists product reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)
	Summary(ctx context.Context, productID int64) (*domain.RatingSummary, error)
}

type reviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository returns a Postgres-backed implementation.
func NewReviewRepository(pool *pgxpool.Pool) ReviewRepository {
	return &reviewRepository{pool: pool}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	const query = `
        INSERT INTO reviews (product_id, user_id, rating, comment)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (product_id, user_id) DO NOTHING
        RETURNING id, created_at`

	rows, err := r.pool.Query(ctx, query,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return ErrDuplicateReview
	}
	return rows.Scan(&review.ID, &review.CreatedAt)
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	const query = `
        SELECT r.id, r.product_id, r.user_id, u.name, r.rating, r.comment, r.created_at
        FROM reviews r JOIN users u ON u.id = r.user_id
        WHERE r.product_id=$1 ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.UserName,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, review)
	}
	return result, rows.Err()
}

func (r *reviewRepository) Summary(ctx context.Context, productID int64) (*domain.RatingSummary, error) {
	const query = `
        SELECT COUNT(*), COALESCE(AVG(rating), 0)
        FROM reviews WHERE product_id=$1`

	summary := domain.RatingSummary{ProductID: productID}
	if err := r.pool.QueryRow(ctx, query, productID).
		Scan(&summary.ReviewCount, &summary.Average); err != nil {
		return nil, err
	}
	return &summary, nil
}
