package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftside/marketplace/internal/domain"
)

// WishlistRepository persists saved-for-later products.
type WishlistRepository interface {
	Add(ctx context.Context, userID, productID int64) error
	Remove(ctx context.Context, userID, productID int64) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Product, error)
}

type wishlistRepository struct {
	pool *pgxpool.Pool
}

// NewWishlistRepository returns a Postgres-backed implementation.
func NewWishlistRepository(pool *pgxpool.Pool) WishlistRepository {
	return &wishlistRepository{pool: pool}
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	const query = `
        INSERT INTO wishlists (user_id, product_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING`
	_, err := r.pool.Exec(ctx, query, userID, productID)
	return err
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM wishlists WHERE user_id=$1 AND product_id=$2`, userID, productID)
	return err
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Product, error) {
	const query = `
        SELECT p.id, p.seller_id, p.category_id, p.name, p.slug, p.description,
               p.price_cents, p.image_keys, p.created_at, p.updated_at
        FROM wishlists w JOIN products p ON p.id = w.product_id
        WHERE w.user_id=$1 ORDER BY w.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *product)
	}
	return result, rows.Err()
}
