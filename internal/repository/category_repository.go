package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftside/marketplace/internal/domain"
)

// CategoryRepository persists catalog categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) error
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const query = `SELECT id, name, slug, created_at FROM categories ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Slug, &category.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, category)
	}
	return result, rows.Err()
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const query = `SELECT id, name, slug, created_at FROM categories WHERE slug=$1`

	var category domain.Category
	if err := r.pool.QueryRow(ctx, query, slug).Scan(
		&category.ID,
		&category.Name,
		&category.Slug,
		&category.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	const query = `
        INSERT INTO categories (name, slug)
        VALUES ($1, $2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, category.Name, category.Slug).
		Scan(&category.ID, &category.CreatedAt)
}
