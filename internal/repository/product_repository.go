package repository

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftside/marketplace/internal/domain"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (seller_id, category_id, name, slug, description, price_cents, image_keys)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		product.SellerID,
		product.CategoryID,
		product.Name,
		product.Slug,
		product.Description,
		product.PriceCents,
		product.ImageKeys,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products
        SET category_id=$1, name=$2, description=$3, price_cents=$4, image_keys=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		product.CategoryID,
		product.Name,
		product.Description,
		product.PriceCents,
		product.ImageKeys,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const query = selectProduct + ` WHERE p.id=$1`
	return r.queryOne(ctx, query, id)
}

func (r *productRepository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const query = selectProduct + ` WHERE p.slug=$1`
	return r.queryOne(ctx, query, slug)
}

func (r *productRepository) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	query := selectProduct + ` WHERE 1=1`
	args := []any{}

	if filter.CategorySlug != "" {
		args = append(args, filter.CategorySlug)
		query += ` AND p.category_id = (SELECT id FROM categories WHERE slug=$1)`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += ` AND (p.name ILIKE $` + itoa(len(args)) + ` OR p.description ILIKE $` + itoa(len(args)) + `)`
	}

	query += ` ORDER BY p.created_at DESC`

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	args = append(args, limit)
	query += ` LIMIT $` + itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
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

const selectProduct = `
        SELECT p.id, p.seller_id, p.category_id, p.name, p.slug, p.description,
               p.price_cents, p.image_keys, p.created_at, p.updated_at
        FROM products p`

func (r *productRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Product, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	return scanProduct(rows)
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.SellerID,
		&product.CategoryID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.PriceCents,
		&product.ImageKeys,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
