package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftside/marketplace/internal/domain"
)

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	// CreateWithItems inserts the order and all items in one transaction.
	CreateWithItems(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error
}

type orderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns a Postgres-backed implementation.
func NewOrderRepository(pool *pgxpool.Pool) OrderRepository {
	return &orderRepository{pool: pool}
}

func (r *orderRepository) CreateWithItems(ctx context.Context, order *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const orderQuery = `
        INSERT INTO orders (user_id, status, total_cents)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, orderQuery,
		order.UserID,
		order.Status,
		order.TotalCents,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt); err != nil {
		return err
	}

	const itemQuery = `
        INSERT INTO order_items (order_id, product_id, product_name, unit_price_cents, quantity)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id`
	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(ctx, itemQuery,
			item.OrderID,
			item.ProductID,
			item.ProductName,
			item.UnitPriceCents,
			item.Quantity,
		).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const query = `
        SELECT id, user_id, status, total_cents, created_at, updated_at
        FROM orders WHERE id=$1`

	var order domain.Order
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.Status,
		&order.TotalCents,
		&order.CreatedAt,
		&order.UpdatedAt,
	); err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	const query = `
        SELECT id, user_id, status, total_cents, created_at, updated_at
        FROM orders WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.Status,
			&order.TotalCents,
			&order.CreatedAt,
			&order.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.listItems(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *orderRepository) listItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	const query = `
        SELECT id, order_id, product_id, product_name, unit_price_cents, quantity
        FROM order_items WHERE order_id=$1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.ProductName,
			&item.UnitPriceCents,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
