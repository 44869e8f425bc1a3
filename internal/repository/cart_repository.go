package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/craftside/marketplace/internal/domain"
)

// cartTTL bounds abandoned carts; refreshed on every write.
const cartTTL = 30 * 24 * time.Hour

// CartRepository holds per-user cart state in Redis. A cart is a hash
// cart:<userID> mapping product id to quantity.
type CartRepository interface {
	Get(ctx context.Context, userID int64) ([]domain.CartItem, error)
	SetItem(ctx context.Context, userID int64, item domain.CartItem) error
	RemoveItem(ctx context.Context, userID, productID int64) error
	Clear(ctx context.Context, userID int64) error
}

type cartRepository struct {
	client *redis.Client
}

// NewCartRepository returns a Redis-backed implementation.
func NewCartRepository(client *redis.Client) CartRepository {
	return &cartRepository{client: client}
}

func cartKey(userID int64) string {
	return "cart:" + strconv.FormatInt(userID, 10)
}

func (r *cartRepository) Get(ctx context.Context, userID int64) ([]domain.CartItem, error) {
	entries, err := r.client.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, err
	}

	items := make([]domain.CartItem, 0, len(entries))
	for field, value := range entries {
		productID, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			continue
		}
		quantity, err := strconv.ParseInt(value, 10, 32)
		if err != nil || quantity <= 0 {
			continue
		}
		items = append(items, domain.CartItem{ProductID: productID, Quantity: int32(quantity)})
	}
	return items, nil
}

func (r *cartRepository) SetItem(ctx context.Context, userID int64, item domain.CartItem) error {
	key := cartKey(userID)
	field := strconv.FormatInt(item.ProductID, 10)

	if item.Quantity <= 0 {
		return r.client.HDel(ctx, key, field).Err()
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key, field, int64(item.Quantity))
	pipe.Expire(ctx, key, cartTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID int64) error {
	return r.client.HDel(ctx, cartKey(userID), strconv.FormatInt(productID, 10)).Err()
}

func (r *cartRepository) Clear(ctx context.Context, userID int64) error {
	return r.client.Del(ctx, cartKey(userID)).Err()
}
