package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ProductCacheTTL is the time-to-live for cached products.
	ProductCacheTTL = 24 * time.Hour

	productCacheKeyPrefix = "product"
)

// CachedProduct is the denormalized product read model stored in Redis.
// Fields are stored as a Redis hash. ImageURL is stored as an empty string
// when the product has no image.
type CachedProduct struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Stock     int       `json:"stock"`
	ImageURL  string    `json:"image_url"`
	EnteredAt time.Time `json:"entered_at"`
}

// ProductCache provides structured read/write operations for product cache
// entries. Key format: "product:{productID}".
type ProductCache struct {
	client *RedisClient
}

// NewProductCache creates a ProductCache backed by the given RedisClient.
func NewProductCache(r *RedisClient) *ProductCache {
	return &ProductCache{client: r}
}

// Get retrieves a cached product by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *ProductCache) Get(ctx context.Context, productID uuid.UUID) (*CachedProduct, error) {
	key := c.key(productID)
	vals, err := c.client.Client().HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil // key not found
	}

	id, err := uuid.Parse(vals["id"])
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	stock, err := strconv.Atoi(vals["stock"])
	if err != nil {
		return nil, fmt.Errorf("cache parse stock: %w", err)
	}
	enteredAt, err := time.Parse(time.RFC3339Nano, vals["entered_at"])
	if err != nil {
		return nil, fmt.Errorf("cache parse entered_at: %w", err)
	}

	return &CachedProduct{
		ID:        id,
		Name:      vals["name"],
		Category:  vals["category"],
		Stock:     stock,
		ImageURL:  vals["image_url"],
		EnteredAt: enteredAt,
	}, nil
}

// Set writes a cached product as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *ProductCache) Set(ctx context.Context, p *CachedProduct) error {
	key := c.key(p.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", p.ID.String(),
		"name", p.Name,
		"category", p.Category,
		"stock", strconv.Itoa(p.Stock),
		"image_url", p.ImageURL,
		"entered_at", p.EnteredAt.UTC().Format(time.RFC3339Nano),
	)
	pipe.Expire(ctx, key, ProductCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached product. Callers invalidate on every stock edit or
// deletion so the read-through path never serves a stale stock count for long.
func (c *ProductCache) Delete(ctx context.Context, productID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(productID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

func (c *ProductCache) key(productID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", productCacheKeyPrefix, productID)
}
