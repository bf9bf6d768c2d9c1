package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brightstore/store_api/internal/models"
)

// CartCache persists full cart snapshots keyed by session id. Snapshots have
// no expiry and no versioning: a stale schema is read back as-is.
type CartCache struct {
	redis *RedisClient
}

// NewCartCache creates a new CartCache.
func NewCartCache(redis *RedisClient) *CartCache {
	return &CartCache{redis: redis}
}

func (c *CartCache) key(sessionID string) string {
	return fmt.Sprintf("cart:sess:%s", sessionID)
}

// Save mirrors the full cart state for the session. Called synchronously on
// every cart mutation.
func (c *CartCache) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := c.redis.Set(ctx, c.key(sessionID), string(data), 0); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// Load restores the cart for the session. A missing key yields an empty cart.
func (c *CartCache) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := c.redis.Get(ctx, c.key(sessionID))
	if err != nil {
		if IsNil(err) {
			return &models.Cart{}, nil
		}
		return nil, err
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(data), &cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	return &cart, nil
}

// Delete drops the persisted snapshot for the session.
func (c *CartCache) Delete(ctx context.Context, sessionID string) error {
	return c.redis.Delete(ctx, c.key(sessionID))
}
