// Package redis caches restaurant manager sets in Redis. Manager sets never
// change after a restaurant is created, so entries only expire by TTL.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"haul/internal/core/domain/model/kernel"
	"haul/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	managersKeyPrefix  = "haul:restaurant-managers:"
	DefaultManagersTTL = 10 * time.Minute
)

// CachedManagerDirectory reads manager sets through Redis and falls back to
// the wrapped directory on a miss. Redis failures are logged and bypassed.
type CachedManagerDirectory struct {
	client *redis.Client
	next   ports.ManagerDirectory
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedManagerDirectory(
	client *redis.Client,
	next ports.ManagerDirectory,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedManagerDirectory {
	if ttl <= 0 {
		ttl = DefaultManagersTTL
	}
	return &CachedManagerDirectory{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger.With("component", "manager_cache"),
	}
}

func (c *CachedManagerDirectory) RestaurantManagers(ctx context.Context, restaurantID kernel.UUID) ([]string, error) {
	key := managersKeyPrefix + restaurantID.String()

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var managers []string
		if err = json.Unmarshal(cached, &managers); err == nil {
			return managers, nil
		}
		c.logger.Warn("Dropping unreadable cache entry", "key", key, "error", err)
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("Manager cache read failed", "key", key, "error", err)
	}

	managers, err := c.next.RestaurantManagers(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(managers)
	if err != nil {
		return nil, err
	}
	if err = c.client.Set(ctx, key, body, c.ttl).Err(); err != nil {
		c.logger.Warn("Manager cache write failed", "key", key, "error", err)
	}

	return managers, nil
}
