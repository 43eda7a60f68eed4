// Copyright (c) 2026 Garagem. All rights reserved.

package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pvieira/garagem/internal/platform/constants"
)

const cacheKey = constants.RedisPrefixDashboard + "current"

// RedisCache implements [Cache] on the shared redis client.
type RedisCache struct {
	client *redis.Client
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the cached stats, or (nil, nil) on a miss.
func (cache *RedisCache) Get(context context.Context) (*Stats, error) {
	payload, err := cache.client.Get(context, cacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_dashboard_get_failed: %w", err)
	}

	stats := &Stats{}
	if err := json.Unmarshal(payload, stats); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten.
		return nil, nil
	}

	return stats, nil
}

func (cache *RedisCache) Set(context context.Context, stats *Stats, ttl time.Duration) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("redis_dashboard_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, cacheKey, payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_dashboard_set_failed: %w", err)
	}

	return nil
}
