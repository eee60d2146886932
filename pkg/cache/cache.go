package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLDashboard bounds staleness of the dashboard aggregates. They are
// recomputed from transactional rows on every miss, so it stays short.
const TTLDashboard = 1 * time.Minute

// PrefixDashboard namespaces every dashboard cache key
const PrefixDashboard = "dashboard:"

// Service is the Redis cache service interface
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Dashboard aggregate cache
	GetDashboard(ctx context.Context, name string, dest interface{}) error
	SetDashboard(ctx context.Context, name string, data interface{}) error
	InvalidateDashboard(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache is the Redis-backed cache implementation
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable reports whether the Redis connection can be used
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping tests the Redis connection
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

// Get reads a cached value into dest
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return fmt.Errorf("redis not available")
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Set stores a value in the cache
func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil // no Redis, silently skip
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) dashboardKey(name string) string {
	return PrefixDashboard + name
}

func (c *redisCache) GetDashboard(ctx context.Context, name string, dest interface{}) error {
	return c.Get(ctx, c.dashboardKey(name), dest)
}

func (c *redisCache) SetDashboard(ctx context.Context, name string, data interface{}) error {
	return c.Set(ctx, c.dashboardKey(name), data, TTLDashboard)
}

// InvalidateDashboard drops every cached dashboard aggregate
func (c *redisCache) InvalidateDashboard(ctx context.Context) error {
	if c.client == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, PrefixDashboard+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
