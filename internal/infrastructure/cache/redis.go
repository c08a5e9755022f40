package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pharma-info-service/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logrus.Info("Successfully connected to Redis")

	return client, nil
}

// ResponseCache is a read-through cache for reshaped provider responses.
// Every failure degrades to a miss so the gateway never depends on Redis
// being up.
type ResponseCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, log: log, ttl: ttl}
}

func (c *ResponseCache) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warnf("Cache read failed for %s: %+v", key, err)
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warnf("Cache entry for %s is corrupt: %+v", key, err)
		return false
	}
	return true
}

func (c *ResponseCache) Set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Cache marshal failed for %s: %+v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warnf("Cache write failed for %s: %+v", key, err)
	}
}
