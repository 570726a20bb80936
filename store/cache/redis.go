package cache

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// Redis is the optional L2 cache. It is only worth running for
// multi-instance deployments where slot reads should be shared across
// processes; a single node is fine with the in-memory cache alone.
// Enabled when MEETCAL_CACHE_REDIS_ADDR is set.

// RedisCacheConfig holds the Redis connection configuration.
type RedisCacheConfig struct {
	Addr       string
	Password   string
	DB         int
	KeyPrefix  string
	DefaultTTL time.Duration
}

// DefaultRedisConfig returns the default Redis configuration.
func DefaultRedisConfig() *RedisCacheConfig {
	return &RedisCacheConfig{
		Addr:       "localhost:6379",
		KeyPrefix:  "meetcal:",
		DefaultTTL: 10 * time.Minute,
	}
}

// RedisConfigFromEnv creates Redis config from environment variables:
// MEETCAL_CACHE_REDIS_ADDR, MEETCAL_CACHE_REDIS_PASSWORD,
// MEETCAL_CACHE_REDIS_DB, MEETCAL_CACHE_REDIS_PREFIX.
func RedisConfigFromEnv() *RedisCacheConfig {
	config := DefaultRedisConfig()

	if addr := os.Getenv("MEETCAL_CACHE_REDIS_ADDR"); addr != "" {
		config.Addr = addr
	}
	if password := os.Getenv("MEETCAL_CACHE_REDIS_PASSWORD"); password != "" {
		config.Password = password
	}
	if db := os.Getenv("MEETCAL_CACHE_REDIS_DB"); db != "" {
		if n, err := strconv.Atoi(db); err == nil {
			config.DB = n
		}
	}
	if prefix := os.Getenv("MEETCAL_CACHE_REDIS_PREFIX"); prefix != "" {
		config.KeyPrefix = prefix
	}

	return config
}

// IsRedisEnabled reports whether the Redis L2 should be used.
func IsRedisEnabled() bool {
	return os.Getenv("MEETCAL_CACHE_REDIS_ADDR") != ""
}

// RedisCache stores opaque byte payloads; callers own serialization.
type RedisCache struct {
	client     *redis.Client
	keyPrefix  string
	defaultTTL time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(config *RedisCacheConfig) (*RedisCache, error) {
	if config == nil {
		config = DefaultRedisConfig()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         config.Addr,
		Password:     config.Password,
		DB:           config.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	slog.Info("redis cache connected", "addr", config.Addr)
	return &RedisCache{
		client:     client,
		keyPrefix:  config.KeyPrefix,
		defaultTTL: config.DefaultTTL,
	}, nil
}

// Set stores a payload with the default TTL. Failures are logged, not
// returned: the L2 is an optimization and must never fail a request.
func (r *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, r.keyPrefix+key, value, r.defaultTTL).Err(); err != nil {
		slog.Warn("redis cache set failed", "key", key, "error", err)
	}
}

// Get returns the payload and whether it was present.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := r.client.Get(ctx, r.keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("redis cache get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return raw, true
}

// Delete removes a key.
func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.keyPrefix+key).Err(); err != nil {
		slog.Warn("redis cache delete failed", "key", key, "error", err)
	}
}

// Close releases the client.
func (r *RedisCache) Close() error {
	return r.client.Close()
}
