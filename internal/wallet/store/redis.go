package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/artlu99/velvet-wallet/internal/metrics"
)

// RedisCache implements the Cache contract on top of Redis. Upserts are
// plain SETs, so repeated writes of the same row are naturally idempotent
// and a stale last-write from an abandoned request is harmless.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects a Redis-backed cache. A zero ttl keeps rows until
// overwritten.
func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}

	return &RedisCache{
		client: redis.NewClient(opts),
		ttl:    ttl,
	}, nil
}

// Ping verifies connectivity.
func (r *RedisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "failed to ping redis")
	}
	return nil
}

// Close releases the client connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// Upsert writes a cache row. Failures are returned, never swallowed; the
// caller decides whether a cache miss is fatal.
func (r *RedisCache) Upsert(ctx context.Context, kind CacheKind, key CacheKey, value string) error {
	rowKey := cacheRowKey(kind, key)
	if err := r.client.Set(ctx, rowKey, value, r.ttl).Err(); err != nil {
		metrics.CacheUpserts.WithLabelValues(string(kind), "error").Inc()
		log.Warn().Str("key", rowKey).Err(err).Msg("Cache upsert failed")
		return errors.Wrap(err, "failed to upsert cache row")
	}
	metrics.CacheUpserts.WithLabelValues(string(kind), "ok").Inc()
	return nil
}

// Read returns the cached value for a key, if present.
func (r *RedisCache) Read(ctx context.Context, kind CacheKind, key CacheKey) (string, bool, error) {
	value, err := r.client.Get(ctx, cacheRowKey(kind, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "failed to read cache row")
	}
	return value, true, nil
}
