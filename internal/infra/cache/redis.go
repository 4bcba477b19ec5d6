package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gongsil-api/internal/pkg/errs"
	"gongsil-api/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores JSON values in Redis. A nil client disables caching: every Get
// misses and writes are dropped.
type RedisCache struct {
	client  *redis.Client
	metrics *metrics.Service
}

func NewRedisCache(client *redis.Client, m *metrics.Service) *RedisCache {
	return &RedisCache{client: client, metrics: m}
}

func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	if r.client == nil {
		return errs.ErrCacheMiss
	}

	start := time.Now()
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			r.metrics.RecordCacheLookup(false, time.Since(start))
			return errs.ErrCacheMiss
		}
		return errs.Wrapf(err, "redis get %s", key)
	}
	r.metrics.RecordCacheLookup(true, time.Since(start))

	if err := json.Unmarshal(raw, dest); err != nil {
		return errs.Wrapf(err, "unmarshal cache value for %s", key)
	}
	return nil
}

func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return errs.Wrapf(err, "marshal cache value for %s", key)
	}
	if err := r.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		return errs.Wrapf(err, "redis set %s", key)
	}
	return nil
}

func (r *RedisCache) DeleteByPattern(ctx context.Context, pattern string) error {
	if r.client == nil {
		return nil
	}

	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		if err := r.client.Del(ctx, key).Err(); err != nil {
			return errs.Wrapf(err, "redis delete %s", key)
		}
	}
	if err := iter.Err(); err != nil {
		return errs.Wrapf(err, "redis scan pattern %s", pattern)
	}
	return nil
}

func (r *RedisCache) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Enabled() bool {
	return r.client != nil
}
