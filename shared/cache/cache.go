package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName         = "cache"
	otelCacheKeyAttribute = "cache.key"
	scanBatchSize         = 100
	Nil                   = redis.Nil
)

type RedisCache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
	Increment(ctx context.Context, key string, window int) (count int64, err error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, ot otel.Otel) RedisCache {
	return &redisCache{
		client: client,
		otel:   ot,
	}
}

// Clear removes every key matching pattern.
func (c *redisCache) Clear(ctx context.Context, pattern string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, pattern)

	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	keys := make([]string, 0)

	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err = iter.Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Msg("failed to scan cache keys")

		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err = c.client.Del(ctx, keys...).Err(); err != nil {
		log.Error().Err(err).Str("pattern", pattern).Int("keys", len(keys)).Msg("failed to clear cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	if err = c.client.Del(ctx, key).Err(); err != nil {
		log.Error().Str("key", key).Err(err).Msg("failed to del cache")

		return fmt.Errorf("failed to delete cache value: %w", err)
	}

	return nil
}

// Get loads key into value. A miss is reported as an error wrapping Nil.
func (c *redisCache) Get(ctx context.Context, key string, value any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	cacheValue, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to get cache value: %w", err)
	}

	if v, ok := value.(*string); ok {
		*v = cacheValue

		return nil
	}

	if err = json.Unmarshal([]byte(cacheValue), value); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to unmarshal cache")

		return fmt.Errorf("failed to unmarshal cache value: %w", err)
	}

	return nil
}

func (c *redisCache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	var raw []byte

	switch v := value.(type) {
	case string:
		raw = []byte(v)
	default:
		raw, err = json.Marshal(v)
		if err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to marshal cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	if err = c.client.Set(ctx, key, raw, time.Second*time.Duration(duration)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set cache")

		return fmt.Errorf("failed to set cache value: %w", err)
	}

	log.Debug().Str("key", key).Msg("cache saved")

	return nil
}

// Increment bumps a counter and starts its expiry window on the first hit.
func (c *redisCache) Increment(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := c.otel.NewScope(ctx, otelScopeName, otelScopeName+".Increment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelCacheKeyAttribute, key)

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, time.Second*time.Duration(window))

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to increment counter")

		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}

	return incr.Val(), nil
}

// IsMiss reports whether err came from a cache miss.
func IsMiss(err error) bool {
	return errors.Is(err, Nil)
}
