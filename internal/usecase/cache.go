package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	userCacheKeyPrefix        = "user:"
	appointmentCacheKeyPrefix = "appointment:"

	// Cached GET responses are short-lived. An appointment response embeds
	// participant data that can go stale after a user update, so the TTL
	// bounds that staleness.
	cacheTTL = time.Minute
)

func userCacheKey(id uuid.UUID) string {
	return userCacheKeyPrefix + id.String()
}

func appointmentCacheKey(id uuid.UUID) string {
	return appointmentCacheKeyPrefix + id.String()
}

// cacheFetch loads a cached response into dest. Returns false on a miss or
// when no cache client is configured. Cache failures are logged, never
// surfaced to the caller.
func cacheFetch(ctx context.Context, cache *redis.Client, log *logrus.Logger, key string, dest interface{}) bool {
	if cache == nil {
		return false
	}
	raw, err := cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warnf("Failed to read cache key %s: %+v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Warnf("Failed to decode cache key %s: %+v", key, err)
		return false
	}
	return true
}

func cacheStore(ctx context.Context, cache *redis.Client, log *logrus.Logger, key string, value interface{}) {
	if cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		log.Warnf("Failed to encode cache key %s: %+v", key, err)
		return
	}
	if err := cache.Set(ctx, key, raw, cacheTTL).Err(); err != nil {
		log.Warnf("Failed to write cache key %s: %+v", key, err)
	}
}

func cacheInvalidate(ctx context.Context, cache *redis.Client, log *logrus.Logger, keys ...string) {
	if cache == nil || len(keys) == 0 {
		return
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		log.Warnf("Failed to invalidate cache keys %v: %+v", keys, err)
	}
}
