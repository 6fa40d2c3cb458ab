package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"uniplan_go/config"
	"uniplan_go/database"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// Derived-view cache for weekly grids and the teacher board. The engine
// itself is pure and never caches; this layer only memoizes HTTP responses
// and drops everything on any session mutation, so readers are at most one
// refresh behind.

const scheduleCachePrefix = "cache:schedule:"

// GridCacheKey identifies one user's grid for one window. Every option that
// shapes the response participates in the key, including the geometry scale.
func GridCacheKey(userID uint, days, startHour, endHour int, scale float64) string {
	return fmt.Sprintf("%sgrid:%d:%d:%d:%d:%g", scheduleCachePrefix, userID, days, startHour, endHour, scale)
}

// BoardCacheKey identifies the teacher completion board.
func BoardCacheKey() string {
	return scheduleCachePrefix + "board"
}

// GetCachedView loads a cached response into dest. A miss, a disabled
// Redis client or a decode failure all report !ok and the caller rebuilds.
func GetCachedView(ctx context.Context, key string, dest interface{}) bool {
	rc := database.GetRedisClient()
	if rc == nil {
		return false
	}

	raw, err := rc.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logrus.WithError(err).WithField("key", key).Warn("Schedule cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Schedule cache entry corrupt, dropping")
		rc.Del(ctx, key)
		return false
	}
	return true
}

// PutCachedView stores a response with the configured TTL. Failures are
// logged and swallowed; the cache is an optimization, not a dependency.
func PutCachedView(ctx context.Context, key string, value interface{}) {
	rc := database.GetRedisClient()
	if rc == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Schedule cache encode failed")
		return
	}

	ttl := 5 * time.Minute
	if config.AppConfig != nil && config.AppConfig.CacheTTL > 0 {
		ttl = config.AppConfig.CacheTTL
	}

	if err := rc.Set(ctx, key, data, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Schedule cache write failed")
	}
}

// InvalidateScheduleViews drops every cached grid and the board. Called
// after each session create/delete; consumers mid-read may still see the
// previous snapshot once, which is acceptable.
func InvalidateScheduleViews(ctx context.Context) {
	rc := database.GetRedisClient()
	if rc == nil {
		return
	}

	iter := rc.Scan(ctx, 0, scheduleCachePrefix+"*", 100).Iterator()
	dropped := 0
	for iter.Next(ctx) {
		if err := rc.Del(ctx, iter.Val()).Err(); err == nil {
			dropped++
		}
	}
	if err := iter.Err(); err != nil {
		logrus.WithError(err).Warn("Schedule cache invalidation scan failed")
		return
	}

	logrus.WithField("dropped", dropped).Debug("Schedule caches invalidated")
}
