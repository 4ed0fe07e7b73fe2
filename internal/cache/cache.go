package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const userInfoPrefix = "user:info:"

var client *redis.Client

// Init connects the optional redis cache. An empty URL leaves caching
// disabled; a failed ping downgrades to disabled instead of blocking boot.
func Init(redisURL string) {
	if redisURL == "" {
		return
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logrus.WithError(err).Warn("invalid redis url; cache disabled")
		return
	}
	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("redis unreachable; cache disabled")
		return
	}
	client = c
	logrus.Info("redis cache ready")
}

func Enabled() bool {
	return client != nil
}

// InvalidateUserInfo drops the cached info entry for one user. Called after
// every profile mutation so stale onboarding state never lingers.
func InvalidateUserInfo(ctx context.Context, userID uint) {
	if client == nil {
		return
	}
	key := fmt.Sprintf("%s%d", userInfoPrefix, userID)
	if err := client.Del(ctx, key).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache invalidation failed")
	}
}

// GetUserInfo returns the cached info payload for a user, if any.
func GetUserInfo(ctx context.Context, userID uint) (string, bool) {
	if client == nil {
		return "", false
	}
	key := fmt.Sprintf("%s%d", userInfoPrefix, userID)
	val, err := client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// SetUserInfo caches a user info payload with a short TTL.
func SetUserInfo(ctx context.Context, userID uint, payload string, ttl time.Duration) {
	if client == nil {
		return
	}
	key := fmt.Sprintf("%s%d", userInfoPrefix, userID)
	if err := client.Set(ctx, key, payload, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}
