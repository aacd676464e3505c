// Package redis
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per key (username + remote
// address) over a fixed window. A nil *LoginLimiter allows everything,
// so callers don't branch on whether Redis is configured.
type LoginLimiter struct {
	redis  *redis.Client
	max    int64
	window time.Duration
}

func NewLoginLimiter(r *redis.Client, max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		redis:  r,
		max:    int64(max),
		window: window,
	}
}

// Allow records an attempt and reports whether it is within the limit.
// Redis failures fail open: login availability should not depend on the
// limiter backend.
func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil {
		return true
	}

	redisKey := fmt.Sprintf("login_attempts:%s", key)

	count, err := l.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return true
	}

	if count == 1 {
		l.redis.Expire(ctx, redisKey, l.window)
	}

	return count <= l.max
}
