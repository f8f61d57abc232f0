package ratelimit

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

const (
	BackendRedis = "redis"
	BackendLocal = "local"
)

// Limiter admits or rejects a call to an upstream provider.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter shares the limit across every instance through redis.
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

func NewRedisLimiter(limiter *redis_rate.Limiter, rps int) *RedisLimiter {
	return &RedisLimiter{
		limiter: limiter,
		limit:   redis_rate.PerSecond(rps),
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	res, err := l.limiter.Allow(ctx, fmt.Sprintf("limit:%s", key), l.limit)
	if err != nil {
		return false, fmt.Errorf("failed to rate limit: %w", err)
	}

	return res.Allowed > 0, nil
}

// LocalLimiter keeps one token bucket per key in process.
type LocalLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      float64
	burst    int
}

func NewLocalLimiter(rps float64, burst int) *LocalLimiter {
	if burst < 1 {
		burst = 1
	}

	return &LocalLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	return l.limiterFor(key).Allow(), nil
}

func (l *LocalLimiter) limiterFor(key string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[key]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.rps), l.burst)
	l.limiters[key] = limiter
	return limiter
}

// Unlimited admits every call.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }
