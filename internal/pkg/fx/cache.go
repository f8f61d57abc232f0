package fx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const ratesCacheKey = "fx:rates:USD"

// ErrCacheMiss is returned when no rates are cached.
var ErrCacheMiss = errors.New("fx rates not cached")

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// RateCache shares USD based rates between instances.
type RateCache struct {
	redis      RedisClient
	expiration time.Duration
}

func NewRateCache(redis RedisClient, expiration time.Duration) *RateCache {
	return &RateCache{
		redis:      redis,
		expiration: expiration,
	}
}

func (c *RateCache) GetRates(ctx context.Context) (Rates, error) {
	data, err := c.redis.Get(ctx, ratesCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get fx rates: %w", err)
	}

	var rates Rates
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fx rates: %w", err)
	}

	return rates, nil
}

func (c *RateCache) SetRates(ctx context.Context, rates Rates) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to marshal fx rates: %w", err)
	}

	if err := c.redis.Set(ctx, ratesCacheKey, data, c.expiration).Err(); err != nil {
		return fmt.Errorf("failed to set fx rates: %w", err)
	}

	return nil
}
