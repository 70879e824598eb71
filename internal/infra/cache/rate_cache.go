package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const rateKeyPrefix = "fx"

// RateCache is a cache-aside layer for exchange rates. Redis failures are
// treated as misses; the currency table in postgres stays the source of
// truth.
type RateCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRateCache(rdb *redis.Client, ttl time.Duration) *RateCache {
	return &RateCache{rdb: rdb, ttl: ttl}
}

func (c *RateCache) Get(ctx context.Context, code string) (decimal.Decimal, bool) {
	val, err := c.rdb.Get(ctx, rateKey(code)).Result()
	if err != nil {
		return decimal.Decimal{}, false
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return rate, true
}

func (c *RateCache) Set(ctx context.Context, code string, rate decimal.Decimal) {
	c.rdb.Set(ctx, rateKey(code), rate.String(), c.ttl)
}

func rateKey(code string) string {
	return fmt.Sprintf("%s:%s", rateKeyPrefix, code)
}
