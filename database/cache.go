package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Jackcomputers-app/flyhightide/config"
	"github.com/Jackcomputers-app/flyhightide/model"
	"github.com/Jackcomputers-app/flyhightide/utils"
)

const bookingsCacheKey = "bookings:all"
const bookingsCacheTTL = 5 * time.Minute

// Cache is the read-side cache of the full bookings list. Nil when Redis is
// not configured; every method is safe on a nil receiver.
var Cache *BookingsCache

type BookingsCache struct {
	client *redis.Client
}

// InitCache connects the Redis cache client. Skipped entirely when no
// REDIS_ADDR is configured; the service just reads from the store then.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		utils.GetLogger().Warn("Redis unavailable, bookings cache disabled", zap.Error(err))
		return
	}

	Cache = &BookingsCache{client: client}
}

// Get returns the cached bookings list, or false on a miss.
func (c *BookingsCache) Get(ctx context.Context) ([]model.Booking, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, bookingsCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var bookings []model.Booking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		return nil, false
	}
	return bookings, true
}

// Set stores the bookings list with a TTL. Failures only cost the next read a
// store round trip, so they are logged and swallowed.
func (c *BookingsCache) Set(ctx context.Context, bookings []model.Booking) {
	if c == nil {
		return
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, bookingsCacheKey, data, bookingsCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("cannot cache bookings", zap.Error(err))
	}
}

// Invalidate drops the cached list. Called after every successful create.
func (c *BookingsCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.client.Del(ctx, bookingsCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("cannot invalidate bookings cache", zap.Error(err))
	}
}
