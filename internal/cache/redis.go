package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Report cache keys. Daily reports key on the IST date string, period
// reports on their range start.
const (
	DailyReportKeyFmt   = "reports:daily:%s"
	WeeklyReportKeyFmt  = "reports:weekly:%s"
	MonthlyReportKeyFmt = "reports:monthly:%s"
)

var client *redis.Client

// Init connects to Redis. On failure the client stays nil and every
// cache call degrades to a miss, so the server runs without Redis.
func Init(addr, password string) error {
	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		client = nil
		return err
	}
	return nil
}

// GetClient returns the Redis client, nil when degraded.
func GetClient() *redis.Client {
	return client
}

// DailyReportKey builds the cache key for one IST date (YYYY-MM-DD).
func DailyReportKey(date string) string {
	return fmt.Sprintf(DailyReportKeyFmt, date)
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, pattern).Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateKeys removes specific cache keys
func InvalidateKeys(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateEntryCaches clears every cache derived from entries.
// Called when: CreateEntry, UpdateEntry, DeleteEntry. Reports are
// recomputed from entries, so they all go at once.
func InvalidateEntryCaches(ctx context.Context) {
	InvalidatePattern(ctx, "entries:*")
	InvalidatePattern(ctx, "reports:*")
}

// InvalidateUserCaches clears all user-related caches
// Called when: Signup, role change
func InvalidateUserCaches(ctx context.Context) {
	InvalidatePattern(ctx, "users:*")
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
