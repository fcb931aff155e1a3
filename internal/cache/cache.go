// README: Optional TTL cache for provider responses (Redis-backed or no-op).
package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort response cache. Misses and backend failures look
// identical to callers; providers must always be able to go to the source.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

// Redis caches values in a shared Redis instance.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (c *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Printf("cache get %s: %v", key, err)
		return "", false
	}
	return v, true
}

func (c *Redis) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// Nop satisfies Cache without storing anything; used when Redis is not
// configured.
type Nop struct{}

func (Nop) Get(context.Context, string) (string, bool)         { return "", false }
func (Nop) Set(context.Context, string, string, time.Duration) {}
