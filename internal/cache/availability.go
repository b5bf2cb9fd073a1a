package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// AvailabilityCache guarda el resultado del cálculo de disponibilidad
// por fecha. Es solo un atajo: cualquier error se ignora y se vuelve a
// consultar la base. TTL corto porque otros clientes también reservan.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

const keyPrefix = "availability:"

func NewAvailabilityCache(redisURL string) *AvailabilityCache {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis disabled, invalid REDIS_URL: %v", err)
		return nil
	}

	return &AvailabilityCache{
		rdb: redis.NewClient(opt),
		ttl: 30 * time.Second,
	}
}

// Get devuelve los horarios cacheados para la fecha (YYYY-MM-DD), si hay.
func (c *AvailabilityCache) Get(ctx context.Context, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, keyPrefix+date).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *AvailabilityCache) Set(ctx context.Context, date string, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, keyPrefix+date, raw, c.ttl).Err(); err != nil {
		log.Printf("availability cache set failed: %v", err)
	}
}

// Invalidate borra la fecha cacheada; se llama en cada alta o cambio de
// estado que toque ese día.
func (c *AvailabilityCache) Invalidate(ctx context.Context, date string) {
	if c == nil {
		return
	}

	if err := c.rdb.Del(ctx, keyPrefix+date).Err(); err != nil {
		log.Printf("availability cache invalidate failed: %v", err)
	}
}
