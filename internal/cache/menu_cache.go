package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	menuKey = "menu:public"
	menuTTL = 5 * time.Minute
)

// MenuCache holds the rendered public menu payload in redis. A nil
// *MenuCache is valid and caches nothing, so callers never branch on
// whether redis is configured.
type MenuCache struct {
	rdb *redis.Client
}

func NewMenuCache(addr string) *MenuCache {
	if addr == "" {
		return nil
	}
	return &MenuCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (c *MenuCache) Get(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	b, err := c.rdb.Get(ctx, menuKey).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *MenuCache) Set(ctx context.Context, payload []byte) {
	if c == nil {
		return
	}
	c.rdb.Set(ctx, menuKey, payload, menuTTL)
}

// Invalidate drops the cached menu after any menu mutation.
func (c *MenuCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, menuKey)
}
