package recipesource

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const detailTTL = time.Hour

// DetailCache memoizes detail lookups in Redis, keyed by recipe id. Cache
// misses and cache errors fall through to the API silently.
type DetailCache struct {
	rdb *redis.Client
}

func NewDetailCache(rdb *redis.Client) *DetailCache {
	return &DetailCache{rdb: rdb}
}

func (c *DetailCache) key(id int) string {
	return fmt.Sprintf("recipe:%d", id)
}

// Get returns the cached detail for a recipe id, if any.
func (c *DetailCache) Get(ctx context.Context, id int) (*Detail, bool) {
	data, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		return nil, false
	}

	var detail Detail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, false
	}
	return &detail, true
}

// Set stores a detail record with a fixed TTL.
func (c *DetailCache) Set(ctx context.Context, id int, detail *Detail) {
	data, err := json.Marshal(detail)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(id), data, detailTTL)
}
