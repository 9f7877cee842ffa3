package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"invoice-dashboard/config"

	"github.com/redis/go-redis/v9"
)

// ViewCache caches rendered view data in Redis under path-derived keys and
// lets mutation handlers mark a view stale so the next read recomputes it.
type ViewCache struct {
	client *redis.Client
	cfg    config.CacheConfig
}

// NewViewCache creates a ViewCache on top of an existing Redis client.
func NewViewCache(client *redis.Client, cfg config.CacheConfig) *ViewCache {
	return &ViewCache{client: client, cfg: cfg}
}

func (c *ViewCache) key(path string) string {
	return c.cfg.KeyPrefix + path
}

// Get unmarshals the cached view for path into dest. Returns false on a
// miss or any redis/decoding failure; a broken cache must never break a read.
func (c *ViewCache) Get(ctx context.Context, path string, dest any) bool {
	data, err := c.client.Get(ctx, c.key(path)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("ViewCache: Error reading key %s: %v", c.key(path), err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		log.Printf("ViewCache: Error decoding cached view %s: %v", c.key(path), err)
		return false
	}
	return true
}

// Set stores the view for path with the configured TTL. Failures are
// logged only; caching is best-effort.
func (c *ViewCache) Set(ctx context.Context, path string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		log.Printf("ViewCache: Error encoding view %s: %v", c.key(path), err)
		return
	}
	if err := c.client.Set(ctx, c.key(path), data, c.cfg.ListTTL).Err(); err != nil {
		log.Printf("ViewCache: Error writing key %s: %v", c.key(path), err)
	}
}

// Revalidate marks the view for path stale so the next read recomputes it.
// Failures are logged only: a mutation must not fail because the cache is
// unreachable.
func (c *ViewCache) Revalidate(ctx context.Context, path string) {
	if err := c.client.Del(ctx, c.key(path)).Err(); err != nil {
		log.Printf("ViewCache: Error revalidating %s: %v", path, err)
	}
}
