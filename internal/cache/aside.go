package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Aside implements the cache-aside pattern: try the cache, fall back to the
// loader, and populate the cache on a miss. When Redis is unavailable the
// loader runs directly; cache failures never fail the request.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, load func() error) error {
	if client == nil {
		return load()
	}

	if raw, err := client.Get(ctx, key).Bytes(); err == nil {
		if jsonErr := json.Unmarshal(raw, dest); jsonErr == nil {
			return nil
		}
		// Corrupt entry: drop it and reload.
		client.Del(ctx, key)
	}

	if err := load(); err != nil {
		return err
	}

	if data, err := json.Marshal(dest); err == nil {
		client.Set(ctx, key, data, ttl)
	}
	return nil
}
