// Package memcache is the in-process domain.Cache, for single-instance
// deployments that do not run Redis.
package memcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jellydator/ttlcache/v3"

	"villa_site/internal/adapters/observability"
)

type Cache struct {
	c *ttlcache.Cache[string, []byte]
}

// New starts the expiry loop; call Close to stop it.
func New(defaultTTL time.Duration) *Cache {
	c := ttlcache.New(
		ttlcache.WithTTL[string, []byte](defaultTTL),
		ttlcache.WithDisableTouchOnHit[string, []byte](),
	)
	go c.Start()
	return &Cache{c: c}
}

func (m *Cache) Close() { m.c.Stop() }

// Values are stored encoded so callers never share backing arrays with the cache.
func (m *Cache) Get(_ context.Context, key string, dst any) (bool, error) {
	it := m.c.Get(key)
	if it == nil {
		observability.ObserveCache("memory", key, "miss")
		return false, nil
	}
	observability.ObserveCache("memory", key, "hit")
	return true, json.Unmarshal(it.Value(), dst)
}

func (m *Cache) Set(_ context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ttl := ttlcache.DefaultTTL
	if ttlSec > 0 {
		ttl = time.Duration(ttlSec) * time.Second
	}
	m.c.Set(key, b, ttl)
	observability.ObserveCache("memory", key, "set")
	return nil
}

func (m *Cache) Del(_ context.Context, key string) error {
	m.c.Delete(key)
	observability.ObserveCache("memory", key, "del")
	return nil
}

// Nop is the cache used when caching is disabled; every read misses.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any, int) error     { return nil }
func (Nop) Del(context.Context, string) error               { return nil }
