// Package contentcache memoizes the public content lists between admin
// edits.
package contentcache

import (
	"context"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
	gocache "github.com/patrickmn/go-cache"
)

type Cache struct {
	items  *gocache.Cache
	logger lager.Logger

	// mu orders fills against invalidations. A fill only lands if no
	// Invalidate or Flush touched its key while the loader ran.
	mu    sync.Mutex
	epoch uint64
	gens  map[string]uint64
}

type generation struct {
	epoch, key uint64
}

// New returns a cache whose entries live for ttl. A ttl <= 0 disables
// caching: every lookup goes to the loader.
func New(ttl time.Duration, logger lager.Logger) *Cache {
	c := &Cache{logger: logger.Session("content-cache"), gens: make(map[string]uint64)}
	if ttl > 0 {
		c.items = gocache.New(ttl, 2*ttl)
	}
	return c
}

func (c *Cache) generation(key string) generation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return generation{epoch: c.epoch, key: c.gens[key]}
}

// Invalidate drops key so the next lookup reloads it. A load of key that is
// already running will not store its result.
func (c *Cache) Invalidate(key string) {
	if c.items == nil {
		return
	}
	c.mu.Lock()
	c.gens[key]++
	c.items.Delete(key)
	c.mu.Unlock()
	c.logger.Debug("invalidated", lager.Data{"key": key})
}

func (c *Cache) Flush() {
	if c.items == nil {
		return
	}
	c.mu.Lock()
	c.epoch++
	c.items.Flush()
	c.mu.Unlock()
}

// Get returns the cached value for key, calling load on a miss. Errors are
// never cached.
func Get[T any](ctx context.Context, c *Cache, key string, load func(context.Context) (T, error)) (T, error) {
	if c.items != nil {
		if v, ok := c.items.Get(key); ok {
			if typed, ok := v.(T); ok {
				return typed, nil
			}
		}
	}

	gen := c.generation(key)
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if c.items == nil {
		return v, nil
	}

	c.mu.Lock()
	stale := gen != generation{epoch: c.epoch, key: c.gens[key]}
	if !stale {
		c.items.Set(key, v, gocache.DefaultExpiration)
	}
	c.mu.Unlock()

	if stale {
		c.logger.Debug("fill-skipped", lager.Data{"key": key})
	} else {
		c.logger.Debug("filled", lager.Data{"key": key})
	}
	return v, nil
}
