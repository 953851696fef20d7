package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// IsExpired returns true if this snapshot has expired based on its TTL.
func (s *Snapshot) IsExpired() bool {
	if s.TTL == 0 {
		return true // No caching
	}
	return time.Since(s.Built) > s.TTL
}

// LoadFunc loads a fresh list of sources.
type LoadFunc func(ctx context.Context) ([]Source, error)

// Cache holds source snapshots keyed by name, with stampede protection.
type Cache struct {
	mu        sync.RWMutex
	snapshots map[string]*Snapshot
	sf        singleflight.Group
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{snapshots: make(map[string]*Snapshot)}
}

// GetOrBuild returns the snapshot stored under key, or loads a new one if it is missing
// or expired. Concurrent callers for the same key share a single load.
func (c *Cache) GetOrBuild(ctx context.Context, key string, ttl time.Duration, load LoadFunc) (*Snapshot, error) {
	// Fast path: check if snapshot exists and is fresh
	c.mu.RLock()
	snap, exists := c.snapshots[key]
	c.mu.RUnlock()

	if exists && !snap.IsExpired() {
		return snap, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		snap, exists := c.snapshots[key]
		c.mu.RUnlock()

		if exists && !snap.IsExpired() {
			return snap, nil
		}

		sources, err := load(ctx)
		if err != nil {
			return nil, err
		}

		newSnap := &Snapshot{
			Sources: sources,
			Built:   time.Now(),
			TTL:     ttl,
		}

		c.mu.Lock()
		c.snapshots[key] = newSnap
		c.mu.Unlock()

		return newSnap, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Snapshot), nil
}

// Invalidate removes the snapshot stored under key.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.snapshots, key)
	c.mu.Unlock()
}
