package expiry

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache is a concurrent in-memory cache of string keys with TTL expiry.
type Cache struct {
	mu         sync.RWMutex
	data       map[string]*entry
	cfg        config
	defaultTTL atomic.Int64
	stats      stats

	// deduplicates concurrent loads in GetOrLoad
	loading singleflight.Group

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New creates a new Cache with the given options.
func New(opts ...Option) *Cache {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Cache{
		data: make(map[string]*entry),
		cfg:  cfg,
	}
	c.defaultTTL.Store(int64(cfg.ttl))

	if cfg.sweepInterval > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		c.cancel = cancel
		c.wg.Add(1)
		go c.sweepLoop(ctx, cfg.sweepInterval)
	}

	return c
}

// Get returns the value stored under key.
// Expired entries read as missing but are left in place, so Count still sees them.
func (c *Cache) Get(key string) (any, bool) {
	v, ok := c.lookup(key)
	if !ok {
		c.stats.miss()
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		return nil, false
	}

	c.stats.hit()
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, v)
	}
	return v, true
}

// lookup is Get without stats or hooks.
func (c *Cache) lookup(key string) (any, bool) {
	now := c.cfg.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data[key]
	if !ok || ent.isExpired(now) {
		return nil, false
	}
	return ent.value, true
}

// Set stores value under key using the current default TTL.
func (c *Cache) Set(key string, value any) error {
	return c.SetWithTTL(key, value, c.DefaultTTL())
}

// SetWithTTL stores value under key with a specific TTL, replacing any
// existing entry whether or not it has expired.
// A non-positive ttl stores an entry that is already expired.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) error {
	if key == "" {
		c.stats.reject()
		c.cfg.logger.Debug("cache write rejected", "reason", "empty key")
		return ErrEmptyKey
	}
	if isEmpty(value) {
		c.stats.reject()
		c.cfg.logger.Debug("cache write rejected", "key", key, "reason", "empty value")
		return ErrEmptyValue
	}

	c.mu.Lock()
	c.data[key] = &entry{
		value:      value,
		insertedAt: c.cfg.clock.Now(),
		ttl:        ttl,
	}
	c.mu.Unlock()
	return nil
}

// Has reports whether key holds a live entry.
func (c *Cache) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data[key]
	if !ok {
		return false
	}
	return !ent.isExpired(c.cfg.clock.Now())
}

// Inspect returns metadata for the entry stored under key, expired or not.
func (c *Cache) Inspect(key string) (Info, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.data[key]
	if !ok {
		return Info{}, false
	}
	return ent.info(c.cfg.clock.Now()), true
}

// InspectAll returns metadata for every stored entry, expired ones included.
func (c *Cache) InspectAll() map[string]Info {
	now := c.cfg.clock.Now()

	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make(map[string]Info, len(c.data))
	for key, ent := range c.data {
		infos[key] = ent.info(now)
	}
	return infos
}

// Remove deletes key whether or not its entry has expired.
// It reports whether an entry was present.
func (c *Cache) Remove(key string) bool {
	if key == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[key]; !ok {
		return false
	}
	delete(c.data, key)
	return true
}

// RemoveMatching deletes every key matched by re and returns how many were removed.
func (c *Cache) RemoveMatching(re *regexp.Regexp) int {
	if re == nil {
		return 0
	}

	c.mu.Lock()
	var removed []evicted
	for key, ent := range c.data {
		if re.MatchString(key) {
			delete(c.data, key)
			removed = append(removed, evicted{key, ent.value})
		}
	}
	c.mu.Unlock()

	c.notifyEvicted(removed)
	c.cfg.logger.Debug("cache keys removed by pattern", "pattern", re.String(), "removed", len(removed))
	return len(removed)
}

// RemovePattern compiles expr and deletes every matching key.
func (c *Cache) RemovePattern(expr string) (int, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return 0, fmt.Errorf("%w: pattern %q: %w", ErrInvalidArgument, expr, err)
	}
	return c.RemoveMatching(re), nil
}

// DeleteExpired removes all expired entries and returns how many were removed.
func (c *Cache) DeleteExpired() int {
	now := c.cfg.clock.Now()

	c.mu.Lock()
	var removed []evicted
	for key, ent := range c.data {
		if ent.isExpired(now) {
			delete(c.data, key)
			removed = append(removed, evicted{key, ent.value})
		}
	}
	c.mu.Unlock()

	c.notifyEvicted(removed)
	return len(removed)
}

type evicted struct {
	key   string
	value any
}

func (c *Cache) notifyEvicted(removed []evicted) {
	c.stats.evict(len(removed))
	if c.cfg.onEvict == nil {
		return
	}
	for _, e := range removed {
		c.cfg.onEvict(e.key, e.value)
	}
}

// Clear removes all entries. The cache remains usable.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.data)
}

// Count returns the number of stored entries.
// It includes expired entries that haven't been removed yet, so it is an
// upper bound on the number of live entries.
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.data)
}

// Keys returns the live keys in sorted order.
func (c *Cache) Keys() []string {
	now := c.cfg.clock.Now()

	c.mu.RLock()
	keys := make([]string, 0, len(c.data))
	for key, ent := range c.data {
		if !ent.isExpired(now) {
			keys = append(keys, key)
		}
	}
	c.mu.RUnlock()

	slices.Sort(keys)
	return keys
}

// DefaultTTL returns the TTL that Set currently applies.
func (c *Cache) DefaultTTL() time.Duration {
	return time.Duration(c.defaultTTL.Load())
}

// SetDefaultTTL changes the TTL used by later calls to Set.
// Entries already stored keep the TTL they were written with.
func (c *Cache) SetDefaultTTL(ttl time.Duration) {
	c.defaultTTL.Store(int64(ttl))
	c.cfg.logger.Debug("cache default ttl changed", "ttl", ttl)
}

// Stats returns a snapshot of cache statistics.
func (c *Cache) Stats() Snapshot {
	return c.stats.snapshot()
}

// Close stops the background sweeper, if any. It is safe to call more than once,
// and the cache keeps working after Close.
func (c *Cache) Close() error {
	c.closeOnce.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		c.wg.Wait()
	})
	return nil
}
