package expiry

import (
	"log/slog"
	"time"
)

// DefaultTTL is the time-to-live applied by Set when no other default is configured.
const DefaultTTL = 5 * time.Minute

type config struct {
	ttl           time.Duration
	sweepInterval time.Duration
	clock         Clock
	logger        *slog.Logger
	onEvict       func(string, any)
	onHit         func(string, any)
	onMiss        func(string)
}

func defaultConfig() config {
	return config{
		ttl:    DefaultTTL,
		clock:  realClock{},
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures a Cache.
type Option func(*config)

// WithDefaultTTL sets the initial default time-to-live for entries stored with Set.
// A non-positive duration makes every such entry expire immediately.
func WithDefaultTTL(d time.Duration) Option {
	return func(c *config) {
		c.ttl = d
	}
}

// WithSweepInterval starts a background goroutine that removes expired entries
// every d. Without it, expired entries stay in memory until they are removed,
// overwritten, cleared or swept with DeleteExpired.
func WithSweepInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.sweepInterval = d
		}
	}
}

// WithClock sets a custom clock for time operations.
// Useful for testing TTL behavior.
func WithClock(clk Clock) Option {
	return func(c *config) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithLogger sets the logger used for debug output. The cache is silent by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// OnEvict sets a callback invoked when the cache itself drops an entry,
// either by sweeping expired entries or by pattern removal.
func OnEvict(fn func(key string, value any)) Option {
	return func(c *config) {
		c.onEvict = fn
	}
}

// OnHit sets a callback invoked on cache hits.
func OnHit(fn func(key string, value any)) Option {
	return func(c *config) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses, including reads of expired entries.
func OnMiss(fn func(key string)) Option {
	return func(c *config) {
		c.onMiss = fn
	}
}
