// Package expiry provides an in-memory, string-keyed cache whose entries
// expire after a time-to-live.
//
// # Overview
//
// Expiry is meant for memoizing short-lived values such as tokens or lookup
// results inside a single process. Each entry records the time it was written
// and the TTL in force at that moment. Reads that find an entry older than its
// TTL report it as missing. Expiry is lazy: nothing is removed by a read.
//
// # Basic Usage
//
//	cache := expiry.New(expiry.WithDefaultTTL(10 * time.Minute))
//
//	if err := cache.Set("token", "abc"); err != nil {
//		return err // empty key or value
//	}
//	cache.SetWithTTL("nonce", 42, 30*time.Second)
//
//	v, ok := cache.Get("token") // untyped
//
//	tok, ok, err := expiry.Get[string](cache, "token") // typed
//	if errors.Is(err, expiry.ErrTypeMismatch) {
//		// stored value was not a string
//	}
//
//	cache.Remove("token")
//	cache.Clear()
//
// # Default TTL
//
// Set uses the cache-wide default TTL. SetDefaultTTL changes it for later
// writes only; entries keep the TTL they were stored with. A TTL of zero or
// less stores an entry that is already expired.
//
// # Counting and Cleanup
//
// Count reports physically stored entries, expired ones included, so it is an
// upper bound on live entries. Expired entries go away when they are
// overwritten, removed, cleared, or swept:
//
//	cache.DeleteExpired() // one-off sweep
//
//	cache := expiry.New(expiry.WithSweepInterval(time.Minute))
//	defer cache.Close() // stops the sweeper
//
// Keys can also be dropped in bulk by regular expression:
//
//	n, err := cache.RemovePattern(`^user:42:`)
//
// # Loading
//
// GetOrLoad fills a miss from a loader. Concurrent misses on one key share a
// single load. The load is not canceled with any one caller's context; each
// caller stops waiting when its own context is done:
//
//	v, err := cache.GetOrLoad(ctx, "token", func(ctx context.Context) (any, error) {
//		return auth.Fetch(ctx)
//	})
//
// # Testing
//
// Inject a custom clock to control time in tests:
//
//	type fakeClock struct{ now time.Time }
//	func (c *fakeClock) Now() time.Time { return c.now }
//
//	clock := &fakeClock{now: time.Now()}
//	cache := expiry.New(expiry.WithClock(clock))
//
// # Thread Safety
//
// All Cache methods are safe for concurrent use. Reads share a sync.RWMutex
// read lock; writes take it exclusively. Stored values are not copied, so
// reference types must not be mutated after they are stored.
package expiry
