package expiry

import "sync/atomic"

// stats holds cache counters using atomics for lock-free updates.
type stats struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	rejected  atomic.Int64
}

func (s *stats) hit() {
	s.hits.Add(1)
}

func (s *stats) miss() {
	s.misses.Add(1)
}

func (s *stats) evict(n int) {
	s.evictions.Add(int64(n))
}

func (s *stats) reject() {
	s.rejected.Add(1)
}

func (s *stats) snapshot() Snapshot {
	return Snapshot{
		Hits:      s.hits.Load(),
		Misses:    s.misses.Load(),
		Evictions: s.evictions.Load(),
		Rejected:  s.rejected.Load(),
	}
}

// Snapshot is a point-in-time copy of cache statistics.
type Snapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64 // dropped by sweeps and pattern removals
	Rejected  int64 // writes refused for an empty key or value
}

// HitRate returns the cache hit rate as a value between 0 and 1.
// Returns 0 if there have been no accesses.
func (s Snapshot) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
