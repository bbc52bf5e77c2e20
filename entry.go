package expiry

import "time"

type entry struct {
	value      any
	insertedAt time.Time
	ttl        time.Duration // recorded at insertion; <= 0 is always expired
}

func (e *entry) isExpired(now time.Time) bool {
	return now.Sub(e.insertedAt) >= e.ttl
}

func (e *entry) info(now time.Time) Info {
	return Info{
		InsertedAt: e.insertedAt,
		TTL:        e.ttl,
		ExpiresAt:  e.insertedAt.Add(e.ttl),
		Expired:    e.isExpired(now),
	}
}

// Info describes a stored entry without exposing its value.
type Info struct {
	InsertedAt time.Time
	TTL        time.Duration
	ExpiresAt  time.Time
	Expired    bool
}
