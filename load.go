package expiry

import "context"

// GetOrLoad returns the live value for key, calling load on a miss and storing
// its result with the default TTL. Concurrent misses on the same key share a
// single call to load. Errors from load are returned and nothing is stored.
//
// The shared load runs under a context that keeps the first caller's values
// but not its cancellation, so one caller giving up does not fail the others.
// Each caller stops waiting when its own ctx is done.
func (c *Cache) GetOrLoad(ctx context.Context, key string, load func(context.Context) (any, error)) (any, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	if v, ok := c.Get(key); ok {
		return v, nil
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := c.loading.DoChan(key, func() (any, error) {
		// another caller may have filled the key while we waited
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		v, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		if err := c.Set(key, v); err != nil {
			return nil, err
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}
