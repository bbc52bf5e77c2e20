package expiry

import (
	"context"
	"time"
)

// sweepLoop removes expired entries every interval until ctx is canceled.
func (c *Cache) sweepLoop(ctx context.Context, interval time.Duration) {
	defer c.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.DeleteExpired(); n > 0 {
				c.cfg.logger.Debug("cache sweep", "removed", n)
			}
		}
	}
}
