package providers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/wynn-data-service/internal/logging"
)

// Limiter enforces a minimum interval between upstream calls so the service stays under the
// API's per-IP quota. Callers block in Wait until the next tick.
type Limiter struct {
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
	once     sync.Once
}

// NewLimiter returns a Limiter ticking every interval. A non-positive interval disables limiting.
func NewLimiter(interval time.Duration, logger *slog.Logger) *Limiter {
	l := &Limiter{interval: interval, logger: logger}
	if interval > 0 {
		l.ticker = time.NewTicker(interval)
	}
	return l
}

// Wait blocks until the next slot or until ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	if l == nil || l.ticker == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		logging.Warn(logging.FromContext(ctx, l.logger), "rate-limited wait canceled", "interval", l.interval)
		return ctx.Err()
	case <-l.ticker.C:
		return nil
	}
}

// Close stops the underlying ticker. It is safe to call more than once.
func (l *Limiter) Close() {
	if l == nil || l.ticker == nil {
		return
	}
	l.once.Do(l.ticker.Stop)
}
