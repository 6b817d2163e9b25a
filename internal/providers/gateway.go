package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/wynn-data-service/internal/metrics"
)

// Gateway funnels every upstream call through rate limiting, retries, metrics and logging.
type Gateway struct {
	upstream Upstream
	limiter  *Limiter
	policy   RetryPolicy
	recorder *metrics.Recorder
	logger   *slog.Logger
	timeout  time.Duration
}

// GatewayOptions configures a Gateway. Zero values fall back to defaults.
type GatewayOptions struct {
	Limiter  *Limiter
	Retry    RetryPolicy
	Recorder *metrics.Recorder
	Logger   *slog.Logger
	// Timeout bounds each attempt; zero leaves attempts bounded only by the caller's context.
	Timeout time.Duration
}

// NewGateway wraps upstream with the resilience policy in opts.
func NewGateway(upstream Upstream, opts GatewayOptions) *Gateway {
	return &Gateway{
		upstream: upstream,
		limiter:  opts.Limiter,
		policy:   opts.Retry.withDefaults(),
		recorder: opts.Recorder,
		logger:   opts.Logger,
		timeout:  opts.Timeout,
	}
}

// Close releases the gateway's limiter.
func (g *Gateway) Close() {
	if g != nil {
		g.limiter.Close()
	}
}

// Fetch runs fn against the upstream client under the gateway's policy. endpoint names the call
// in metrics and logs.
func Fetch[T any](ctx context.Context, g *Gateway, endpoint string, fn func(context.Context, Upstream) (T, error)) (T, error) {
	var zero T
	if g == nil || g.upstream == nil {
		return zero, ErrProviderUnavailable
	}

	hinted, policy := g.policy.newBackOff(ctx)
	attempt := 0

	op := func() (T, error) {
		attempt++
		if err := g.limiter.Wait(ctx); err != nil {
			return zero, backoff.Permanent(err)
		}

		callCtx, cancel := g.attemptContext(ctx)
		defer cancel()

		start := time.Now()
		v, err := fn(callCtx, g.upstream)
		g.recorder.RecordUpstreamAttempt(endpoint, time.Since(start), err)
		if err == nil {
			return v, nil
		}

		err = classify(endpoint, err)
		if rl, ok := AsRateLimitError(err); ok {
			g.recorder.RecordRateLimit(endpoint, rl.RetryAfter)
			hinted.hint = rl.RetryAfter
		}
		if isPermanent(err) || ctx.Err() != nil {
			return zero, backoff.Permanent(err)
		}
		return zero, err
	}

	notify := func(err error, next time.Duration) {
		g.recorder.RecordRetry(endpoint)
		logWithEndpoint(ctx, g.logger, slog.LevelWarn, endpoint, "upstream call retry",
			"attempt", attempt,
			"max_attempts", g.policy.MaxAttempts,
			"backoff_ms", next.Milliseconds(),
			"error", err,
		)
	}

	v, err := backoff.RetryNotifyWithData(op, policy, notify)
	if err != nil {
		logWithEndpoint(ctx, g.logger, slog.LevelWarn, endpoint, "upstream call failed", "attempts", attempt, "error", err)
		return zero, err
	}
	return v, nil
}

func (g *Gateway) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, g.timeout)
}
