package server

import (
	"log/slog"

	"github.com/preston-bernstein/wynn-data-service/internal/config"
	"github.com/preston-bernstein/wynn-data-service/internal/metrics"
	"github.com/preston-bernstein/wynn-data-service/internal/providers"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// gatewayFactory assembles the upstream gateway with shared wrappers (rate limit + retry).
type gatewayFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newGatewayFactory(logger *slog.Logger, metrics *metrics.Recorder) gatewayFactory {
	return gatewayFactory{logger: logger, metrics: metrics}
}

func newUpstream(cfg config.Config) *wynncraft.Client {
	return wynncraft.NewClient(wynncraft.Config{BaseURL: cfg.Wynncraft.BaseURL})
}

func (f gatewayFactory) build(cfg config.Config, upstream providers.Upstream) *providers.Gateway {
	if upstream == nil {
		upstream = newUpstream(cfg)
	}
	// One limiter per process so the poller and request handlers share the API quota.
	limiter := providers.NewLimiter(cfg.Wynncraft.RateInterval, f.logger)
	return providers.NewGateway(upstream, providers.GatewayOptions{
		Limiter: limiter,
		Retry: providers.RetryPolicy{
			MaxAttempts:    cfg.Wynncraft.RetryAttempts,
			InitialBackoff: cfg.Wynncraft.RetryBackoff,
		},
		Recorder: f.metrics,
		Logger:   f.logger,
		Timeout:  cfg.Wynncraft.Timeout,
	})
}
