package config

import "time"

const (
	envPort              = "PORT"
	envPollInterval      = "POLL_INTERVAL"
	envWynnBaseURL       = "WYNNCRAFT_BASE_URL"
	envWynnTimeout       = "WYNNCRAFT_TIMEOUT"
	envWynnRateInterval  = "WYNNCRAFT_RATE_INTERVAL"
	envRetryAttempts     = "RETRY_ATTEMPTS"
	envRetryBackoff      = "RETRY_BACKOFF"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken        = "ADMIN_TOKEN"
	envSnapshotEnabled   = "SNAPSHOT_ENABLED"
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"

	defaultPort         = "4000"
	defaultPollInterval = Duration(time.Minute)
	defaultWynnBaseURL  = "https://api.wynncraft.com/v3"
	// Per-request ceiling applied by the service; the client library itself never times out.
	defaultWynnTimeout = 15 * Duration(time.Second)
	// Spacing between upstream calls; the public API allows roughly 120 requests per minute per IP.
	defaultWynnRateInterval = 500 * Duration(time.Millisecond)
	defaultRetryAttempts    = 3
	defaultRetryBackoff     = 500 * Duration(time.Millisecond)
	defaultMetricsPort      = "9090"
	defaultServiceName      = "wynn-data-service"
	defaultSnapshotEnabled  = true
	defaultSnapshotDir      = "data/snapshots"
	defaultSnapshotDays     = 14
	defaultLogLevel         = "info"
	defaultLogFormat        = "text"
)
