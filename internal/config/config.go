package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	AdminToken   string
	Wynncraft    WynncraftConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
	Log          LogConfig
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		AdminToken:   envOrDefault(envAdminToken, ""),
		Wynncraft:    loadWynncraft(),
		Metrics:      loadMetrics(),
		Snapshots:    loadSnapshots(),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}
