package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval %s, got %s", defaultPollInterval, cfg.PollInterval)
	}
	if cfg.Wynncraft.BaseURL != defaultWynnBaseURL {
		t.Fatalf("expected default wynncraft base url %s, got %s", defaultWynnBaseURL, cfg.Wynncraft.BaseURL)
	}
	if cfg.Wynncraft.RetryAttempts != defaultRetryAttempts {
		t.Fatalf("expected default retry attempts %d, got %d", defaultRetryAttempts, cfg.Wynncraft.RetryAttempts)
	}
	if cfg.AdminToken != "" {
		t.Fatalf("expected empty admin token by default, got %s", cfg.AdminToken)
	}
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir != defaultSnapshotDir || cfg.Snapshots.RetentionDays != defaultSnapshotDays {
		t.Fatalf("unexpected snapshot defaults %+v", cfg.Snapshots)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envPollInterval, "45s")
	t.Setenv(envWynnBaseURL, "http://example.com/v3")
	t.Setenv(envWynnTimeout, "3s")
	t.Setenv(envWynnRateInterval, "1s")
	t.Setenv(envRetryAttempts, "5")
	t.Setenv(envRetryBackoff, "250ms")
	t.Setenv(envAdminToken, "secret-token")
	t.Setenv(envSnapshotEnabled, "false")
	t.Setenv(envSnapshotDir, "/tmp/snaps")
	t.Setenv(envSnapshotRetention, "30")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.PollInterval != 45*time.Second {
		t.Fatalf("expected poll interval 45s, got %s", cfg.PollInterval)
	}
	want := WynncraftConfig{
		BaseURL:       "http://example.com/v3",
		Timeout:       3 * time.Second,
		RateInterval:  time.Second,
		RetryAttempts: 5,
		RetryBackoff:  250 * time.Millisecond,
	}
	if cfg.Wynncraft != want {
		t.Fatalf("expected wynncraft overrides %+v, got %+v", want, cfg.Wynncraft)
	}
	if cfg.AdminToken != "secret-token" {
		t.Fatalf("expected admin token override, got %s", cfg.AdminToken)
	}
	if cfg.Snapshots != (SnapshotConfig{Enabled: false, Dir: "/tmp/snaps", RetentionDays: 30}) {
		t.Fatalf("unexpected snapshot overrides %+v", cfg.Snapshots)
	}
	if cfg.Log != (LogConfig{Level: "debug", Format: "json"}) {
		t.Fatalf("unexpected log overrides %+v", cfg.Log)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envPollInterval, "0s")

	cfg := Load()

	if cfg.PollInterval != defaultPollInterval {
		t.Fatalf("expected default poll interval on non-positive value, got %s", cfg.PollInterval)
	}
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv(envRetryAttempts, "-2")
	t.Setenv(envSnapshotRetention, "many")

	cfg := Load()

	if cfg.Wynncraft.RetryAttempts != defaultRetryAttempts {
		t.Fatalf("expected default retry attempts, got %d", cfg.Wynncraft.RetryAttempts)
	}
	if cfg.Snapshots.RetentionDays != defaultSnapshotDays {
		t.Fatalf("expected default retention, got %d", cfg.Snapshots.RetentionDays)
	}
}

func TestLoadZeroDisablesLimiterAndTimeout(t *testing.T) {
	t.Setenv(envWynnRateInterval, "0")
	t.Setenv(envWynnTimeout, "0s")

	cfg := Load()

	if cfg.Wynncraft.RateInterval != 0 {
		t.Fatalf("expected rate interval 0, got %s", cfg.Wynncraft.RateInterval)
	}
	if cfg.Wynncraft.Timeout != 0 {
		t.Fatalf("expected timeout 0, got %s", cfg.Wynncraft.Timeout)
	}
}
