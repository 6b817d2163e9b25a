package server

import (
	"testing"

	"github.com/preston-bernstein/wynn-data-service/internal/config"
)

func TestBuildSnapshotsRespectsConfig(t *testing.T) {
	dir := t.TempDir()
	components := buildSnapshots(config.Config{
		Snapshots: config.SnapshotConfig{Enabled: true, Dir: dir, RetentionDays: 1},
	}, nil)
	if components.store == nil || components.writer == nil {
		t.Fatalf("expected snapshots components to be initialized")
	}
	if components.writer.BasePath() != dir {
		t.Fatalf("expected writer rooted at %s, got %s", dir, components.writer.BasePath())
	}
	if components.pollerWriter() == nil {
		t.Fatalf("expected poller writer when enabled")
	}
}

func TestBuildSnapshotsDisabled(t *testing.T) {
	components := buildSnapshots(config.Config{}, nil)
	if components.store != nil || components.writer != nil {
		t.Fatalf("expected no snapshot components when disabled")
	}
	if components.pollerWriter() != nil {
		t.Fatalf("expected nil poller writer interface when disabled")
	}
}
