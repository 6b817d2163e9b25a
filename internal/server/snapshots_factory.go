package server

import (
	"log/slog"

	"github.com/preston-bernstein/wynn-data-service/internal/config"
	"github.com/preston-bernstein/wynn-data-service/internal/logging"
	"github.com/preston-bernstein/wynn-data-service/internal/poller"
	"github.com/preston-bernstein/wynn-data-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

// pollerWriter returns the writer as a poller.SnapshotWriter, or a nil interface when disabled.
func (c snapshotComponents) pollerWriter() poller.SnapshotWriter {
	if c.writer == nil {
		return nil
	}
	return c.writer
}

func buildSnapshots(cfg config.Config, logger *slog.Logger) snapshotComponents {
	if !cfg.Snapshots.Enabled {
		logging.Info(logger, "snapshots disabled")
		return snapshotComponents{}
	}
	basePath := cfg.Snapshots.Dir
	logging.Info(logger, "snapshots enabled",
		slog.String("dir", basePath),
		slog.Int("retention_days", cfg.Snapshots.RetentionDays),
	)
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays),
	}
}
