package testutil

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/wynn-data-service/internal/snapshots"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot writes a territory snapshot with a single territory for the date.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, date string) {
	t.Helper()
	if err := writeSnapshotPayload(w, date); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func writeSnapshotPayload(w *snapshots.Writer, date string) error {
	if w == nil {
		return errors.New("nil snapshot writer")
	}
	return w.WriteTerritories(date, []wynncraft.Territory{SampleTerritory("Ragni", "TST")})
}

// SnapshotPath returns the expected territory snapshot path for a date.
func SnapshotPath(w *snapshots.Writer, date string) string {
	return snapshots.SnapshotPath(w.BasePath(), snapshots.KindTerritories, date)
}

// StubSnapshotWriter records written snapshots in memory. Err fails every write.
type StubSnapshotWriter struct {
	Territories map[string][]wynncraft.Territory
	Online      map[string]wynncraft.OnlinePlayers
	Err         error
}

func (w *StubSnapshotWriter) WriteTerritories(date string, territories []wynncraft.Territory) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Territories == nil {
		w.Territories = make(map[string][]wynncraft.Territory)
	}
	w.Territories[date] = territories
	return nil
}

func (w *StubSnapshotWriter) WriteOnline(date string, online wynncraft.OnlinePlayers) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Online == nil {
		w.Online = make(map[string]wynncraft.OnlinePlayers)
	}
	w.Online[date] = online
	return nil
}
