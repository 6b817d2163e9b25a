package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

func sampleTerritories() []wynncraft.Territory {
	return []wynncraft.Territory{
		{Name: "Ragni", Owner: &wynncraft.GuildSummary{UUID: "g-1", Name: "Idiot Co", Prefix: "ICo"}, Acquired: "2024-02-10T18:11:23.000Z"},
		{Name: "Detlas", Owner: &wynncraft.GuildSummary{UUID: "g-2", Name: "Beta", Prefix: "BTA"}, Acquired: "2024-02-09T10:00:00.000Z"},
	}
}

func fixedWriter(t *testing.T, retention int, now time.Time) *Writer {
	t.Helper()
	w := NewWriter(t.TempDir(), retention)
	w.now = func() time.Time { return now }
	return w
}

func writeTerritories(t *testing.T, w *Writer, date string) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteTerritories(date, sampleTerritories()); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, kind Kind, date string) {
	t.Helper()
	if _, err := os.Stat(SnapshotPath(w.BasePath(), kind, date)); err != nil {
		t.Fatalf("expected %s snapshot for %s to be written: %v", kind, date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
