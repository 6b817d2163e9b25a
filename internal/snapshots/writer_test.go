package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

func TestWriterWritesSnapshotAndManifest(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	w := fixedWriter(t, 10, now)

	writeTerritories(t, w, "2024-02-10")
	requireSnapshotExists(t, w, KindTerritories, "2024-02-10")

	m, err := ReadManifest(w.BasePath())
	if err != nil {
		t.Fatalf("expected manifest, got err %v", err)
	}
	assertDatesEqual(t, m.Territories.Dates, []string{"2024-02-10"})
	if !m.Territories.LastRefreshed.Equal(now) {
		t.Fatalf("expected last refreshed %s, got %s", now, m.Territories.LastRefreshed)
	}
	if m.Retention.Days != 10 {
		t.Fatalf("expected retention 10, got %d", m.Retention.Days)
	}
	if len(m.Online.Dates) != 0 {
		t.Fatalf("expected no online dates, got %v", m.Online.Dates)
	}
}

func TestWriterSortsTerritoriesByName(t *testing.T) {
	w := fixedWriter(t, 10, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	writeTerritories(t, w, "2024-02-10")

	snap, err := NewFSStore(w.BasePath()).LoadTerritories("2024-02-10")
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}
	if len(snap.Territories) != 2 || snap.Territories[0].Name != "Detlas" {
		t.Fatalf("expected territories sorted by name, got %+v", snap.Territories)
	}
}

func TestWriterPrunesOldSnapshots(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	w := fixedWriter(t, 1, now)

	for _, d := range []string{"2024-02-01", "2024-02-09", "2024-02-10"} {
		writeTerritories(t, w, d)
	}

	if _, err := os.Stat(SnapshotPath(w.BasePath(), KindTerritories, "2024-02-01")); !os.IsNotExist(err) {
		t.Fatalf("expected old snapshot to be pruned, got err %v", err)
	}
	requireSnapshotExists(t, w, KindTerritories, "2024-02-09")

	m, _ := ReadManifest(w.BasePath())
	assertDatesEqual(t, m.Territories.Dates, []string{"2024-02-09", "2024-02-10"})
}

func TestWriterSkipsIdenticalContent(t *testing.T) {
	w := fixedWriter(t, 5, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	writeTerritories(t, w, "2024-02-10")

	path := SnapshotPath(w.BasePath(), KindTerritories, "2024-02-10")
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	writeTerritories(t, w, "2024-02-10")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.ModTime().Equal(old) {
		t.Fatalf("expected identical snapshot not to be rewritten, mtime %s", info.ModTime())
	}
}

func TestWriterWritesOnlineAlongsideTerritories(t *testing.T) {
	w := fixedWriter(t, 5, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	writeTerritories(t, w, "2024-02-10")
	if err := w.WriteOnline("2024-02-10", wynncraft.OnlinePlayers{Total: 1, ByWorld: map[string][]string{"WC1": {"amy"}}}); err != nil {
		t.Fatalf("write online: %v", err)
	}

	m, _ := ReadManifest(w.BasePath())
	assertDatesEqual(t, m.Territories.Dates, []string{"2024-02-10"})
	assertDatesEqual(t, m.Online.Dates, []string{"2024-02-10"})

	if _, err := os.Stat(filepath.Join(w.BasePath(), "online", "2024-02-10.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, got %v", err)
	}
}

func TestWriterValidation(t *testing.T) {
	var nilWriter *Writer
	if err := nilWriter.WriteTerritories("2024-01-01", nil); err == nil {
		t.Fatal("expected error for nil writer")
	}
	if nilWriter.BasePath() != "" {
		t.Fatal("expected empty base path for nil writer")
	}

	w := NewWriter(t.TempDir(), 0)
	if w.retentionDays != defaultRetentionDays {
		t.Fatalf("expected default retention, got %d", w.retentionDays)
	}
	if err := w.WriteOnline("", wynncraft.OnlinePlayers{}); err == nil {
		t.Fatal("expected error for empty date")
	}
}
