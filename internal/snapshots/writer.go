package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/preston-bernstein/wynn-data-service/internal/timeutil"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

const defaultRetentionDays = 14

var (
	errNoWriter = errors.New("snapshot writer not configured")
	errNoDate   = errors.New("date required")
)

// Writer persists snapshots and manifest with pruning.
type Writer struct {
	mu            sync.Mutex
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteTerritories writes the territory snapshot for date (YYYY-MM-DD) and prunes old snapshots.
func (w *Writer) WriteTerritories(date string, territories []wynncraft.Territory) error {
	sorted := append([]wynncraft.Territory(nil), territories...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return w.writeSnapshot(KindTerritories, date, TerritorySnapshot{Date: date, Territories: sorted})
}

// WriteOnline writes the online-player snapshot for date and prunes old snapshots.
func (w *Writer) WriteOnline(date string, online wynncraft.OnlinePlayers) error {
	byWorld := online.ByWorld
	if byWorld == nil {
		byWorld = map[string][]string{}
	}
	return w.writeSnapshot(KindOnline, date, OnlineSnapshot{Date: date, Total: online.Total, ByWorld: byWorld})
}

func (w *Writer) writeSnapshot(kind Kind, date string, payload any) error {
	if w == nil {
		return errNoWriter
	}
	if date == "" {
		return errNoDate
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	target := SnapshotPath(w.basePath, kind, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(kind, date)
}

func (w *Writer) updateManifest(kind Kind, date string) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)

	dates, err := w.listDates(kind)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	meta := m.meta(kind)
	meta.Dates = w.pruneOldSnapshots(kind, dates)
	meta.LastRefreshed = w.now().UTC()
	m.Retention.Days = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates(kind Kind) ([]string, error) {
	dir := filepath.Join(w.basePath, string(kind))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

// pruneOldSnapshots removes dated files older than the retention window. Undated names are kept.
func (w *Writer) pruneOldSnapshots(kind Kind, dates []string) []string {
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err == nil && parsed.Before(cutoff) {
			_ = os.Remove(SnapshotPath(w.basePath, kind, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
