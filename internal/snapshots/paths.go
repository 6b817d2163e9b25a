package snapshots

import (
	"fmt"
	"path/filepath"
)

// Kind names a snapshot family; each kind lives in its own directory.
type Kind string

const (
	KindTerritories Kind = "territories"
	KindOnline      Kind = "online"
)

const manifestFile = "manifest.json"

// SnapshotPath builds the path to the snapshot of kind for a given date.
func SnapshotPath(basePath string, kind Kind, date string) string {
	return filepath.Join(basePath, string(kind), fmt.Sprintf("%s.json", date))
}
