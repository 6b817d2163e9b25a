package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrNotFound is returned when no snapshot exists for the requested date.
var ErrNotFound = errors.New("snapshot not found")

// Store defines how snapshots are loaded.
type Store interface {
	LoadTerritories(date string) (TerritorySnapshot, error)
	LoadOnline(date string) (OnlineSnapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadTerritories reads {basePath}/territories/{date}.json.
func (s *FSStore) LoadTerritories(date string) (TerritorySnapshot, error) {
	var payload TerritorySnapshot
	if err := s.load(KindTerritories, date, &payload); err != nil {
		return TerritorySnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadOnline reads {basePath}/online/{date}.json.
func (s *FSStore) LoadOnline(date string) (OnlineSnapshot, error) {
	var payload OnlineSnapshot
	if err := s.load(KindOnline, date, &payload); err != nil {
		return OnlineSnapshot{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

func (s *FSStore) load(kind Kind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	f, err := os.Open(SnapshotPath(s.basePath, kind, date))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s %s", ErrNotFound, kind, date)
		}
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
