package store

import (
	"sync"
	"time"

	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// MemoryStore keeps thread-safe snapshots of the polled Wynncraft data in memory.
type MemoryStore struct {
	mu          sync.RWMutex
	online      *wynncraft.OnlinePlayers
	onlineAt    time.Time
	news        []wynncraft.NewsItem
	newsAt      time.Time
	territories []wynncraft.Territory
	territoryAt time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SetOnline replaces the online-player snapshot.
func (s *MemoryStore) SetOnline(online wynncraft.OnlinePlayers, at time.Time) {
	cp := copyOnline(online)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = &cp
	s.onlineAt = at
}

// Online returns a copy of the online-player snapshot and when it was refreshed.
// ok is false until the first successful refresh.
func (s *MemoryStore) Online() (online wynncraft.OnlinePlayers, at time.Time, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.online == nil {
		return wynncraft.OnlinePlayers{}, time.Time{}, false
	}
	return copyOnline(*s.online), s.onlineAt, true
}

// SetNews replaces the news snapshot.
func (s *MemoryStore) SetNews(items []wynncraft.NewsItem, at time.Time) {
	cp := append(make([]wynncraft.NewsItem, 0, len(items)), items...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.news = cp
	s.newsAt = at
}

// News returns a copy of the news snapshot.
func (s *MemoryStore) News() ([]wynncraft.NewsItem, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.news == nil {
		return nil, time.Time{}, false
	}
	return append(make([]wynncraft.NewsItem, 0, len(s.news)), s.news...), s.newsAt, true
}

// SetTerritories replaces the territory snapshot.
func (s *MemoryStore) SetTerritories(territories []wynncraft.Territory, at time.Time) {
	cp := copyTerritories(territories)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.territories = cp
	s.territoryAt = at
}

// Territories returns a copy of the territory snapshot.
func (s *MemoryStore) Territories() ([]wynncraft.Territory, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.territories == nil {
		return nil, time.Time{}, false
	}
	return copyTerritories(s.territories), s.territoryAt, true
}

func copyTerritories(in []wynncraft.Territory) []wynncraft.Territory {
	out := make([]wynncraft.Territory, len(in))
	for i, t := range in {
		if t.Owner != nil {
			owner := *t.Owner
			t.Owner = &owner
		}
		out[i] = t
	}
	return out
}

func copyOnline(in wynncraft.OnlinePlayers) wynncraft.OnlinePlayers {
	out := wynncraft.OnlinePlayers{Total: in.Total, ByWorld: make(map[string][]string, len(in.ByWorld))}
	for world, players := range in.ByWorld {
		out.ByWorld[world] = append([]string(nil), players...)
	}
	return out
}
