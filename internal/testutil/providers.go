package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/wynn-data-service/internal/providers"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// StubUpstream implements providers.Upstream with canned data. Err fails every call;
// Errs fails individual methods by name (e.g. "GetTerritories").
type StubUpstream struct {
	Player           *wynncraft.Player
	Online           *wynncraft.OnlinePlayers
	Count            int
	Guilds           []wynncraft.GuildSummary
	Guild            *wynncraft.Guild
	Territories      []wynncraft.Territory
	Classes          []wynncraft.ClassSummary
	Class            *wynncraft.Class
	LeaderboardTypes []string
	Leaderboard      []wynncraft.LeaderboardEntry
	Markers          []wynncraft.Marker
	Quests           int
	News             []wynncraft.NewsItem

	Err  error
	Errs map[string]error

	// Notify is closed after the first call.
	Notify chan struct{}
	Calls  atomic.Int32

	mu         sync.Mutex
	lastArgs   []any
	notifyOnce sync.Once
}

var _ providers.Upstream = (*StubUpstream)(nil)

// LastArgs returns the arguments of the most recent call, excluding the context.
func (s *StubUpstream) LastArgs() []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastArgs
}

func (s *StubUpstream) call(method string, args ...any) error {
	s.Calls.Add(1)
	s.mu.Lock()
	s.lastArgs = args
	s.mu.Unlock()
	if s.Notify != nil {
		s.notifyOnce.Do(func() { close(s.Notify) })
	}
	if err, ok := s.Errs[method]; ok {
		return err
	}
	return s.Err
}

func (s *StubUpstream) GetPlayer(ctx context.Context, identifier string) (*wynncraft.Player, error) {
	if err := s.call("GetPlayer", identifier); err != nil {
		return nil, err
	}
	return s.Player, nil
}

func (s *StubUpstream) GetPlayerFull(ctx context.Context, identifier string) (*wynncraft.Player, error) {
	if err := s.call("GetPlayerFull", identifier); err != nil {
		return nil, err
	}
	return s.Player, nil
}

func (s *StubUpstream) GetOnlinePlayerData(ctx context.Context, id wynncraft.Identifier) (*wynncraft.OnlinePlayers, error) {
	if err := s.call("GetOnlinePlayerData", id); err != nil {
		return nil, err
	}
	return s.Online, nil
}

func (s *StubUpstream) GetOnlinePlayerCount(ctx context.Context) (int, error) {
	if err := s.call("GetOnlinePlayerCount"); err != nil {
		return 0, err
	}
	return s.Count, nil
}

func (s *StubUpstream) GetOnlinePlayerCountOnWorld(ctx context.Context, world int) (int, error) {
	if err := s.call("GetOnlinePlayerCountOnWorld", world); err != nil {
		return 0, err
	}
	return s.Count, nil
}

func (s *StubUpstream) ListGuilds(ctx context.Context) ([]wynncraft.GuildSummary, error) {
	if err := s.call("ListGuilds"); err != nil {
		return nil, err
	}
	return s.Guilds, nil
}

func (s *StubUpstream) GetGuild(ctx context.Context, name string, id wynncraft.Identifier) (*wynncraft.Guild, error) {
	if err := s.call("GetGuild", name, id); err != nil {
		return nil, err
	}
	return s.Guild, nil
}

func (s *StubUpstream) GetGuildByPrefix(ctx context.Context, prefix string, id wynncraft.Identifier) (*wynncraft.Guild, error) {
	if err := s.call("GetGuildByPrefix", prefix, id); err != nil {
		return nil, err
	}
	return s.Guild, nil
}

func (s *StubUpstream) GetTerritories(ctx context.Context) ([]wynncraft.Territory, error) {
	if err := s.call("GetTerritories"); err != nil {
		return nil, err
	}
	return s.Territories, nil
}

func (s *StubUpstream) ListClasses(ctx context.Context) ([]wynncraft.ClassSummary, error) {
	if err := s.call("ListClasses"); err != nil {
		return nil, err
	}
	return s.Classes, nil
}

func (s *StubUpstream) GetClass(ctx context.Context, id string) (*wynncraft.Class, error) {
	if err := s.call("GetClass", id); err != nil {
		return nil, err
	}
	return s.Class, nil
}

func (s *StubUpstream) GetLeaderboardTypes(ctx context.Context) ([]string, error) {
	if err := s.call("GetLeaderboardTypes"); err != nil {
		return nil, err
	}
	return s.LeaderboardTypes, nil
}

func (s *StubUpstream) GetLeaderboard(ctx context.Context, kind string, limit int) ([]wynncraft.LeaderboardEntry, error) {
	if err := s.call("GetLeaderboard", kind, limit); err != nil {
		return nil, err
	}
	return s.Leaderboard, nil
}

func (s *StubUpstream) GetMapMarkers(ctx context.Context) ([]wynncraft.Marker, error) {
	if err := s.call("GetMapMarkers"); err != nil {
		return nil, err
	}
	return s.Markers, nil
}

func (s *StubUpstream) GetQuestCount(ctx context.Context) (int, error) {
	if err := s.call("GetQuestCount"); err != nil {
		return 0, err
	}
	return s.Quests, nil
}

func (s *StubUpstream) GetLatestNews(ctx context.Context) ([]wynncraft.NewsItem, error) {
	if err := s.call("GetLatestNews"); err != nil {
		return nil, err
	}
	return s.News, nil
}

// NewGateway wraps upstream in a gateway with a single attempt and no rate limiting.
func NewGateway(upstream providers.Upstream) *providers.Gateway {
	return providers.NewGateway(upstream, providers.GatewayOptions{
		Retry: providers.RetryPolicy{MaxAttempts: 1},
	})
}
