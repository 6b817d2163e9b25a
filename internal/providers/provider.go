package providers

import (
	"context"

	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// Upstream is the part of the Wynncraft client the service depends on.
type Upstream interface {
	GetPlayer(ctx context.Context, identifier string) (*wynncraft.Player, error)
	GetPlayerFull(ctx context.Context, identifier string) (*wynncraft.Player, error)
	GetOnlinePlayerData(ctx context.Context, id wynncraft.Identifier) (*wynncraft.OnlinePlayers, error)
	GetOnlinePlayerCount(ctx context.Context) (int, error)
	GetOnlinePlayerCountOnWorld(ctx context.Context, world int) (int, error)
	ListGuilds(ctx context.Context) ([]wynncraft.GuildSummary, error)
	GetGuild(ctx context.Context, name string, id wynncraft.Identifier) (*wynncraft.Guild, error)
	GetGuildByPrefix(ctx context.Context, prefix string, id wynncraft.Identifier) (*wynncraft.Guild, error)
	GetTerritories(ctx context.Context) ([]wynncraft.Territory, error)
	ListClasses(ctx context.Context) ([]wynncraft.ClassSummary, error)
	GetClass(ctx context.Context, id string) (*wynncraft.Class, error)
	GetLeaderboardTypes(ctx context.Context) ([]string, error)
	GetLeaderboard(ctx context.Context, kind string, limit int) ([]wynncraft.LeaderboardEntry, error)
	GetMapMarkers(ctx context.Context) ([]wynncraft.Marker, error)
	GetQuestCount(ctx context.Context) (int, error)
	GetLatestNews(ctx context.Context) ([]wynncraft.NewsItem, error)
}

var _ Upstream = (*wynncraft.Client)(nil)
