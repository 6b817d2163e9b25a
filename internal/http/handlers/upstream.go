package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/preston-bernstein/wynn-data-service/internal/providers"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

// Endpoint names used for gateway metrics and logs.
const (
	endpointPlayer           = "player"
	endpointOnlineCount      = "online_count"
	endpointGuilds           = "guilds"
	endpointGuild            = "guild"
	endpointGuildPrefix      = "guild_prefix"
	endpointClasses          = "classes"
	endpointClass            = "class"
	endpointLeaderboardTypes = "leaderboard_types"
	endpointLeaderboard      = "leaderboard"
	endpointMapMarkers       = "map_markers"
	endpointQuests           = "quests"
)

type countResponse struct {
	World int `json:"world,omitempty"`
	Count int `json:"count"`
}

type questsResponse struct {
	Quests int `json:"quests"`
}

// serveUpstream runs fn through the gateway and writes either its result or the mapped error.
func serveUpstream[T any](h *Handler, w http.ResponseWriter, r *http.Request, endpoint string, fn func(context.Context, providers.Upstream) (T, error)) {
	logger := loggerFromContext(r, h.logger)
	v, err := providers.Fetch(r.Context(), h.gateway, endpoint, fn)
	if err != nil {
		writeUpstreamError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, v, logger)
}

// Player returns a player profile; ?full=true includes every character.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id, err := parsePlayerIdentifier(r.PathValue("identifier"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	full, err := parseFull(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "full must be a boolean", h.logger)
		return
	}
	serveUpstream(h, w, r, endpointPlayer, func(ctx context.Context, u providers.Upstream) (*wynncraft.Player, error) {
		if full {
			return u.GetPlayerFull(ctx, id)
		}
		return u.GetPlayer(ctx, id)
	})
}

// OnlineCount returns the live online-player count, network wide or for ?world=N.
func (h *Handler) OnlineCount(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	world, err := parseWorld(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	serveUpstream(h, w, r, endpointOnlineCount, func(ctx context.Context, u providers.Upstream) (countResponse, error) {
		var (
			n   int
			err error
		)
		if world > 0 {
			n, err = u.GetOnlinePlayerCountOnWorld(ctx, world)
		} else {
			n, err = u.GetOnlinePlayerCount(ctx)
		}
		return countResponse{World: world, Count: n}, err
	})
}

// Guilds lists every guild summary.
func (h *Handler) Guilds(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	serveUpstream(h, w, r, endpointGuilds, func(ctx context.Context, u providers.Upstream) ([]wynncraft.GuildSummary, error) {
		return u.ListGuilds(ctx)
	})
}

// Guild returns a guild by name; ?identifier=uuid keys members by uuid.
func (h *Handler) Guild(w http.ResponseWriter, r *http.Request) {
	h.guild(w, r, endpointGuild, r.PathValue("name"), providers.Upstream.GetGuild)
}

// GuildByPrefix returns a guild by its tag.
func (h *Handler) GuildByPrefix(w http.ResponseWriter, r *http.Request) {
	h.guild(w, r, endpointGuildPrefix, r.PathValue("prefix"), providers.Upstream.GetGuildByPrefix)
}

type guildLookup func(u providers.Upstream, ctx context.Context, key string, id wynncraft.Identifier) (*wynncraft.Guild, error)

func (h *Handler) guild(w http.ResponseWriter, r *http.Request, endpoint, key string, lookup guildLookup) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		writeError(w, r, http.StatusBadRequest, "invalid guild", h.logger)
		return
	}
	id, err := parseIdentifier(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	serveUpstream(h, w, r, endpoint, func(ctx context.Context, u providers.Upstream) (*wynncraft.Guild, error) {
		return lookup(u, ctx, key, id)
	})
}

// Classes lists every playable class.
func (h *Handler) Classes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	serveUpstream(h, w, r, endpointClasses, func(ctx context.Context, u providers.Upstream) ([]wynncraft.ClassSummary, error) {
		return u.ListClasses(ctx)
	})
}

// Class returns one class with its archetypes.
func (h *Handler) Class(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	id := strings.ToLower(strings.TrimSpace(r.PathValue("id")))
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "invalid class id", h.logger)
		return
	}
	serveUpstream(h, w, r, endpointClass, func(ctx context.Context, u providers.Upstream) (*wynncraft.Class, error) {
		return u.GetClass(ctx, id)
	})
}

// LeaderboardTypes lists the names of every leaderboard.
func (h *Handler) LeaderboardTypes(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	serveUpstream(h, w, r, endpointLeaderboardTypes, func(ctx context.Context, u providers.Upstream) ([]string, error) {
		return u.GetLeaderboardTypes(ctx)
	})
}

// Leaderboard returns the top ?limit=N entries (default 100) of a leaderboard.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	kind := strings.TrimSpace(r.PathValue("kind"))
	if kind == "" {
		writeError(w, r, http.StatusBadRequest, "invalid leaderboard", h.logger)
		return
	}
	limit, err := parseLimit(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	serveUpstream(h, w, r, endpointLeaderboard, func(ctx context.Context, u providers.Upstream) ([]wynncraft.LeaderboardEntry, error) {
		return u.GetLeaderboard(ctx, kind, limit)
	})
}

// MapMarkers returns every map marker.
func (h *Handler) MapMarkers(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	serveUpstream(h, w, r, endpointMapMarkers, func(ctx context.Context, u providers.Upstream) ([]wynncraft.Marker, error) {
		return u.GetMapMarkers(ctx)
	})
}

// QuestCount returns the number of quests on the map.
func (h *Handler) QuestCount(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	serveUpstream(h, w, r, endpointQuests, func(ctx context.Context, u providers.Upstream) (questsResponse, error) {
		n, err := u.GetQuestCount(ctx)
		return questsResponse{Quests: n}, err
	})
}
