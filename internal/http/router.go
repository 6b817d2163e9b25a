package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/wynn-data-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil to leave the admin routes unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)

	mux.HandleFunc("/online", handler.Online)
	mux.HandleFunc("/news", handler.News)
	mux.HandleFunc("/territories", handler.Territories)

	mux.HandleFunc("/players/online/count", handler.OnlineCount)
	mux.HandleFunc("/players/{identifier}", handler.Player)
	mux.HandleFunc("/guilds", handler.Guilds)
	mux.HandleFunc("/guilds/prefix/{prefix}", handler.GuildByPrefix)
	mux.HandleFunc("/guilds/{name}", handler.Guild)
	mux.HandleFunc("/classes", handler.Classes)
	mux.HandleFunc("/classes/{id}", handler.Class)
	mux.HandleFunc("/leaderboards/types", handler.LeaderboardTypes)
	mux.HandleFunc("/leaderboards/{kind}", handler.Leaderboard)
	mux.HandleFunc("/map/markers", handler.MapMarkers)
	mux.HandleFunc("/map/quests", handler.QuestCount)

	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	return mux
}
