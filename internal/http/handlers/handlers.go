package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/wynn-data-service/internal/poller"
	"github.com/preston-bernstein/wynn-data-service/internal/providers"
	"github.com/preston-bernstein/wynn-data-service/internal/snapshots"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

type nowFunc func() time.Time

// Cache is the poller-fed data the read endpoints serve without calling upstream.
type Cache interface {
	Online() (wynncraft.OnlinePlayers, time.Time, bool)
	News() ([]wynncraft.NewsItem, time.Time, bool)
	Territories() ([]wynncraft.Territory, time.Time, bool)
}

// Handler wires HTTP routes to the cache, the snapshot store and the upstream gateway.
type Handler struct {
	gateway  *providers.Gateway
	cache    Cache
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults. snaps and statusFn may be nil.
func NewHandler(gateway *providers.Gateway, cache Cache, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		gateway:  gateway,
		cache:    cache,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}
