package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/preston-bernstein/wynn-data-service/internal/logging"
	"github.com/preston-bernstein/wynn-data-service/internal/snapshots"
	"github.com/preston-bernstein/wynn-data-service/internal/timeutil"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

const (
	sourceCache    = "cache"
	sourceSnapshot = "snapshot"
)

type onlineResponse struct {
	Date        string              `json:"date,omitempty"`
	Source      string              `json:"source"`
	RefreshedAt *time.Time          `json:"refreshedAt,omitempty"`
	Total       int                 `json:"total"`
	ByWorld     map[string][]string `json:"byWorld"`
}

type newsResponse struct {
	RefreshedAt time.Time            `json:"refreshedAt"`
	Items       []wynncraft.NewsItem `json:"items"`
}

type territoriesResponse struct {
	Date        string                `json:"date"`
	Source      string                `json:"source"`
	RefreshedAt *time.Time            `json:"refreshedAt,omitempty"`
	Territories []wynncraft.Territory `json:"territories"`
}

// Online returns the online players from the cache, or the snapshot of ?date=YYYY-MM-DD.
func (h *Handler) Online(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	date, err := parseDate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	if date != "" {
		if h.snaps == nil {
			writeError(w, r, http.StatusServiceUnavailable, "snapshots not configured", logger)
			return
		}
		snap, err := h.snaps.LoadOnline(date)
		if err != nil {
			h.writeSnapshotError(w, r, err)
			return
		}
		logging.Info(logger, "served snapshot online players", logging.FieldDate, date, logging.FieldCount, snap.Total)
		writeJSON(w, http.StatusOK, onlineResponse{
			Date:    snap.Date,
			Source:  sourceSnapshot,
			Total:   snap.Total,
			ByWorld: snap.ByWorld,
		}, logger)
		return
	}

	online, at, ok := h.cache.Online()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "online players not yet available", logger)
		return
	}
	logging.Info(logger, "served cached online players", logging.FieldCount, online.Total)
	writeJSON(w, http.StatusOK, onlineResponse{
		Source:      sourceCache,
		RefreshedAt: &at,
		Total:       online.Total,
		ByWorld:     online.ByWorld,
	}, logger)
}

// News returns the latest news from the cache.
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	items, at, ok := h.cache.News()
	if !ok {
		writeError(w, r, http.StatusServiceUnavailable, "news not yet available", logger)
		return
	}
	writeJSON(w, http.StatusOK, newsResponse{RefreshedAt: at, Items: items}, logger)
}

// Territories returns territory ownership from the cache. An explicit ?date=YYYY-MM-DD serves
// that day's snapshot only; an empty cache falls back to today's snapshot.
func (h *Handler) Territories(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	date, err := parseDate(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), logger)
		return
	}

	if date != "" {
		if h.snaps == nil {
			writeError(w, r, http.StatusServiceUnavailable, "snapshots not configured", logger)
			return
		}
		snap, err := h.snaps.LoadTerritories(date)
		if err != nil {
			h.writeSnapshotError(w, r, err)
			return
		}
		logging.Info(logger, "served snapshot territories", logging.FieldDate, date, logging.FieldCount, len(snap.Territories))
		writeJSON(w, http.StatusOK, territoriesResponse{Date: snap.Date, Source: sourceSnapshot, Territories: snap.Territories}, logger)
		return
	}

	territories, at, ok := h.cache.Territories()
	if ok {
		logging.Info(logger, "served cached territories", logging.FieldCount, len(territories))
		writeJSON(w, http.StatusOK, territoriesResponse{
			Date:        timeutil.UTCDate(at),
			Source:      sourceCache,
			RefreshedAt: &at,
			Territories: territories,
		}, logger)
		return
	}

	today := timeutil.UTCDate(h.now())
	if h.snaps != nil {
		if snap, err := h.snaps.LoadTerritories(today); err == nil {
			logging.Info(logger, "served snapshot territories", logging.FieldDate, today, logging.FieldCount, len(snap.Territories))
			writeJSON(w, http.StatusOK, territoriesResponse{Date: snap.Date, Source: sourceSnapshot, Territories: snap.Territories}, logger)
			return
		}
	}
	writeError(w, r, http.StatusServiceUnavailable, "territories not yet available", logger)
}

func (h *Handler) writeSnapshotError(w http.ResponseWriter, r *http.Request, err error) {
	logger := loggerFromContext(r, h.logger)
	if errors.Is(err, snapshots.ErrNotFound) {
		writeError(w, r, http.StatusNotFound, "snapshot not found", logger)
		return
	}
	logging.Error(logger, "snapshot load failed", err)
	writeError(w, r, http.StatusBadGateway, "snapshot unavailable", logger)
}
