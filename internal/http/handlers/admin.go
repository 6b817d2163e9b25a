package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/wynn-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/wynn-data-service/internal/logging"
)

// Refresher runs one poll cycle on demand.
type Refresher interface {
	RefreshNow(ctx context.Context) error
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
	now       nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
		now:       time.Now,
	}
}

// Refresh runs a poller cycle synchronously and reports when it finished.
// Requires "Authorization: Bearer <ADMIN_TOKEN>"; returns 401 otherwise.
func (h *AdminHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "poller not configured", logger)
		return
	}

	start := h.now()
	if err := h.refresher.RefreshNow(r.Context()); err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("error", err))
		writeUpstreamError(w, r, err, logger)
		return
	}

	finished := h.now()
	logging.Info(logger, "admin refresh complete", slog.Int64(logging.FieldDurationMS, finished.Sub(start).Milliseconds()))
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"refreshedAt": finished.UTC(),
	}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.token)) == 1
}
