package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/preston-bernstein/wynn-data-service/internal/http/middleware"
	"github.com/preston-bernstein/wynn-data-service/internal/http/requestutil"
	"github.com/preston-bernstein/wynn-data-service/internal/logging"
	"github.com/preston-bernstein/wynn-data-service/internal/providers"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

const (
	msgMethodNotAllowed = "method not allowed"
	msgContractChanged  = "upstream contract changed"
	msgRateLimited      = "upstream rate limited"
	msgUpstreamFailed   = "upstream request failed"
	msgUnavailable      = "upstream unavailable"
	msgNotFound         = "not found"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeUpstreamError maps a gateway error onto the response status the API promises.
func writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if rl, ok := providers.AsRateLimitError(err); ok {
		if rl.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rl.RetryAfter.Seconds()))))
		}
		writeError(w, r, http.StatusServiceUnavailable, msgRateLimited, logger)
		return
	}

	switch {
	case errors.Is(err, providers.ErrProviderUnavailable):
		writeError(w, r, http.StatusServiceUnavailable, msgUnavailable, logger)
	case wynncraft.IsNotFound(err):
		writeError(w, r, http.StatusNotFound, msgNotFound, logger)
	case wynncraft.IsContractError(err):
		logging.Error(logger, "upstream contract violation", err)
		writeError(w, r, http.StatusBadGateway, msgContractChanged, logger)
	default:
		writeError(w, r, http.StatusBadGateway, msgUpstreamFailed, logger)
	}
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, msgMethodNotAllowed, logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
