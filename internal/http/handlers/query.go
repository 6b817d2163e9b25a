package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/preston-bernstein/wynn-data-service/internal/timeutil"
	"github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"
)

const (
	defaultLeaderboardLimit = 100
	maxLeaderboardLimit     = 1000
)

var (
	errInvalidLimit      = errors.New("limit must be an integer between 1 and 1000")
	errInvalidWorld      = errors.New("world must be a positive integer")
	errInvalidIdentifier = errors.New("identifier must be uuid or username")
	errInvalidPlayer     = errors.New("invalid player identifier")
	errInvalidDate       = errors.New("invalid date format (expected YYYY-MM-DD)")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{1,16}$`)

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

func parseLimit(r *http.Request) (int, error) {
	raw := queryValue(r, "limit")
	if raw == "" {
		return defaultLeaderboardLimit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > maxLeaderboardLimit {
		return 0, errInvalidLimit
	}
	return n, nil
}

// parseWorld returns 0 when no world was requested.
func parseWorld(r *http.Request) (int, error) {
	raw := queryValue(r, "world")
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errInvalidWorld
	}
	return n, nil
}

func parseIdentifier(r *http.Request) (wynncraft.Identifier, error) {
	switch strings.ToLower(queryValue(r, "identifier")) {
	case "", string(wynncraft.ByUsername):
		return wynncraft.ByUsername, nil
	case string(wynncraft.ByUUID):
		return wynncraft.ByUUID, nil
	default:
		return "", errInvalidIdentifier
	}
}

func parseFull(r *http.Request) (bool, error) {
	raw := queryValue(r, "full")
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func parseDate(r *http.Request) (string, error) {
	raw := queryValue(r, "date")
	if raw == "" {
		return "", nil
	}
	if _, err := timeutil.ParseDate(raw); err != nil {
		return "", errInvalidDate
	}
	return raw, nil
}

// parsePlayerIdentifier accepts a uuid in any form uuid.Parse understands, normalised to the
// dashed lower-case form, or a Minecraft username.
func parsePlayerIdentifier(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if id, err := uuid.Parse(raw); err == nil {
		return id.String(), nil
	}
	if usernamePattern.MatchString(raw) {
		return raw, nil
	}
	return "", errInvalidPlayer
}
