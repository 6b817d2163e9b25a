package wynncraft

import (
	"context"
	"net/url"
	"sort"
	"strconv"
)

// LeaderboardEntry is one ranked row of a leaderboard. Metadata carries the per-type numeric extras
// (xp, playtime, totalLevel, ...) whose keys differ between leaderboard types. Guild boards have no
// score; their numeric columns (level, xp, territories, wars) land in Metadata and Prefix is set.
type LeaderboardEntry struct {
	Position        int                `json:"position"`
	Name            string             `json:"name"`
	UUID            string             `json:"uuid"`
	Prefix          *string            `json:"prefix,omitempty"`
	Score           int64              `json:"score"`
	PreviousRanking *int               `json:"previousRanking,omitempty"`
	Rank            *string            `json:"rank,omitempty"`
	SupportRank     *string            `json:"supportRank,omitempty"`
	CharacterUUID   *string            `json:"characterUuid,omitempty"`
	CharacterType   *string            `json:"characterType,omitempty"`
	Metadata        map[string]float64 `json:"metadata"`
}

// GetLeaderboardTypes returns the names of every leaderboard.
func (c *Client) GetLeaderboardTypes(ctx context.Context) ([]string, error) {
	root, err := c.fetchArray(ctx, "/leaderboards/types", nil)
	if err != nil {
		return nil, err
	}
	return arrayOf[string](root)
}

// GetLeaderboard returns up to limit entries of the named leaderboard, ordered by position.
// A limit of zero or less leaves the result size to the API.
func (c *Client) GetLeaderboard(ctx context.Context, kind string, limit int) ([]LeaderboardEntry, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{}
		q.Set("resultLimit", strconv.Itoa(limit))
	}
	root, err := c.fetchObject(ctx, "/leaderboards/"+url.PathEscape(kind), q)
	if err != nil {
		return nil, err
	}
	return mapLeaderboard(root)
}

// leaderboardFields are mapped to named fields and never copied into Metadata.
var leaderboardFields = map[string]struct{}{
	"name": {}, "uuid": {}, "prefix": {}, "score": {}, "previousRanking": {}, "rank": {},
	"supportRank": {}, "characterUuid": {}, "characterType": {}, "metadata": {},
}

func mapLeaderboard(root object) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0, len(root.values))
	err := root.objects(func(key string, obj object) error {
		pos, err := strconv.Atoi(key)
		if err != nil {
			return &SchemaError{Field: obj.path, Expected: KindNumericString, Err: err}
		}
		entry := LeaderboardEntry{Position: pos}
		if err := obj.extract(
			required("name", &entry.Name),
			required("uuid", &entry.UUID),
			defaulted("score", int64(0), &entry.Score),
			optional("prefix", &entry.Prefix),
			optional("previousRanking", &entry.PreviousRanking),
			optional("rank", &entry.Rank),
			optional("supportRank", &entry.SupportRank),
			optional("characterUuid", &entry.CharacterUUID),
			optional("characterType", &entry.CharacterType),
		); err != nil {
			return err
		}
		metadata, err := defaultedDict[float64](obj, "metadata")
		if err != nil {
			return err
		}
		entry.Metadata = metadata
		for key, raw := range obj.values {
			if _, known := leaderboardFields[key]; known {
				continue
			}
			if _, taken := metadata[key]; taken {
				continue
			}
			if v, ok := asFloat64(raw); ok {
				metadata[key] = v
			}
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Position < entries[j].Position })
	return entries, nil
}
