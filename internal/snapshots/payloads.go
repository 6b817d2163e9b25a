package snapshots

import "github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"

// TerritorySnapshot is the territory ownership map as last seen on Date.
type TerritorySnapshot struct {
	Date        string                `json:"date"`
	Territories []wynncraft.Territory `json:"territories"`
}

// OnlineSnapshot is the last online-player listing seen on Date.
type OnlineSnapshot struct {
	Date    string              `json:"date"`
	Total   int                 `json:"total"`
	ByWorld map[string][]string `json:"byWorld"`
}
