package testutil

import "github.com/preston-bernstein/wynn-data-service/pkg/wynncraft"

// SampleTerritory returns a territory fixture held by a guild with the given prefix.
func SampleTerritory(name, prefix string) wynncraft.Territory {
	return wynncraft.Territory{
		Name:     name,
		Owner:    &wynncraft.GuildSummary{UUID: "uuid-" + prefix, Name: "Guild " + prefix, Prefix: prefix},
		Acquired: "2024-01-02T03:04:05.000000Z",
		Start:    wynncraft.Location{X: -100, Z: 200},
		End:      wynncraft.Location{X: -50, Z: 250},
	}
}

// SampleOnline returns online-player data for the given world and names.
func SampleOnline(world string, names ...string) wynncraft.OnlinePlayers {
	return wynncraft.OnlinePlayers{
		Total:   len(names),
		ByWorld: map[string][]string{world: names},
	}
}

// SampleNews returns a single news item fixture.
func SampleNews(title string) wynncraft.NewsItem {
	return wynncraft.NewsItem{
		Title:       title,
		Date:        "2024-01-02",
		ForumThread: "https://forums.wynncraft.com/threads/1",
		Author:      "Salted",
		Content:     "<p>" + title + "</p>",
		Comments:    "4",
	}
}

// SamplePlayer returns a minimal online player profile.
func SamplePlayer(username string) wynncraft.Player {
	server := "WC1"
	return wynncraft.Player{
		Username:        username,
		UUID:            "uuid-" + username,
		Online:          true,
		Server:          &server,
		FirstJoin:       "2020-01-01T00:00:00.000Z",
		LastJoin:        "2024-01-02T00:00:00.000Z",
		Playtime:        12.5,
		Ranking:         map[string]int{},
		PreviousRanking: map[string]int{},
		PublicProfile:   true,
	}
}

// SampleGuild returns a guild fixture with one owner.
func SampleGuild(name, prefix string) wynncraft.Guild {
	return wynncraft.Guild{
		UUID:        "uuid-" + prefix,
		Name:        name,
		Prefix:      prefix,
		Level:       42,
		Territories: 3,
		Created:     "2019-05-01T00:00:00.000Z",
		Members: []wynncraft.GuildMember{
			{Username: "owner", UUID: "uuid-owner", Rank: "owner", Contributed: 1000, ContributionRank: 1},
		},
		SeasonRanks: []wynncraft.SeasonRank{},
	}
}
