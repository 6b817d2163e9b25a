package wynncraft

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalPlayer = `{
	"username": "Salted",
	"online": false,
	"server": null,
	"uuid": "0d2a5ab4-1ba0-4b2c-aa3f-6d2e4a6e8f50",
	"firstJoin": "2013-04-28T14:20:00.000Z",
	"lastJoin": "2024-02-10T18:11:23.000Z",
	"playtime": 1532.25,
	"globalData": {
		"wars": 3,
		"totalLevel": 1690,
		"killedMobs": 204531,
		"chestsFound": 4012,
		"dungeons": {"total": 120, "list": {"Decrepit Sewers": 14, "Lost Sanctuary": 9}},
		"raids": {"total": 4, "list": {"Nest of the Grootslangs": 4}},
		"completedQuests": 262,
		"pvp": {"kills": 10, "deaths": 22}
	},
	"ranking": {"totalLevel": 800, "playerContent": 1200},
	"previousRanking": {"totalLevel": 810},
	"publicProfile": true
}`

const fullPlayer = `{
	"username": "Salted",
	"online": true,
	"server": "WC4",
	"activeCharacter": "c1",
	"uuid": "0d2a5ab4-1ba0-4b2c-aa3f-6d2e4a6e8f50",
	"rank": "Player",
	"rankBadge": "badges/rank_champion.svg",
	"legacyRankColour": {"main": "#ffa214", "sub": "#fdc71b"},
	"shortenedRank": "Champion",
	"supportRank": "champion",
	"veteran": true,
	"firstJoin": "2013-04-28T14:20:00.000Z",
	"lastJoin": "2024-02-10T18:11:23.000Z",
	"playtime": 1532,
	"guild": {"uuid": "g-1", "name": "Idiot Co", "prefix": "ICo", "rank": "OWNER", "rankStars": "*****"},
	"globalData": {
		"wars": 3,
		"totalLevel": 1690,
		"killedMobs": 204531,
		"chestsFound": 4012,
		"dungeons": {"total": 0, "list": {}},
		"raids": {"total": 0, "list": {}},
		"completedQuests": 262,
		"pvp": {"kills": 0, "deaths": 0}
	},
	"forumLink": 4421,
	"ranking": {},
	"previousRanking": {},
	"publicProfile": true,
	"characters": {
		"c1": {
			"type": "ARCHER",
			"nickname": "bow",
			"level": 106,
			"xp": 12345678901,
			"xpPercent": 12,
			"totalLevel": 1200,
			"playtime": 800.5,
			"gamemode": ["hardcore", "ironman"],
			"skillPoints": {"strength": 50, "dexterity": 120},
			"professions": {"mining": {"level": 110, "xpPercent": 3}, "woodworking": {"level": 80, "xpPercent": 44}},
			"dungeons": {"total": 3, "list": {"Ice Barrows": 3}},
			"pvp": {"kills": 1, "deaths": 2},
			"quests": ["King's Recruit", "Cook Assistant"]
		},
		"c2": {
			"type": "MAGE",
			"level": 1,
			"xp": 0,
			"xpPercent": 0,
			"totalLevel": 12,
			"playtime": 0.1,
			"professions": {}
		}
	}
}`

func TestGetPlayerMapsProfile(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, minimalPlayer)

	p, err := c.GetPlayer(context.Background(), "Salted")
	require.NoError(t, err)

	req := stub.last(t)
	assert.Equal(t, "/player/Salted", req.URL.Path)
	assert.Empty(t, req.URL.RawQuery)

	assert.Equal(t, "Salted", p.Username)
	assert.False(t, p.Online)
	assert.InDelta(t, 1532.25, p.Playtime, 1e-9)
	assert.False(t, p.Veteran)
	assert.True(t, p.PublicProfile)
	assert.Equal(t, 262, p.GlobalData.CompletedQuests)
	assert.Equal(t, map[string]int{"Decrepit Sewers": 14, "Lost Sanctuary": 9}, p.GlobalData.Dungeons.List)
	assert.Equal(t, PvP{Kills: 10, Deaths: 22}, p.GlobalData.PvP)
	assert.Equal(t, map[string]int{"totalLevel": 800, "playerContent": 1200}, p.Ranking)
	assert.Equal(t, map[string]int{"totalLevel": 810}, p.PreviousRanking)
	assert.Nil(t, p.Characters)
}

func TestGetPlayerAbsentOptionalsStayNil(t *testing.T) {
	c, _ := newStubClient(t, http.StatusOK, minimalPlayer)

	p, err := c.GetPlayer(context.Background(), "Salted")
	require.NoError(t, err)

	assert.Nil(t, p.Server)
	assert.Nil(t, p.ActiveCharacter)
	assert.Nil(t, p.Rank)
	assert.Nil(t, p.RankBadge)
	assert.Nil(t, p.LegacyRankColour)
	assert.Nil(t, p.ShortenedRank)
	assert.Nil(t, p.SupportRank)
	assert.Nil(t, p.Guild)
	assert.Nil(t, p.ForumLink)
}

func TestGetPlayerFullMapsCharacters(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, fullPlayer)

	p, err := c.GetPlayerFull(context.Background(), "Salted")
	require.NoError(t, err)
	assert.Equal(t, "fullResult=True", stub.last(t).URL.RawQuery)

	require.NotNil(t, p.Server)
	assert.Equal(t, "WC4", *p.Server)
	require.NotNil(t, p.Guild)
	assert.Equal(t, PlayerGuild{UUID: "g-1", Name: "Idiot Co", Prefix: "ICo", Rank: "OWNER", RankStars: "*****"}, *p.Guild)
	require.NotNil(t, p.LegacyRankColour)
	assert.Equal(t, "#ffa214", p.LegacyRankColour.Main)
	require.NotNil(t, p.ForumLink)
	assert.Equal(t, 4421, *p.ForumLink)
	assert.True(t, p.Veteran)
	assert.Empty(t, p.Ranking)
	assert.NotNil(t, p.Ranking)

	require.Len(t, p.Characters, 2)
	archer := p.Characters["c1"]
	assert.Equal(t, "ARCHER", archer.Type)
	assert.Equal(t, int64(12345678901), archer.XP)
	assert.Equal(t, []string{"hardcore", "ironman"}, archer.Gamemode)
	assert.Equal(t, map[string]int{"strength": 50, "dexterity": 120}, archer.SkillPoints)
	assert.Equal(t, map[string]Profession{
		"mining":      {Level: 110, XPPercent: 3},
		"woodworking": {Level: 80, XPPercent: 44},
	}, archer.Professions)
	require.NotNil(t, archer.Dungeons)
	assert.Equal(t, 3, archer.Dungeons.Total)
	assert.Nil(t, archer.Raids)
	require.NotNil(t, archer.PvP)
	assert.Equal(t, []string{"King's Recruit", "Cook Assistant"}, archer.Quests)

	mage := p.Characters["c2"]
	assert.Nil(t, mage.Nickname)
	assert.Nil(t, mage.SkillPoints)
	assert.Nil(t, mage.PvP)
	assert.Nil(t, mage.Wars)
	assert.NotNil(t, mage.Quests)
	assert.Empty(t, mage.Quests)
	assert.NotNil(t, mage.Gamemode)
	assert.Empty(t, mage.Gamemode)
	assert.Empty(t, mage.Professions)
}

func TestGetPlayerFullRequiresCharacters(t *testing.T) {
	c, _ := newStubClient(t, http.StatusOK, minimalPlayer)

	p, err := c.GetPlayerFull(context.Background(), "Salted")
	assert.Nil(t, p)
	var mErr *MissingNestedError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "characters", mErr.Field)
}

func TestCharacterLevelWrongKind(t *testing.T) {
	body := strings.Replace(fullPlayer, `"level": 106`, `"level": "five"`, 1)
	c, _ := newStubClient(t, http.StatusOK, body)

	p, err := c.GetPlayerFull(context.Background(), "Salted")
	assert.Nil(t, p)
	requireSchemaError(t, err, "characters.c1.level", KindInteger)
}

func TestPlayerMissingGlobalDataField(t *testing.T) {
	body := strings.Replace(minimalPlayer, `"completedQuests": 262,`, ``, 1)
	c, _ := newStubClient(t, http.StatusOK, body)

	_, err := c.GetPlayer(context.Background(), "Salted")
	requireSchemaError(t, err, "globalData.completedQuests", KindInteger)
}

func TestPlayerPathIsEscaped(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, minimalPlayer)
	_, err := c.GetPlayer(context.Background(), "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/player/a%20b%2Fc", stub.last(t).URL.EscapedPath())
}

func TestMapPlayerIsIdempotent(t *testing.T) {
	first, err := mapPlayer(mustObject(t, fullPlayer), true)
	require.NoError(t, err)
	second, err := mapPlayer(mustObject(t, fullPlayer), true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

const onlinePlayers = `{
	"total": 4,
	"players": {"zed": "WC2", "amy": "WC1", "bob": "WC2", "cal": "WC10"}
}`

func TestGetOnlinePlayers(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, onlinePlayers)

	names, err := c.GetOnlinePlayers(context.Background(), ByUsername)
	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "bob", "cal", "zed"}, names)

	req := stub.last(t)
	assert.Equal(t, "/player", req.URL.Path)
	assert.Equal(t, "username", req.URL.Query().Get("identifier"))
	assert.Empty(t, req.URL.Query().Get("server"))
}

func TestGetOnlinePlayersOnWorld(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, `{"total": 1, "players": {"uuid-1": "WC7"}}`)

	ids, err := c.GetOnlinePlayersOnWorld(context.Background(), 7, ByUUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"uuid-1"}, ids)

	q := stub.last(t).URL.Query()
	assert.Equal(t, "uuid", q.Get("identifier"))
	assert.Equal(t, "WC7", q.Get("server"))
}

func TestGetOnlinePlayerCount(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, onlinePlayers)

	total, err := c.GetOnlinePlayerCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	assert.Empty(t, stub.last(t).URL.RawQuery)

	total, err = c.GetOnlinePlayerCountOnWorld(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	q := stub.last(t).URL.Query()
	assert.Equal(t, "username", q.Get("identifier"))
	assert.Equal(t, "WC2", q.Get("server"))
}

func TestGetOnlinePlayerCountMissingTotal(t *testing.T) {
	c, _ := newStubClient(t, http.StatusOK, `{"players": {}}`)
	_, err := c.GetOnlinePlayerCount(context.Background())
	requireSchemaError(t, err, "total", KindInteger)
}

func TestGetOnlinePlayerData(t *testing.T) {
	c, _ := newStubClient(t, http.StatusOK, onlinePlayers)

	data, err := c.GetOnlinePlayerData(context.Background(), ByUsername)
	require.NoError(t, err)
	assert.Equal(t, 4, data.Total)
	assert.Equal(t, map[string][]string{
		"WC1":  {"amy"},
		"WC2":  {"bob", "zed"},
		"WC10": {"cal"},
	}, data.ByWorld)
}

func TestGetOnlinePlayerDataRejectsNonStringWorld(t *testing.T) {
	c, _ := newStubClient(t, http.StatusOK, `{"total": 1, "players": {"amy": 1}}`)
	_, err := c.GetOnlinePlayerData(context.Background(), ByUsername)
	requireSchemaError(t, err, "players.amy", KindString)
}
