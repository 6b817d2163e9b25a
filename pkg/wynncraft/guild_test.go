package wynncraft

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const guildByUsername = `{
	"uuid": "g-1",
	"name": "Idiot Co",
	"prefix": "ICo",
	"level": 92,
	"xpPercent": 41,
	"territories": 12,
	"wars": 3004,
	"created": "2019-05-04T10:00:00.000Z",
	"members": {
		"total": 4,
		"recruit": {
			"zoe": {"uuid": "u-4", "online": false, "server": null, "contributed": 10, "contributionRank": 4, "joined": "2024-01-01T00:00:00.000Z"},
			"abe": {"uuid": "u-3", "online": true, "server": "WC1", "contributed": 0, "contributionRank": 3}
		},
		"owner": {
			"kim": {"uuid": "u-1", "online": false, "contributed": 99999999999, "contributionRank": 1}
		},
		"chief": {
			"lee": {"uuid": "u-2", "online": false}
		}
	},
	"online": 1,
	"banner": {
		"base": "WHITE",
		"tier": 3,
		"structure": "tier3",
		"layers": [{"colour": "BLACK", "pattern": "BRICKS"}, {"colour": "RED", "pattern": "BORDER"}]
	},
	"seasonRanks": {
		"10": {"rating": 2500, "finalTerritories": 4},
		"9": {"rating": 1800, "finalTerritories": 0}
	}
}`

func TestGetGuildMapsMembers(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, guildByUsername)

	g, err := c.GetGuild(context.Background(), "Idiot Co", ByUsername)
	require.NoError(t, err)

	req := stub.last(t)
	assert.Equal(t, "/guild/Idiot Co", req.URL.Path)
	assert.Equal(t, "username", req.URL.Query().Get("identifier"))

	assert.Equal(t, "ICo", g.Prefix)
	assert.Equal(t, 3004, g.Wars)
	require.Len(t, g.Members, 4)

	var order []string
	for _, m := range g.Members {
		order = append(order, m.Rank+":"+m.Username)
	}
	assert.Equal(t, []string{"owner:kim", "chief:lee", "recruit:abe", "recruit:zoe"}, order)

	owner := g.Members[0]
	assert.Equal(t, "u-1", owner.UUID)
	assert.Equal(t, int64(99999999999), owner.Contributed)
	assert.Nil(t, owner.Joined)

	chief := g.Members[1]
	assert.Zero(t, chief.Contributed)
	assert.Zero(t, chief.ContributionRank)
	assert.Nil(t, chief.Server)

	abe := g.Members[2]
	require.NotNil(t, abe.Server)
	assert.Equal(t, "WC1", *abe.Server)
}

func TestGuildMembersSkipTotal(t *testing.T) {
	g, err := mapGuild(mustObject(t, guildByUsername), ByUsername)
	require.NoError(t, err)
	for _, m := range g.Members {
		assert.NotEqual(t, memberTotalKey, m.Rank)
	}
}

func TestGuildBannerAndSeasons(t *testing.T) {
	g, err := mapGuild(mustObject(t, guildByUsername), ByUsername)
	require.NoError(t, err)

	require.NotNil(t, g.Banner)
	assert.Equal(t, 3, g.Banner.Tier)
	assert.Equal(t, []BannerLayer{{Colour: "BLACK", Pattern: "BRICKS"}, {Colour: "RED", Pattern: "BORDER"}}, g.Banner.Layers)
	assert.Equal(t, []SeasonRank{
		{Season: 9, Rating: 1800, FinalTerritories: 0},
		{Season: 10, Rating: 2500, FinalTerritories: 4},
	}, g.SeasonRanks)
}

func TestGuildOptionalBlocksAbsent(t *testing.T) {
	body := `{
		"uuid": "g-2", "name": "Tiny", "prefix": "TNY", "level": 1, "xpPercent": 0,
		"territories": 0, "created": "2024-01-01T00:00:00.000Z", "online": 0,
		"members": {"total": 0}
	}`
	g, err := mapGuild(mustObject(t, body), ByUsername)
	require.NoError(t, err)
	assert.Zero(t, g.Wars)
	assert.Nil(t, g.Banner)
	assert.NotNil(t, g.Members)
	assert.Empty(t, g.Members)
	assert.NotNil(t, g.SeasonRanks)
	assert.Empty(t, g.SeasonRanks)
}

func TestGuildMembersMissingIsMissingNested(t *testing.T) {
	body := `{
		"uuid": "g-2", "name": "Tiny", "prefix": "TNY", "level": 1, "xpPercent": 0,
		"territories": 0, "created": "2024-01-01T00:00:00.000Z", "online": 0
	}`
	_, err := mapGuild(mustObject(t, body), ByUsername)
	var mErr *MissingNestedError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, "members", mErr.Field)
}

func TestGuildMemberMissingFieldsDefault(t *testing.T) {
	body := `{
		"uuid": "g-2", "name": "Tiny", "prefix": "TNY", "level": 1, "xpPercent": 0,
		"territories": 0, "created": "2024-01-01T00:00:00.000Z", "online": 0,
		"members": {"total": 2, "owner": {"u-1": {"username": "kim", "online": true}}, "chief": {"u-2": {}}}
	}`
	g, err := mapGuild(mustObject(t, body), ByUUID)
	require.NoError(t, err)
	require.Len(t, g.Members, 2)
	assert.Equal(t, GuildMember{UUID: "u-2", Rank: "chief"}, g.Members[1])
}

func TestGuildMemberUsernameWrongKind(t *testing.T) {
	body := `{
		"uuid": "g-2", "name": "Tiny", "prefix": "TNY", "level": 1, "xpPercent": 0,
		"territories": 0, "created": "2024-01-01T00:00:00.000Z", "online": 0,
		"members": {"total": 1, "chief": {"u-2": {"username": 12, "online": true}}}
	}`
	_, err := mapGuild(mustObject(t, body), ByUUID)
	requireSchemaError(t, err, "members.chief.u-2.username", KindString)
}

func TestListGuildsDefaultsMissingNameAndPrefix(t *testing.T) {
	guilds, err := mapGuildList(mustObject(t, `{"g-1": {"name": null}, "g-2": {"name": "Beta", "prefix": "BTA"}}`))
	require.NoError(t, err)
	assert.Equal(t, []GuildSummary{{UUID: "g-1"}, {UUID: "g-2", Name: "Beta", Prefix: "BTA"}}, guilds)
}

func TestGuildSeasonKeyMustBeNumeric(t *testing.T) {
	body := strings.Replace(guildByUsername, `"9": {`, `"nine": {`, 1)
	_, err := mapGuild(mustObject(t, body), ByUsername)
	requireSchemaError(t, err, "seasonRanks.nine", KindNumericString)
}

func TestGetGuildByPrefix(t *testing.T) {
	c, stub := newStubClient(t, http.StatusOK, guildByUsername)

	g, err := c.GetGuildByPrefix(context.Background(), "ICo", ByUUID)
	assert.Nil(t, g)
	require.Error(t, err)

	req := stub.last(t)
	assert.Equal(t, "/guild/prefix/ICo", req.URL.Path)
	assert.Equal(t, "uuid", req.URL.Query().Get("identifier"))
}

func TestGetGuildNamesAndList(t *testing.T) {
	body := `{
		"g-2": {"name": "Beta", "prefix": "BTA"},
		"g-1": {"name": "Alpha", "prefix": "ALP"}
	}`
	c, stub := newStubClient(t, http.StatusOK, body)

	ids, err := c.GetGuildNames(context.Background(), ByUUID)
	require.NoError(t, err)
	assert.Equal(t, []string{"g-1", "g-2"}, ids)
	assert.Equal(t, "uuid", stub.last(t).URL.Query().Get("identifier"))

	_, err = c.GetGuildNames(context.Background(), ByUsername)
	require.NoError(t, err)
	assert.Equal(t, "name", stub.last(t).URL.Query().Get("identifier"))

	guilds, err := c.ListGuilds(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []GuildSummary{
		{UUID: "g-1", Name: "Alpha", Prefix: "ALP"},
		{UUID: "g-2", Name: "Beta", Prefix: "BTA"},
	}, guilds)
	assert.Equal(t, "/guild/list/guild", stub.last(t).URL.Path)
}

func TestMapGuildIsIdempotent(t *testing.T) {
	first, err := mapGuild(mustObject(t, guildByUsername), ByUsername)
	require.NoError(t, err)
	second, err := mapGuild(mustObject(t, guildByUsername), ByUsername)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
