package wynncraft

import (
	"context"
	"net/url"
	"sort"
	"strconv"
)

// Player is the account-level profile of a player. Characters is only populated by GetPlayerFull.
type Player struct {
	Username         string               `json:"username"`
	UUID             string               `json:"uuid"`
	Online           bool                 `json:"online"`
	Server           *string              `json:"server,omitempty"`
	ActiveCharacter  *string              `json:"activeCharacter,omitempty"`
	Rank             *string              `json:"rank,omitempty"`
	RankBadge        *string              `json:"rankBadge,omitempty"`
	LegacyRankColour *RankColour          `json:"legacyRankColour,omitempty"`
	ShortenedRank    *string              `json:"shortenedRank,omitempty"`
	SupportRank      *string              `json:"supportRank,omitempty"`
	Veteran          bool                 `json:"veteran"`
	FirstJoin        string               `json:"firstJoin"`
	LastJoin         string               `json:"lastJoin"`
	Playtime         float64              `json:"playtime"`
	Guild            *PlayerGuild         `json:"guild,omitempty"`
	GlobalData       GlobalData           `json:"globalData"`
	ForumLink        *int                 `json:"forumLink,omitempty"`
	Ranking          map[string]int       `json:"ranking"`
	PreviousRanking  map[string]int       `json:"previousRanking"`
	PublicProfile    bool                 `json:"publicProfile"`
	Characters       map[string]Character `json:"characters,omitempty"`
}

// RankColour is the legacy chat colour pair of a rank.
type RankColour struct {
	Main string `json:"main"`
	Sub  string `json:"sub"`
}

// PlayerGuild is the guild membership shown on a player profile.
type PlayerGuild struct {
	UUID      string `json:"uuid"`
	Name      string `json:"name"`
	Prefix    string `json:"prefix"`
	Rank      string `json:"rank"`
	RankStars string `json:"rankStars"`
}

// GlobalData aggregates progress across all characters of an account.
type GlobalData struct {
	Wars            int      `json:"wars"`
	TotalLevel      int      `json:"totalLevel"`
	KilledMobs      int      `json:"killedMobs"`
	ChestsFound     int      `json:"chestsFound"`
	Dungeons        Progress `json:"dungeons"`
	Raids           Progress `json:"raids"`
	CompletedQuests int      `json:"completedQuests"`
	PvP             PvP      `json:"pvp"`
}

// OnlinePlayers groups the online players by the world they are on.
type OnlinePlayers struct {
	Total   int                 `json:"total"`
	ByWorld map[string][]string `json:"byWorld"`
}

// GetPlayer returns the main profile of a player, looked up by username or uuid.
func (c *Client) GetPlayer(ctx context.Context, identifier string) (*Player, error) {
	root, err := c.fetchObject(ctx, "/player/"+url.PathEscape(identifier), nil)
	if err != nil {
		return nil, err
	}
	return mapPlayer(root, false)
}

// GetPlayerFull returns the profile of a player together with every character.
func (c *Client) GetPlayerFull(ctx context.Context, identifier string) (*Player, error) {
	q := url.Values{}
	q.Set("fullResult", "True")
	root, err := c.fetchObject(ctx, "/player/"+url.PathEscape(identifier), q)
	if err != nil {
		return nil, err
	}
	return mapPlayer(root, true)
}

// GetOnlinePlayers lists every online player by username, or by uuid when id is ByUUID.
func (c *Client) GetOnlinePlayers(ctx context.Context, id Identifier) ([]string, error) {
	return c.onlinePlayers(ctx, "", id)
}

// GetOnlinePlayersOnWorld lists the players online on world WC{world}.
func (c *Client) GetOnlinePlayersOnWorld(ctx context.Context, world int, id Identifier) ([]string, error) {
	return c.onlinePlayers(ctx, worldName(world), id)
}

// GetOnlinePlayerCount returns how many players are online.
func (c *Client) GetOnlinePlayerCount(ctx context.Context) (int, error) {
	return c.playerCount(ctx, "")
}

// GetOnlinePlayerCountOnWorld returns how many players are online on world WC{world}.
func (c *Client) GetOnlinePlayerCountOnWorld(ctx context.Context, world int) (int, error) {
	return c.playerCount(ctx, worldName(world))
}

// GetOnlinePlayerData returns the online total and the players on each world.
func (c *Client) GetOnlinePlayerData(ctx context.Context, id Identifier) (*OnlinePlayers, error) {
	root, err := c.fetchObject(ctx, "/player", identifierQuery("identifier", id))
	if err != nil {
		return nil, err
	}
	return mapOnlinePlayers(root)
}

func (c *Client) onlinePlayers(ctx context.Context, world string, id Identifier) ([]string, error) {
	q := identifierQuery("identifier", id)
	if world != "" {
		q.Set("server", world)
	}
	root, err := c.fetchObject(ctx, "/player", q)
	if err != nil {
		return nil, err
	}
	players, err := root.child("players")
	if err != nil {
		return nil, err
	}
	return players.keys(), nil
}

func (c *Client) playerCount(ctx context.Context, world string) (int, error) {
	var q url.Values
	if world != "" {
		q = identifierQuery("identifier", ByUsername)
		q.Set("server", world)
	}
	root, err := c.fetchObject(ctx, "/player", q)
	if err != nil {
		return 0, err
	}
	var total int
	if err := root.extract(required("total", &total)); err != nil {
		return 0, err
	}
	return total, nil
}

func worldName(world int) string {
	return worldNamePrefix + strconv.Itoa(world)
}

func mapOnlinePlayers(root object) (*OnlinePlayers, error) {
	out := OnlinePlayers{ByWorld: map[string][]string{}}
	if err := root.extract(required("total", &out.Total)); err != nil {
		return nil, err
	}
	players, err := dict[string](root, "players")
	if err != nil {
		return nil, err
	}
	for player, world := range players {
		out.ByWorld[world] = append(out.ByWorld[world], player)
	}
	for world := range out.ByWorld {
		sort.Strings(out.ByWorld[world])
	}
	return &out, nil
}

func mapPlayer(root object, full bool) (*Player, error) {
	var p Player
	if err := root.extract(
		required("username", &p.Username),
		required("uuid", &p.UUID),
		required("online", &p.Online),
		optional("server", &p.Server),
		optional("activeCharacter", &p.ActiveCharacter),
		optional("rank", &p.Rank),
		optional("rankBadge", &p.RankBadge),
		optional("shortenedRank", &p.ShortenedRank),
		optional("supportRank", &p.SupportRank),
		defaulted("veteran", false, &p.Veteran),
		required("firstJoin", &p.FirstJoin),
		required("lastJoin", &p.LastJoin),
		required("playtime", &p.Playtime),
		optional("forumLink", &p.ForumLink),
		required("publicProfile", &p.PublicProfile),
	); err != nil {
		return nil, err
	}

	colour, found, err := root.optionalChild("legacyRankColour")
	if err != nil {
		return nil, err
	}
	if found {
		var rc RankColour
		if err := colour.extract(
			required("main", &rc.Main),
			required("sub", &rc.Sub),
		); err != nil {
			return nil, err
		}
		p.LegacyRankColour = &rc
	}

	guild, found, err := root.optionalChild("guild")
	if err != nil {
		return nil, err
	}
	if found {
		var pg PlayerGuild
		if err := guild.extract(
			required("uuid", &pg.UUID),
			required("name", &pg.Name),
			required("prefix", &pg.Prefix),
			required("rank", &pg.Rank),
			required("rankStars", &pg.RankStars),
		); err != nil {
			return nil, err
		}
		p.Guild = &pg
	}

	global, err := root.child("globalData")
	if err != nil {
		return nil, err
	}
	if p.GlobalData, err = mapGlobalData(global); err != nil {
		return nil, err
	}

	if p.Ranking, err = dict[int](root, "ranking"); err != nil {
		return nil, err
	}
	if p.PreviousRanking, err = dict[int](root, "previousRanking"); err != nil {
		return nil, err
	}

	if full {
		characters, err := root.child("characters")
		if err != nil {
			return nil, err
		}
		if p.Characters, err = mapCharacters(characters); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func mapGlobalData(o object) (GlobalData, error) {
	var g GlobalData
	if err := o.extract(
		required("wars", &g.Wars),
		required("totalLevel", &g.TotalLevel),
		required("killedMobs", &g.KilledMobs),
		required("chestsFound", &g.ChestsFound),
		required("completedQuests", &g.CompletedQuests),
	); err != nil {
		return GlobalData{}, err
	}

	dungeons, err := o.child("dungeons")
	if err != nil {
		return GlobalData{}, err
	}
	if g.Dungeons, err = parseProgress(dungeons); err != nil {
		return GlobalData{}, err
	}

	raids, err := o.child("raids")
	if err != nil {
		return GlobalData{}, err
	}
	if g.Raids, err = parseProgress(raids); err != nil {
		return GlobalData{}, err
	}

	pvp, err := o.child("pvp")
	if err != nil {
		return GlobalData{}, err
	}
	if g.PvP, err = parsePvP(pvp); err != nil {
		return GlobalData{}, err
	}
	return g, nil
}
