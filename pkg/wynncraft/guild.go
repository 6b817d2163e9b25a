package wynncraft

import (
	"context"
	"net/url"
	"sort"
	"strconv"
)

// GuildSummary identifies a guild without its details.
type GuildSummary struct {
	UUID   string `json:"uuid"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
}

// Guild is the full profile of a guild.
type Guild struct {
	UUID        string        `json:"uuid"`
	Name        string        `json:"name"`
	Prefix      string        `json:"prefix"`
	Level       int           `json:"level"`
	XPPercent   int           `json:"xpPercent"`
	Territories int           `json:"territories"`
	Wars        int           `json:"wars"`
	Created     string        `json:"created"`
	Online      int           `json:"online"`
	Members     []GuildMember `json:"members"`
	Banner      *GuildBanner  `json:"banner,omitempty"`
	SeasonRanks []SeasonRank  `json:"seasonRanks"`
}

// GuildMember is one member of a guild, tagged with the rank group it was listed under.
type GuildMember struct {
	Username         string  `json:"username"`
	UUID             string  `json:"uuid"`
	Rank             string  `json:"rank"`
	Online           bool    `json:"online"`
	Server           *string `json:"server,omitempty"`
	Contributed      int64   `json:"contributed"`
	ContributionRank int     `json:"contributionRank"`
	Joined           *string `json:"joined,omitempty"`
}

// GuildBanner is the layered banner design of a guild.
type GuildBanner struct {
	Base      string        `json:"base"`
	Tier      int           `json:"tier"`
	Structure string        `json:"structure"`
	Layers    []BannerLayer `json:"layers"`
}

// BannerLayer is one colour/pattern layer of a banner.
type BannerLayer struct {
	Colour  string `json:"colour"`
	Pattern string `json:"pattern"`
}

// SeasonRank is a guild's result for one war season.
type SeasonRank struct {
	Season           int `json:"season"`
	Rating           int `json:"rating"`
	FinalTerritories int `json:"finalTerritories"`
}

// memberTotalKey sits next to the rank groups in the members object and is not a rank.
const memberTotalKey = "total"

var rankOrder = map[string]int{
	"owner":      0,
	"chief":      1,
	"strategist": 2,
	"captain":    3,
	"recruiter":  4,
	"recruit":    5,
}

// GetGuildNames lists every guild by name, or by uuid when id is ByUUID.
func (c *Client) GetGuildNames(ctx context.Context, id Identifier) ([]string, error) {
	q := url.Values{}
	if id == ByUUID {
		q.Set("identifier", "uuid")
	} else {
		q.Set("identifier", "name")
	}
	root, err := c.fetchObject(ctx, "/guild/list/guild", q)
	if err != nil {
		return nil, err
	}
	return root.keys(), nil
}

// ListGuilds returns every guild with its name and prefix, ordered by uuid.
func (c *Client) ListGuilds(ctx context.Context) ([]GuildSummary, error) {
	q := url.Values{}
	q.Set("identifier", "uuid")
	root, err := c.fetchObject(ctx, "/guild/list/guild", q)
	if err != nil {
		return nil, err
	}
	return mapGuildList(root)
}

// GetGuild returns the guild with the given name. id controls whether members are keyed by uuid or username.
func (c *Client) GetGuild(ctx context.Context, name string, id Identifier) (*Guild, error) {
	root, err := c.fetchObject(ctx, "/guild/"+url.PathEscape(name), identifierQuery("identifier", id))
	if err != nil {
		return nil, err
	}
	return mapGuild(root, id)
}

// GetGuildByPrefix returns the guild with the given tag.
func (c *Client) GetGuildByPrefix(ctx context.Context, prefix string, id Identifier) (*Guild, error) {
	root, err := c.fetchObject(ctx, "/guild/prefix/"+url.PathEscape(prefix), identifierQuery("identifier", id))
	if err != nil {
		return nil, err
	}
	return mapGuild(root, id)
}

func mapGuildList(root object) ([]GuildSummary, error) {
	guilds := make([]GuildSummary, 0, len(root.values))
	err := root.objects(func(uuid string, obj object) error {
		g := GuildSummary{UUID: uuid}
		if err := obj.extract(
			defaulted("name", "", &g.Name),
			defaulted("prefix", "", &g.Prefix),
		); err != nil {
			return err
		}
		guilds = append(guilds, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return guilds, nil
}

func mapGuild(root object, id Identifier) (*Guild, error) {
	var g Guild
	if err := root.extract(
		required("uuid", &g.UUID),
		required("name", &g.Name),
		required("prefix", &g.Prefix),
		required("level", &g.Level),
		required("xpPercent", &g.XPPercent),
		required("territories", &g.Territories),
		defaulted("wars", 0, &g.Wars),
		required("created", &g.Created),
		required("online", &g.Online),
	); err != nil {
		return nil, err
	}

	members, err := root.child("members")
	if err != nil {
		return nil, err
	}
	if g.Members, err = mapGuildMembers(members, id); err != nil {
		return nil, err
	}

	banner, found, err := root.optionalChild("banner")
	if err != nil {
		return nil, err
	}
	if found {
		if g.Banner, err = mapBanner(banner); err != nil {
			return nil, err
		}
	}

	if g.SeasonRanks, err = mapSeasonRanks(root); err != nil {
		return nil, err
	}
	return &g, nil
}

func mapGuildMembers(members object, id Identifier) ([]GuildMember, error) {
	out := make([]GuildMember, 0)
	for _, rank := range members.keys() {
		if rank == memberTotalKey {
			continue
		}
		group, err := members.child(rank)
		if err != nil {
			return nil, err
		}
		err = group.objects(func(key string, obj object) error {
			m := GuildMember{Rank: rank}
			fields := make([]field, 0, 6)
			if id == ByUUID {
				m.UUID = key
				fields = append(fields, defaulted("username", "", &m.Username))
			} else {
				m.Username = key
				fields = append(fields, defaulted("uuid", "", &m.UUID))
			}
			fields = append(fields,
				defaulted("online", false, &m.Online),
				optional("server", &m.Server),
				defaulted("contributed", int64(0), &m.Contributed),
				defaulted("contributionRank", 0, &m.ContributionRank),
				optional("joined", &m.Joined),
			)
			if err := obj.extract(fields...); err != nil {
				return err
			}
			out = append(out, m)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sortMembers(out)
	return out, nil
}

func sortMembers(members []GuildMember) {
	sort.SliceStable(members, func(i, j int) bool {
		ri, rj := rankWeight(members[i].Rank), rankWeight(members[j].Rank)
		if ri != rj {
			return ri < rj
		}
		if members[i].Rank != members[j].Rank {
			return members[i].Rank < members[j].Rank
		}
		if members[i].Username != members[j].Username {
			return members[i].Username < members[j].Username
		}
		return members[i].UUID < members[j].UUID
	})
}

func rankWeight(rank string) int {
	if w, ok := rankOrder[rank]; ok {
		return w
	}
	return len(rankOrder)
}

func mapBanner(o object) (*GuildBanner, error) {
	var b GuildBanner
	if err := o.extract(
		required("base", &b.Base),
		required("tier", &b.Tier),
		required("structure", &b.Structure),
	); err != nil {
		return nil, err
	}
	layers, err := o.defaultedArray("layers")
	if err != nil {
		return nil, err
	}
	b.Layers = make([]BannerLayer, 0, len(layers.items))
	err = layers.objects(func(obj object) error {
		var l BannerLayer
		if err := obj.extract(
			required("colour", &l.Colour),
			required("pattern", &l.Pattern),
		); err != nil {
			return err
		}
		b.Layers = append(b.Layers, l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func mapSeasonRanks(root object) ([]SeasonRank, error) {
	ranks := make([]SeasonRank, 0)
	seasons, found, err := root.optionalChild("seasonRanks")
	if err != nil || !found {
		return ranks, err
	}
	err = seasons.objects(func(key string, obj object) error {
		season, err := strconv.Atoi(key)
		if err != nil {
			return &SchemaError{Field: obj.path, Expected: KindNumericString, Err: err}
		}
		sr := SeasonRank{Season: season}
		if err := obj.extract(
			required("rating", &sr.Rating),
			required("finalTerritories", &sr.FinalTerritories),
		); err != nil {
			return err
		}
		ranks = append(ranks, sr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].Season < ranks[j].Season })
	return ranks, nil
}
