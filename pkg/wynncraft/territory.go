package wynncraft

import "context"

// Territory is a claimable map area and the guild currently holding it. Owner is nil while the
// territory is unclaimed.
type Territory struct {
	Name     string        `json:"name"`
	Owner    *GuildSummary `json:"guild"`
	Acquired string        `json:"acquired"`
	Start    Location      `json:"start"`
	End      Location      `json:"end"`
}

// GetTerritories returns every territory, ordered by name.
func (c *Client) GetTerritories(ctx context.Context) ([]Territory, error) {
	root, err := c.fetchObject(ctx, "/guild/list/territory", nil)
	if err != nil {
		return nil, err
	}
	return mapTerritories(root)
}

func mapTerritories(root object) ([]Territory, error) {
	territories := make([]Territory, 0, len(root.values))
	err := root.objects(func(name string, obj object) error {
		t := Territory{Name: name}
		if err := obj.extract(defaulted("acquired", "", &t.Acquired)); err != nil {
			return err
		}
		owner, err := obj.child("guild")
		if err != nil {
			return err
		}
		if t.Owner, err = mapTerritoryOwner(owner); err != nil {
			return err
		}
		loc, err := obj.child("location")
		if err != nil {
			return err
		}
		if t.Start, err = loc.location("start"); err != nil {
			return err
		}
		if t.End, err = loc.location("end"); err != nil {
			return err
		}
		territories = append(territories, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return territories, nil
}

// mapTerritoryOwner returns nil when the guild block carries no uuid.
func mapTerritoryOwner(o object) (*GuildSummary, error) {
	var uuid *string
	g := GuildSummary{}
	if err := o.extract(
		optional("uuid", &uuid),
		defaulted("name", "", &g.Name),
		defaulted("prefix", "", &g.Prefix),
	); err != nil {
		return nil, err
	}
	if uuid == nil {
		return nil, nil
	}
	g.UUID = *uuid
	return &g, nil
}
