package wynncraft

import (
	"context"
	"net/url"
)

// ClassSummary is one entry of the class list.
type ClassSummary struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	OverallDifficulty int    `json:"overallDifficulty"`
}

// Class describes a playable class and its archetypes.
type Class struct {
	ID                string      `json:"id"`
	Name              string      `json:"name"`
	Lore              string      `json:"lore"`
	OverallDifficulty int         `json:"overallDifficulty"`
	Archetypes        []Archetype `json:"archetypes"`
}

// Archetype holds the ratings of one class archetype.
type Archetype struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Difficulty int    `json:"difficulty"`
	Damage     int    `json:"damage"`
	Defence    int    `json:"defence"`
	Range      int    `json:"range"`
	Speed      int    `json:"speed"`
}

// ListClasses returns every class, ordered by id.
func (c *Client) ListClasses(ctx context.Context) ([]ClassSummary, error) {
	root, err := c.fetchObject(ctx, "/classes", nil)
	if err != nil {
		return nil, err
	}
	return mapClassList(root)
}

// GetClass returns the class with the given id (e.g. "archer").
func (c *Client) GetClass(ctx context.Context, id string) (*Class, error) {
	root, err := c.fetchObject(ctx, "/classes/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	return mapClass(root)
}

func mapClassList(root object) ([]ClassSummary, error) {
	classes := make([]ClassSummary, 0, len(root.values))
	err := root.objects(func(id string, obj object) error {
		cls := ClassSummary{ID: id}
		if err := obj.extract(
			defaulted("name", "", &cls.Name),
			defaulted("overallDifficulty", 0, &cls.OverallDifficulty),
		); err != nil {
			return err
		}
		classes = append(classes, cls)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}

func mapClass(root object) (*Class, error) {
	var cls Class
	if err := root.extract(
		required("id", &cls.ID),
		required("name", &cls.Name),
		required("lore", &cls.Lore),
		required("overallDifficulty", &cls.OverallDifficulty),
	); err != nil {
		return nil, err
	}

	archetypes, err := root.child("archetypes")
	if err != nil {
		return nil, err
	}
	cls.Archetypes = make([]Archetype, 0, len(archetypes.values))
	err = archetypes.objects(func(id string, obj object) error {
		arch := Archetype{ID: id}
		if err := obj.extract(
			defaulted("name", "", &arch.Name),
			defaulted("difficulty", 0, &arch.Difficulty),
			defaulted("damage", 0, &arch.Damage),
			defaulted("defence", 0, &arch.Defence),
			defaulted("range", 0, &arch.Range),
			defaulted("speed", 0, &arch.Speed),
		); err != nil {
			return err
		}
		cls.Archetypes = append(cls.Archetypes, arch)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cls, nil
}
