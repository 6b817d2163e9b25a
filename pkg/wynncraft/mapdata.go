package wynncraft

import "context"

// Marker is a named point of interest on the world map.
type Marker struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Location Location `json:"location"`
}

// GetMapMarkers returns every map marker.
func (c *Client) GetMapMarkers(ctx context.Context) ([]Marker, error) {
	root, err := c.fetchArray(ctx, "/map/locations/markers", nil)
	if err != nil {
		return nil, err
	}
	return mapMarkers(root)
}

// GetQuestCount returns the number of quests in the game.
func (c *Client) GetQuestCount(ctx context.Context) (int, error) {
	root, err := c.fetchObject(ctx, "/map/quests", nil)
	if err != nil {
		return 0, err
	}
	return mapQuestCount(root)
}

func mapMarkers(root array) ([]Marker, error) {
	markers := make([]Marker, 0, len(root.items))
	err := root.objects(func(obj object) error {
		var (
			m       Marker
			x, y, z int
		)
		if err := obj.extract(
			defaulted("name", "", &m.Name),
			defaulted("icon", "", &m.Icon),
			numericString("x", &x),
			numericString("y", &y),
			numericString("z", &z),
		); err != nil {
			return err
		}
		m.Location = Location{X: x, Y: &y, Z: z}
		markers = append(markers, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return markers, nil
}

func mapQuestCount(root object) (int, error) {
	var quests int
	if err := root.extract(required("quests", &quests)); err != nil {
		return 0, err
	}
	return quests, nil
}
