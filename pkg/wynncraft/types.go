package wynncraft

// Identifier selects how players and guild members are keyed in list responses.
type Identifier string

const (
	ByUsername Identifier = "username"
	ByUUID     Identifier = "uuid"
)

func (id Identifier) param() string {
	if id == ByUUID {
		return string(ByUUID)
	}
	return string(ByUsername)
}

// Location is a map coordinate. Y is nil when the source only supplies the horizontal axes.
type Location struct {
	X int  `json:"x"`
	Y *int `json:"y,omitempty"`
	Z int  `json:"z"`
}

// Progress counts completions overall and per named dungeon or raid.
type Progress struct {
	Total int            `json:"total"`
	List  map[string]int `json:"list"`
}

// PvP holds kill/death counters.
type PvP struct {
	Kills  int `json:"kills"`
	Deaths int `json:"deaths"`
}

func parseLocation(raw any, path string) (Location, error) {
	arr, err := asArray(raw, path)
	if err != nil {
		return Location{}, &SchemaError{Field: path, Expected: KindCoordinates}
	}
	if len(arr.items) != 2 && len(arr.items) != 3 {
		return Location{}, &SchemaError{Field: path, Expected: KindCoordinates}
	}
	axes, err := arrayOf[int](arr)
	if err != nil {
		return Location{}, err
	}
	if len(axes) == 3 {
		y := axes[1]
		return Location{X: axes[0], Y: &y, Z: axes[2]}, nil
	}
	return Location{X: axes[0], Z: axes[1]}, nil
}

func parseProgress(o object) (Progress, error) {
	var p Progress
	if err := o.extract(required("total", &p.Total)); err != nil {
		return Progress{}, err
	}
	list, err := dict[int](o, "list")
	if err != nil {
		return Progress{}, err
	}
	p.List = list
	return p, nil
}

func parsePvP(o object) (PvP, error) {
	var p PvP
	if err := o.extract(
		required("kills", &p.Kills),
		required("deaths", &p.Deaths),
	); err != nil {
		return PvP{}, err
	}
	return p, nil
}
