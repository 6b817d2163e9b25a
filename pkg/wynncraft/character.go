package wynncraft

// Character is one playable character of an account, keyed by character uuid in Player.Characters.
type Character struct {
	Type              string                `json:"type"`
	Nickname          *string               `json:"nickname,omitempty"`
	Reskin            *string               `json:"reskin,omitempty"`
	Level             int                   `json:"level"`
	XP                int64                 `json:"xp"`
	XPPercent         int                   `json:"xpPercent"`
	TotalLevel        int                   `json:"totalLevel"`
	Wars              *int                  `json:"wars,omitempty"`
	Playtime          float64               `json:"playtime"`
	MobsKilled        *int                  `json:"mobsKilled,omitempty"`
	ChestsFound       *int                  `json:"chestsFound,omitempty"`
	BlocksWalked      *int64                `json:"blocksWalked,omitempty"`
	ItemsIdentified   *int                  `json:"itemsIdentified,omitempty"`
	Logins            *int                  `json:"logins,omitempty"`
	Deaths            *int                  `json:"deaths,omitempty"`
	Discoveries       *int                  `json:"discoveries,omitempty"`
	ContentCompletion *int                  `json:"contentCompletion,omitempty"`
	PvP               *PvP                  `json:"pvp,omitempty"`
	Gamemode          []string              `json:"gamemode"`
	SkillPoints       map[string]int        `json:"skillPoints,omitempty"`
	Professions       map[string]Profession `json:"professions"`
	Dungeons          *Progress             `json:"dungeons,omitempty"`
	Raids             *Progress             `json:"raids,omitempty"`
	Quests            []string              `json:"quests"`
}

// Profession is the level reached in a gathering or crafting profession.
type Profession struct {
	Level     int `json:"level"`
	XPPercent int `json:"xpPercent"`
}

func mapCharacters(o object) (map[string]Character, error) {
	out := make(map[string]Character, len(o.values))
	err := o.objects(func(id string, obj object) error {
		ch, err := mapCharacter(obj)
		if err != nil {
			return err
		}
		out[id] = ch
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func mapCharacter(o object) (Character, error) {
	var ch Character
	if err := o.extract(
		required("type", &ch.Type),
		optional("nickname", &ch.Nickname),
		optional("reskin", &ch.Reskin),
		required("level", &ch.Level),
		required("xp", &ch.XP),
		required("xpPercent", &ch.XPPercent),
		required("totalLevel", &ch.TotalLevel),
		optional("wars", &ch.Wars),
		required("playtime", &ch.Playtime),
		optional("mobsKilled", &ch.MobsKilled),
		optional("chestsFound", &ch.ChestsFound),
		optional("blocksWalked", &ch.BlocksWalked),
		optional("itemsIdentified", &ch.ItemsIdentified),
		optional("logins", &ch.Logins),
		optional("deaths", &ch.Deaths),
		optional("discoveries", &ch.Discoveries),
		optional("contentCompletion", &ch.ContentCompletion),
	); err != nil {
		return Character{}, err
	}

	var err error
	if ch.Gamemode, err = defaultedStrings(o, "gamemode"); err != nil {
		return Character{}, err
	}
	if ch.Quests, err = defaultedStrings(o, "quests"); err != nil {
		return Character{}, err
	}
	if ch.SkillPoints, err = optionalDict[int](o, "skillPoints"); err != nil {
		return Character{}, err
	}
	if ch.Professions, err = mapProfessions(o); err != nil {
		return Character{}, err
	}

	pvp, found, err := o.optionalChild("pvp")
	if err != nil {
		return Character{}, err
	}
	if found {
		p, err := parsePvP(pvp)
		if err != nil {
			return Character{}, err
		}
		ch.PvP = &p
	}

	if ch.Dungeons, err = optionalProgress(o, "dungeons"); err != nil {
		return Character{}, err
	}
	if ch.Raids, err = optionalProgress(o, "raids"); err != nil {
		return Character{}, err
	}
	return ch, nil
}

func mapProfessions(o object) (map[string]Profession, error) {
	profs, err := o.child("professions")
	if err != nil {
		return nil, err
	}
	out := make(map[string]Profession, len(profs.values))
	err = profs.objects(func(name string, obj object) error {
		var p Profession
		if err := obj.extract(
			required("level", &p.Level),
			required("xpPercent", &p.XPPercent),
		); err != nil {
			return err
		}
		out[name] = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func optionalProgress(o object, key string) (*Progress, error) {
	obj, found, err := o.optionalChild(key)
	if err != nil || !found {
		return nil, err
	}
	p, err := parseProgress(obj)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func defaultedStrings(o object, key string) ([]string, error) {
	arr, err := o.defaultedArray(key)
	if err != nil {
		return nil, err
	}
	return arrayOf[string](arr)
}
