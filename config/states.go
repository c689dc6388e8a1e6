package config

// StateID is the action state of a combatant.
type StateID int

const (
	Idle StateID = iota
	Moving
	Attacking
	Recovering
	Staggered
	Dead
)

var stateNames = map[StateID]string{
	Idle:       "idle",
	Moving:     "moving",
	Attacking:  "attacking",
	Recovering: "recovering",
	Staggered:  "staggered",
	Dead:       "dead",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Element is the elemental affinity of a move or a loaded ammo slot.
type Element int

const (
	// ElementNone marks an empty ammo slot.
	ElementNone Element = iota - 1
	Neutral
	Fire
	Wind
	Earth
	Water
)

var elementNames = map[Element]string{
	ElementNone: "none",
	Neutral:     "neutral",
	Fire:        "fire",
	Wind:        "wind",
	Earth:       "earth",
	Water:       "water",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "unknown"
}

// ParseElement maps an authored element name to its Element.
func ParseElement(name string) (Element, bool) {
	if name == "" {
		return Neutral, true
	}
	for el, n := range elementNames {
		if n == name && el != ElementNone {
			return el, true
		}
	}
	return ElementNone, false
}

// SpecialTag selects the side effect a player move triggers when it is
// dispatched or when its animation reaches the special-action marker.
type SpecialTag int

const (
	SpecialNone SpecialTag = iota
	EnterCannonMode
	EnterAirCannon
	DoubleJump
	LoadAmmo
	LoadFireAmmo
	LoadWindAmmo
	LoadEarthAmmo
	LoadWaterAmmo
	DashThrough
)

var specialNames = map[SpecialTag]string{
	SpecialNone:     "none",
	EnterCannonMode: "enter_cannon_mode",
	EnterAirCannon:  "enter_air_cannon",
	DoubleJump:      "double_jump",
	LoadAmmo:        "load_ammo",
	LoadFireAmmo:    "load_fire_ammo",
	LoadWindAmmo:    "load_wind_ammo",
	LoadEarthAmmo:   "load_earth_ammo",
	LoadWaterAmmo:   "load_water_ammo",
	DashThrough:     "dash_through",
}

func (t SpecialTag) String() string {
	if name, ok := specialNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseSpecialTag maps an authored special-action name to its tag.
func ParseSpecialTag(name string) (SpecialTag, bool) {
	if name == "" {
		return SpecialNone, true
	}
	for tag, n := range specialNames {
		if n == name {
			return tag, true
		}
	}
	return SpecialNone, false
}

// IsLoad reports whether the tag loads a round of ammo.
func (t SpecialTag) IsLoad() bool {
	return t >= LoadAmmo && t <= LoadWaterAmmo
}

// LoadElement is the affinity pushed by a load tag. The load tags are laid
// out in the same order as the elements, starting from Neutral.
func (t SpecialTag) LoadElement() Element {
	if !t.IsLoad() {
		return ElementNone
	}
	return Neutral + Element(t-LoadAmmo)
}

// IsCannon reports whether the tag puts the player in a cannon stance.
func (t SpecialTag) IsCannon() bool {
	return t == EnterCannonMode || t == EnterAirCannon
}
