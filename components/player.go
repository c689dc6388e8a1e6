package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ComboData is the per-player combo buffer.
type ComboData struct {
	Table    config.ComboTable
	Working  string
	Buffered bool
	Dir      math.Vec2
	Airborne bool
}

var Combo = donburi.NewComponentType[ComboData]()

// AmmoData is a fixed capacity LIFO of loaded elemental rounds plus the
// turkey legs carried for healing.
type AmmoData struct {
	Slots    []config.Element
	Top      int // slots at and above Top are empty
	LastUsed config.Element
	Turkeys  int
}

// NewAmmo returns an empty loadout with capacity slots.
func NewAmmo(capacity int) AmmoData {
	slots := make([]config.Element, capacity)
	for i := range slots {
		slots[i] = config.ElementNone
	}
	return AmmoData{Slots: slots, LastUsed: config.Neutral}
}

// Max is the slot capacity.
func (a *AmmoData) Max() int {
	return len(a.Slots)
}

var Ammo = donburi.NewComponentType[AmmoData]()

// PlayerData carries player-only stance state.
type PlayerData struct {
	Cannon bool
}

var Player = donburi.NewComponentType[PlayerData]()
