package components

import (
	"github.com/yohamta/donburi"
)

// HurtboxData is the strike volume a combatant projects in front of itself
// when its animation reaches a hit marker.
type HurtboxData struct {
	Reach float64  // depth in front of the body
	Mask  []string // resolv tags that can be struck

	// Entities already struck by the running scan
	HitEntities map[donburi.Entity]bool
	// Entities already touched while contact damage is on
	Touched  map[donburi.Entity]bool
	scanning bool
}

// BeginScan guards against re-entrant scans. Returns false if a scan is
// already running.
func (h *HurtboxData) BeginScan() bool {
	if h.scanning {
		return false
	}
	h.scanning = true
	return true
}

func (h *HurtboxData) EndScan() {
	h.scanning = false
}

// Reset forgets every entity struck by the previous scan.
func (h *HurtboxData) Reset() {
	h.HitEntities = make(map[donburi.Entity]bool)
}

var Hurtbox = donburi.NewComponentType[HurtboxData]()
