package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type DamageEventData struct {
	Target   donburi.Entity
	Attacker donburi.Entity
	Amount   float64
	Magic    bool
	Element  config.Element
	Health   float64 // after the hit
}

// Damaged is published whenever health is reduced.
var Damaged = events.NewEventType[DamageEventData]()

type AmmoEventData struct {
	Owner   donburi.Entity
	Loaded  int
	Element config.Element // element of the round just loaded or fired
}

// AmmoChanged is published when a round is loaded or consumed.
var AmmoChanged = events.NewEventType[AmmoEventData]()

type DetectEventData struct {
	Enemy  donburi.Entity
	Target donburi.Entity
}

// Detected is published when an enemy binds a pursuit target.
var Detected = events.NewEventType[DetectEventData]()
