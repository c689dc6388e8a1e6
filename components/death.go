package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DeathData describes an entity whose health reached zero. It has already
// been deactivated when the event is delivered.
type DeathData struct {
	Entity donburi.Entity
	Kind   Kind
	Wave   bool
	Prop   bool // destructible scenery rather than a combatant
}

var Died = events.NewEventType[DeathData]()
