package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// UpdateStates settles the locomotion states. Recovering lasts until the
// next logic tick, then becomes Idle or Moving depending on intent.
func UpdateStates(w donburi.World) {
	components.Combatant.Each(w, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if !c.Active {
			return
		}
		switch c.State {
		case cfg.Idle, cfg.Moving, cfg.Recovering:
			c.State = locomotionState(components.Movement.Get(e))
		}
	})
}

func locomotionState(mv *components.MovementData) cfg.StateID {
	if mv.CanMove && mv.Intent != 0 {
		return cfg.Moving
	}
	return cfg.Idle
}
