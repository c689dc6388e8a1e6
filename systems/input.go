package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// UpdateInput drains the semantic input queued on each player since the
// last logic tick. Must run before UpdateLocomotion so this tick's movement
// reflects the resolved state.
func UpdateInput(w donburi.World) {
	components.Input.Each(w, func(e *donburi.Entry) {
		in := components.Input.Get(e)
		events := in.Events
		in.Events = in.Events[:0]

		if !alive(e) {
			return
		}
		mv := components.Movement.Get(e)
		mv.Intent = in.Axis.X
		if e.HasComponent(components.Combo) {
			components.Combo.Get(e).Dir = in.Axis
		}

		for _, ev := range events {
			if !alive(e) {
				return
			}
			handleInput(w, e, mv, ev)
		}
	})
}

func handleInput(w donburi.World, e *donburi.Entry, mv *components.MovementData, ev components.InputEvent) {
	switch ev {
	case components.InputJumpPressed:
		mv.JumpHeld = true
	case components.InputJumpReleased:
		mv.JumpHeld = false
	case components.InputSprintToggle:
		ToggleSprint(e)
	case components.InputLight:
		PressAttack(w, e, cfg.SymbolLight)
	case components.InputHeavy:
		PressAttack(w, e, cfg.SymbolHeavy)
	case components.InputHeal:
		EatTurkey(e)
	case components.InputDrop:
		Drop(w, e)
	}
}
