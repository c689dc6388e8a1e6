package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Direction classifies a move-axis sample into a combo symbol. Sprinting
// always reads as a dash. Ties, including the zero vector, yield 0.
func Direction(dir dmath.Vec2, sprinting bool) byte {
	if sprinting {
		return cfg.SymbolDash
	}
	ax, ay := math.Abs(dir.X), math.Abs(dir.Y)
	switch {
	case ax > ay:
		if dir.X > 0 {
			return cfg.SymbolRight
		}
		return cfg.SymbolLeft
	case ay > ax:
		// y grows downward
		if dir.Y > 0 {
			return cfg.SymbolDown
		}
		return cfg.SymbolUp
	}
	return 0
}

// PressAttack feeds a light or heavy press into the combo buffer. While an
// attack or interrupt is in progress a single press is buffered; further
// presses are dropped until it is consumed.
func PressAttack(w donburi.World, e *donburi.Entry, button byte) {
	if !alive(e) || !e.HasComponent(components.Combo) {
		return
	}
	c := components.Combatant.Get(e)
	cb := components.Combo.Get(e)

	if c.InAttack {
		if cb.Buffered {
			return
		}
		appendInput(cb, components.Movement.Get(e).Sprinting, button)
		cb.Buffered = true
		return
	}

	appendInput(cb, components.Movement.Get(e).Sprinting, button)
	dispatchCombo(w, e)
}

// appendInput adds the button, prefixed by the held direction when the
// prefixed string is a key of the table. Airborne presses never carry a
// direction.
func appendInput(cb *components.ComboData, sprinting bool, button byte) {
	if !cb.Airborne {
		if d := Direction(cb.Dir, sprinting); d != 0 {
			if candidate := cb.Working + string(d) + string(button); cb.Table.Has(candidate) {
				cb.Working += string(d)
			}
		}
	}
	cb.Working += string(button)
}

// dispatchCombo looks the working string up in the combo table and starts
// the matching move.
func dispatchCombo(w donburi.World, e *donburi.Entry) {
	c := components.Combatant.Get(e)
	cb := components.Combo.Get(e)

	move, ok := cb.Table[cb.Working]
	if !ok {
		logger(w).Debug("combo miss", "entity", e.Entity(), "combo", cb.Working)
		c.InAttack = false
		cb.Working = ""
		if cb.Buffered {
			recoverBase(e)
		}
		cb.Buffered = false
		return
	}

	cb.Buffered = false
	c.Attack = move
	Timers(w).Cancel(e.Entity(), cfg.TimerComboDrop)

	mv := components.Movement.Get(e)
	if mv.Sprinting {
		setSprint(mv, false)
	}
	if move.EndOfChain {
		cb.Working = ""
	}
	if e.HasComponent(components.Player) {
		p := components.Player.Get(e)
		p.Cannon = move.Special.IsCannon()
		animator(e).SetCannon(p.Cannon)
	}

	Attack(w, e)
}

// recoverPlayer chains into a buffered press, or arms the combo drop timer
// before recovering.
func recoverPlayer(w donburi.World, e *donburi.Entry) {
	cb := components.Combo.Get(e)
	if cb.Buffered {
		recoverBase(e)
		dispatchCombo(w, e)
	} else {
		if !cb.Airborne {
			Timers(w).Start(e.Entity(), cfg.TimerComboDrop, cfg.Combat.ComboDropTime, func() {
				if e.Valid() {
					components.Combo.Get(e).Working = ""
				}
			})
		}
		recoverBase(e)
	}
}

// comboJumpStarted records the jump, and a preceding dash, in the combo
// string.
func comboJumpStarted(w donburi.World, e *donburi.Entry) {
	cb := components.Combo.Get(e)
	if components.Movement.Get(e).Sprinting {
		cb.Working += string(cfg.SymbolDash)
	}
	cb.Working += string(cfg.SymbolJump)
	cb.Airborne = true
}

// comboLanded clears the combo string and recovers.
func comboLanded(w donburi.World, e *donburi.Entry) {
	cb := components.Combo.Get(e)
	cb.Airborne = false
	cb.Working = ""
	recoverBase(e)
}

// LoadAmmo pushes a round. A full loadout is left unchanged.
func LoadAmmo(w donburi.World, e *donburi.Entry, element cfg.Element) bool {
	ammo := components.Ammo.Get(e)
	if ammo.Top >= ammo.Max() {
		return false
	}
	ammo.Slots[ammo.Top] = element
	ammo.Top++
	components.AmmoChanged.Publish(w, components.AmmoEventData{
		Owner:   e.Entity(),
		Loaded:  ammo.Top,
		Element: element,
	})
	return true
}

// UseAmmo pops the most recently loaded round into LastUsed.
func UseAmmo(w donburi.World, e *donburi.Entry) bool {
	ammo := components.Ammo.Get(e)
	if ammo.Top == 0 {
		return false
	}
	ammo.LastUsed = ammo.Slots[ammo.Top-1]
	ammo.Slots[ammo.Top-1] = cfg.ElementNone
	ammo.Top--
	components.AmmoChanged.Publish(w, components.AmmoEventData{
		Owner:   e.Entity(),
		Loaded:  ammo.Top,
		Element: ammo.LastUsed,
	})
	return true
}

// CollectTurkey picks up a turkey leg. The pickup is refused only once the
// carried count exceeds the ammo capacity.
func CollectTurkey(e *donburi.Entry) bool {
	ammo := components.Ammo.Get(e)
	if ammo.Turkeys > ammo.Max() {
		return false
	}
	ammo.Turkeys++
	return true
}

// EatTurkey heals the player with a carried turkey leg. Refused at full
// health or with none carried.
func EatTurkey(e *donburi.Entry) bool {
	if !alive(e) {
		return false
	}
	ammo := components.Ammo.Get(e)
	hp := components.Health.Get(e)
	if ammo.Turkeys == 0 || hp.Ratio() >= 1 {
		return false
	}
	ammo.Turkeys--
	Heal(e, cfg.Player.TurkeyHeal)
	return true
}

// firePlayerMissile fires along the move's missile direction. Moves that
// consume ammo fire only with a round loaded and take its element.
func firePlayerMissile(w donburi.World, e *donburi.Entry, force float64) {
	c := components.Combatant.Get(e)
	if c.Attack == nil {
		return
	}
	element := c.Attack.Element
	if c.Attack.ConsumesAmmo {
		if !UseAmmo(w, e) {
			return
		}
		element = components.Ammo.Get(e).LastUsed
	}
	md := c.Attack.MissileDirection
	dir := dmath.Vec2{X: md.X * facingOf(e), Y: md.Y}
	Fire(w, e, cfg.ProjectileMissile, dir, force, true, cfg.Projectile.BlastRadius, element)
}

// playerSpecial runs the special-action marker of the current move.
func playerSpecial(w donburi.World, e *donburi.Entry) {
	c := components.Combatant.Get(e)
	if c.Attack == nil {
		return
	}
	move := c.Attack

	switch {
	case move.Special.IsLoad():
		LoadAmmo(w, e, move.Special.LoadElement())

	case move.Special == cfg.DoubleJump:
		if !UseAmmo(w, e) {
			return
		}
		Launch(e, move.SelfPropel, facingOf(e))
		Fire(w, e, cfg.ProjectileMissile, dmath.Vec2{X: 0, Y: 1}, cfg.Player.DownwardForce, true,
			cfg.Projectile.BlastRadius, components.Ammo.Get(e).LastUsed)

	case move.Special == cfg.DashThrough:
		mv := components.Movement.Get(e)
		mv.PassCharacters = true
		Timers(w).Start(e.Entity(), cfg.TimerDashThrough, cfg.Player.DashIgnore, func() {
			if e.Valid() {
				components.Movement.Get(e).PassCharacters = false
			}
		})
		Launch(e, move.SelfPropel, facingOf(e))
		if UseAmmo(w, e) {
			back := dmath.Vec2{X: -facingOf(e), Y: 0}
			Fire(w, e, cfg.ProjectileMissile, back, cfg.Player.MissileForce, true,
				cfg.Projectile.BlastRadius, components.Ammo.Get(e).LastUsed)
		}
	}
}
