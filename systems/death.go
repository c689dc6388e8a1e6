package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// ReceiveDamage lowers the entity's health. A player inside its mercy window
// ignores the hit. Health at or below zero kills the entity.
func ReceiveDamage(w donburi.World, e *donburi.Entry, attacker donburi.Entity, amount float64, magic bool, element cfg.Element) {
	if !alive(e) || !e.HasComponent(components.Health) {
		return
	}
	timers := Timers(w)
	if timers.Active(e.Entity(), cfg.TimerMercy) {
		return
	}

	hp := components.Health.Get(e)
	hp.Current -= amount
	if hp.MercyTime > 0 {
		timers.Start(e.Entity(), cfg.TimerMercy, hp.MercyTime, nil)
	}

	components.Damaged.Publish(w, components.DamageEventData{
		Target:   e.Entity(),
		Attacker: attacker,
		Amount:   amount,
		Magic:    magic,
		Element:  element,
		Health:   hp.Current,
	})

	if hp.Current <= 0 {
		kill(w, e)
	}
}

// Heal restores health. Amounts below 1 are a fraction of max health.
func Heal(e *donburi.Entry, amount float64) {
	if !alive(e) || !e.HasComponent(components.Health) || amount <= 0 {
		return
	}
	hp := components.Health.Get(e)
	if amount < 1 {
		amount *= hp.Max
	}
	hp.Current += amount
	if hp.Current > hp.Max {
		hp.Current = hp.Max
	}
}

// kill deactivates an entity: its timers are cancelled, its body leaves the
// collision space and Died is published. The entity itself stays in the
// world.
func kill(w donburi.World, e *donburi.Entry) {
	hp := components.Health.Get(e)
	hp.Dead = true

	Timers(w).CancelOwner(e.Entity())

	death := components.DeathData{Entity: e.Entity(), Prop: true}
	if e.HasComponent(components.Combatant) {
		c := components.Combatant.Get(e)
		c.State = cfg.Dead
		c.InAttack = false
		c.ContactDamage = false
		c.Active = false
		death.Kind = c.Kind
		death.Wave = c.Wave
		death.Prop = false
	}
	if e.HasComponent(components.Movement) {
		mv := components.Movement.Get(e)
		mv.VelX, mv.VelY = 0, 0
		mv.CanMove = false
	}
	if e.HasComponent(components.Object) {
		if space := SpaceOf(w); space != nil {
			space.Remove(components.Object.Get(e).Object)
		}
	}

	logger(w).Debug("died", "entity", e.Entity(), "prop", death.Prop)
	components.Died.Publish(w, death)
}
