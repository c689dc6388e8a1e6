package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/yohamta/donburi"
)

// Attack enters the attacking state with the combatant's current move. Does
// nothing while attacking or dead, and only logs when no move is set.
func Attack(w donburi.World, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(e)
	if c.Attack == nil {
		logger(w).Debug("attack skipped, no move set", "entity", e.Entity())
		return
	}
	if !c.Active || c.State == cfg.Attacking || c.State == cfg.Dead {
		return
	}

	c.State = cfg.Attacking
	c.InAttack = true
	SetMove(e, false)
	if e.HasComponent(components.Hurtbox) {
		components.Hurtbox.Get(e).Reset()
	}

	anim := animator(e)
	anim.ClearBreakFree()
	anim.PlayAttack(c.Attack.AttackClip, c.Attack.RecoverClip)
	logger(w).Debug("attack", "entity", e.Entity(), "attack", c.Attack.Name)
}

// recoverBase ends an attack or interrupt, switches contact damage off and
// reopens the mobility gate.
func recoverBase(e *donburi.Entry) {
	c := components.Combatant.Get(e)
	if c.State == cfg.Dead {
		return
	}
	c.InAttack = false
	c.ContactDamage = false
	c.State = cfg.Recovering
	SetMove(e, true)
}

// Recover runs the kind-specific recovery of a combatant.
func Recover(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Combatant) {
		return
	}
	switch components.Combatant.Get(e).Kind {
	case components.KindPlayer:
		recoverPlayer(w, e)
	case components.KindEnemy:
		recoverEnemy(w, e)
	default:
		recoverBase(e)
	}
}

// InterruptAction forces the combatant into stagger, or releases it and
// recovers when breakFree is set.
func InterruptAction(w donburi.World, e *donburi.Entry, breakFree bool) {
	if !alive(e) || !e.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(e)
	anim := animator(e)

	if !breakFree {
		c.State = cfg.Staggered
		c.InAttack = true
		// the cut clip never reaches its closing contact marker
		c.ContactDamage = false
		anim.PlayStagger()
		return
	}

	anim.BreakFree()
	if c.State == cfg.Staggered {
		c.State = cfg.Recovering
	}
	Recover(w, e)
}

// HitTarget resolves a landed strike from attacker against target.
func HitTarget(w donburi.World, attacker, target *donburi.Entry) {
	if !canStrike(attacker, target) || !alive(target) {
		return
	}
	c := components.Combatant.Get(attacker)
	element := cfg.Neutral
	if c.Attack != nil {
		element = c.Attack.Element
	}
	if !strike(w, attacker, target, strikeDamage(attacker), element) {
		return
	}
	if c.Attack != nil && (c.Attack.Knockback.X != 0 || c.Attack.Knockback.Y != 0) {
		Launch(target, c.Attack.Knockback, facingOf(attacker))
	}
}

// strikeDamage is the attacker's attack stat scaled by its current move.
func strikeDamage(attacker *donburi.Entry) float64 {
	c := components.Combatant.Get(attacker)
	modifier := cfg.Combat.DefaultModifier
	if c.Attack != nil {
		modifier = c.Attack.DamageModifier
	}
	return c.Stats[components.StatAttack] * modifier
}

// strike applies damage and, if the target survives and has poise, a poise
// hit. Returns whether the target is still standing afterwards.
func strike(w donburi.World, attacker, target *donburi.Entry, amount float64, element cfg.Element) bool {
	if !target.HasComponent(components.Health) {
		return false
	}
	ReceiveDamage(w, target, attacker.Entity(), amount, false, element)
	if !alive(target) {
		return false
	}
	if target.HasComponent(components.Poise) {
		ReceiveHit(w, target)
	}
	return true
}

// canStrike reports whether both entries are valid and the attacker can deal
// damage.
func canStrike(attacker, target *donburi.Entry) bool {
	return attacker != nil && target != nil &&
		attacker.Valid() && target.Valid() &&
		attacker.HasComponent(components.Combatant)
}

func facingOf(e *donburi.Entry) float64 {
	if e.HasComponent(components.Movement) {
		if f := components.Movement.Get(e).Facing; f != 0 {
			return f
		}
	}
	return cfg.DirectionRight
}

// Hit strikes every target inside the combatant's hurtbox. Each target is
// struck at most once per call; a call made while a scan is running does
// nothing.
func Hit(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Hurtbox) {
		return
	}
	hb := components.Hurtbox.Get(e)
	if !hb.BeginScan() {
		return
	}
	defer func() {
		if e.Valid() {
			components.Hurtbox.Get(e).EndScan()
		}
	}()
	// every marker opens a fresh window
	hb.Reset()

	x, y, width, height := hurtboxRect(e, hb.Reach)
	for _, obj := range QueryBox(SpaceOf(w), x, y, width, height, hb.Mask...) {
		target := entryOf(obj)
		if target == nil || target.Entity() == e.Entity() || hb.HitEntities[target.Entity()] {
			continue
		}
		hb.HitEntities[target.Entity()] = true
		HitTarget(w, e, target)
	}
}

// hurtboxRect is the strike volume directly in front of the body.
func hurtboxRect(e *donburi.Entry, reach float64) (x, y, w, h float64) {
	obj := components.Object.Get(e)
	if facingOf(e) < 0 {
		return obj.X - reach, obj.Y, reach, obj.H
	}
	return obj.X + obj.W, obj.Y, reach, obj.H
}

// LaunchSelf applies the current move's self-propel impulse, if it has one.
func LaunchSelf(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(e)
	if c.Attack == nil || (c.Attack.SelfPropel.X == 0 && c.Attack.SelfPropel.Y == 0) {
		return
	}
	Launch(e, c.Attack.SelfPropel, facingOf(e))
}

// TriggerContactDamage flips contact damage on or off. Each time it turns on
// every opposing body may be struck once more.
func TriggerContactDamage(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Combatant) {
		return
	}
	c := components.Combatant.Get(e)
	c.ContactDamage = !c.ContactDamage
	if c.ContactDamage && e.HasComponent(components.Hurtbox) {
		components.Hurtbox.Get(e).Touched = make(map[donburi.Entity]bool)
	}
}

// UpdateContactDamage strikes opposing bodies touched by combatants with
// contact damage on.
func UpdateContactDamage(w donburi.World) {
	components.Combatant.Each(w, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if !c.ContactDamage || !alive(e) || !e.HasComponent(components.Hurtbox) {
			return
		}
		hb := components.Hurtbox.Get(e)
		if hb.Touched == nil {
			hb.Touched = make(map[donburi.Entity]bool)
		}
		obj := components.Object.Get(e)
		for _, other := range QueryBox(SpaceOf(w), obj.X, obj.Y, obj.W, obj.H, hb.Mask...) {
			target := entryOf(other)
			if target == nil || target.Entity() == e.Entity() || hb.Touched[target.Entity()] {
				continue
			}
			hb.Touched[target.Entity()] = true
			HitTarget(w, e, target)
		}
	})
}

// FireProjectile is the animation marker for a missile release.
func FireProjectile(w donburi.World, e *donburi.Entry, force float64) {
	if !alive(e) || !e.HasComponent(components.Combatant) {
		return
	}
	switch components.Combatant.Get(e).Kind {
	case components.KindPlayer:
		firePlayerMissile(w, e, force)
	case components.KindEnemy:
		fireEnemyKnife(w, e, force)
	}
}

// SpecialAction is the animation marker for a move's special effect.
func SpecialAction(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Combatant) {
		return
	}
	if components.Combatant.Get(e).Kind == components.KindPlayer {
		playerSpecial(w, e)
	}
}

// HitMask returns the resolv tags a combatant of kind can strike.
func HitMask(kind components.Kind) []string {
	if kind == components.KindPlayer {
		return []string{tags.ResolvEnemy, tags.ResolvDestructible}
	}
	return []string{tags.ResolvPlayer}
}
