package sim

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// Combatant is a handle on a player or enemy. Its methods are the external
// boundary of the core: decoded input, animation markers and hit
// capabilities.
type Combatant struct {
	sim   *Simulation
	entry *donburi.Entry
}

func (c *Combatant) Entry() *donburi.Entry  { return c.entry }
func (c *Combatant) Entity() donburi.Entity { return c.entry.Entity() }
func (c *Combatant) Valid() bool            { return c.entry.Valid() }

func (c *Combatant) world() donburi.World {
	return c.sim.World
}

// Input

// Move sets the move-axis sample. y grows downward.
func (c *Combatant) Move(x, y float64) {
	if !c.entry.HasComponent(components.Input) {
		return
	}
	components.Input.Get(c.entry).Axis = math.Vec2{X: x, Y: y}
}

// Press queues input edges for the next logic tick.
func (c *Combatant) Press(events ...components.InputEvent) {
	if !c.entry.HasComponent(components.Input) {
		return
	}
	in := components.Input.Get(c.entry)
	in.Events = append(in.Events, events...)
}

// Animation boundary

func (c *Combatant) Hit()                         { systems.Hit(c.world(), c.entry) }
func (c *Combatant) FireProjectile(force float64) { systems.FireProjectile(c.world(), c.entry, force) }
func (c *Combatant) SpecialAction()               { systems.SpecialAction(c.world(), c.entry) }
func (c *Combatant) Recover()                     { systems.Recover(c.world(), c.entry) }
func (c *Combatant) LaunchSelf()                  { systems.LaunchSelf(c.world(), c.entry) }
func (c *Combatant) StartContactDamage()          { systems.TriggerContactDamage(c.world(), c.entry) }

// Action state machine

// Attack starts the current move.
func (c *Combatant) Attack() {
	systems.Attack(c.world(), c.entry)
}

// SetAttack replaces the current move without starting it.
func (c *Combatant) SetAttack(move *cfg.AttackDefinition) {
	components.Combatant.Get(c.entry).Attack = move
}

// HitTarget resolves a landed strike on another combatant or prop.
func (c *Combatant) HitTarget(target *donburi.Entry) {
	systems.HitTarget(c.world(), c.entry, target)
}

func (c *Combatant) InterruptAction(breakFree bool) {
	systems.InterruptAction(c.world(), c.entry, breakFree)
}

// Capabilities

func (c *Combatant) ReceiveDamage(amount float64, magic bool) {
	systems.ReceiveDamage(c.world(), c.entry, 0, amount, magic, cfg.Neutral)
}

func (c *Combatant) ReceiveHit()         { systems.ReceiveHit(c.world(), c.entry) }
func (c *Combatant) BreakOutOfStagger()  { systems.BreakOutOfStagger(c.world(), c.entry) }
func (c *Combatant) Heal(amount float64) { systems.Heal(c.entry, amount) }

// Movement

func (c *Combatant) Jump() bool                { return systems.Jump(c.world(), c.entry) }
func (c *Combatant) FallThroughPlatform() bool { return systems.FallThroughPlatform(c.world(), c.entry) }
func (c *Combatant) SetMove(canMove bool)      { systems.SetMove(c.entry, canMove) }

// Launch applies an impulse, x mirrored by facing.
func (c *Combatant) Launch(x, y float64) {
	systems.Launch(c.entry, math.Vec2{X: x, Y: y}, c.Facing())
}

// Resources

func (c *Combatant) LoadAmmo(element cfg.Element) bool {
	return c.entry.HasComponent(components.Ammo) && systems.LoadAmmo(c.world(), c.entry, element)
}

func (c *Combatant) UseAmmo() bool {
	return c.entry.HasComponent(components.Ammo) && systems.UseAmmo(c.world(), c.entry)
}

func (c *Combatant) CollectTurkey() bool {
	return c.entry.HasComponent(components.Ammo) && systems.CollectTurkey(c.entry)
}

func (c *Combatant) EatTurkey() bool {
	return c.entry.HasComponent(components.Ammo) && systems.EatTurkey(c.entry)
}

// SetComboTable swaps the move list, for example after a hot reload. The
// working string is cleared.
func (c *Combatant) SetComboTable(table cfg.ComboTable) {
	if !c.entry.HasComponent(components.Combo) {
		return
	}
	cb := components.Combo.Get(c.entry)
	cb.Table = table
	cb.Working = ""
	cb.Buffered = false
}

// Inspection

func (c *Combatant) State() cfg.StateID {
	return components.Combatant.Get(c.entry).State
}

func (c *Combatant) CurrentAttack() *cfg.AttackDefinition {
	return components.Combatant.Get(c.entry).Attack
}

func (c *Combatant) InAttack() bool {
	return components.Combatant.Get(c.entry).InAttack
}

func (c *Combatant) ContactDamage() bool {
	return components.Combatant.Get(c.entry).ContactDamage
}

func (c *Combatant) Health() float64 {
	return components.Health.Get(c.entry).Current
}

func (c *Combatant) Dead() bool {
	return components.Health.Get(c.entry).Dead
}

func (c *Combatant) Position() (x, y float64) {
	obj := components.Object.Get(c.entry)
	return obj.X, obj.Y
}

// SetPosition teleports the body and refreshes its collision cells.
func (c *Combatant) SetPosition(x, y float64) {
	obj := components.Object.Get(c.entry)
	obj.X, obj.Y = x, y
	obj.Update()
}

func (c *Combatant) Velocity() (x, y float64) {
	mv := components.Movement.Get(c.entry)
	return mv.VelX, mv.VelY
}

func (c *Combatant) Facing() float64 {
	return components.Movement.Get(c.entry).Facing
}

func (c *Combatant) Grounded() bool {
	return components.Movement.Get(c.entry).Grounded
}

func (c *Combatant) CanMove() bool {
	return components.Movement.Get(c.entry).CanMove
}

// Combo returns the working combo string and whether a press is buffered.
func (c *Combatant) Combo() (working string, buffered bool) {
	if !c.entry.HasComponent(components.Combo) {
		return "", false
	}
	cb := components.Combo.Get(c.entry)
	return cb.Working, cb.Buffered
}

// Ammo returns the loaded rounds, bottom of the stack first.
func (c *Combatant) Ammo() []cfg.Element {
	if !c.entry.HasComponent(components.Ammo) {
		return nil
	}
	a := components.Ammo.Get(c.entry)
	return append([]cfg.Element(nil), a.Slots[:a.Top]...)
}

func (c *Combatant) Turkeys() int {
	if !c.entry.HasComponent(components.Ammo) {
		return 0
	}
	return components.Ammo.Get(c.entry).Turkeys
}

// Target returns the bound pursuit target of an enemy.
func (c *Combatant) Target() *donburi.Entry {
	if !c.entry.HasComponent(components.Enemy) {
		return nil
	}
	return components.Enemy.Get(c.entry).Target
}

// Animator returns the bound animation boundary.
func (c *Combatant) Animator() components.Animator {
	return components.Animation.Get(c.entry).Animator
}
