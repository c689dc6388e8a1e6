package config

import "github.com/yohamta/donburi/features/math"

// AttackDefinition describes one move. Definitions are authored once and
// shared read-only by every entity that references them.
type AttackDefinition struct {
	Name           string
	DamageModifier float64
	Element        Element
	AttackClip     string
	RecoverClip    string
	SelfPropel     math.Vec2 // velocity change applied by LaunchSelf, x mirrored by facing
	Knockback      math.Vec2 // velocity change applied to a struck target, x mirrored by the attacker's facing

	// Player moves
	Combo            string
	EndOfChain       bool
	Special          SpecialTag
	MissileDirection math.Vec2
	ConsumesAmmo     bool

	// Enemy moves
	Cooldown float64
}

// CooldownOrDefault is the delay before an enemy may attack again after
// recovering from this move.
func (a *AttackDefinition) CooldownOrDefault() float64 {
	if a == nil || a.Cooldown <= 0 {
		return Enemy.AttackDelay
	}
	return a.Cooldown
}

// ComboTable maps an exact input string to a player move.
type ComboTable map[string]*AttackDefinition

// Has reports whether key is an exact entry of the table.
func (t ComboTable) Has(key string) bool {
	_, ok := t[key]
	return ok
}

// Combo symbols
const (
	SymbolUp    = '^'
	SymbolDown  = 'V'
	SymbolLeft  = '<'
	SymbolRight = '>'
	SymbolDash  = 'D'
	SymbolJump  = 'J'
	SymbolLight = 'Z'
	SymbolHeavy = 'X'
)
