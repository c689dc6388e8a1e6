package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// Kind selects which variant of the action state machine drives a combatant.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	if k == KindPlayer {
		return "player"
	}
	return "enemy"
}

// Stat indexes into Stats.
type Stat int

const (
	StatHealth Stat = iota
	StatAttack
	StatMagic
	StatDefense
	StatSpirit
	statCount
)

type Stats [statCount]float64

// CombatantData is the action state of a player or enemy.
type CombatantData struct {
	Kind   Kind
	Stats  Stats
	State  config.StateID
	Attack *config.AttackDefinition

	// Mid attack or mid interrupt. Attack presses are buffered while set.
	InAttack      bool
	ContactDamage bool
	Active        bool

	// Enemy counted by the wave orchestrator
	Wave bool
}

var Combatant = donburi.NewComponentType[CombatantData]()
