package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName string
	Primary  *config.AttackDefinition
	Ranged   *config.AttackDefinition // optional

	// AI state management
	Target          *donburi.Entry
	DetectRange     float64
	AttackRange     float64 // measured from the body's edge
	BodySize        float64
	BubbleDistance  float64
	HeightThreshold float64
	ClimbCooldown   float64
}

var Enemy = donburi.NewComponentType[EnemyData]()
