package components

import (
	"github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// ProjectilePhase is the lifecycle stage of a pooled projectile.
type ProjectilePhase int

const (
	ProjectilePooled ProjectilePhase = iota
	ProjectileFlying
	ProjectileDetonating
)

type ProjectileData struct {
	Type     string
	Owner    *donburi.Entry // weak, checked with Valid before use
	Friendly bool
	Element  config.Element
	Blast    float64
	Phase    ProjectilePhase
	VelX     float64
	VelY     float64
}

var Projectile = donburi.NewComponentType[ProjectileData]()

// ProjectilePoolData holds the idle instances of each projectile type.
type ProjectilePoolData struct {
	Queues map[string][]donburi.Entity
}

// Size returns the number of idle instances of a type.
func (p *ProjectilePoolData) Size(kind string) int {
	return len(p.Queues[kind])
}

var ProjectilePool = donburi.NewComponentType[ProjectilePoolData]()
