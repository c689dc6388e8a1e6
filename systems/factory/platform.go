package factory

import (
	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlatform creates a one-way platform: bodies land on it from above
// and pass through it from below or sideways.
func CreatePlatform(w donburi.World, x, y, width, height float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	addToSpace(w, platform, obj)

	return platform
}

// CreateDestructible creates a breakable prop with health but no poise.
func CreateDestructible(w donburi.World, x, y, width, height, hp float64) *donburi.Entry {
	prop := archetypes.Destructible.Spawn(w)
	if hp <= 0 {
		hp = cfg.Combat.DestructibleHP
	}

	obj := resolv.NewObject(x, y, width, height, tags.ResolvDestructible, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	addToSpace(w, prop, obj)

	components.Health.SetValue(prop, components.HealthData{
		Current: hp,
		Max:     hp,
	})
	return prop
}
