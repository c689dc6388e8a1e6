package factory

import (
	"log/slog"

	"github.com/automoto/brawlcore/archetypes"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateRuntime spawns the service singleton of a world: collision space,
// timer registry, logger and the empty projectile pool.
func CreateRuntime(w donburi.World, width, height int, logger *slog.Logger) *donburi.Entry {
	rt := archetypes.Runtime.Spawn(w)

	cell := cfg.Physics.SpaceCellSize
	components.Space.Set(rt, resolv.NewSpace(width, height, cell, cell))
	components.Runtime.SetValue(rt, components.RuntimeData{
		Timers: timer.NewRegistry(),
		Logger: logger,
	})
	components.ProjectilePool.SetValue(rt, components.ProjectilePoolData{
		Queues: make(map[string][]donburi.Entity),
	})
	return rt
}

// addToSpace links obj to its entry and adds it to the world's space.
func addToSpace(w donburi.World, e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e // Link for O(1) lookup
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
