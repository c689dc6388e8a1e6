package factory

import (
	"github.com/automoto/brawlcore/leveldata"
	"github.com/yohamta/donburi"
)

// CreateArena builds the static terrain and props of an arena. Combatants
// are spawned separately.
func CreateArena(w donburi.World, arena *leveldata.Arena) {
	for _, r := range arena.SolidRects {
		CreateWall(w, r.X, r.Y, r.W, r.H)
	}
	for _, r := range arena.PlatformRects {
		CreatePlatform(w, r.X, r.Y, r.W, r.H)
	}
	for _, d := range arena.Destructibles {
		CreateDestructible(w, d.X, d.Y, d.W, d.H, d.HP)
	}
}
