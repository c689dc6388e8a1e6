package systems_test

import (
	"testing"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/yohamta/donburi"
)

const (
	dt     = 1.0 / 60.0
	floorY = 300.0
)

// newWorld returns a world with a runtime, a floor at floorY and a
// projectile pool of each type.
func newWorld(t *testing.T, poolSize int) donburi.World {
	t.Helper()
	cfg.Reset()
	w := donburi.NewWorld()
	factory.CreateRuntime(w, 640, 360, nil)
	factory.CreateWall(w, 0, floorY, 640, 16)
	factory.CreateProjectilePool(w, cfg.ProjectileMissile, poolSize, nil)
	factory.CreateProjectilePool(w, cfg.ProjectileKnife, poolSize, nil)
	return w
}

// spawnPlayer places a player standing on the floor at x.
func spawnPlayer(w donburi.World, x float64, table cfg.ComboTable) (*donburi.Entry, *components.ClipRecorder) {
	rec := components.NewClipRecorder()
	p := factory.CreatePlayer(w, x, floorY-cfg.Player.CollisionHeight, table, rec)
	components.Movement.Get(p).Grounded = true
	return p, rec
}

var dummyMove = &cfg.AttackDefinition{Name: "swipe", DamageModifier: 1, AttackClip: "swipe", RecoverClip: "swipe_recover"}

// spawnEnemy places an enemy standing on the floor at x.
func spawnEnemy(w donburi.World, x float64, health float64) (*donburi.Entry, *components.ClipRecorder) {
	rec := components.NewClipRecorder()
	t := &assets.EnemyType{Name: "dummy", Health: health, Primary: dummyMove}
	e := factory.CreateEnemy(w, x, floorY-cfg.Enemy.CollisionHeight, t, false, rec)
	components.Movement.Get(e).Grounded = true
	return e, rec
}

// stepBodies runs n fixed steps of timers, locomotion and physics.
func stepBodies(w donburi.World, n int) {
	for i := 0; i < n; i++ {
		systems.Timers(w).Advance(dt)
		systems.UpdateLocomotion(w)
		systems.UpdateStates(w)
		systems.UpdateBodies(w, dt)
		systems.UpdateProjectiles(w, dt)
		systems.UpdateContactDamage(w)
		systems.UpdateObjects(w)
	}
}

// advance moves the timer registry forward in fixed steps.
func advance(w donburi.World, seconds float64) {
	for t := 0.0; t < seconds-1e-9; t += dt {
		systems.Timers(w).Advance(dt)
	}
}

func move(name string, modifier float64) *cfg.AttackDefinition {
	return &cfg.AttackDefinition{Name: name, DamageModifier: modifier, AttackClip: name, RecoverClip: name + "_recover"}
}

func poolOf(w donburi.World) *components.ProjectilePoolData {
	entry, _ := components.ProjectilePool.First(w)
	return components.ProjectilePool.Get(entry)
}
