package systems_test

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

var right = dmath.Vec2{X: 1}

func TestFireFromEmptyPoolIsDropped(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)

	assert.NotPanics(t, func() {
		assert.Nil(t, systems.Fire(w, p, cfg.ProjectileMissile, right, 420, true, 0, cfg.Neutral))
	})
}

func TestPoolLendsInOrder(t *testing.T) {
	w := newWorld(t, 2)
	p, _ := spawnPlayer(w, 100, nil)
	pool := poolOf(w)
	first := pool.Queues[cfg.ProjectileMissile][0]

	a := systems.Fire(w, p, cfg.ProjectileMissile, right, 60, true, 0, cfg.Neutral)
	b := systems.Fire(w, p, cfg.ProjectileMissile, right, 60, true, 0, cfg.Neutral)
	require.NotNil(t, a)
	require.NotNil(t, b)
	assert.Equal(t, first, a.Entity())
	assert.NotEqual(t, a.Entity(), b.Entity())
	assert.Nil(t, systems.Fire(w, p, cfg.ProjectileMissile, right, 60, true, 0, cfg.Neutral))
	assert.Equal(t, 2, pool.Size(cfg.ProjectileKnife), "types are pooled separately")
}

func TestProjectileLifecycle(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	components.Movement.Get(p).Facing = cfg.DirectionLeft

	pe := systems.Fire(w, p, cfg.ProjectileMissile, dmath.Vec2{}, 60, true, 0, cfg.Fire)
	require.NotNil(t, pe)
	proj := components.Projectile.Get(pe)
	assert.Equal(t, components.ProjectileFlying, proj.Phase)
	assert.Equal(t, -60.0, proj.VelX, "zero direction fires along facing")
	assert.Equal(t, cfg.Fire, proj.Element)
	obj := components.Object.Get(pe)
	assert.Equal(t, 108-cfg.Projectile.Width/2, obj.X)
	assert.Equal(t, 284-cfg.Projectile.SpawnOffsetY-cfg.Projectile.Height/2, obj.Y)

	stepBodies(w, 30)
	assert.Equal(t, components.ProjectileFlying, proj.Phase)
	assert.InDelta(t, 108-cfg.Projectile.Width/2-30, obj.X, 0.01)

	stepBodies(w, 30)
	assert.Equal(t, components.ProjectileDetonating, proj.Phase)
	assert.Equal(t, 0, poolOf(w).Size(cfg.ProjectileMissile))

	advance(w, cfg.Projectile.DetonateTime)
	assert.Equal(t, components.ProjectilePooled, proj.Phase)
	assert.Nil(t, proj.Owner)
	assert.Equal(t, 1, poolOf(w).Size(cfg.ProjectileMissile))
}

func TestDirectHitStrikesOnce(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	e, _ := spawnEnemy(w, 160, 40)

	pe := systems.Fire(w, p, cfg.ProjectileMissile, right, 420, true, 0, cfg.Neutral)
	require.NotNil(t, pe)
	stepBodies(w, 12)

	assert.Equal(t, 30.0, components.Health.Get(e).Current)
	assert.Equal(t, components.ProjectileDetonating, components.Projectile.Get(pe).Phase)
	assert.Equal(t, cfg.Staggered, components.Combatant.Get(e).State)
}

func TestBlastStrikesEverythingInRadius(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	near, _ := spawnEnemy(w, 160, 40)
	behind, _ := spawnEnemy(w, 185, 40)
	far, _ := spawnEnemy(w, 300, 40)

	require.NotNil(t, systems.Fire(w, p, cfg.ProjectileMissile, right, 420, true, 32, cfg.Neutral))
	stepBodies(w, 12)

	assert.Equal(t, 30.0, components.Health.Get(near).Current, "contact itself deals nothing")
	assert.Equal(t, 30.0, components.Health.Get(behind).Current)
	assert.Equal(t, 40.0, components.Health.Get(far).Current)
}

func TestSolidStopsProjectile(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	factory.CreateWall(w, 150, 200, 16, 100)
	e, _ := spawnEnemy(w, 200, 40)

	pe := systems.Fire(w, p, cfg.ProjectileMissile, right, 420, true, 0, cfg.Neutral)
	stepBodies(w, 20)

	assert.Equal(t, components.ProjectileDetonating, components.Projectile.Get(pe).Phase)
	assert.Equal(t, 40.0, components.Health.Get(e).Current)
}

func TestHostileKnifeHitsPlayer(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	e, _ := spawnEnemy(w, 200, 40)

	systems.FireProjectile(w, e, 0)
	require.Equal(t, 0, poolOf(w).Size(cfg.ProjectileKnife))
	stepBodies(w, 40)

	assert.Equal(t, cfg.Player.Health-cfg.Enemy.Attack, components.Health.Get(p).Current)
}

func TestFriendlyFireIgnored(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	e, _ := spawnEnemy(w, 200, 40)
	other, _ := spawnEnemy(w, 140, 40)

	pe := systems.Fire(w, e, cfg.ProjectileKnife, dmath.Vec2{X: -1}, 240, false, 0, cfg.Neutral)
	stepBodies(w, 40)

	assert.Equal(t, 40.0, components.Health.Get(other).Current)
	assert.Less(t, components.Health.Get(p).Current, cfg.Player.Health)
	assert.NotEqual(t, components.ProjectileFlying, components.Projectile.Get(pe).Phase)
}

func TestDeadOwnerDealsNoDamage(t *testing.T) {
	w := newWorld(t, 1)
	p, _ := spawnPlayer(w, 100, nil)
	e, _ := spawnEnemy(w, 160, 40)

	pe := systems.Fire(w, p, cfg.ProjectileMissile, right, 420, true, 0, cfg.Neutral)
	systems.ReceiveDamage(w, p, 0, 1000, false, cfg.Neutral)
	require.True(t, components.Health.Get(p).Dead)
	stepBodies(w, 12)

	assert.Equal(t, 40.0, components.Health.Get(e).Current)
	assert.Equal(t, components.ProjectileDetonating, components.Projectile.Get(pe).Phase)
}

func TestAmmoMissileNeedsRound(t *testing.T) {
	shot := move("cannon_shot", 1)
	shot.ConsumesAmmo = true
	shot.MissileDirection = right
	w := newWorld(t, 2)
	p, _ := spawnPlayer(w, 100, nil)
	components.Combatant.Get(p).Attack = shot

	systems.FireProjectile(w, p, cfg.Player.MissileForce)
	assert.Equal(t, 2, poolOf(w).Size(cfg.ProjectileMissile))

	systems.LoadAmmo(w, p, cfg.Earth)
	systems.FireProjectile(w, p, cfg.Player.MissileForce)
	require.Equal(t, 1, poolOf(w).Size(cfg.ProjectileMissile))

	var fired *components.ProjectileData
	components.Projectile.Each(w, func(pe *donburi.Entry) {
		if proj := components.Projectile.Get(pe); proj.Phase == components.ProjectileFlying {
			fired = proj
		}
	})
	require.NotNil(t, fired)
	assert.Equal(t, cfg.Earth, fired.Element)
	assert.Equal(t, cfg.Projectile.BlastRadius, fired.Blast)
	assert.True(t, fired.Friendly)
}
