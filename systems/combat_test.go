package systems_test

import (
	"testing"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/automoto/brawlcore/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestAttackWithoutMoveIsNoop(t *testing.T) {
	w := newWorld(t, 0)
	p, rec := spawnPlayer(w, 100, nil)
	e, erec := spawnEnemy(w, 300, 40)

	for _, tc := range []struct {
		entry *donburi.Entry
		rec   *components.ClipRecorder
	}{{p, rec}, {e, erec}} {
		systems.Attack(w, tc.entry)
		c := components.Combatant.Get(tc.entry)
		assert.Equal(t, cfg.Idle, c.State)
		assert.False(t, c.InAttack)
		assert.Empty(t, tc.rec.Calls)
		assert.True(t, components.Movement.Get(tc.entry).CanMove)
	}
}

func TestAttackEntersAttacking(t *testing.T) {
	w := newWorld(t, 0)
	p, rec := spawnPlayer(w, 100, nil)
	rec.BreakFlag = true
	components.Combatant.Get(p).Attack = move("jab", 1)

	systems.Attack(w, p)

	c := components.Combatant.Get(p)
	assert.Equal(t, cfg.Attacking, c.State)
	assert.True(t, c.InAttack)
	assert.False(t, components.Movement.Get(p).CanMove)
	assert.Equal(t, []string{"attack:jab"}, rec.Calls)
	assert.Equal(t, "jab_recover", rec.Recover)
	assert.False(t, rec.BreakFlag, "pending break-free is cleared")

	// no restart while attacking
	systems.Attack(w, p)
	assert.Len(t, rec.Calls, 1)
}

func TestStrikeKillsAndSecondHitIsNoop(t *testing.T) {
	tests := []struct {
		name   string
		target func(w donburi.World) *donburi.Entry
	}{
		{"destructible", func(w donburi.World) *donburi.Entry {
			return factory.CreateDestructible(w, 130, floorY-16, 16, 16, 15)
		}},
		{"enemy", func(w donburi.World) *donburi.Entry {
			e, _ := spawnEnemy(w, 130, 15)
			return e
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newWorld(t, 0)
			attacker, _ := spawnPlayer(w, 100, nil)
			c := components.Combatant.Get(attacker)
			c.Stats[components.StatAttack] = 10
			c.Attack = move("heavy", 2)
			target := tt.target(w)

			systems.HitTarget(w, attacker, target)
			hp := components.Health.Get(target)
			assert.Equal(t, -5.0, hp.Current)
			assert.True(t, hp.Dead)

			systems.HitTarget(w, attacker, target)
			assert.Equal(t, -5.0, hp.Current)
		})
	}
}

func TestDeathDeactivatesAndPublishes(t *testing.T) {
	w := newWorld(t, 0)
	attacker, _ := spawnPlayer(w, 100, nil)
	components.Combatant.Get(attacker).Attack = move("heavy", 10)
	e, _ := spawnEnemy(w, 130, 15)
	components.Combatant.Get(e).Wave = true

	var deaths []components.DeathData
	components.Died.Subscribe(w, func(_ donburi.World, ev components.DeathData) {
		deaths = append(deaths, ev)
	})

	systems.ReceiveHit(w, e)
	require.True(t, systems.Timers(w).Active(e.Entity(), cfg.TimerInterrupt))

	systems.HitTarget(w, attacker, e)
	components.Died.ProcessEvents(w)

	c := components.Combatant.Get(e)
	assert.Equal(t, cfg.Dead, c.State)
	assert.False(t, c.Active)
	obj := components.Object.Get(e)
	assert.Empty(t, systems.QueryBox(systems.SpaceOf(w), obj.X, obj.Y, obj.W, obj.H, tags.ResolvEnemy), "body leaves the space")
	assert.False(t, systems.Timers(w).Active(e.Entity(), cfg.TimerInterrupt))
	require.Len(t, deaths, 1)
	assert.Equal(t, components.KindEnemy, deaths[0].Kind)
	assert.True(t, deaths[0].Wave)

	// stale markers are ignored
	systems.Recover(w, e)
	systems.Attack(w, e)
	assert.Equal(t, cfg.Dead, c.State)
}

func TestHitTargetWithoutHealthIsSkipped(t *testing.T) {
	w := newWorld(t, 0)
	attacker, _ := spawnPlayer(w, 100, nil)
	components.Combatant.Get(attacker).Attack = move("jab", 1)
	wall := factory.CreateWall(w, 200, 0, 16, 16)

	assert.NotPanics(t, func() { systems.HitTarget(w, attacker, wall) })
}

func TestMercyWindowBlocksDamage(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)

	systems.ReceiveDamage(w, p, 0, 10, false, cfg.Neutral)
	systems.ReceiveDamage(w, p, 0, 10, false, cfg.Neutral)
	assert.Equal(t, 90.0, components.Health.Get(p).Current)

	advance(w, cfg.Player.MercyTime)
	systems.ReceiveDamage(w, p, 0, 10, false, cfg.Neutral)
	assert.Equal(t, 80.0, components.Health.Get(p).Current)
}

func TestHitStrikesOncePerMarker(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)
	components.Combatant.Get(p).Attack = move("jab", 1)
	near, _ := spawnEnemy(w, 120, 40)
	far, _ := spawnEnemy(w, 200, 40)

	// a hit reaction that calls back into the attacker's scan
	nested := 0
	components.Poise.Get(near).Subscribe(func(bool) {
		nested++
		systems.Hit(w, p)
	})

	systems.Attack(w, p)
	systems.Hit(w, p)
	assert.Equal(t, 30.0, components.Health.Get(near).Current, "nested scan strikes nothing")
	assert.Equal(t, 1, nested)

	// later markers of the same clip land again
	systems.Hit(w, p)
	systems.Hit(w, p)
	assert.Equal(t, 10.0, components.Health.Get(near).Current)
	assert.Equal(t, 40.0, components.Health.Get(far).Current)
}

func TestHitRespectsFacing(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)
	components.Combatant.Get(p).Attack = move("jab", 1)
	behind, _ := spawnEnemy(w, 80, 40)

	systems.Attack(w, p)
	systems.Hit(w, p)
	assert.Equal(t, 40.0, components.Health.Get(behind).Current)

	components.Movement.Get(p).Facing = cfg.DirectionLeft
	systems.Recover(w, p)
	systems.Attack(w, p)
	systems.Hit(w, p)
	assert.Equal(t, 30.0, components.Health.Get(behind).Current)
}

func TestKnockbackLaunchesTarget(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)
	m := move("launcher", 1)
	m.Knockback.X, m.Knockback.Y = 100, -200
	components.Combatant.Get(p).Attack = m
	e, _ := spawnEnemy(w, 120, 40)

	systems.HitTarget(w, p, e)

	mv := components.Movement.Get(e)
	assert.Equal(t, 100.0, mv.VelX)
	assert.Equal(t, -200.0, mv.VelY)
	assert.True(t, mv.OverrideGravity)
}

func TestInterruptAction(t *testing.T) {
	w := newWorld(t, 0)
	e, rec := spawnEnemy(w, 300, 40)
	components.Combatant.Get(e).Attack = dummyMove
	systems.Attack(w, e)

	systems.InterruptAction(w, e, false)
	c := components.Combatant.Get(e)
	assert.Equal(t, cfg.Staggered, c.State)
	assert.True(t, c.InAttack)
	assert.Equal(t, "stagger", rec.Clip)

	systems.InterruptAction(w, e, true)
	assert.Equal(t, cfg.Recovering, c.State)
	assert.False(t, c.InAttack)
	assert.True(t, rec.BreakFlag)
	assert.True(t, components.Movement.Get(e).CanMove)
	assert.True(t, systems.Timers(w).Active(e.Entity(), cfg.TimerAttackCooldown))
}

func TestLaunchSelf(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)

	systems.LaunchSelf(w, p)
	assert.False(t, components.Movement.Get(p).OverrideGravity, "no move, no launch")

	m := move("lunge", 1)
	m.SelfPropel.X = 220
	components.Combatant.Get(p).Attack = m
	components.Movement.Get(p).Facing = cfg.DirectionLeft
	systems.LaunchSelf(w, p)
	assert.Equal(t, -220.0, components.Movement.Get(p).VelX)
}

func TestStaggerEndsEnemyContactDamage(t *testing.T) {
	w := newWorld(t, 0)
	e, _ := spawnEnemy(w, 300, 40)
	c := components.Combatant.Get(e)
	c.Attack = dummyMove

	systems.Attack(w, e)
	systems.TriggerContactDamage(w, e)
	require.True(t, c.ContactDamage)

	// the clip is cut before its closing contact marker
	systems.ReceiveHit(w, e)
	assert.Equal(t, cfg.Staggered, c.State)
	assert.False(t, c.ContactDamage)

	advance(w, cfg.Combat.InterruptDelay)
	assert.Equal(t, cfg.Recovering, c.State)
	assert.False(t, c.ContactDamage)

	// the next clip's opening marker switches it on again
	systems.Attack(w, e)
	systems.TriggerContactDamage(w, e)
	assert.True(t, c.ContactDamage)
}

func TestContactDamageFlipFlop(t *testing.T) {
	w := newWorld(t, 0)
	p, _ := spawnPlayer(w, 100, nil)
	e, _ := spawnEnemy(w, 110, 40)

	systems.TriggerContactDamage(w, p)
	assert.True(t, components.Combatant.Get(p).ContactDamage)

	systems.UpdateContactDamage(w)
	systems.UpdateContactDamage(w)
	assert.Equal(t, 30.0, components.Health.Get(e).Current, "each body is touched once")

	systems.TriggerContactDamage(w, p)
	assert.False(t, components.Combatant.Get(p).ContactDamage)
	systems.UpdateContactDamage(w)
	assert.Equal(t, 30.0, components.Health.Get(e).Current)
}
