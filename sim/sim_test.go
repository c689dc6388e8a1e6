package sim

import (
	"errors"
	"testing"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/leveldata"
	"github.com/automoto/brawlcore/systems"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const (
	frame  = 1.0 / 60.0
	floorY = 300.0
)

type recordingOrchestrator struct {
	waves     int
	gameOvers int
}

func (o *recordingOrchestrator) DecrementWaveCounter() { o.waves++ }
func (o *recordingOrchestrator) GameOver()             { o.gameOvers++ }

func newSim(t *testing.T, orch Orchestrator) *Simulation {
	t.Helper()
	cfg.Reset()
	s := New(Options{Orchestrator: orch, Animator: NewTimeline})
	s.AddWall(0, floorY, 640, 16)
	return s
}

func run(s *Simulation, seconds float64) {
	for t := 0.0; t < seconds-1e-9; t += frame {
		s.Tick(frame)
	}
}

func TestPressAttacksSameTick(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)

	p.Press(components.InputLight)
	s.Tick(frame)

	assert.Equal(t, cfg.Attacking, p.State())
	require.NotNil(t, p.CurrentAttack())
	assert.Equal(t, "jab", p.CurrentAttack().Name)
	assert.False(t, p.CanMove())
}

func TestTimelineDrivesAttack(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)
	enemy, err := s.SpawnEnemy(124, floorY-cfg.Enemy.CollisionHeight, "grunt", false)
	require.NoError(t, err)

	var damage []components.DamageEventData
	s.OnDamaged(func(ev components.DamageEventData) { damage = append(damage, ev) })

	p.Press(components.InputLight)
	run(s, 0.5)

	tl := p.Animator().(*Timeline)
	assert.Equal(t, []string{"launch", "hit", "recover"}, tl.Fired)
	assert.Equal(t, cfg.Enemy.Health-cfg.Player.Attack, enemy.Health())
	require.NotEmpty(t, damage)
	assert.Equal(t, enemy.Entity(), damage[0].Target)
	assert.Equal(t, p.Entity(), damage[0].Attacker)
	assert.Equal(t, cfg.Idle, p.State())
	working, _ := p.Combo()
	assert.Equal(t, "Z", working)
}

func TestBufferedPressChainsThroughTimeline(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)

	p.Press(components.InputLight)
	s.Tick(frame)
	p.Press(components.InputLight)
	s.Tick(frame)
	_, buffered := p.Combo()
	assert.True(t, buffered)

	run(s, RecoverAt)
	assert.Equal(t, cfg.Attacking, p.State())
	assert.Equal(t, "cross", p.CurrentAttack().Name)
}

func TestStaggerCutsClip(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)

	p.Press(components.InputLight)
	s.Tick(frame)
	p.ReceiveHit()
	run(s, RecoverAt)

	tl := p.Animator().(*Timeline)
	assert.Empty(t, tl.Fired)
	assert.Equal(t, "stagger", tl.Clip)
	assert.Equal(t, cfg.Staggered, p.State())

	run(s, cfg.Combat.InterruptDelay)
	assert.Equal(t, cfg.Idle, p.State())
	assert.True(t, p.CanMove())
}

func TestRangedEnemyThrowsKnife(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)
	thrower, err := s.SpawnEnemy(250, floorY-cfg.Enemy.CollisionHeight, "thrower", true)
	require.NoError(t, err)

	run(s, 0.25)
	assert.Same(t, p.Entry(), thrower.Target())
	assert.Equal(t, "knife_throw", thrower.CurrentAttack().Name)
	assert.Equal(t, cfg.Projectile.PoolSize-1, s.PoolSize(cfg.ProjectileKnife))

	run(s, 1.25)
	assert.Equal(t, cfg.Player.Health-cfg.Enemy.Attack, p.Health())
}

func TestOrchestratorNotifications(t *testing.T) {
	orch := &recordingOrchestrator{}
	s := newSim(t, orch)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)
	wave, err := s.SpawnEnemy(400, floorY-cfg.Enemy.CollisionHeight, "grunt", true)
	require.NoError(t, err)
	extra, err := s.SpawnEnemy(500, floorY-cfg.Enemy.CollisionHeight, "grunt", false)
	require.NoError(t, err)
	prop := s.AddDestructible(300, floorY-16, 16, 16, 0)

	var deaths int
	s.OnDied(func(components.DeathData) { deaths++ })

	wave.ReceiveDamage(1000, false)
	extra.ReceiveDamage(1000, false)
	systems.ReceiveDamage(s.World, prop, p.Entity(), 1000, false, cfg.Neutral)
	s.Tick(frame)
	assert.Equal(t, 1, orch.waves)
	assert.Zero(t, orch.gameOvers)

	p.ReceiveDamage(1000, true)
	s.Tick(frame)
	assert.Equal(t, 1, orch.gameOvers)
	assert.Equal(t, 4, deaths)
	assert.True(t, p.Dead())
}

func TestLoadEmbeddedArena(t *testing.T) {
	arena, err := assets.LoadArena("arena")
	require.NoError(t, err)

	cfg.Reset()
	s := New(Options{Animator: NewTimeline})
	p, enemies, err := s.LoadArena(arena)
	require.NoError(t, err)
	assert.Len(t, enemies, len(arena.EnemySpawns))

	x, y := p.Position()
	assert.Equal(t, arena.PlayerSpawns[0].X, x)
	assert.Equal(t, arena.PlayerSpawns[0].Y, y)

	s.Tick(frame)
	s.Tick(frame)
	assert.True(t, p.Grounded())
}

func TestLoadArenaErrors(t *testing.T) {
	s := newSim(t, nil)

	_, _, err := s.LoadArena(&leveldata.Arena{Name: "empty"})
	assert.True(t, errors.Is(err, leveldata.ErrNoSpawn))

	_, _, err = s.LoadArena(&leveldata.Arena{
		Name:         "bad",
		PlayerSpawns: []leveldata.SpawnPoint{{X: 10, Y: 10}},
		EnemySpawns:  []leveldata.EnemySpawn{{X: 50, Y: 10, Type: "dragon"}},
	})
	assert.ErrorContains(t, err, "dragon")

	_, err = s.SpawnEnemy(0, 0, "dragon", false)
	assert.Error(t, err)
}

func TestPhysicsRunsAtFixedStep(t *testing.T) {
	s := newSim(t, nil)
	steps := 0
	s.scheduler.AddPhysics(func(donburi.World, float64) { steps++ })

	s.Tick(0.01)
	assert.Equal(t, 0, steps)
	s.Tick(0.01)
	assert.Equal(t, 1, steps)

	s.Tick(1)
	assert.Equal(t, 1+maxSteps, steps)
	assert.Zero(t, s.accumulator, "backlog is dropped")

	s.Tick(frame)
	assert.Equal(t, 2+maxSteps, steps)
}

func TestTimeScale(t *testing.T) {
	s := newSim(t, nil)
	cfg.C.TimeScale = 0.5

	s.Tick(0.1)
	s.Tick(-1)

	assert.InDelta(t, 0.05, s.Elapsed(), 1e-9)
	assert.Equal(t, 2, s.Ticks())
}

func TestComboTableSwap(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)
	p.Press(components.InputLight)
	s.Tick(frame)

	kick := &cfg.AttackDefinition{Name: "kick", DamageModifier: 1}
	p.SetComboTable(cfg.ComboTable{"X": kick})
	working, _ := p.Combo()
	assert.Empty(t, working)

	run(s, RecoverAt)
	p.Press(components.InputHeavy)
	s.Tick(frame)
	assert.Same(t, kick, p.CurrentAttack())
}

func TestCombatantResources(t *testing.T) {
	s := newSim(t, nil)
	p := s.SpawnPlayer(100, floorY-cfg.Player.CollisionHeight)

	var loaded []components.AmmoEventData
	s.OnAmmoChanged(func(ev components.AmmoEventData) { loaded = append(loaded, ev) })

	require.True(t, p.LoadAmmo(cfg.Fire))
	require.True(t, p.LoadAmmo(cfg.Wind))
	assert.Equal(t, []cfg.Element{cfg.Fire, cfg.Wind}, p.Ammo())
	require.True(t, p.UseAmmo())
	assert.Equal(t, []cfg.Element{cfg.Fire}, p.Ammo())

	s.Tick(frame)
	require.Len(t, loaded, 3)
	assert.Equal(t, cfg.Wind, loaded[2].Element)
	assert.Equal(t, 1, loaded[2].Loaded)

	enemy, err := s.SpawnEnemy(400, floorY-cfg.Enemy.CollisionHeight, "grunt", false)
	require.NoError(t, err)
	assert.False(t, enemy.LoadAmmo(cfg.Fire))
	assert.Nil(t, enemy.Ammo())
}
