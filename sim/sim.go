// Package sim assembles the combat and locomotion systems into a
// simulation driven by a two-phase tick.
package sim

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/leveldata"
	"github.com/automoto/brawlcore/systems"
	"github.com/automoto/brawlcore/systems/factory"
	"github.com/automoto/brawlcore/timer"
	"github.com/yohamta/donburi"
)

// maxSteps bounds the physics catch-up after a long frame.
const maxSteps = 8

// Orchestrator receives the notifications the core sends to scene
// orchestration. Calls are fire and forget.
type Orchestrator interface {
	DecrementWaveCounter()
	GameOver()
}

// AnimatorFunc builds the animation boundary of a newly spawned combatant
// or projectile. It may return nil for none.
type AnimatorFunc func(c *Combatant) components.Animator

// Advancer is implemented by animators that need simulation time.
type Advancer interface {
	Advance(dt float64)
}

type Options struct {
	Logger       *slog.Logger
	Orchestrator Orchestrator
	Tables       *assets.Tables // nil loads the embedded tables
	Animator     AnimatorFunc

	// Zero values use the config defaults
	Width, Height int
	FixedStep     float64
	PoolSize      int
}

// Simulation owns one world and everything needed to tick it.
type Simulation struct {
	World  donburi.World
	Tables *assets.Tables

	opts      Options
	logger    *slog.Logger
	scheduler *Scheduler
	timers    *timer.Registry
	advancers []Advancer

	step        float64
	accumulator float64
	elapsed     float64
	ticks       int
}

// New builds a simulation with an empty arena, a fresh timer registry and a
// filled projectile pool.
func New(opts Options) *Simulation {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Tables == nil {
		opts.Tables = assets.MustLoadTables()
	}
	if opts.Width == 0 {
		opts.Width = cfg.C.Width
	}
	if opts.Height == 0 {
		opts.Height = cfg.C.Height
	}
	if opts.FixedStep <= 0 {
		opts.FixedStep = cfg.Physics.FixedStep
	}
	if opts.PoolSize == 0 {
		opts.PoolSize = cfg.Projectile.PoolSize
	}

	s := &Simulation{
		World:     donburi.NewWorld(),
		Tables:    opts.Tables,
		opts:      opts,
		logger:    opts.Logger,
		scheduler: NewScheduler(),
		step:      opts.FixedStep,
	}

	rt := factory.CreateRuntime(s.World, opts.Width, opts.Height, opts.Logger)
	s.timers = components.Runtime.Get(rt).Timers

	for _, kind := range []string{cfg.ProjectileMissile, cfg.ProjectileKnife} {
		factory.CreateProjectilePool(s.World, kind, opts.PoolSize, s.projectileAnimator)
	}

	// Input-driven transitions resolve before movement integrates
	s.scheduler.AddLogic(systems.UpdateInput)
	s.scheduler.AddLogic(systems.UpdateEnemies)
	s.scheduler.AddLogic(systems.UpdateLocomotion)
	s.scheduler.AddLogic(systems.UpdateStates)

	s.scheduler.AddPhysics(systems.UpdateBodies)
	s.scheduler.AddPhysics(systems.UpdateProjectiles)
	s.scheduler.AddPhysics(func(w donburi.World, _ float64) { systems.UpdateContactDamage(w) })
	s.scheduler.AddPhysics(func(w donburi.World, _ float64) { systems.UpdateObjects(w) })

	components.Died.Subscribe(s.World, s.onDied)
	return s
}

func (s *Simulation) projectileAnimator() components.Animator {
	if s.opts.Animator == nil {
		return nil
	}
	return s.track(s.opts.Animator(nil))
}

func (s *Simulation) track(a components.Animator) components.Animator {
	if adv, ok := a.(Advancer); ok {
		s.advancers = append(s.advancers, adv)
	}
	return a
}

// Tick advances the simulation by dt seconds: timers first, then the logic
// systems, then as many fixed physics steps as have accumulated, and finally
// the queued events are delivered.
func (s *Simulation) Tick(dt float64) {
	if dt < 0 {
		dt = 0
	}
	dt *= cfg.C.TimeScale
	s.elapsed += dt
	s.ticks++

	s.timers.Advance(dt)
	s.scheduler.UpdateLogic(s.World)
	for _, a := range s.advancers {
		a.Advance(dt)
	}

	s.accumulator += dt
	steps := 0
	for s.accumulator >= s.step && steps < maxSteps {
		s.scheduler.UpdatePhysics(s.World, s.step)
		s.accumulator -= s.step
		steps++
	}
	if steps == maxSteps && s.accumulator >= s.step {
		s.logger.Debug("physics behind, dropping time", "seconds", s.accumulator)
		s.accumulator = 0
	}

	s.processEvents()
}

func (s *Simulation) processEvents() {
	components.Damaged.ProcessEvents(s.World)
	components.AmmoChanged.ProcessEvents(s.World)
	components.Detected.ProcessEvents(s.World)
	components.Died.ProcessEvents(s.World)
}

func (s *Simulation) onDied(w donburi.World, ev components.DeathData) {
	s.logger.Info("entity died", "entity", ev.Entity, "kind", ev.Kind, "prop", ev.Prop)
	if ev.Prop || s.opts.Orchestrator == nil {
		return
	}
	switch ev.Kind {
	case components.KindPlayer:
		s.opts.Orchestrator.GameOver()
	case components.KindEnemy:
		if ev.Wave {
			s.opts.Orchestrator.DecrementWaveCounter()
		}
	}
}

// OnDamaged subscribes fn to every health loss.
func (s *Simulation) OnDamaged(fn func(components.DamageEventData)) {
	components.Damaged.Subscribe(s.World, func(_ donburi.World, ev components.DamageEventData) { fn(ev) })
}

// OnAmmoChanged subscribes fn to ammo loads and uses.
func (s *Simulation) OnAmmoChanged(fn func(components.AmmoEventData)) {
	components.AmmoChanged.Subscribe(s.World, func(_ donburi.World, ev components.AmmoEventData) { fn(ev) })
}

// OnDetected subscribes fn to enemies binding a target.
func (s *Simulation) OnDetected(fn func(components.DetectEventData)) {
	components.Detected.Subscribe(s.World, func(_ donburi.World, ev components.DetectEventData) { fn(ev) })
}

// OnDied subscribes fn to deaths.
func (s *Simulation) OnDied(fn func(components.DeathData)) {
	components.Died.Subscribe(s.World, func(_ donburi.World, ev components.DeathData) { fn(ev) })
}

// Timers exposes the timer registry, mostly for inspection.
func (s *Simulation) Timers() *timer.Registry {
	return s.timers
}

// Elapsed is the simulated time in seconds.
func (s *Simulation) Elapsed() float64 {
	return s.elapsed
}

// Ticks is the number of Tick calls so far.
func (s *Simulation) Ticks() int {
	return s.ticks
}

// PoolSize returns the idle projectiles of a type.
func (s *Simulation) PoolSize(kind string) int {
	entry, ok := components.ProjectilePool.First(s.World)
	if !ok {
		return 0
	}
	return components.ProjectilePool.Get(entry).Size(kind)
}

// AddWall adds solid terrain.
func (s *Simulation) AddWall(x, y, w, h float64) {
	factory.CreateWall(s.World, x, y, w, h)
}

// AddPlatform adds a one-way platform.
func (s *Simulation) AddPlatform(x, y, w, h float64) {
	factory.CreatePlatform(s.World, x, y, w, h)
}

// AddDestructible adds a breakable prop. hp <= 0 uses the configured
// default.
func (s *Simulation) AddDestructible(x, y, w, h, hp float64) *donburi.Entry {
	return factory.CreateDestructible(s.World, x, y, w, h, hp)
}

// SpawnPlayer spawns a player with the loaded combo table.
func (s *Simulation) SpawnPlayer(x, y float64) *Combatant {
	e := factory.CreatePlayer(s.World, x, y, s.Tables.Player, nil)
	return s.bind(e)
}

// SpawnEnemy spawns an enemy of an authored type.
func (s *Simulation) SpawnEnemy(x, y float64, typeName string, wave bool) (*Combatant, error) {
	t, ok := s.Tables.Enemies[typeName]
	if !ok {
		return nil, fmt.Errorf("sim: unknown enemy type %q", typeName)
	}
	e := factory.CreateEnemy(s.World, x, y, t, wave, nil)
	return s.bind(e), nil
}

// bind wraps a spawned entry and attaches its animator.
func (s *Simulation) bind(e *donburi.Entry) *Combatant {
	c := &Combatant{sim: s, entry: e}
	if s.opts.Animator != nil {
		if a := s.track(s.opts.Animator(c)); a != nil {
			components.Animation.Get(e).Animator = a
		}
	}
	return c
}

// LoadArena builds an arena's terrain and spawns its combatants. Returns
// the player.
func (s *Simulation) LoadArena(arena *leveldata.Arena) (*Combatant, []*Combatant, error) {
	if len(arena.PlayerSpawns) == 0 {
		return nil, nil, fmt.Errorf("sim: arena %s: %w", arena.Name, leveldata.ErrNoSpawn)
	}
	factory.CreateArena(s.World, arena)

	spawn := arena.PlayerSpawns[0]
	player := s.SpawnPlayer(spawn.X, spawn.Y)

	var enemies []*Combatant
	for _, es := range arena.EnemySpawns {
		enemy, err := s.SpawnEnemy(es.X, es.Y, es.Type, es.Wave)
		if err != nil {
			return nil, nil, fmt.Errorf("sim: arena %s: %w", arena.Name, err)
		}
		enemies = append(enemies, enemy)
	}
	s.logger.Info("arena loaded", "arena", arena.Name, "enemies", len(enemies))
	return player, enemies, nil
}
