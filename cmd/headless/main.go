// Command headless runs an arena without a window at a fixed tick rate
// until the player dies, every wave enemy is down, or the duration runs out.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/sim"
)

type orchestrator struct {
	logger *slog.Logger
	waves  int
	cancel context.CancelFunc
}

func (o *orchestrator) DecrementWaveCounter() {
	o.waves--
	o.logger.Info("wave enemy down", "remaining", o.waves)
	if o.waves <= 0 {
		o.cancel()
	}
}

func (o *orchestrator) GameOver() {
	o.logger.Info("game over")
	o.cancel()
}

func main() {
	arenaName := flag.String("arena", "arena", "embedded arena to load")
	configPath := flag.String("config", "", "YAML file overriding the config defaults")
	duration := flag.Duration("for", 30*time.Second, "maximum run time")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Error("config", "err", err)
			os.Exit(1)
		}
	}

	arena, err := assets.LoadArena(*arenaName)
	if err != nil {
		logger.Error("arena", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	orch := &orchestrator{logger: logger, cancel: cancel}
	for _, es := range arena.EnemySpawns {
		if es.Wave {
			orch.waves++
		}
	}

	s := sim.New(sim.Options{
		Logger:       logger,
		Orchestrator: orch,
		Animator:     sim.NewTimeline,
		Width:        arena.MapWidth,
		Height:       arena.MapHeight,
	})
	s.OnDamaged(func(ev components.DamageEventData) {
		logger.Info("damage", "target", ev.Target, "amount", ev.Amount, "health", ev.Health)
	})
	if _, _, err := s.LoadArena(arena); err != nil {
		logger.Error("load", "err", err)
		os.Exit(1)
	}

	sim.NewGameLoop(s, config.C.TickRate).Run(ctx)
	logger.Info("done", "simulated", s.Elapsed(), "ticks", s.Ticks())
}
