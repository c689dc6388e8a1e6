package sim

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// GameLoop ticks a simulation in real time at a fixed rate.
type GameLoop struct {
	sim      *Simulation
	tickRate int
	logger   *slog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		logger:   sim.logger,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until ctx is done or Stop is called.
func (g *GameLoop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.logger.Info("game loop started", "tick_rate", g.tickRate)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			g.logger.Info("game loop stopped", "reason", ctx.Err())
			return
		case <-g.stopChan:
			g.logger.Info("game loop stopped")
			return
		case now := <-ticker.C:
			g.sim.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() {
		close(g.stopChan)
	})
}
