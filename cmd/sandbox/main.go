// Command sandbox runs the combat core in a debug window: keyboard and
// gamepad input are decoded into semantic events and every collision body
// is drawn as a rectangle.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/automoto/brawlcore/assets"
	"github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

// orchestrator logs the notifications a scene manager would act on.
type orchestrator struct {
	logger *slog.Logger
	waves  int
	over   bool
}

func (o *orchestrator) DecrementWaveCounter() {
	o.waves--
	o.logger.Info("wave enemy down", "remaining", o.waves)
}

func (o *orchestrator) GameOver() {
	o.over = true
	o.logger.Info("game over")
}

type Game struct {
	logger  *slog.Logger
	arena   string
	tables  *assets.Tables
	watcher *assets.Watcher

	sim    *sim.Simulation
	player *sim.Combatant
	orch   *orchestrator
	input  inputState
	debug  bool
}

func NewGame(logger *slog.Logger, arena string, tables *assets.Tables, watcher *assets.Watcher) (*Game, error) {
	g := &Game{
		logger:  logger,
		arena:   arena,
		tables:  tables,
		watcher: watcher,
		debug:   true,
	}
	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart rebuilds the simulation from the arena.
func (g *Game) restart() error {
	arena, err := assets.LoadArena(g.arena)
	if err != nil {
		return err
	}

	g.orch = &orchestrator{logger: g.logger}
	for _, es := range arena.EnemySpawns {
		if es.Wave {
			g.orch.waves++
		}
	}

	g.sim = sim.New(sim.Options{
		Logger:       g.logger,
		Orchestrator: g.orch,
		Tables:       g.tables,
		Animator:     sim.NewTimeline,
		Width:        arena.MapWidth,
		Height:       arena.MapHeight,
	})
	player, _, err := g.sim.LoadArena(arena)
	if err != nil {
		return err
	}
	g.player = player
	return nil
}

func (g *Game) Update() error {
	g.reloadTables()

	if restartPressed() || g.orch.over {
		if err := g.restart(); err != nil {
			return err
		}
	}
	if debugToggled() {
		g.debug = !g.debug
	}

	g.input.poll()
	g.player.Move(g.input.axis())
	g.player.Press(g.input.events()...)

	g.sim.Tick(1 / float64(ebiten.TPS()))
	return nil
}

// reloadTables swaps in edited attack tables without restarting.
func (g *Game) reloadTables() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			tables, err := assets.LoadTables()
			if err != nil {
				g.logger.Warn("reload failed", "file", name, "err", err)
				continue
			}
			g.tables = tables
			g.sim.Tables = tables
			g.player.SetComboTable(tables.Player)
			g.logger.Info("tables reloaded", "file", name, "moves", len(tables.Player))
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.logger.Warn("watch error", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawObjects(screen, g.sim, g.debug)
	drawHUD(screen, g.sim, g.player)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	arena := flag.String("arena", "arena", "embedded arena to load")
	configPath := flag.String("config", "", "YAML file overriding the config defaults")
	watch := flag.Bool("watch", false, "hot reload attack tables edited under ./assets")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Error("config", "err", err)
			os.Exit(1)
		}
	}

	tables, err := assets.LoadTables()
	if err != nil {
		logger.Error("tables", "err", err)
		os.Exit(1)
	}

	var watcher *assets.Watcher
	if *watch {
		watcher, err = assets.NewWatcher(assets.DiskPath("attacks"))
		if err != nil {
			logger.Warn("watcher disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	game, err := NewGame(logger, *arena, tables, watcher)
	if err != nil {
		logger.Error("start", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("brawlcore sandbox")
	ebiten.SetTPS(config.C.TickRate)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}
