package main

import (
	"fmt"
	"image/color"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/automoto/brawlcore/sim"
	"github.com/automoto/brawlcore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorSolid        = color.RGBA{100, 100, 100, 255}
	colorPlatform     = color.RGBA{160, 120, 60, 255}
	colorPlayer       = color.RGBA{0, 0, 255, 255}
	colorEnemy        = color.RGBA{255, 0, 0, 255}
	colorProjectile   = color.RGBA{255, 220, 0, 255}
	colorDestructible = color.RGBA{0, 200, 120, 255}
	colorDefault      = color.RGBA{0, 255, 255, 255}
)

// drawObjects outlines every collision body in the space.
func drawObjects(screen *ebiten.Image, s *sim.Simulation, outline bool) {
	spaceEntry, ok := components.Space.First(s.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := colorDefault
		switch {
		case obj.HasTags(tags.ResolvDestructible):
			c = colorDestructible
		case obj.HasTags(tags.ResolvSolid):
			c = colorSolid
		case obj.HasTags(tags.ResolvPlatform):
			c = colorPlatform
		case obj.HasTags(tags.ResolvPlayer):
			c = colorPlayer
		case obj.HasTags(tags.ResolvEnemy):
			c = colorEnemy
		case obj.HasTags(tags.ResolvProjectile):
			c = colorProjectile
		}

		x, y := float32(obj.X), float32(obj.Y)
		w, h := float32(obj.W), float32(obj.H)
		if !outline {
			vector.FillRect(screen, x, y, w, h, c, false)
			continue
		}
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	}
}

// drawHUD prints the player's combat state.
func drawHUD(screen *ebiten.Image, s *sim.Simulation, player *sim.Combatant) {
	if player == nil {
		return
	}
	working, buffered := player.Combo()
	move := "-"
	if a := player.CurrentAttack(); a != nil {
		move = a.Name
	}
	text := fmt.Sprintf("hp %.0f  state %s  move %s\ncombo %q buffered %v\nammo %v  turkeys %d  pool %d",
		player.Health(), player.State(), move, working, buffered,
		player.Ammo(), player.Turkeys(), s.PoolSize(cfg.ProjectileMissile))
	ebitenutil.DebugPrintAt(screen, text, 8, 8)

	timers := s.Timers()
	y := 56
	for _, purpose := range hudTimers {
		if !timers.Active(player.Entity(), purpose) {
			continue
		}
		drawTimerBar(screen, purpose, timers.Progress(player.Entity(), purpose), 8, y)
		y += 14
	}
}

// hudTimers are the player timers shown as progress bars.
var hudTimers = []string{
	cfg.TimerComboDrop,
	cfg.TimerMercy,
	cfg.TimerStoic,
	cfg.TimerInterrupt,
	cfg.TimerDropThrough,
	cfg.TimerDashThrough,
}

// drawTimerBar labels a bar that fills as the timer runs out.
func drawTimerBar(screen *ebiten.Image, label string, progress float64, x, y int) {
	const width = 80
	ebitenutil.DebugPrintAt(screen, label, x, y)
	bx, by := float32(x+110), float32(y+4)
	vector.FillRect(screen, bx, by, width, 6, colorSolid, false)
	vector.FillRect(screen, bx, by, float32(progress*width), 6, colorProjectile, false)
}
