package components

import (
	"log/slog"

	"github.com/automoto/brawlcore/timer"
	"github.com/yohamta/donburi"
)

// RuntimeData is the per-simulation service singleton.
type RuntimeData struct {
	Timers *timer.Registry
	Logger *slog.Logger
}

var Runtime = donburi.NewComponentType[RuntimeData]()
