package systems

import (
	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
)

// ReceiveHit counts a poise hit. Reaching the threshold breaks the entity
// out of stagger and opens the stoic window; otherwise, outside both windows,
// the entity is interrupted and auto-recovers after the interrupt delay.
func ReceiveHit(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Poise) {
		return
	}
	timers := Timers(w)
	id := e.Entity()
	if timers.Active(id, cfg.TimerStoic) {
		return
	}

	poise := components.Poise.Get(e)
	if poise.Threshold > 0 {
		poise.Hits++
		if poise.Hits >= poise.Threshold {
			BreakOutOfStagger(w, e)
			poise.Hits = 0
			timers.Start(id, cfg.TimerStoic, poise.StoicTime, nil)
			logger(w).Debug("stoic", "entity", id)
		}
	}

	if timers.Active(id, cfg.TimerStoic) || timers.Active(id, cfg.TimerInterrupt) {
		return
	}
	signalInterrupt(e, false)
	timers.Start(id, cfg.TimerInterrupt, poise.InterruptDelay, func() {
		if alive(e) {
			signalInterrupt(e, true)
		}
	})
}

// BreakOutOfStagger cancels a pending auto-recovery and releases the entity
// immediately.
func BreakOutOfStagger(w donburi.World, e *donburi.Entry) {
	if !alive(e) || !e.HasComponent(components.Poise) {
		return
	}
	Timers(w).Cancel(e.Entity(), cfg.TimerInterrupt)
	signalInterrupt(e, true)
}

func signalInterrupt(e *donburi.Entry, breakFree bool) {
	// handlers may append to the list, run the snapshot
	handlers := append([]components.InterruptHandler(nil), components.Poise.Get(e).Handlers...)
	for _, h := range handlers {
		h(breakFree)
	}
}

// CancelPoiseTimers drops the stoic and interrupt windows.
func CancelPoiseTimers(w donburi.World, e *donburi.Entry) {
	timers := Timers(w)
	timers.Cancel(e.Entity(), cfg.TimerStoic)
	timers.Cancel(e.Entity(), cfg.TimerInterrupt)
}

// StaggerHandlers returns the standard subscriber list: the mobility gate
// first, the action state machine second.
func StaggerHandlers(w donburi.World, e *donburi.Entry) []components.InterruptHandler {
	return []components.InterruptHandler{
		func(breakFree bool) { SetMove(e, breakFree) },
		func(breakFree bool) { InterruptAction(w, e, breakFree) },
	}
}
