// Package timer schedules deferred callbacks against the simulation clock.
//
// Every timer is owned by an entity and identified by a purpose string, so
// starting the same purpose twice restarts it and an owner's timers can be
// cancelled as a group before the owner is disabled. Each timer is a linear
// gween tween from 0 to 1 over its duration; it fires when the tween
// finishes.
package timer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// epsilon absorbs float drift from summing fixed steps.
const epsilon = 1e-9

// Key identifies one timer.
type Key struct {
	Owner   donburi.Entity
	Purpose string
}

type entry struct {
	key      Key
	tween    *gween.Tween
	progress float32
	elapsed  float64
	duration float64
	callback func()
	live     bool
}

// Registry holds every pending timer of one simulation.
type Registry struct {
	timers map[Key]*entry
	order  []*entry
}

func NewRegistry() *Registry {
	return &Registry{
		timers: make(map[Key]*entry),
	}
}

// Start schedules fn to run once duration seconds of simulation time have
// passed. A pending timer with the same owner and purpose is cancelled first.
// fn may be nil for timers that only gate behaviour while active.
func (r *Registry) Start(owner donburi.Entity, purpose string, duration float64, fn func()) {
	key := Key{Owner: owner, Purpose: purpose}
	r.Cancel(owner, purpose)

	if duration < 0 {
		duration = 0
	}
	e := &entry{
		key:      key,
		tween:    gween.New(0, 1, float32(duration), ease.Linear),
		duration: duration,
		callback: fn,
		live:     true,
	}
	r.timers[key] = e
	r.order = append(r.order, e)
}

// Cancel stops a pending timer. A cancelled timer never fires. Returns
// whether a live timer was found.
func (r *Registry) Cancel(owner donburi.Entity, purpose string) bool {
	key := Key{Owner: owner, Purpose: purpose}
	e, ok := r.timers[key]
	if !ok {
		return false
	}
	e.live = false
	delete(r.timers, key)
	return true
}

// CancelOwner stops every timer owned by owner.
func (r *Registry) CancelOwner(owner donburi.Entity) {
	for key, e := range r.timers {
		if key.Owner == owner {
			e.live = false
			delete(r.timers, key)
		}
	}
}

// Active reports whether the timer is still pending.
func (r *Registry) Active(owner donburi.Entity, purpose string) bool {
	_, ok := r.timers[Key{Owner: owner, Purpose: purpose}]
	return ok
}

// Progress returns how far along a pending timer is, from 0 to 1. Returns 0
// when no such timer is pending.
func (r *Registry) Progress(owner donburi.Entity, purpose string) float64 {
	e, ok := r.timers[Key{Owner: owner, Purpose: purpose}]
	if !ok {
		return 0
	}
	if e.duration == 0 {
		return 1
	}
	return float64(e.progress)
}

// Remaining returns the seconds left on a pending timer, or 0.
func (r *Registry) Remaining(owner donburi.Entity, purpose string) float64 {
	e, ok := r.timers[Key{Owner: owner, Purpose: purpose}]
	if !ok {
		return 0
	}
	if left := e.duration - e.elapsed; left > 0 {
		return left
	}
	return 0
}

// Len returns the number of pending timers.
func (r *Registry) Len() int {
	return len(r.timers)
}

// Advance moves the clock forward by dt seconds and fires every timer that
// came due, in the order they were started. Timers started by a callback
// begin counting on the next call. A timer cancelled by an earlier callback
// in the same pass does not fire.
func (r *Registry) Advance(dt float64) {
	var due []*entry
	kept := r.order[:0]
	for _, e := range r.order {
		if !e.live {
			continue
		}
		e.elapsed += dt
		step := float32(dt)
		if e.elapsed >= e.duration-epsilon {
			// summed float32 steps may fall just short of the duration
			step = float32(e.duration) + 1
		}
		var finished bool
		e.progress, finished = e.tween.Update(step)
		if finished {
			due = append(due, e)
			continue
		}
		kept = append(kept, e)
	}
	// clear the tail so dropped entries can be collected
	for i := len(kept); i < len(r.order); i++ {
		r.order[i] = nil
	}
	r.order = kept

	for _, e := range due {
		if !e.live {
			continue
		}
		e.live = false
		if r.timers[e.key] == e {
			delete(r.timers, e.key)
		}
		if e.callback != nil {
			e.callback()
		}
	}
}
