package systems

import (
	"io"
	"log/slog"

	"github.com/automoto/brawlcore/components"
	"github.com/automoto/brawlcore/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// runtime returns the service singleton, or nil for a world built without
// one.
func runtime(w donburi.World) *components.RuntimeData {
	entry, ok := components.Runtime.First(w)
	if !ok {
		return nil
	}
	return components.Runtime.Get(entry)
}

// Timers returns the world's timer registry. Every world driven by these
// systems carries a runtime singleton, see factory.CreateRuntime.
func Timers(w donburi.World) *timer.Registry {
	return runtime(w).Timers
}

func logger(w donburi.World) *slog.Logger {
	if rt := runtime(w); rt != nil && rt.Logger != nil {
		return rt.Logger
	}
	return discard
}

// SpaceOf returns the world's collision space.
func SpaceOf(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}

// animator returns the entity's animator, or a no-op one.
func animator(e *donburi.Entry) components.Animator {
	if e.HasComponent(components.Animation) {
		if a := components.Animation.Get(e).Animator; a != nil {
			return a
		}
	}
	return components.NopAnimator{}
}

// entryOf returns the entity linked to a collision body.
func entryOf(obj *resolv.Object) *donburi.Entry {
	if obj == nil {
		return nil
	}
	e, ok := obj.Data.(*donburi.Entry)
	if !ok || e == nil || !e.Valid() {
		return nil
	}
	return e
}

// alive reports whether e is a valid, active combatant or prop.
func alive(e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return false
	}
	if e.HasComponent(components.Combatant) && !components.Combatant.Get(e).Active {
		return false
	}
	if e.HasComponent(components.Health) && components.Health.Get(e).Dead {
		return false
	}
	return true
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// UpdateObjects syncs every body's cell membership after it moved.
func UpdateObjects(w donburi.World) {
	for e := range components.Object.Iter(w) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Update()
		}
	}
}
