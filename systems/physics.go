package systems

import (
	"math"

	"github.com/automoto/brawlcore/components"
	cfg "github.com/automoto/brawlcore/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateLocomotion samples horizontal intent and held jump at logic rate.
func UpdateLocomotion(w donburi.World) {
	components.Movement.Each(w, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		mv := components.Movement.Get(e)
		applyIntent(mv)

		if mv.JumpHeld {
			Jump(w, e)
		}
	})
}

func applyIntent(mv *components.MovementData) {
	if mv.Intent != 0 && mv.CanMove {
		dir := sign(mv.Intent)
		mv.VelX = dir * mv.BaseSpeed * mv.SpeedModifier
		mv.Facing = dir
		return
	}
	if !mv.OverrideGravity {
		mv.VelX = 0
	}
}

// UpdateBodies integrates every moving body by one fixed step.
func UpdateBodies(w donburi.World, dt float64) {
	components.Movement.Each(w, func(e *donburi.Entry) {
		if !alive(e) {
			return
		}
		mv := components.Movement.Get(e)
		obj := components.Object.Get(e)

		if !mv.Grounded {
			mv.VelY = math.Min(mv.VelY+cfg.Physics.Gravity*dt, cfg.Physics.MaxFallSpeed)
		}

		resolveHorizontalCollision(mv, obj.Object, mv.VelX*dt)
		resolveVerticalCollision(mv, obj.Object, mv.VelY*dt)
		obj.Update()

		updateGrounded(w, e, mv, obj)
	})
}

func updateGrounded(w donburi.World, e *donburi.Entry, mv *components.MovementData, obj *components.ObjectData) {
	if Timers(w).Active(e.Entity(), cfg.TimerGroundSuppress) {
		mv.Grounded = false
		return
	}

	ground := groundBelow(mv, obj.Object, false)
	mv.Grounded = ground != nil
	if ground == nil {
		return
	}
	mv.OnGround = ground
	if mv.VelY > 0 {
		mv.VelY = 0
	}
	if mv.NotLanded {
		land(w, e, mv)
	}
}

// land runs once on the first grounded tick after a jump.
func land(w donburi.World, e *donburi.Entry, mv *components.MovementData) {
	mv.NotLanded = false
	Timers(w).Cancel(e.Entity(), cfg.TimerDropThrough)
	mv.IgnorePlatform = nil

	if e.HasComponent(components.Combo) {
		comboLanded(w, e)
	}
}

// Jump starts a jump if the body is grounded, mobile and outside the
// post-jump suppression window. Returns whether a jump started.
func Jump(w donburi.World, e *donburi.Entry) bool {
	if !alive(e) {
		return false
	}
	mv := components.Movement.Get(e)
	timers := Timers(w)
	if !mv.CanMove || !mv.Grounded || timers.Active(e.Entity(), cfg.TimerGroundSuppress) {
		return false
	}

	mv.VelY = 0
	mv.VelX += mv.JumpImpulseX * mv.Facing
	mv.VelY += mv.JumpImpulseY
	mv.Grounded = false
	mv.OnGround = nil
	mv.NotLanded = true
	timers.Start(e.Entity(), cfg.TimerGroundSuppress, cfg.Physics.JumpSuppress, nil)

	if e.HasComponent(components.Combo) {
		comboJumpStarted(w, e)
	}
	return true
}

// Launch applies an instantaneous velocity change of impulse times the
// body's mass. The x component is mirrored by facing. Horizontal velocity
// then survives until mobility is next toggled.
func Launch(e *donburi.Entry, impulse dmath.Vec2, facing float64) {
	if !e.Valid() || !e.HasComponent(components.Movement) {
		return
	}
	mv := components.Movement.Get(e)
	mass := mv.Mass
	if mass <= 0 {
		mass = 1
	}
	mv.OverrideGravity = true
	mv.VelY = 0
	mv.VelX += impulse.X * facing * mass
	mv.VelY += impulse.Y * mass
	if impulse.Y < 0 {
		mv.Grounded = false
		mv.OnGround = nil
	}
}

// SetMove opens or closes the mobility gate. Toggling it always clears a
// launch's gravity override.
func SetMove(e *donburi.Entry, canMove bool) {
	if !e.Valid() || !e.HasComponent(components.Movement) {
		return
	}
	mv := components.Movement.Get(e)
	mv.CanMove = canMove
	mv.OverrideGravity = false
}

// FallThroughPlatform ignores the platform under the body for the drop
// window. A drop already in progress is left alone. Returns whether a new
// drop started.
func FallThroughPlatform(w donburi.World, e *donburi.Entry) bool {
	if !alive(e) {
		return false
	}
	mv := components.Movement.Get(e)
	timers := Timers(w)
	if !mv.CanMove || timers.Active(e.Entity(), cfg.TimerDropThrough) {
		return false
	}

	platform := groundBelow(mv, components.Object.Get(e).Object, true)
	if platform == nil {
		return false
	}

	mv.IgnorePlatform = platform
	mv.Grounded = false
	mv.OnGround = nil
	timers.Start(e.Entity(), cfg.TimerDropThrough, cfg.Physics.DropThroughTime, func() {
		if e.Valid() {
			components.Movement.Get(e).IgnorePlatform = nil
		}
	})
	return true
}

// Drop handles the drop input: airborne bodies slam down, and a platform
// under the body is dropped through.
func Drop(w donburi.World, e *donburi.Entry) {
	if !alive(e) {
		return
	}
	mv := components.Movement.Get(e)
	if !mv.Grounded && mv.CanMove {
		mv.VelY = cfg.Player.HardFallSpeed
	}
	FallThroughPlatform(w, e)
}

// ToggleSprint flips the sprint state.
func ToggleSprint(e *donburi.Entry) {
	mv := components.Movement.Get(e)
	setSprint(mv, !mv.Sprinting)
}

func setSprint(mv *components.MovementData, on bool) {
	mv.Sprinting = on
	if on {
		mv.SpeedModifier = cfg.Player.SprintModifier
	} else {
		mv.SpeedModifier = 1
	}
}
