package main

import (
	"github.com/automoto/brawlcore/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionMoveLeft ActionID = iota
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionSprint
	ActionLight
	ActionHeavy
	ActionHeal
	ActionDrop
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var bindings = map[ActionID]InputBinding{
	ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
	ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
	ActionMoveUp:    {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop}},
	ActionMoveDown:  {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom}},
	ActionJump:      {Keys: []ebiten.Key{ebiten.KeySpace}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
	ActionSprint:    {Keys: []ebiten.Key{ebiten.KeyShiftLeft}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft}},
	ActionLight:     {Keys: []ebiten.Key{ebiten.KeyZ, ebiten.KeyJ}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft}},
	ActionHeavy:     {Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyK}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop}},
	ActionHeal:      {Keys: []ebiten.Key{ebiten.KeyH}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
	ActionDrop:      {Keys: []ebiten.Key{ebiten.KeyC}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight}},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// inputState is the decoded device state of one frame.
type inputState struct {
	current  [ActionCount]bool
	previous [ActionCount]bool
}

// poll swaps buffers and samples every binding.
func (s *inputState) poll() {
	s.previous = s.current
	s.current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for action, binding := range bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s.current[action] = true
			}
		}
		for _, id := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					s.current[action] = true
				}
			}
		}
	}
}

func (s *inputState) pressed(a ActionID) bool  { return s.current[a] && !s.previous[a] }
func (s *inputState) released(a ActionID) bool { return !s.current[a] && s.previous[a] }

// axis is the move-axis sample, y grows downward.
func (s *inputState) axis() (x, y float64) {
	if s.current[ActionMoveLeft] {
		x--
	}
	if s.current[ActionMoveRight] {
		x++
	}
	if s.current[ActionMoveUp] {
		y--
	}
	if s.current[ActionMoveDown] {
		y++
	}
	return x, y
}

// events decodes this frame's edges into semantic input events.
func (s *inputState) events() []components.InputEvent {
	var out []components.InputEvent
	edges := []struct {
		action ActionID
		event  components.InputEvent
	}{
		{ActionSprint, components.InputSprintToggle},
		{ActionLight, components.InputLight},
		{ActionHeavy, components.InputHeavy},
		{ActionHeal, components.InputHeal},
		{ActionDrop, components.InputDrop},
	}
	if s.pressed(ActionJump) {
		out = append(out, components.InputJumpPressed)
	}
	if s.released(ActionJump) {
		out = append(out, components.InputJumpReleased)
	}
	for _, e := range edges {
		if s.pressed(e.action) {
			out = append(out, e.event)
		}
	}
	return out
}

// debugToggled reports the debug overlay key.
func debugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// restartPressed reports the arena restart key.
func restartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
