package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputEvent is a semantic input edge already decoded from a device.
type InputEvent int

const (
	InputJumpPressed InputEvent = iota
	InputJumpReleased
	InputSprintToggle
	InputLight
	InputHeavy
	InputHeal
	InputDrop
)

var inputNames = map[InputEvent]string{
	InputJumpPressed:  "jump-pressed",
	InputJumpReleased: "jump-released",
	InputSprintToggle: "sprint-toggle",
	InputLight:        "light",
	InputHeavy:        "heavy",
	InputHeal:         "heal",
	InputDrop:         "drop",
}

func (e InputEvent) String() string {
	return inputNames[e]
}

// InputData queues the edges received since the last logic tick. Axis is the
// latest move-axis sample.
type InputData struct {
	Axis   math.Vec2
	Events []InputEvent
}

var Input = donburi.NewComponentType[InputData]()
