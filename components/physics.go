package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// MovementData is the locomotion state of a body driven by the movement
// controller. Velocities are in pixels per second.
type MovementData struct {
	VelX float64
	VelY float64

	// Sampled at logic rate
	Intent    float64 // horizontal intent in [-1, 1]
	JumpHeld  bool
	Sprinting bool

	BaseSpeed     float64
	SpeedModifier float64
	JumpImpulseX  float64
	JumpImpulseY  float64
	Facing        float64
	Mass          float64 // scales launch impulses, zero reads as 1

	// Mobility gate, toggled by the action state machine and stagger
	CanMove bool
	// Set by a launch, keeps horizontal velocity until mobility is toggled
	OverrideGravity bool

	Grounded  bool
	NotLanded bool // set by a jump, cleared on the first grounded tick

	// Pass through other characters (dash through)
	PassCharacters bool

	OnGround       *resolv.Object
	IgnorePlatform *resolv.Object
}

var Movement = donburi.NewComponentType[MovementData]()
