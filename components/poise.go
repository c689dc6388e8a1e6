package components

import "github.com/yohamta/donburi"

// InterruptHandler observes stagger signals. breakFree is false when the
// owner is forced into stagger and true when it is released.
type InterruptHandler func(breakFree bool)

// PoiseData tracks hits towards a stagger break-out. Timers for the stoic
// window and the interrupt delay live in the timer registry.
type PoiseData struct {
	Hits      int
	Threshold int // hits needed to break out, 0 disables counting

	StoicTime      float64
	InterruptDelay float64

	// Invoked in registration order
	Handlers []InterruptHandler
}

// Subscribe appends a handler.
func (p *PoiseData) Subscribe(h InterruptHandler) {
	p.Handlers = append(p.Handlers, h)
}

var Poise = donburi.NewComponentType[PoiseData]()
