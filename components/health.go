package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
	Dead    bool

	// Seconds of damage immunity granted after each hit, 0 for none
	MercyTime float64
}

// Ratio returns current health as a fraction of max.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
