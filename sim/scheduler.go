package sim

import "github.com/yohamta/donburi"

// System runs once per logic tick.
type System func(w donburi.World)

// StepSystem runs once per fixed physics step.
type StepSystem func(w donburi.World, dt float64)

// Scheduler holds the ordered systems of both tick phases.
type Scheduler struct {
	logic   []System
	physics []StepSystem
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) AddLogic(system System) {
	if system == nil {
		return
	}
	s.logic = append(s.logic, system)
}

func (s *Scheduler) AddPhysics(system StepSystem) {
	if system == nil {
		return
	}
	s.physics = append(s.physics, system)
}

func (s *Scheduler) UpdateLogic(w donburi.World) {
	for _, system := range s.logic {
		system(w)
	}
}

func (s *Scheduler) UpdatePhysics(w donburi.World, dt float64) {
	for _, system := range s.physics {
		system(w, dt)
	}
}
