package engine

import (
	"time"

	"github.com/lixenwraith/solar-orbits/constants"
	"github.com/lixenwraith/solar-orbits/physics"
	"github.com/soniakeys/meeus/v3/julian"
)

// ValueControl is a widget holding the continuous control value
type ValueControl interface {
	Value() float64
	SetValue(float64)
}

// TextSetter is a widget displaying text
type TextSetter interface {
	SetText(string)
}

// Toggle is a widget with enable state
type Toggle interface {
	Enable()
	Disable()
	Enabled() bool
}

// ViewMode is derived from whether a planet is focused
type ViewMode uint8

const (
	ViewFullSystem ViewMode = iota
	ViewFocused
)

func (m ViewMode) String() string {
	if m == ViewFocused {
		return "focused"
	}
	return "full-system"
}

// SimulationState is the single process-wide simulation record passed through the frame driver
type SimulationState struct {
	Planets []*physics.Planet
	Center  physics.Point
	Clock   physics.Clock

	// Speed owns the control value; the state only reads and overrides it
	Speed ValueControl

	// Focused is a non-owning reference into Planets, nil in full-system view
	Focused *physics.Planet

	// Elapsed is the accumulated time increment applied to the planets
	Elapsed float64

	// Epoch is the calendar date at which Elapsed is zero
	Epoch time.Time
}

// NewSimulationState creates the state for planets laid out around center
func NewSimulationState(planets []*physics.Planet, center physics.Point, speed ValueControl, epoch time.Time) *SimulationState {
	return &SimulationState{
		Planets: planets,
		Center:  center,
		Clock:   physics.NewClock(),
		Speed:   speed,
		Epoch:   epoch,
	}
}

// Mode reports the current view
func (s *SimulationState) Mode() ViewMode {
	if s.Focused != nil {
		return ViewFocused
	}
	return ViewFullSystem
}

// Increment reads the control value and returns this frame's time increment
func (s *SimulationState) Increment() float64 {
	return s.Clock.Increment(s.Speed.Value())
}

// Advance moves every planet by increment
func (s *SimulationState) Advance(increment float64) {
	for _, p := range s.Planets {
		p.Advance(increment)
	}
	s.Elapsed += increment
}

// RealTime forces the control value to roughly one simulated day per frame
func (s *SimulationState) RealTime() {
	s.Speed.SetValue(constants.RealTimeValue)
}

// Planet finds a planet by name
func (s *SimulationState) Planet(name string) *physics.Planet {
	for _, p := range s.Planets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// SimulatedTime returns the calendar date reached by the simulation
func (s *SimulationState) SimulatedTime() time.Time {
	jd := julian.TimeToJD(s.Epoch) + physics.SimulatedDays(s.Elapsed)
	return julian.JDToTime(jd)
}
