package physics

import "github.com/lixenwraith/solar-orbits/constants"

// Clock maps the control value to a per-frame time increment
type Clock struct {
	Scale float64
}

// NewClock returns a clock using the seconds-per-year time scale
func NewClock() Clock {
	return Clock{Scale: constants.TimeScale}
}

// Increment returns the time increment for one frame at control value v
func (c Clock) Increment(v float64) float64 {
	return v * c.Scale
}

// SimulatedDays converts an accumulated time increment into calendar days,
// using Earth's angular rate as the reference year
func SimulatedDays(elapsed float64) float64 {
	return elapsed * EarthRateRatio / 360 * constants.DaysPerYear
}
