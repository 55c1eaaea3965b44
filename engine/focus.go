package engine

import "github.com/lixenwraith/solar-orbits/physics"

// Focus switches between the full-system view and a single centered planet.
// After every transition exactly one of {all planet selectors, back} is enabled.
type Focus struct {
	state   *SimulationState
	planets []Toggle
	back    Toggle
}

// NewFocus starts in the full-system view
func NewFocus(state *SimulationState, planets []Toggle, back Toggle) *Focus {
	f := &Focus{state: state, planets: planets, back: back}
	f.Back()
	return f
}

// Select focuses p and swaps the selectors for the back button
func (f *Focus) Select(p *physics.Planet) {
	f.state.Focused = p
	for _, t := range f.planets {
		t.Disable()
	}
	f.back.Enable()
}

// Back returns to the full-system view
func (f *Focus) Back() {
	f.state.Focused = nil
	for _, t := range f.planets {
		t.Enable()
	}
	f.back.Disable()
}

// Consistent reports whether the selector/back exclusivity holds
func (f *Focus) Consistent() bool {
	all := true
	for _, t := range f.planets {
		if !t.Enabled() {
			all = false
			break
		}
	}
	return all != f.back.Enabled()
}
