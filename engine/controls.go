package engine

import (
	"fmt"

	"github.com/lixenwraith/solar-orbits/constants"
	"github.com/lixenwraith/solar-orbits/physics"
	"github.com/lixenwraith/solar-orbits/terminal/tui"
)

// Button IDs
const (
	ButtonRealTime = "realtime"
	ButtonBack     = "back"
	planetPrefix   = "planet:"
)

// PlanetButtonID returns the selector ID for a planet
func PlanetButtonID(name string) string {
	return planetPrefix + name
}

// Controls are the widgets the frame driver reads and toggles
type Controls struct {
	Speed    *tui.Slider
	Readout  *tui.Label
	RealTime *tui.Button
	Back     *tui.Button
	Planets  []*tui.Button // Parallel to SimulationState.Planets
}

// NewControls registers the control bar and the planet legend on m
func NewControls(m *tui.Manager, planets []*physics.Planet, initialSpeed float64) *Controls {
	m.SliderStep = constants.SliderStep
	m.CoarseStep = constants.SliderCoarseStep

	c := &Controls{
		Speed:    m.AddSlider("speed", tui.Rect{}, constants.SpeedMin, constants.SpeedMax, initialSpeed),
		Readout:  m.AddLabel(tui.Rect{}, ""),
		RealTime: m.AddButton(ButtonRealTime, constants.RealTimeButtonText, tui.Rect{}, 'r'),
		Back:     m.AddButton(ButtonBack, constants.BackButtonText, tui.Rect{}, 'b'),
	}

	for i, p := range planets {
		var hotkey rune
		if i < 9 {
			hotkey = rune('1' + i)
		}
		b := m.AddButton(PlanetButtonID(p.Name), p.Name, tui.Rect{}, hotkey)
		b.Color = p.Color
		b.HideWhenDisabled = true
		c.Planets = append(c.Planets, b)
	}

	c.Layout(m.Size())
	return c
}

// Layout places the control bar on the first row and the legend on the last
func (c *Controls) Layout(width, height int) {
	row := constants.ControlBarRow
	c.Speed.SetRect(tui.Rect{X: constants.SliderX, Y: row, W: constants.SliderWidth, H: 1})
	c.Readout.SetRect(tui.Rect{X: constants.ReadoutX, Y: row, W: constants.ReadoutWidth, H: 1})
	c.RealTime.SetRect(tui.Rect{X: constants.RealTimeButtonX, Y: row, W: len(constants.RealTimeButtonText) + 2, H: 1})
	c.Back.SetRect(tui.Rect{X: constants.BackButtonX, Y: row, W: len(constants.BackButtonText) + 2, H: 1})

	legend := height - 1
	for i, b := range c.Planets {
		b.SetRect(tui.Rect{X: 1 + i*constants.LegendButtonWidth, Y: legend, W: constants.LegendButtonWidth - 1, H: 1})
	}
}

// PlanetToggles returns the selectors as capability interfaces
func (c *Controls) PlanetToggles() []Toggle {
	out := make([]Toggle, len(c.Planets))
	for i, b := range c.Planets {
		out[i] = b
	}
	return out
}

// Readout formats the label text: integer control value and simulated date
func Readout(s *SimulationState) string {
	return fmt.Sprintf("%3d  sim %s", int(s.Speed.Value()), s.SimulatedTime().Format(constants.ReadoutDateLayout))
}
