package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar-orbits/terminal"
)

// Manager owns the widgets, translates raw input into semantic events and draws the widget layer
type Manager struct {
	Theme Theme

	width, height int

	sliders []*Slider
	labels  []*Label
	buttons []*Button

	// SliderStep and CoarseStep are the arrow-key increments for the first slider
	SliderStep float64
	CoarseStep float64

	mouseDown bool
	drag      *Slider
	armed     *Button
}

// NewManager creates an empty manager for a width x height screen
func NewManager(width, height int) *Manager {
	return &Manager{
		Theme:      DefaultTheme,
		width:      width,
		height:     height,
		SliderStep: 1,
		CoarseStep: 10,
	}
}

// AddSlider creates and registers a slider
func (m *Manager) AddSlider(id string, rect Rect, min, max, start float64) *Slider {
	s := NewSlider(id, rect, min, max, start)
	m.sliders = append(m.sliders, s)
	return s
}

// AddLabel creates and registers a label
func (m *Manager) AddLabel(rect Rect, text string) *Label {
	l := NewLabel(rect, text)
	m.labels = append(m.labels, l)
	return l
}

// AddButton creates and registers an enabled button
func (m *Manager) AddButton(id, text string, rect Rect, hotkey rune) *Button {
	b := NewButton(id, text, rect, hotkey)
	m.buttons = append(m.buttons, b)
	return b
}

// Size returns the screen size the manager lays out against
func (m *Manager) Size() (int, int) {
	return m.width, m.height
}

// Resize records new screen dimensions; widget placement is the caller's concern
func (m *Manager) Resize(width, height int) {
	m.width, m.height = width, height
}

// ProcessEvent consumes one raw event and returns the semantic events it produced
func (m *Manager) ProcessEvent(ev tcell.Event) []Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.handleKey(ev)
	case *tcell.EventMouse:
		return m.handleMouse(ev)
	case *tcell.EventResize:
		m.Resize(ev.Size())
	}
	return nil
}

func (m *Manager) handleKey(ev *tcell.EventKey) []Event {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return []Event{{Kind: EventQuit}}
	case tcell.KeyLeft, tcell.KeyRight:
		if len(m.sliders) == 0 {
			return nil
		}
		step := m.SliderStep
		if ev.Modifiers()&tcell.ModShift != 0 {
			step = m.CoarseStep
		}
		if ev.Key() == tcell.KeyLeft {
			step = -step
		}
		s := m.sliders[0]
		return m.setSlider(s, s.Value()+step)
	case tcell.KeyHome:
		if len(m.sliders) == 0 {
			return nil
		}
		s := m.sliders[0]
		return m.setSlider(s, s.min)
	case tcell.KeyEnd:
		if len(m.sliders) == 0 {
			return nil
		}
		s := m.sliders[0]
		return m.setSlider(s, s.max)
	case tcell.KeyRune:
		r := ev.Rune()
		if r == 'q' {
			return []Event{{Kind: EventQuit}}
		}
		for _, b := range m.buttons {
			if b.Hotkey == r && b.Enabled() {
				return m.press(b)
			}
		}
	}
	return nil
}

// handleMouse tracks Button1 edges: press on a slider starts a drag, press on a
// button arms it and release over the same enabled button fires it
func (m *Manager) handleMouse(ev *tcell.EventMouse) []Event {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.mouseDown:
		m.mouseDown = true
		if s := m.sliderAt(x, y); s != nil {
			m.drag = s
			return m.setSlider(s, s.valueAt(x))
		}
		if b := m.buttonAt(x, y); b != nil {
			m.armed = b
			b.armed = true
		}

	case down && m.mouseDown:
		if m.drag != nil {
			return m.setSlider(m.drag, m.drag.valueAt(x))
		}

	case !down && m.mouseDown:
		m.mouseDown = false
		m.drag = nil
		b := m.armed
		m.armed = nil
		if b == nil {
			return nil
		}
		b.armed = false
		if b.Enabled() && b.rect.Contains(x, y) {
			return m.press(b)
		}
	}
	return nil
}

func (m *Manager) press(b *Button) []Event {
	b.flash = pressFlash
	return []Event{{Kind: EventButtonPressed, ID: b.ID}}
}

func (m *Manager) setSlider(s *Slider, v float64) []Event {
	old := s.Value()
	s.SetValue(v)
	if s.Value() == old {
		return nil
	}
	return []Event{{Kind: EventSliderChanged, ID: s.ID, Value: s.Value()}}
}

func (m *Manager) sliderAt(x, y int) *Slider {
	for _, s := range m.sliders {
		if s.rect.Contains(x, y) {
			return s
		}
	}
	return nil
}

func (m *Manager) buttonAt(x, y int) *Button {
	for _, b := range m.buttons {
		if b.Enabled() && b.rect.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Update advances widget animations by elapsed
func (m *Manager) Update(elapsed time.Duration) {
	for _, b := range m.buttons {
		if b.flash > 0 {
			b.flash -= elapsed
			if b.flash < 0 {
				b.flash = 0
			}
		}
	}
}

// Draw renders every visible widget
func (m *Manager) Draw(s terminal.Surface) {
	for _, sl := range m.sliders {
		sl.draw(NewRegion(s, sl.rect), m.Theme)
	}
	for _, l := range m.labels {
		l.draw(NewRegion(s, l.rect), m.Theme)
	}
	for _, b := range m.buttons {
		if b.Visible() {
			b.draw(NewRegion(s, b.rect), m.Theme)
		}
	}
}
