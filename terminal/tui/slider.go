package tui

import "github.com/gdamore/tcell/v2"

// Track characters
const (
	sliderFull  = '█'
	sliderEmpty = '░'
	sliderHalf  = '▌'
)

// Slider is a horizontal control over a bounded continuous range
type Slider struct {
	ID string

	rect     Rect
	min, max float64
	value    float64
}

// NewSlider creates a slider with start clamped into [min, max]
func NewSlider(id string, rect Rect, min, max, start float64) *Slider {
	s := &Slider{ID: id, rect: rect, min: min, max: max}
	s.SetValue(start)
	return s
}

// Value returns the current value
func (s *Slider) Value() float64 {
	return s.value
}

// SetValue sets the value, clamped to the slider range
func (s *Slider) SetValue(v float64) {
	s.value = clamp(v, s.min, s.max)
}

// Rect returns the slider bounds on screen
func (s *Slider) Rect() Rect {
	return s.rect
}

// SetRect moves the slider, used on relayout after a resize
func (s *Slider) SetRect(r Rect) {
	s.rect = r
}

// valueAt maps a screen column on the track to a value
func (s *Slider) valueAt(x int) float64 {
	if s.rect.W <= 1 {
		return s.min
	}
	pct := clamp(float64(x-s.rect.X)/float64(s.rect.W-1), 0, 1)
	return s.min + pct*(s.max-s.min)
}

func (s *Slider) fraction() float64 {
	if s.max <= s.min {
		return 0
	}
	return (s.value - s.min) / (s.max - s.min)
}

func (s *Slider) draw(r Region, theme Theme) {
	w := s.rect.W
	pct := s.fraction()
	filled := int(float64(w) * pct)
	remainder := float64(w)*pct - float64(filled)

	fill := tcell.StyleDefault.Foreground(theme.FillFg).Background(theme.Bg)
	track := tcell.StyleDefault.Foreground(theme.TrackFg).Background(theme.Bg)

	for i := 0; i < w; i++ {
		switch {
		case i < filled:
			r.Cell(i, 0, sliderFull, fill)
		case i == filled && remainder >= 0.5:
			r.Cell(i, 0, sliderHalf, fill)
		default:
			r.Cell(i, 0, sliderEmpty, track)
		}
	}
}

// clamp bounds v to [lo, hi]; NaN maps to lo
func clamp(v, lo, hi float64) float64 {
	if v < lo || v != v {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
