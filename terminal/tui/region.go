package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar-orbits/terminal"
)

// Rect is a cell rectangle in screen coordinates
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Region clips drawing to a rectangle of a surface
// All coordinates are relative to the region's origin
type Region struct {
	s    terminal.Surface
	rect Rect
}

// NewRegion creates a region over rect, clipped to the surface size
func NewRegion(s terminal.Surface, rect Rect) Region {
	w, h := s.Size()
	if rect.X+rect.W > w {
		rect.W = w - rect.X
	}
	if rect.Y+rect.H > h {
		rect.H = h - rect.Y
	}
	if rect.W < 0 {
		rect.W = 0
	}
	if rect.H < 0 {
		rect.H = 0
	}
	return Region{s: s, rect: rect}
}

// Cell writes one rune at region-relative (x, y), ignoring out-of-bounds writes
func (r Region) Cell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.rect.W || y >= r.rect.H {
		return
	}
	r.s.SetContent(r.rect.X+x, r.rect.Y+y, ch, nil, style)
}

// Text writes s starting at (x, y) and returns the column after the last rune
func (r Region) Text(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		if x >= r.rect.W {
			break
		}
		r.Cell(x, y, ch, style)
		x++
	}
	return x
}

// Fill paints the whole region with ch
func (r Region) Fill(ch rune, style tcell.Style) {
	for y := 0; y < r.rect.H; y++ {
		for x := 0; x < r.rect.W; x++ {
			r.Cell(x, y, ch, style)
		}
	}
}
