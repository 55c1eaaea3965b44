package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar-orbits/constants"
	"github.com/lixenwraith/solar-orbits/physics"
)

type fakeSurface struct {
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, cells: map[[2]int]rune{}, styles: map[[2]int]tcell.Style{}}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = primary
	f.styles[[2]int{x, y}] = style
}

func (f *fakeSurface) Size() (int, int) { return f.w, f.h }

// 100x50 cells gives a 100x100 sample grid, scale 0.1, 10 samples of horizontal margin
func newTestCanvas() *Canvas {
	return NewCanvas(constants.ScreenWidth, constants.ScreenHeight, 100, 50)
}

func TestProjection(t *testing.T) {
	c := newTestCanvas()
	if c.Scale() != 0.1 {
		t.Fatalf("Expected scale 0.1, got %v", c.Scale())
	}

	tests := []struct {
		name  string
		p     physics.Point
		wantX int
		wantY int
	}{
		{"Origin", physics.Point{X: 0, Y: 0}, 10, 0},
		{"Center", physics.Point{X: 400, Y: 500}, 50, 50},
		{"Mercury at rest", physics.Point{X: 440, Y: 500}, 54, 50},
		{"Far corner", physics.Point{X: 799, Y: 999}, 89, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.Project(tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Expected (%d,%d), got (%d,%d)", tt.wantX, tt.wantY, x, y)
			}
		})
	}
}

func TestFillCircle(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(physics.Point{X: 400, Y: 500}, constants.SunRadius, tcell.ColorYellow)

	for _, p := range [][2]int{{49, 49}, {50, 49}, {49, 50}, {50, 50}} {
		if got := c.At(p[0], p[1]); got != tcell.ColorYellow {
			t.Errorf("Expected yellow at %v, got %v", p, got)
		}
	}
	if got := c.At(50, 52); got != empty {
		t.Errorf("Expected empty outside disc, got %v", got)
	}
}

func TestFillCircleSubSample(t *testing.T) {
	c := NewCanvas(800, 1000, 10, 5)
	c.FillCircle(physics.Point{X: 400, Y: 500}, constants.PlanetRadius, tcell.ColorRed)

	painted := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c.At(x, y) != empty {
				painted++
			}
		}
	}
	if painted != 1 {
		t.Errorf("Expected exactly one painted sample, got %d", painted)
	}
}

func TestLineStripKeepsBodies(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(physics.Point{X: 400, Y: 500}, constants.SunRadius, tcell.ColorYellow)
	c.LineStrip([]physics.Point{{X: 0, Y: 500}, {X: 799, Y: 500}}, tcell.ColorWhite)

	if got := c.At(50, 50); got != tcell.ColorYellow {
		t.Errorf("Expected sun sample kept, got %v", got)
	}
	trace := Dim(tcell.ColorWhite, TraceDim)
	for _, x := range []int{10, 30, 70, 89} {
		if got := c.At(x, 50); got != trace {
			t.Errorf("Expected trace at x=%d, got %v", x, got)
		}
	}
	if got := c.At(9, 50); got != empty {
		t.Errorf("Expected nothing left of the strip, got %v", got)
	}
}

func TestLineStripClosedOrbit(t *testing.T) {
	c := newTestCanvas()
	center := physics.Center(constants.ScreenWidth, constants.ScreenHeight)
	c.LineStrip(physics.OrbitPath(320, center), tcell.ColorBlue)

	// Radius 32 samples around (50,50)
	for _, p := range [][2]int{{82, 50}, {50, 82}, {18, 50}, {50, 18}} {
		found := false
		for dy := -1; dy <= 1 && !found; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if c.At(p[0]+dx, p[1]+dy) != empty {
					found = true
					break
				}
			}
		}
		if !found {
			t.Errorf("Expected trace near %v", p)
		}
	}
	if c.At(50, 50) != empty {
		t.Error("Expected orbit interior to stay empty")
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(physics.Point{X: 400, Y: 500}, constants.SunRadius, tcell.ColorYellow)

	s := newFakeSurface(100, 51)
	c.Present(s, 1)

	// Samples 49/50 straddle rows 24/25, drawn one row lower
	if got := s.cells[[2]int{50, 26}]; got != glyphUpper {
		t.Errorf("Expected upper half block, got %q", got)
	}
	if got := s.cells[[2]int{50, 25}]; got != glyphLower {
		t.Errorf("Expected lower half block, got %q", got)
	}
	if got := s.cells[[2]int{0, 1}]; got != ' ' {
		t.Errorf("Expected blank cell, got %q", got)
	}
	if _, ok := s.cells[[2]int{0, 0}]; ok {
		t.Error("Expected row above top untouched")
	}
	fg, _, _ := s.styles[[2]int{50, 26}].Decompose()
	if fg != tcell.ColorYellow {
		t.Errorf("Expected yellow foreground, got %v", fg)
	}
}

func TestClearAndResize(t *testing.T) {
	c := newTestCanvas()
	c.FillCircle(physics.Point{X: 400, Y: 500}, 100, tcell.ColorRed)
	c.Clear()
	if c.At(50, 50) != empty {
		t.Error("Expected clear canvas")
	}

	c.Resize(40, 10)
	cols, rows := c.Size()
	if cols != 40 || rows != 10 {
		t.Errorf("Expected 40x10, got %dx%d", cols, rows)
	}
	if c.Scale() != 0.02 {
		t.Errorf("Expected height-bound scale 0.02, got %v", c.Scale())
	}
}

func TestDim(t *testing.T) {
	if got := Dim(tcell.ColorDefault, 0.5); got != tcell.ColorDefault {
		t.Errorf("Expected default color unchanged, got %v", got)
	}

	r, g, b := Dim(tcell.ColorWhite, 1).RGB()
	if r != 0 || g != 0 || b != 0 {
		t.Errorf("Expected black at full dim, got (%d,%d,%d)", r, g, b)
	}

	r, g, b = Dim(tcell.ColorWhite, 0).RGB()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("Expected white at zero dim, got (%d,%d,%d)", r, g, b)
	}

	r, _, _ = Dim(tcell.ColorWhite, TraceDim).RGB()
	if r <= 0 || r >= 255 {
		t.Errorf("Expected intermediate shade, got %d", r)
	}
}
