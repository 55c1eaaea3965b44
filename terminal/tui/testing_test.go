package tui

import "github.com/gdamore/tcell/v2"

// fakeSurface records the last rune and style written to each cell
type fakeSurface struct {
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{
		w:      w,
		h:      h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
	}
}

func (f *fakeSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		panic("write outside surface")
	}
	f.cells[[2]int{x, y}] = primary
	f.styles[[2]int{x, y}] = style
}

func (f *fakeSurface) Size() (int, int) {
	return f.w, f.h
}

func (f *fakeSurface) row(y, x0, n int) string {
	out := make([]rune, n)
	for i := range out {
		r, ok := f.cells[[2]int{x0 + i, y}]
		if !ok {
			r = '·'
		}
		out[i] = r
	}
	return string(out)
}

func mouseDown(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func mouseUp(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}
