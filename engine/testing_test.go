package engine

import (
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar-orbits/audio"
	"github.com/lixenwraith/solar-orbits/physics"
)

// fakeScreen is a terminal.Screen backed by maps and a channel of input
type fakeScreen struct {
	mu     sync.Mutex
	w, h   int
	cells  map[[2]int]rune
	styles map[[2]int]tcell.Style
	shows  int
	syncs  int
	finis  int
	events chan tcell.Event
	closed bool
}

func newFakeScreen(w, h int) *fakeScreen {
	return &fakeScreen{
		w:      w,
		h:      h,
		cells:  make(map[[2]int]rune),
		styles: make(map[[2]int]tcell.Style),
		events: make(chan tcell.Event, 64),
	}
}

func (f *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cells[[2]int{x, y}] = primary
	f.styles[[2]int{x, y}] = style
}

func (f *fakeScreen) Size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.w, f.h
}

func (f *fakeScreen) Show() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shows++
}

func (f *fakeScreen) Sync() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.syncs++
}

func (f *fakeScreen) Fini() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.finis++
	f.closeLocked()
}

func (f *fakeScreen) closeLocked() {
	if !f.closed {
		f.closed = true
		close(f.events)
	}
}

// closeInput simulates the terminal going away
func (f *fakeScreen) closeInput() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closeLocked()
}

func (f *fakeScreen) PollEvent() tcell.Event {
	ev, ok := <-f.events
	if !ok {
		return nil
	}
	return ev
}

func (f *fakeScreen) counts() (shows, finis int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.shows, f.finis
}

func (f *fakeScreen) background(x, y int) tcell.Color {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, bg, _ := f.styles[[2]int{x, y}].Decompose()
	return bg
}

func (f *fakeScreen) row(y, x0, n int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]rune, n)
	for i := range out {
		out[i] = f.cells[[2]int{x0 + i, y}]
	}
	return string(out)
}

// cueRecorder captures played cues
type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue) {
	r.cues = append(r.cues, c)
}

var testEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// 100x52 cells: one control row, 50 canvas rows (100x100 samples, scale 0.1), one legend row
func newTestDriver(t *testing.T, speed float64) (*Driver, *fakeScreen, *cueRecorder) {
	t.Helper()
	d, screen, cues, _ := newTestDriverWithClock(t, speed)
	return d, screen, cues
}

func newTestDriverWithClock(t *testing.T, speed float64) (*Driver, *fakeScreen, *cueRecorder, *MockTimeProvider) {
	t.Helper()
	screen := newFakeScreen(100, 52)
	cues := &cueRecorder{}
	clock := NewMockTimeProvider(testEpoch)
	d, err := New(screen, physics.DefaultPlanets(), Options{
		InitialSpeed:  speed,
		Epoch:         testEpoch,
		Sound:         cues,
		FrameInterval: time.Millisecond,
		Time:          clock,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d, screen, cues, clock
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func click(x, y int) []tcell.Event {
	return []tcell.Event{
		tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone),
	}
}
