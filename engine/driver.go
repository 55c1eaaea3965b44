package engine

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar-orbits/audio"
	"github.com/lixenwraith/solar-orbits/constants"
	"github.com/lixenwraith/solar-orbits/metrics"
	"github.com/lixenwraith/solar-orbits/physics"
	"github.com/lixenwraith/solar-orbits/render"
	"github.com/lixenwraith/solar-orbits/terminal"
	"github.com/lixenwraith/solar-orbits/terminal/tui"
)

// canvasTop is the first screen row below the control bar
const canvasTop = constants.ControlBarRow + 1

// Phase is the frame driver lifecycle state
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseTerminated
)

func (p Phase) String() string {
	if p == PhaseTerminated {
		return "terminated"
	}
	return "running"
}

// UI is the widget layer contract: raw events in, semantic events out
type UI interface {
	ProcessEvent(tcell.Event) []tui.Event
	Update(elapsed time.Duration)
	Draw(terminal.Surface)
	Resize(width, height int)
}

// Options configures optional collaborators; zero values are valid
type Options struct {
	FrameInterval time.Duration
	InitialSpeed  float64
	Epoch         time.Time
	Sound         audio.Player
	Metrics       *metrics.Recorder
	Time          TimeProvider

	// CrashHandler is called with the recovered value if the input poller panics
	CrashHandler func(any)
}

// Driver runs the frame loop over a screen
type Driver struct {
	screen   terminal.Screen
	state    *SimulationState
	ui       UI
	controls *Controls
	focus    *Focus
	canvas   *render.Canvas

	sound    audio.Player
	metrics  *metrics.Recorder
	clock    TimeProvider
	interval time.Duration
	onCrash  func(any)

	phase     Phase
	frames    uint64
	lastFrame time.Time

	done     chan struct{}
	finiOnce sync.Once
}

// New builds the planets, widgets and state for screen and returns a driver in PhaseRunning
func New(screen terminal.Screen, specs []physics.PlanetSpec, opts Options) (*Driver, error) {
	planets, err := physics.NewSystem(specs, constants.ScreenWidth, constants.ScreenHeight)
	if err != nil {
		return nil, err
	}

	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}
	if opts.Sound == nil {
		opts.Sound = audio.Silent{}
	}
	if opts.Time == nil {
		opts.Time = SystemTimeProvider{}
	}
	if opts.Epoch.IsZero() {
		opts.Epoch = opts.Time.Now()
	}

	w, h := screen.Size()
	manager := tui.NewManager(w, h)
	controls := NewControls(manager, planets, opts.InitialSpeed)
	center := physics.Center(constants.ScreenWidth, constants.ScreenHeight)
	state := NewSimulationState(planets, center, controls.Speed, opts.Epoch)

	d := &Driver{
		screen:   screen,
		state:    state,
		ui:       manager,
		controls: controls,
		focus:    NewFocus(state, controls.PlanetToggles(), controls.Back),
		canvas:   render.NewCanvas(constants.ScreenWidth, constants.ScreenHeight, w, canvasRows(h)),
		sound:    opts.Sound,
		metrics:  opts.Metrics,
		clock:    opts.Time,
		interval: opts.FrameInterval,
		onCrash:  opts.CrashHandler,
		done:     make(chan struct{}),
	}
	controls.Readout.SetText(Readout(state))
	return d, nil
}

func canvasRows(height int) int {
	// Control bar above, legend below
	rows := height - 2
	if rows < 0 {
		return 0
	}
	return rows
}

// State returns the simulation state
func (d *Driver) State() *SimulationState {
	return d.state
}

// Controls returns the driver's widgets
func (d *Driver) Controls() *Controls {
	return d.controls
}

// Focus returns the focus controller
func (d *Driver) Focus() *Focus {
	return d.focus
}

// Phase returns the lifecycle state
func (d *Driver) Phase() Phase {
	return d.phase
}

// Frames returns the number of frames presented
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Frame runs one iteration: time increment, input, reactions, draw, present.
// Returns false once the driver has terminated; a quit event ends the frame before drawing.
func (d *Driver) Frame(events []tcell.Event) bool {
	if d.phase == PhaseTerminated {
		return false
	}

	start := d.clock.Now()
	increment := d.state.Increment()

	for _, ev := range events {
		if rs, ok := ev.(*tcell.EventResize); ok {
			d.resize(rs.Size())
		}
		for _, ue := range d.ui.ProcessEvent(ev) {
			if ue.Kind == tui.EventQuit {
				d.Shutdown()
				return false
			}
			d.dispatch(ue)
		}
	}

	d.draw(increment, start)
	d.frames++
	d.metrics.ObserveFrame(d.clock.Now().Sub(start), d.state.Speed.Value())
	return true
}

// dispatch reacts to semantic button events; slider changes are read next frame
func (d *Driver) dispatch(ev tui.Event) {
	if ev.Kind != tui.EventButtonPressed {
		return
	}

	switch {
	case ev.ID == ButtonRealTime:
		d.state.RealTime()
		d.sound.Play(audio.CueRealTime)

	case ev.ID == ButtonBack:
		d.focus.Back()
		d.metrics.FocusChanged("system")
		d.sound.Play(audio.CueBack)

	case strings.HasPrefix(ev.ID, planetPrefix):
		p := d.state.Planet(strings.TrimPrefix(ev.ID, planetPrefix))
		if p == nil {
			return
		}
		d.focus.Select(p)
		d.metrics.FocusChanged(p.Name)
		d.sound.Play(audio.CueSelect)
	}
}

func (d *Driver) resize(width, height int) {
	d.ui.Resize(width, height)
	d.controls.Layout(width, height)
	d.canvas.Resize(width, canvasRows(height))
	d.screen.Sync()
}

func (d *Driver) draw(increment float64, now time.Time) {
	c := d.canvas
	center := d.state.Center

	c.Clear()
	c.FillCircle(center, constants.SunRadius, tcell.ColorYellow)

	if p := d.state.Focused; p != nil {
		c.FillCircle(center, constants.PlanetRadius, p.Color)
	} else {
		d.state.Advance(increment)
		for _, p := range d.state.Planets {
			c.LineStrip(p.Path(), p.Color)
			c.FillCircle(p.Position(center), constants.PlanetRadius, p.Color)
		}
	}

	w, h := d.screen.Size()
	d.blankRow(constants.ControlBarRow, w)
	c.Present(d.screen, canvasTop)
	d.blankRow(h-1, w)

	var elapsed time.Duration
	if !d.lastFrame.IsZero() {
		elapsed = now.Sub(d.lastFrame)
	}
	d.lastFrame = now

	d.ui.Update(elapsed)
	d.ui.Draw(d.screen)
	d.controls.Readout.SetText(Readout(d.state))

	d.screen.Show()
}

// blankRow clears a widget row so hidden widgets leave nothing behind
func (d *Driver) blankRow(y, width int) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for x := 0; x < width; x++ {
		d.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Run presents frames at the configured interval until quit or ctx cancellation.
// Input is read on a separate goroutine into a queue drained at the start of each frame.
func (d *Driver) Run(ctx context.Context) error {
	events := make(chan tcell.Event, constants.EventQueueSize)
	go d.poll(events)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	batch := make([]tcell.Event, 0, 16)
	for {
		var closed bool
		batch, closed = drain(events, batch[:0])
		if !d.Frame(batch) {
			return nil
		}
		if closed {
			// Input source is gone (terminal closed)
			d.Shutdown()
			return nil
		}

		select {
		case <-ctx.Done():
			d.Shutdown()
			return nil
		case <-ticker.C:
		}
	}
}

// drain appends every queued event without blocking
func drain(events <-chan tcell.Event, batch []tcell.Event) ([]tcell.Event, bool) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return batch, true
			}
			batch = append(batch, ev)
		default:
			return batch, false
		}
	}
}

func (d *Driver) poll(out chan<- tcell.Event) {
	defer close(out)
	defer func() {
		if r := recover(); r != nil && d.onCrash != nil {
			d.onCrash(r)
		}
	}()

	for {
		ev := d.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-d.done:
			return
		}
	}
}

// Shutdown releases the screen and moves to PhaseTerminated. Safe to call multiple times.
func (d *Driver) Shutdown() {
	d.phase = PhaseTerminated
	d.finiOnce.Do(func() {
		close(d.done)
		d.screen.Fini()
	})
}
