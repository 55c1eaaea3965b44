package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Surface is the cell-addressable output shared by the canvas and widgets
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// Screen is the subset of tcell.Screen the frame driver needs
type Screen interface {
	Surface
	Show()
	Sync()
	Fini()
	PollEvent() tcell.Event
}

// tcell reads these at screen creation: TCELL_TRUECOLOR=disable forces palette
// output, COLORTERM=truecolor adds RGB capability to the terminfo entry
const (
	truecolorEnv = "TCELL_TRUECOLOR"
	colortermEnv = "COLORTERM"
)

// applyColorMode sets the environment tcell consults for color depth
func applyColorMode(mode ColorMode) {
	switch mode {
	case ColorMode256:
		os.Setenv(truecolorEnv, "disable")
	case ColorModeTrueColor:
		if os.Getenv(truecolorEnv) == "disable" {
			os.Unsetenv(truecolorEnv)
		}
		os.Setenv(colortermEnv, "truecolor")
	}
}

// New creates and initializes a tcell screen with mouse reporting enabled
func New(mode ColorMode) (tcell.Screen, error) {
	applyColorMode(mode)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// EmergencyReset restores the terminal when the screen could not be finalized
func EmergencyReset(w io.Writer) {
	io.WriteString(w, "\x1b[?1000l\x1b[?1002l\x1b[?1006l") // mouse off
	io.WriteString(w, "\x1b[?25h")                         // cursor on
	io.WriteString(w, "\x1b[?1049l")                       // leave alt screen
	io.WriteString(w, "\x1b[0m")

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
