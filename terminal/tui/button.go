package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// pressFlash is how long a pressed button stays highlighted
const pressFlash = 150 * time.Millisecond

// Button is a pressable widget with enable state.
// A disabled button never emits presses; with HideWhenDisabled it is not drawn either.
type Button struct {
	ID     string
	Text   string
	Hotkey rune        // 0 for none
	Color  tcell.Color // Label color, ColorDefault uses the theme

	HideWhenDisabled bool

	rect    Rect
	enabled bool
	armed   bool          // mouse went down on this button
	flash   time.Duration // remaining highlight after a press
}

// NewButton creates an enabled button
func NewButton(id, text string, rect Rect, hotkey rune) *Button {
	return &Button{
		ID:      id,
		Text:    text,
		Hotkey:  hotkey,
		Color:   tcell.ColorDefault,
		rect:    rect,
		enabled: true,
	}
}

func (b *Button) Enable() {
	b.enabled = true
}

// Disable also cancels a press in progress
func (b *Button) Disable() {
	b.enabled = false
	b.armed = false
	b.flash = 0
}

func (b *Button) Enabled() bool {
	return b.enabled
}

// Visible reports whether the button is drawn
func (b *Button) Visible() bool {
	return b.enabled || !b.HideWhenDisabled
}

func (b *Button) Rect() Rect {
	return b.rect
}

// SetRect moves the button, used on relayout after a resize
func (b *Button) SetRect(r Rect) {
	b.rect = r
}

func (b *Button) draw(r Region, theme Theme) {
	fg := b.Color
	if fg == tcell.ColorDefault {
		fg = theme.ButtonFg
	}
	bg := theme.ButtonBg
	switch {
	case !b.enabled:
		fg = theme.DisabledFg
	case b.armed || b.flash > 0:
		bg = theme.PressedBg
	}

	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	r.Text(0, 0, Center(b.Text, b.rect.W), style)
}
