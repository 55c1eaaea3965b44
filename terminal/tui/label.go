package tui

import "github.com/gdamore/tcell/v2"

// Label displays a single line of text, truncated to its width
type Label struct {
	rect Rect
	text string
	Fg   tcell.Color
}

// NewLabel creates a label; Fg defaults to the manager theme when left as ColorDefault
func NewLabel(rect Rect, text string) *Label {
	return &Label{rect: rect, text: text, Fg: tcell.ColorDefault}
}

func (l *Label) SetText(text string) {
	l.text = text
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetRect(r Rect) {
	l.rect = r
}

func (l *Label) draw(r Region, theme Theme) {
	fg := l.Fg
	if fg == tcell.ColorDefault {
		fg = theme.Fg
	}
	style := tcell.StyleDefault.Foreground(fg).Background(theme.Bg)
	r.Fill(' ', style)
	r.Text(0, 0, Truncate(l.text, l.rect.W), style)
}
