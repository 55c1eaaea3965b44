package tui

import "github.com/gdamore/tcell/v2"

// Theme defines semantic colors for widgets
type Theme struct {
	Bg         tcell.Color
	Fg         tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
	DisabledFg tcell.Color
	PressedBg  tcell.Color
	TrackFg    tcell.Color
	FillFg     tcell.Color
}

// DefaultTheme provides reasonable defaults on a black background
var DefaultTheme = Theme{
	Bg:         tcell.ColorBlack,
	Fg:         tcell.NewRGBColor(200, 200, 200),
	ButtonBg:   tcell.NewRGBColor(50, 50, 60),
	ButtonFg:   tcell.NewRGBColor(230, 230, 230),
	DisabledFg: tcell.NewRGBColor(90, 90, 100),
	PressedBg:  tcell.NewRGBColor(60, 80, 120),
	TrackFg:    tcell.NewRGBColor(70, 70, 85),
	FillFg:     tcell.NewRGBColor(80, 160, 220),
}
