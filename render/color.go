package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// TraceDim is the blend factor toward black used for orbit traces
const TraceDim = 0.6

// Dim blends col toward black in Lab space by factor f (0 keeps col, 1 is black).
// Colors without an RGB value are returned unchanged.
func Dim(col tcell.Color, f float64) tcell.Color {
	r, g, b := col.RGB()
	if r < 0 || g < 0 || b < 0 {
		return col
	}
	src := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	out := src.BlendLab(colorful.Color{}, f).Clamped()
	dr, dg, db := out.RGB255()
	return tcell.NewRGBColor(int32(dr), int32(dg), int32(db))
}
