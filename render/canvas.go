package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/solar-orbits/physics"
	"github.com/lixenwraith/solar-orbits/terminal"
)

// Half-block glyphs: each cell carries a top and a bottom sample
const (
	glyphUpper = '▀'
	glyphLower = '▄'
)

// empty marks an unpainted sample
const empty = tcell.ColorDefault

// Canvas is a logical-pixel raster projected onto a grid of cols x rows*2 samples.
// Projection scales uniformly and centers the logical surface inside the grid.
type Canvas struct {
	logicalW, logicalH float64

	cols, rows int
	samplesH   int
	pixels     []tcell.Color

	scale      float64
	offX, offY float64

	Bg tcell.Color
}

// NewCanvas creates a canvas for a logicalW x logicalH surface drawn into cols x rows cells
func NewCanvas(logicalW, logicalH, cols, rows int) *Canvas {
	c := &Canvas{
		logicalW: float64(logicalW),
		logicalH: float64(logicalH),
		Bg:       tcell.ColorBlack,
	}
	c.Resize(cols, rows)
	return c
}

// Resize recomputes the projection for a new cell area
func (c *Canvas) Resize(cols, rows int) {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	c.cols, c.rows = cols, rows
	c.samplesH = rows * 2
	c.pixels = make([]tcell.Color, cols*c.samplesH)

	sx := float64(cols) / c.logicalW
	sy := float64(c.samplesH) / c.logicalH
	c.scale = math.Min(sx, sy)
	c.offX = (float64(cols) - c.logicalW*c.scale) / 2
	c.offY = (float64(c.samplesH) - c.logicalH*c.scale) / 2
	c.Clear()
}

// Size returns the cell area and sample grid height
func (c *Canvas) Size() (cols, rows int) {
	return c.cols, c.rows
}

// Scale returns samples per logical pixel
func (c *Canvas) Scale() float64 {
	return c.scale
}

// Clear resets every sample to empty
func (c *Canvas) Clear() {
	for i := range c.pixels {
		c.pixels[i] = empty
	}
}

// Project maps a logical point to sample coordinates
func (c *Canvas) Project(p physics.Point) (x, y int) {
	return int(math.Floor(c.offX + p.X*c.scale)), int(math.Floor(c.offY + p.Y*c.scale))
}

// At returns the sample color at (x, y), empty outside the grid
func (c *Canvas) At(x, y int) tcell.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.samplesH {
		return empty
	}
	return c.pixels[y*c.cols+x]
}

func (c *Canvas) set(x, y int, col tcell.Color) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.samplesH {
		return
	}
	c.pixels[y*c.cols+x] = col
}

// FillCircle paints a disc of logical radius around center. A disc smaller than
// one sample still paints its center sample.
func (c *Canvas) FillCircle(center physics.Point, radius float64, col tcell.Color) {
	cx := c.offX + center.X*c.scale
	cy := c.offY + center.Y*c.scale
	r := radius * c.scale

	c.set(int(math.Floor(cx)), int(math.Floor(cy)), col)
	if r < 0.5 {
		return
	}

	x0, x1 := int(math.Floor(cx-r)), int(math.Ceil(cx+r))
	y0, y1 := int(math.Floor(cy-r)), int(math.Ceil(cy+r))
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.set(x, y, col)
			}
		}
	}
}

// LineStrip connects consecutive points with one-sample lines in a dimmed
// shade of col, leaving samples already painted by bodies untouched
func (c *Canvas) LineStrip(points []physics.Point, col tcell.Color) {
	if len(points) < 2 {
		return
	}
	trace := Dim(col, TraceDim)
	px, py := c.Project(points[0])
	for _, p := range points[1:] {
		x, y := c.Project(p)
		c.line(px, py, x, y, trace)
		px, py = x, y
	}
}

// line draws with Bresenham's algorithm
func (c *Canvas) line(x0, y0, x1, y1 int, col tcell.Color) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		if c.At(x0, y0) == empty {
			c.set(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Present writes the samples as half-block cells starting at screen row top
func (c *Canvas) Present(s terminal.Surface, top int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			upper := c.pixels[(row*2)*c.cols+col]
			lower := c.pixels[(row*2+1)*c.cols+col]

			ch, style := c.cell(upper, lower)
			s.SetContent(col, top+row, ch, nil, style)
		}
	}
}

func (c *Canvas) cell(upper, lower tcell.Color) (rune, tcell.Style) {
	base := tcell.StyleDefault.Background(c.Bg)
	switch {
	case upper == empty && lower == empty:
		return ' ', base
	case lower == empty:
		return glyphUpper, base.Foreground(upper)
	case upper == empty:
		return glyphLower, base.Foreground(lower)
	default:
		return glyphUpper, tcell.StyleDefault.Foreground(upper).Background(lower)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
