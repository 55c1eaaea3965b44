package physics

import (
	"math"

	"github.com/lixenwraith/solar-orbits/constants"
)

// Point is a position on the logical raster, in pixels
type Point struct {
	X, Y float64
}

// Center returns the midpoint of a width x height raster using integer halving
func Center(width, height int) Point {
	return Point{X: float64(width / 2), Y: float64(height / 2)}
}

// PositionAt returns the point on a circle of radius r around center at angleDeg degrees
func PositionAt(angleDeg, r float64, center Point) Point {
	rad := angleDeg * math.Pi / 180
	return Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// OrbitPath samples a circle of radius r at 1-degree steps from 0 to 360 inclusive
// and appends the first sample again so a line strip over the result is closed.
// Samples are truncated to whole pixels.
func OrbitPath(r float64, center Point) []Point {
	path := make([]Point, 0, constants.OrbitPathLen)
	for deg := 0; deg < constants.OrbitSamples; deg++ {
		p := PositionAt(float64(deg), r, center)
		path = append(path, Point{X: math.Trunc(p.X), Y: math.Trunc(p.Y)})
	}
	return append(path, path[0])
}
