package physics

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrDuplicatePlanet = errors.New("duplicate planet name")
	ErrInvalidPlanet   = errors.New("invalid planet")
)

// PlanetSpec is the construction record for a planet
type PlanetSpec struct {
	Name      string
	Distance  float64     // Orbital radius in logical pixels
	Color     tcell.Color // Body, trace and legend color
	RateRatio float64     // Angular speed relative to the time increment
}

// Planet is a body in uniform circular motion around the raster center.
// Angle is the only field mutated after construction.
type Planet struct {
	Name      string
	Distance  float64
	Color     tcell.Color
	RateRatio float64

	// Angle in degrees, grows without wrap; only sin/cos consume it
	Angle float64

	path []Point
}

// NewPlanet builds a planet at angle 0 and precomputes its orbit path once
func NewPlanet(spec PlanetSpec, center Point) *Planet {
	return &Planet{
		Name:      spec.Name,
		Distance:  spec.Distance,
		Color:     spec.Color,
		RateRatio: spec.RateRatio,
		path:      OrbitPath(spec.Distance, center),
	}
}

// Path returns the precomputed closed orbit trace. Callers must not modify it.
func (p *Planet) Path() []Point {
	return p.path
}

// Advance moves the planet by increment scaled by its rate ratio
func (p *Planet) Advance(increment float64) {
	p.Angle += increment * p.RateRatio
}

// Position returns the current screen position around center
func (p *Planet) Position(center Point) Point {
	return PositionAt(p.Angle, p.Distance, center)
}

// NewSystem builds every planet around the center of a width x height raster
func NewSystem(specs []PlanetSpec, width, height int) ([]*Planet, error) {
	center := Center(width, height)
	seen := make(map[string]struct{}, len(specs))
	planets := make([]*Planet, 0, len(specs))

	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidPlanet)
		}
		if _, dup := seen[s.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePlanet, s.Name)
		}
		if s.Distance <= 0 {
			return nil, fmt.Errorf("%w: %s distance %v must be positive", ErrInvalidPlanet, s.Name, s.Distance)
		}
		if s.RateRatio <= 0 {
			return nil, fmt.Errorf("%w: %s rate ratio %v must be positive", ErrInvalidPlanet, s.Name, s.RateRatio)
		}
		seen[s.Name] = struct{}{}
		planets = append(planets, NewPlanet(s, center))
	}
	return planets, nil
}
