package physics

import "github.com/gdamore/tcell/v2"

// rateRatio derives an angular-rate ratio from mean orbital speed (km/s)
// and orbital radius (millions of km)
func rateRatio(speed, radius float64) float64 {
	return speed / (radius * 10e5)
}

// EarthRateRatio is the reference rate used for simulated calendar time
var EarthRateRatio = rateRatio(29.8, 149.6)

// DefaultPlanets returns the eight planets, innermost first, 40px apart
func DefaultPlanets() []PlanetSpec {
	return []PlanetSpec{
		{Name: "Mercury", Distance: 40, Color: tcell.ColorGray, RateRatio: rateRatio(47.4, 57.9)},
		{Name: "Venus", Distance: 80, Color: tcell.ColorOrange, RateRatio: rateRatio(35, 108.2)},
		{Name: "Earth", Distance: 120, Color: tcell.ColorBlue, RateRatio: EarthRateRatio},
		{Name: "Mars", Distance: 160, Color: tcell.ColorRed, RateRatio: rateRatio(24.1, 228)},
		{Name: "Jupiter", Distance: 200, Color: tcell.ColorBrown, RateRatio: rateRatio(13.1, 778.5)},
		{Name: "Saturn", Distance: 240, Color: tcell.ColorGold, RateRatio: rateRatio(9.7, 1432)},
		{Name: "Uranus", Distance: 280, Color: tcell.ColorAqua, RateRatio: rateRatio(6.8, 2867)},
		{Name: "Neptune", Distance: 320, Color: tcell.ColorBlue, RateRatio: rateRatio(5.4, 4515)},
	}
}
