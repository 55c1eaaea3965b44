package constants

// Simulation Clock
const (
	// TimeScale converts the control value into a per-frame time increment (seconds per year)
	TimeScale = 3.154e7

	// RealTimeValue is the control value forced by the real-time override, roughly one day per tick
	RealTimeValue = 0.003

	// SpeedMin is the lower bound of the control value range
	SpeedMin = 0.0

	// SpeedMax is the upper bound of the control value range
	SpeedMax = 100.0

	// SpeedDefault is the control value at startup
	SpeedDefault = 1.0
)

// Orbit Geometry
const (
	// OrbitSamples is the number of 1-degree samples taken from 0 to 360 inclusive
	OrbitSamples = 361

	// OrbitPathLen is OrbitSamples plus the explicit closing point
	OrbitPathLen = OrbitSamples + 1

	// DaysPerYear converts Earth revolutions into simulated calendar days
	DaysPerYear = 365.25
)
