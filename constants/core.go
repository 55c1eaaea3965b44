package constants

import "time"

// Frame Loop Timing
const (
	// DefaultFPS is the frame rate cap used when no override is configured
	DefaultFPS = 60

	// MaxFPS is the upper bound accepted from configuration
	MaxFPS = 240

	// FrameUpdateInterval is the rendering frame interval at DefaultFPS (~16ms)
	FrameUpdateInterval = time.Second / DefaultFPS

	// EventQueueSize is the capacity of the buffered input queue drained each frame
	EventQueueSize = 256
)

// Logical Display Surface
const (
	// ScreenWidth is the logical raster width in pixels
	ScreenWidth = 800

	// ScreenHeight is the logical raster height in pixels
	ScreenHeight = 1000

	// SunRadius is the radius of the sun disc in logical pixels
	SunRadius = 10

	// PlanetRadius is the radius of every planet disc in logical pixels
	PlanetRadius = 5
)
