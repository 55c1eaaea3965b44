package constants

// UI Layout (terminal cells)
const (
	// ControlBarRow is the row holding the slider, readout and buttons
	ControlBarRow = 0

	// SliderX is the left edge of the speed slider
	SliderX = 1

	// SliderWidth is the track width of the speed slider
	SliderWidth = 20

	// ReadoutX is the left edge of the speed readout label
	ReadoutX = 23

	// ReadoutWidth fits the integer value, units and simulated date
	ReadoutWidth = 26

	// RealTimeButtonX is the left edge of the real-time button
	RealTimeButtonX = 50

	// BackButtonX is the left edge of the back button
	BackButtonX = 63

	// LegendButtonWidth is the width of each planet selector in the legend row
	LegendButtonWidth = 10

	// SliderStep is the arrow-key increment, SliderCoarseStep applies with Shift
	SliderStep       = 1.0
	SliderCoarseStep = 10.0
)

// UI Text
const (
	RealTimeButtonText = "1 Day/tick"
	BackButtonText     = "Back to Solar System"
	ReadoutDateLayout  = "2006-01-02"
)
