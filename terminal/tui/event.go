package tui

// EventKind classifies semantic UI events
type EventKind uint8

const (
	EventButtonPressed EventKind = iota
	EventSliderChanged
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventButtonPressed:
		return "button-pressed"
	case EventSliderChanged:
		return "slider-changed"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is emitted by the Manager after translating raw input
type Event struct {
	Kind  EventKind
	ID    string  // Widget ID, empty for quit
	Value float64 // Slider value for EventSliderChanged
}
