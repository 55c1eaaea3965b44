package constants

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Tone Timing
const (
	// CueStepDuration is the length of each note in a cue
	CueStepDuration = 60 * time.Millisecond

	// CueGain attenuates cue tones (effects.Gain multiplies samples by 1+gain)
	CueGain = -0.75
)
