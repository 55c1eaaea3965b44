package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/solar-orbits/constants"
)

// Cue identifies a feedback sound
type Cue uint8

const (
	CueSelect Cue = iota
	CueBack
	CueRealTime
)

func (c Cue) String() string {
	switch c {
	case CueSelect:
		return "select"
	case CueBack:
		return "back"
	case CueRealTime:
		return "realtime"
	default:
		return "unknown"
	}
}

// cueNotes lists the note frequencies (Hz) each cue plays in sequence
var cueNotes = map[Cue][]float64{
	CueSelect:   {660, 880},
	CueBack:     {880, 660},
	CueRealTime: {520},
}

// Tone builds a finite, attenuated streamer for the cue at the given rate
func Tone(c Cue, rate beep.SampleRate) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("unknown cue %d", c)
	}

	step := rate.N(constants.CueStepDuration)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		sine, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s tone %.0fHz: %w", c, freq, err)
		}
		parts = append(parts, beep.Take(step, sine))
	}

	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: constants.CueGain}, nil
}

// CueDuration returns the playback length of a cue
func CueDuration(c Cue) time.Duration {
	return time.Duration(len(cueNotes[c])) * constants.CueStepDuration
}
