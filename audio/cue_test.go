package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/solar-orbits/constants"
)

// drain streams s to exhaustion and returns sample count and peak amplitude
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	step := rate.N(constants.CueStepDuration)

	tests := []struct {
		cue   Cue
		notes int
	}{
		{CueSelect, 2},
		{CueBack, 2},
		{CueRealTime, 1},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s, err := Tone(tt.cue, rate)
			if err != nil {
				t.Fatalf("Tone failed: %v", err)
			}
			n, peak := drain(s)
			if n != step*tt.notes {
				t.Errorf("Expected %d samples, got %d", step*tt.notes, n)
			}
			if limit := 1 + constants.CueGain + 1e-9; peak > limit {
				t.Errorf("Expected peak <= %v, got %v", limit, peak)
			}
			if peak == 0 {
				t.Error("Expected audible samples")
			}
			if CueDuration(tt.cue) != constants.CueStepDuration*time.Duration(tt.notes) {
				t.Errorf("Unexpected duration %v", CueDuration(tt.cue))
			}
		})
	}
}

func TestToneRejectsAliasedRate(t *testing.T) {
	// 1kHz sample rate cannot carry a 520Hz tone
	if _, err := Tone(CueRealTime, beep.SampleRate(1000)); err == nil {
		t.Error("Expected error for frequency above Nyquist")
	}
}

func TestToneUnknownCue(t *testing.T) {
	if _, err := Tone(Cue(99), beep.SampleRate(8000)); err == nil {
		t.Error("Expected error for unknown cue")
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// Must not touch the speaker
	sm.Play(CueSelect)
	sm.Cleanup()

	var p Player = Silent{}
	p.Play(CueBack)
}
