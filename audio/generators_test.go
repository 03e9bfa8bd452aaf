package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/breakout/core"
)

// drain pulls every sample out of a streamer and returns the count plus the
// peak absolute amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	var buf [512][2]float64
	total := 0
	peak := 0.0

	for {
		n, ok := s.Stream(buf[:])
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v > peak {
					peak = v
				} else if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
		if total > int(sampleRate)*10 {
			t.Fatal("streamer never terminated")
		}
	}
}

func TestGeneratorsTerminate(t *testing.T) {
	sr := sampleRate
	tests := []struct {
		name     string
		streamer beep.Streamer
		duration time.Duration
	}{
		{"Tone", newTone(sr, 880, 40*time.Millisecond), 40 * time.Millisecond},
		{"Rising sweep", newSweep(sr, 440, 880, 200*time.Millisecond), 200 * time.Millisecond},
		{"Falling sweep", newSweep(sr, 660, 110, 700*time.Millisecond), 700 * time.Millisecond},
		{"Buzz", newBuzz(sr, 120, 300*time.Millisecond), 300 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, peak := drain(t, tt.streamer)

			if want := sr.N(tt.duration); total != want {
				t.Errorf("produced %d samples, want %d", total, want)
			}
			if peak > 1.0 {
				t.Errorf("peak amplitude %g clips", peak)
			}
			if peak == 0 {
				t.Error("streamer produced silence")
			}
			if err := tt.streamer.Err(); err != nil {
				t.Errorf("streamer error: %v", err)
			}

			// A finished streamer stays finished
			var buf [4][2]float64
			if n, ok := tt.streamer.Stream(buf[:]); n != 0 || ok {
				t.Error("drained streamer produced more samples")
			}
		})
	}
}

func TestEffectMapping(t *testing.T) {
	// Every sound id must resolve to an effect so no game event is silent
	for s := core.SoundBounce; s < core.SoundTypeCount; s++ {
		if effectFor(s) == nil {
			t.Errorf("no effect for sound %v", s)
		}
	}

	if effectFor(core.SoundTypeCount) != nil {
		t.Error("out-of-range sound id resolved to an effect")
	}
}
