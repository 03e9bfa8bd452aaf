package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// toneGenerator produces a fixed-frequency sine with a linear decay
// envelope, used for the short percussive effects
type toneGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &toneGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		decay := 1.0 - float64(g.pos)/float64(g.total)
		v := 0.25 * decay * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// sweepGenerator glides linearly between two frequencies; rising sweeps
// read as rewards, falling ones as setbacks
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func newSweep(sr beep.SampleRate, from, to float64, d time.Duration) beep.Streamer {
	return &sweepGenerator{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		// Accumulate phase so the frequency glide stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := 0.22 * (1.0 - progress*0.6)
		v := envelope * math.Sin(g.phase)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// buzzGenerator produces a low square-ish buzz for the life-lost effect
type buzzGenerator struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

func newBuzz(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &buzzGenerator{sr: sr, freq: freq, total: sr.N(d)}
}

func (g *buzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		decay := 1.0 - float64(g.pos)/float64(g.total)

		v := 0.2 * decay
		if math.Sin(2*math.Pi*g.freq*t) < 0 {
			v = -v
		}
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzzGenerator) Err() error { return nil }
