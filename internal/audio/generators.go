package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// The generators below synthesize all game sounds; there are no audio
// assets to load or decode. Each one implements beep.Streamer.

// blipGenerator produces the eat sound: a short two-step rising chirp.
type blipGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
}

func newBlipGenerator(sr beep.SampleRate, volume float64) *blipGenerator {
	return &blipGenerator{sr: sr, volume: volume}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	half := g.sr.N(time.Millisecond * 40)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Two square-ish tones an octave apart, coin style.
		freq := 660.0
		if g.pos >= half {
			freq = 1320.0
		}
		sample := 0.3 * math.Sin(2*math.Pi*freq*t)
		sample += 0.1 * math.Sin(2*math.Pi*freq*2*t)

		// Quick release so the blip doesn't click when cut.
		env := 1.0 - float64(g.pos%half)/float64(half)
		sample *= env * g.volume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// sweepGenerator produces the game-over sound: a falling tone with a slow
// decay envelope.
type sweepGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
}

func newSweepGenerator(sr beep.SampleRate, volume float64) *sweepGenerator {
	return &sweepGenerator{sr: sr, volume: volume}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep from 440Hz down to 110Hz over the first 600ms.
		progress := math.Min(t/0.6, 1.0)
		freq := 440.0 - 330.0*progress

		env := math.Exp(-t * 4)
		sample := env * g.volume * (0.35*math.Sin(2*math.Pi*freq*t) +
			0.15*math.Sin(2*math.Pi*freq*0.5*t))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}

// musicGenerator produces the looping background track: a simple minor
// arpeggio over a soft bass pulse. The pattern wraps intrinsically, so no
// seekable loop wrapper is needed.
type musicGenerator struct {
	sr      beep.SampleRate
	volume  float64
	pos     int
	pattern []float64 // Note frequencies, one per step
	step    int       // Samples per pattern step
}

func newMusicGenerator(sr beep.SampleRate, volume float64) *musicGenerator {
	return &musicGenerator{
		sr:     sr,
		volume: volume,
		// A minor arpeggio up and down: A3 C4 E4 A4 E4 C4.
		pattern: []float64{220.0, 261.63, 329.63, 440.0, 329.63, 261.63},
		step:    sr.N(time.Millisecond * 250),
	}
}

func (g *musicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	cycle := g.step * len(g.pattern)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		beatPos := g.pos % cycle
		note := g.pattern[beatPos/g.step]

		// Per-note envelope: soft attack, fade before the next note.
		notePos := float64(beatPos%g.step) / float64(g.step)
		env := math.Min(notePos*8, 1.0) * (1.0 - notePos*0.7)

		melody := 0.18 * env * math.Sin(2*math.Pi*note*t)
		bass := 0.08 * math.Sin(2*math.Pi*110.0*t)

		sample := (melody + bass) * g.volume
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *musicGenerator) Err() error {
	return nil
}
