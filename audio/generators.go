package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(48000)

	speakerBufferDurationMs = 100

	errorBuzzDurationMs  = 150
	errorBuzzFrequencyHz = 120.0
	errorBuzzAmplitude   = 0.2

	whirrCycleDurationMs = 400
	whirrFreqMinHz       = 90.0
	whirrFreqMaxHz       = 240.0
	whirrBaseAmplitude   = 0.12

	chimeDurationMs   = 900
	chimeNoteMs       = 150
	chimeAmplitude    = 0.25
	chimeDecayPerSec  = 4.0
	chimeRootFreqHz   = 523.25 // C5
	chimeFadeInPerSec = 200.0
)

// chimeIntervals are the arpeggio steps above the root, in semitones
var chimeIntervals = []float64{0, 4, 7, 12}

// WhirrGenerator produces the endless ratcheting sweep of a spinning reel
type WhirrGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

// NewWhirrGenerator creates a whirr generator
func NewWhirrGenerator(sr beep.SampleRate) *WhirrGenerator {
	return &WhirrGenerator{
		sr:      sr,
		samples: sr.N(time.Millisecond * whirrCycleDurationMs),
	}
}

func (g *WhirrGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Sweep up and back every cycle
		cyclePos := float64(g.pos%g.samples) / float64(g.samples)
		freq := whirrFreqMinHz + (whirrFreqMaxHz-whirrFreqMinHz)*math.Sin(cyclePos*math.Pi)

		// Short clicks riding on the sweep, eight per cycle
		click := math.Exp(-math.Mod(cyclePos*8, 1) * 12)
		sample := whirrBaseAmplitude * (0.6 + 0.4*click) * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *WhirrGenerator) Err() error {
	return nil
}

// ChimeGenerator plays a rising major arpeggio with exponential decay per note
type ChimeGenerator struct {
	sr      beep.SampleRate
	pos     int
	perNote int
}

// NewChimeGenerator creates a chime generator
func NewChimeGenerator(sr beep.SampleRate) *ChimeGenerator {
	return &ChimeGenerator{
		sr:      sr,
		perNote: sr.N(time.Millisecond * chimeNoteMs),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sample := 0.0
		// Every note that has started keeps ringing
		for k, step := range chimeIntervals {
			start := k * g.perNote
			if g.pos < start {
				break
			}
			t := float64(g.pos-start) / float64(g.sr)
			freq := chimeRootFreqHz * math.Pow(2, step/12)
			env := math.Min(t*chimeFadeInPerSec, 1) * math.Exp(-t*chimeDecayPerSec)
			sample += env * math.Sin(2*math.Pi*freq*t)
		}
		sample *= chimeAmplitude / float64(len(chimeIntervals))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Stacked harmonics for a harsh edge
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * errorBuzzAmplitude

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
