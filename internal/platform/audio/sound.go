// Package audio plays short synthesized cues for game events using the
// beep speaker. All cues are one-shot tones mixed into a single stream;
// there is no looping background audio.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Player owns the speaker and mixes event cues into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a sound player. Call Initialize before playing cues.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences the mixer. The speaker itself has no close; clearing
// the mixer ends all playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// play mixes a one-shot cue of the given duration.
func (p *Player) play(d time.Duration, g beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Add(beep.Take(sampleRate.N(d), g))
}

// Steer plays a quiet tick when the player changes direction.
func (p *Player) Steer() {
	p.play(time.Millisecond*40, NewToneGenerator(sampleRate, 660, 0.1))
}

// Score plays a short rising blip when a point is earned.
func (p *Player) Score() {
	p.play(time.Millisecond*120, NewSweepGenerator(sampleRate, 520, 880, time.Millisecond*120))
}

// GameOver plays a falling tone when the round ends in a collision.
func (p *Player) GameOver() {
	p.play(time.Millisecond*500, NewSweepGenerator(sampleRate, 440, 110, time.Millisecond*500))
}

// RoundStart plays a two-note chime when a round begins.
func (p *Player) RoundStart() {
	p.play(time.Millisecond*200, NewChimeGenerator(sampleRate, 440, 660, time.Millisecond*100))
}

// ToneGenerator generates a plain sine tone with a fade-in envelope.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

// NewToneGenerator creates a sine tone generator.
func NewToneGenerator(sr beep.SampleRate, freq, amp float64) *ToneGenerator {
	return &ToneGenerator{
		sr:   sr,
		freq: freq,
		amp:  amp,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Short fade-in to avoid a click at the start
		envelope := math.Min(t/0.005, 1.0)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// SweepGenerator generates a tone gliding linearly between two
// frequencies over the given duration, with an exponential decay.
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	phase    float64
	pos      int
}

// NewSweepGenerator creates a frequency sweep generator.
func NewSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.samples), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Track phase explicitly so the sweep stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := math.Exp(-progress * 3)
		sample := 0.2 * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}

// ChimeGenerator plays two notes back to back, the second after
// noteLen has elapsed.
type ChimeGenerator struct {
	sr            beep.SampleRate
	first, second float64
	noteSamples   int
	pos           int
}

// NewChimeGenerator creates a two-note chime generator.
func NewChimeGenerator(sr beep.SampleRate, first, second float64, noteLen time.Duration) *ChimeGenerator {
	return &ChimeGenerator{
		sr:          sr,
		first:       first,
		second:      second,
		noteSamples: sr.N(noteLen),
	}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := g.first
		notePos := g.pos
		if g.pos >= g.noteSamples {
			freq = g.second
			notePos = g.pos - g.noteSamples
		}
		t := float64(notePos) / float64(g.sr)

		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*10)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
