// Package audio plays the short sound cues of the game. Sound is optional:
// when the speaker cannot be opened every Play call is a no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone lengths.
const (
	noteLength  = 60 * time.Millisecond
	resetLength = 180 * time.Millisecond
)

// Chime plays the eat and reset cues through a shared mixer.
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewChime creates a chime. Call Initialize before playing.
func NewChime() *Chime {
	return &Chime{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (c *Chime) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// PlayEat plays a rising two-note blip.
func (c *Chime) PlayEat() {
	c.play(func() (beep.Streamer, error) { return eatStreamer(sampleRate) })
}

// PlayReset plays a low tone.
func (c *Chime) PlayReset() {
	c.play(func() (beep.Streamer, error) { return resetStreamer(sampleRate) })
}

func (c *Chime) play(build func() (beep.Streamer, error)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	s, err := build()
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// eatStreamer returns two short ascending sine notes.
func eatStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	low, err := tone(sr, 660, noteLength)
	if err != nil {
		return nil, err
	}
	high, err := tone(sr, 990, noteLength)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

func resetStreamer(sr beep.SampleRate) (beep.Streamer, error) {
	return tone(sr, 220, resetLength)
}

// tone returns a sine note of the given length at reduced volume.
func tone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(d), sine),
		Base:     2,
		Volume:   -2,
	}, nil
}
