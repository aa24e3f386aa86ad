// Package audio plays a short chime for each sentence change: a pitch per
// role when a word joins or is reassigned, a low note when one leaves.
package audio

import (
	"log/slog"
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Note lengths.
const (
	selectLength = 600 * time.Millisecond
	optionLength = 300 * time.Millisecond
	removeLength = 400 * time.Millisecond
)

// removeFreq is the note played when a word leaves the sentence.
const removeFreq = 261.63

// Pitch returns the chime frequency for role.
func Pitch(r lexicon.Role) float64 {
	switch r {
	case lexicon.RoleSubject:
		return 523.25
	case lexicon.RoleVerb:
		return 659.25
	case lexicon.RoleObject:
		return 783.99
	case lexicon.RoleAdverb:
		return 987.77
	}
	return 440
}

// Chimes mixes chimes into the speaker. Without Start it still mixes, so
// the output can be streamed directly.
type Chimes struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	started bool
	log     *slog.Logger
}

// New creates a chime player. volume is a base-2 gain.
func New(volume float64, log *slog.Logger) *Chimes {
	if log == nil {
		log = slog.Default()
	}
	return &Chimes{mixer: &beep.Mixer{}, volume: volume, log: log}
}

// Start opens the speaker and begins playback of the mixer.
func (c *Chimes) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(keepAlive(c.mixer))
	c.started = true
	return nil
}

// Close silences pending chimes and releases the speaker.
func (c *Chimes) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started {
		c.mixer.Clear()
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.started = false
}

// Handle plays the chime for a sentence notification.
func (c *Chimes) Handle(e event.Event) {
	switch e := e.(type) {
	case event.WordSelected:
		c.play(Pitch(e.Role), selectLength)
	case event.OptionChanged:
		c.play(Pitch(e.Role), optionLength)
	case event.WordRemoved:
		c.play(removeFreq, removeLength)
	}
}

// Mixer returns the output stream.
func (c *Chimes) Mixer() beep.Streamer { return c.mixer }

// Pending returns the number of chimes still sounding.
func (c *Chimes) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return c.mixer.Len()
}

func (c *Chimes) play(freq float64, d time.Duration) {
	s := &effects.Volume{
		Streamer: NewChime(freq, d, sampleRate),
		Base:     2,
		Volume:   c.volume,
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	c.mixer.Add(s)
	c.log.Debug("chime", "freq", freq, "len", d)
}

// keepAlive pads s with silence so the speaker never drops it.
func keepAlive(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, _ := s.Stream(samples)
		clear(samples[n:])
		return len(samples), true
	})
}
