package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// chime is a sine tone with a short linear attack and an exponential
// decay.
type chime struct {
	freq   float64
	rate   beep.SampleRate
	n      int
	pos    int
	attack int
	decay  float64 // per second
}

// NewChime returns a finite streamer of one chime.
func NewChime(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &chime{
		freq:   freq,
		rate:   rate,
		n:      n,
		attack: max(1, rate.N(5*time.Millisecond)),
		decay:  5 / d.Seconds(),
	}
}

func (c *chime) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.n {
		return 0, false
	}
	for i := range samples {
		if c.pos >= c.n {
			return i, true
		}
		t := float64(c.pos) / float64(c.rate)
		env := math.Exp(-c.decay * t)
		if c.pos < c.attack {
			env *= float64(c.pos) / float64(c.attack)
		}
		v := math.Sin(2*math.Pi*c.freq*t) * env
		samples[i][0] = v
		samples[i][1] = v
		c.pos++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
