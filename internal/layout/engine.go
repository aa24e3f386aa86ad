// Package layout owns every token position: one-time placement, idle
// floating, sentence slot animation, and the collision responses that keep
// words readable while they move.
package layout

import (
	"logosphere/internal/token"
	"math/rand"
	"time"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters for idle drift: smooth, low-octave noise.
const (
	noiseAlpha   = 2
	noiseBeta    = 2
	noiseOctaves = 3
	// noiseChannelOffset separates the X and Y noise channels of one token.
	noiseChannelOffset = 100
)

// Engine animates a fixed set of tokens on a Field.
type Engine struct {
	cfg     Config
	field   Field
	metrics token.Metrics
	rng     *rand.Rand
	noise   *perlin.Perlin

	tokens   []*token.Token
	sentence []*token.Token
	pending  bool // placement deferred until the field has area

	elapsed float64 // milliseconds of animation time
}

// New creates an engine with a zero-sized field; call Resize before Place.
func New(cfg Config, m token.Metrics, rng *rand.Rand) *Engine {
	return &Engine{
		cfg:     cfg,
		field:   NewField(0, 0, cfg),
		metrics: m,
		rng:     rng,
		noise:   perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, rng.Int63()),
	}
}

// Config returns the engine's tuning.
func (e *Engine) Config() Config { return e.cfg }

// Field returns the current canvas.
func (e *Engine) Field() Field { return e.field }

// Metrics returns the text metrics used for token boxes.
func (e *Engine) Metrics() token.Metrics { return e.metrics }

// Tokens returns the placed tokens in creation order.
func (e *Engine) Tokens() []*token.Token { return e.tokens }

// Resize changes the canvas size. Base positions are kept; sentence slots
// are recomputed. A zero or negative size leaves the engine idle until a
// usable size arrives, at which point any deferred placement runs.
func (e *Engine) Resize(w, h float64) {
	e.field = NewField(w, h, e.cfg)
	if e.field.Degenerate() {
		return
	}
	if e.pending {
		e.Place(e.tokens)
		return
	}
	e.UpdateSlots(e.sentence)
}

// Step advances one frame: motion, then sentence avoidance, then pairwise
// separation of free tokens.
func (e *Engine) Step(dt time.Duration) {
	e.elapsed += float64(dt) / float64(time.Millisecond)
	if e.field.Degenerate() || e.pending {
		return
	}
	for _, t := range e.tokens {
		if t.InSentence() {
			e.moveSentence(t)
		} else {
			e.moveIdle(t)
		}
	}
	e.avoid()
	e.separate()
}

func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}
