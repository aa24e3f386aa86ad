package layout

import "logosphere/internal/token"

// moveSentence snaps a sentence token toward its slot.
func (e *Engine) moveSentence(t *token.Token) {
	t.Current = t.Current.Lerp(t.Target, e.cfg.SentenceLerp)
}

// moveIdle floats a free token around its base on two noise channels,
// plus any transient avoidance offset. A drift target that would enter the
// help rectangle is replaced by an outward push from the rectangle.
func (e *Engine) moveIdle(t *token.Token) {
	ts := e.elapsed * t.Speed
	drift := token.Vec2{
		X: clampUnit(e.noise.Noise2D(t.Phase, ts)) * t.Amplitude,
		Y: clampUnit(e.noise.Noise2D(t.Phase+noiseChannelOffset, ts)) * t.Amplitude,
	}
	goal := t.Target.Add(drift)
	if e.field.inHelp(goal) {
		out := goal.Sub(e.field.Help().Center()).Unit()
		if out.IsZero() {
			out = token.Vec2{Y: 1}
		}
		t.Avoid = t.Avoid.Add(out.Scale(e.cfg.HelpImpulse))
		t.AvoidTimer = e.cfg.AvoidFrames
		goal = t.Target
	}
	t.Current = t.Current.Lerp(goal.Add(t.Avoid), e.cfg.IdleLerp)

	if t.AvoidTimer > 0 {
		t.AvoidTimer--
		t.Avoid = t.Avoid.Scale(e.cfg.AvoidDecay)
	} else {
		t.Avoid = token.Vec2{}
	}
}

// avoid pushes free tokens out of the zone around each sentence token. The
// zone is the sentence word's box grown downward to cover its role labels.
func (e *Engine) avoid() {
	extra := e.metrics.LineHeight() * e.cfg.OptionRows
	for _, s := range e.tokens {
		if !s.InSentence() {
			continue
		}
		zone := s.Bounds(e.metrics)
		zone.H += extra
		zc := zone.Center()
		for _, o := range e.tokens {
			if o == s || o.InSentence() {
				continue
			}
			ob := o.Bounds(e.metrics)
			if !zone.Intersects(ob) {
				continue
			}
			dir := ob.Center().Sub(zc).Unit()
			if dir.IsZero() {
				dir = token.Vec2{Y: 1}
			}
			o.Avoid = o.Avoid.Add(dir.Scale(e.cfg.AvoidImpulse))
			o.AvoidTimer = e.cfg.AvoidFrames
		}
	}
}

// separate pushes overlapping free tokens apart along the axis of greater
// overlap, half the overlap each. Sentence tokens are never moved.
func (e *Engine) separate() {
	for i, a := range e.tokens {
		if a.InSentence() {
			continue
		}
		for _, b := range e.tokens[i+1:] {
			if b.InSentence() {
				continue
			}
			ab, bb := a.Bounds(e.metrics), b.Bounds(e.metrics)
			ox, oy := ab.Overlap(bb)
			if ox <= 0 || oy <= 0 {
				continue
			}
			d := bb.Center().Sub(ab.Center())
			if ox > oy {
				push := ox / 2 * sign(d.X)
				a.Current.X -= push
				b.Current.X += push
			} else {
				push := oy / 2 * sign(d.Y)
				a.Current.Y -= push
				b.Current.Y += push
			}
		}
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func clampUnit(v float64) float64 {
	return max(-1, min(1, v))
}
