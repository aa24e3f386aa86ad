package layout

import (
	"logosphere/internal/token"
	"math"
)

// Report summarises one placement pass.
type Report struct {
	Placed int
	// Fallbacks counts tokens that exhausted the retry budget and were
	// dropped at an unchecked random position.
	Fallbacks int
}

// Place distributes tokens over the canvas and takes ownership of them.
// Tokens sharing a translation are scattered around a common grid cell when
// clustering is on. Placement on a degenerate field is deferred until
// Resize provides a usable size.
func (e *Engine) Place(tokens []*token.Token) Report {
	e.tokens = tokens
	e.sentence = nil
	if e.field.Degenerate() {
		e.pending = true
		return Report{}
	}
	e.pending = false

	var centers map[string]token.Vec2
	if e.cfg.Cluster {
		centers = e.clusterCenters(tokens)
	}
	center := e.field.CenterRect()

	var rep Report
	occupied := make([]token.Vec2, 0, len(tokens))
	for _, t := range tokens {
		t.Phase = e.rng.Float64() * 1000
		t.Amplitude = e.uniform(e.cfg.AmplitudeMin, e.cfg.AmplitudeMax)
		t.Speed = e.uniform(e.cfg.SpeedMin, e.cfg.SpeedMax)
		t.Avoid, t.AvoidTimer = token.Vec2{}, 0

		if c, ok := centers[t.Translation]; ok {
			t.Cluster, t.HasCluster = c, true
		} else {
			t.Cluster, t.HasCluster = token.Vec2{}, false
		}

		p, ok := e.search(occupied, t, false)
		if !ok {
			rep.Fallbacks++
			p = e.randomPoint()
		}
		t.PlaceAt(p)
		t.CenterCandidate = center.Contains(p)
		occupied = append(occupied, p)
		rep.Placed++
	}
	return rep
}

// clusterCenters lays distinct translations out on a grid of
// ceil(sqrt(n)) columns and returns each one's cell centre.
func (e *Engine) clusterCenters(tokens []*token.Token) map[string]token.Vec2 {
	var order []string
	seen := make(map[string]bool)
	for _, t := range tokens {
		if !seen[t.Translation] {
			seen[t.Translation] = true
			order = append(order, t.Translation)
		}
	}
	if len(order) == 0 {
		return nil
	}
	cols := int(math.Ceil(math.Sqrt(float64(len(order)))))
	rows := (len(order) + cols - 1) / cols
	in := e.field.Inner()
	cw, ch := in.W/float64(cols), in.H/float64(rows)

	out := make(map[string]token.Vec2, len(order))
	for i, tr := range order {
		out[tr] = token.Vec2{
			X: in.X + (float64(i%cols)+0.5)*cw,
			Y: in.Y + (float64(i/cols)+0.5)*ch,
		}
	}
	return out
}

// search runs the bounded-retry placement for t. Candidates are drawn around
// t's cluster centre when it has one, otherwise anywhere inside the margins.
// A candidate is rejected when it leaves the margins, lands in the help
// rectangle, lands in the centre rectangle (avoidCenter only), or comes
// closer than MinDistance to an occupied point.
func (e *Engine) search(occupied []token.Vec2, t *token.Token, avoidCenter bool) (token.Vec2, bool) {
	in := e.field.Inner()
	center := e.field.CenterRect()
	for range e.cfg.PlacementAttempts {
		var p token.Vec2
		if t.HasCluster {
			angle := e.rng.Float64() * 2 * math.Pi
			d := e.uniform(e.cfg.ClusterMin, e.cfg.ClusterMax)
			p = t.Cluster.Add(token.Vec2{X: math.Cos(angle) * d, Y: math.Sin(angle) * d})
		} else {
			p = e.randomPoint()
		}
		if !in.Contains(p) || e.field.inHelp(p) {
			continue
		}
		if avoidCenter && center.Contains(p) {
			continue
		}
		if tooClose(p, occupied, e.cfg.MinDistance) {
			continue
		}
		return p, true
	}
	return token.Vec2{}, false
}

func tooClose(p token.Vec2, occupied []token.Vec2, minDist float64) bool {
	for _, o := range occupied {
		if p.Dist(o) < minDist {
			return true
		}
	}
	return false
}

// randomPoint returns a uniform point inside the margins.
func (e *Engine) randomPoint() token.Vec2 {
	in := e.field.Inner()
	return token.Vec2{X: in.X + e.rng.Float64()*in.W, Y: in.Y + e.rng.Float64()*in.H}
}

// outsideReserved returns a point that is in neither the centre nor the
// help rectangle, ignoring spacing. It samples the strips of the canvas
// around the centre rectangle and falls back to fixed corners.
func (e *Engine) outsideReserved() token.Vec2 {
	in := e.field.Inner()
	c := e.field.CenterRect()
	ok := func(p token.Vec2) bool { return !c.Contains(p) && !e.field.inHelp(p) }

	strips := []token.Rect{
		{X: in.X, Y: in.Y, W: in.W, H: c.Y - in.Y},                     // above
		{X: in.X, Y: c.Y + c.H, W: in.W, H: in.Y + in.H - (c.Y + c.H)}, // below
		{X: in.X, Y: c.Y, W: c.X - in.X, H: c.H},                       // left
		{X: c.X + c.W, Y: c.Y, W: in.X + in.W - (c.X + c.W), H: c.H},   // right
	}
	for range e.cfg.PlacementAttempts {
		s := strips[e.rng.Intn(len(strips))]
		if s.Empty() {
			continue
		}
		p := token.Vec2{X: s.X + e.rng.Float64()*s.W, Y: s.Y + e.rng.Float64()*s.H}
		if ok(p) {
			return p
		}
	}
	corners := []token.Vec2{
		{X: in.X, Y: in.Y + in.H},
		{X: in.X, Y: in.Y},
		{X: in.X + in.W, Y: in.Y + in.H},
	}
	for _, p := range corners {
		if ok(p) {
			return p
		}
	}
	return token.Vec2{X: 0, Y: e.field.H}
}
