// Package sphere builds the layered sphere: one shell of repeated model
// copies per sentence word, nested by model size, slowly spinning.
package sphere

import (
	"cmp"
	"log/slog"
	"logosphere/internal/event"
	"logosphere/internal/lexicon"
	"math/rand"
	"slices"

	"cogentcore.org/core/math32"
)

// Spin is the global rotation per frame about Y and Z, in radians.
const Spin = 0.003

// Scene keeps the layers in sync with the sentence.
type Scene struct {
	catalog *Catalog
	rng     *rand.Rand
	log     *slog.Logger
	layers  []*Layer
}

// NewScene creates an empty scene drawing models from catalog.
func NewScene(catalog *Catalog, rng *rand.Rand, log *slog.Logger) *Scene {
	if log == nil {
		log = slog.Default()
	}
	return &Scene{catalog: catalog, rng: rng, log: log}
}

// Layers returns the layers from the innermost out.
func (s *Scene) Layers() []*Layer { return s.layers }

// Handle applies a sentence notification. Sentence-changed events carry no
// layer changes and are ignored.
func (s *Scene) Handle(e event.Event) {
	switch e := e.(type) {
	case event.WordSelected:
		s.add(e.Word, e.Translation, e.Role)
	case event.WordRemoved:
		s.remove(e.Word)
	case event.OptionChanged:
		s.setRole(e.Word, e.Role)
	}
}

func (s *Scene) add(word, translation string, role lexicon.Role) {
	m, scale, ok := s.catalog.Resolve(translation)
	if !ok {
		s.log.Warn("no model for layer", "word", word)
		return
	}
	s.layers = append(s.layers, &Layer{
		Word:        word,
		Translation: translation,
		Model:       m,
		Count:       Copies(role),
		Scale:       scale,
		Rot: [3]float32{
			s.rng.Float32() * 2 * math32.Pi,
			s.rng.Float32() * 2 * math32.Pi,
			s.rng.Float32() * 2 * math32.Pi,
		},
	})
	s.relayout()
	s.log.Debug("layer added", "word", word, "model", m.Name, "layers", len(s.layers))
}

// find returns the index of the most recently added layer for word, or -1.
func (s *Scene) find(word string) int {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].Word == word {
			return i
		}
	}
	return -1
}

func (s *Scene) remove(word string) {
	i := s.find(word)
	if i < 0 {
		return
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	s.relayout()
}

func (s *Scene) setRole(word string, role lexicon.Role) {
	i := s.find(word)
	if i < 0 {
		return
	}
	s.layers[i].Count = Copies(role)
	s.relayout()
}

// relayout recomputes every layer's radius and distance.
func (s *Scene) relayout() {
	radii := make([]float32, len(s.layers))
	for i, l := range s.layers {
		l.Radius = l.Model.Radius() * l.Scale
		radii[i] = l.Radius
	}
	for i, d := range Distances(radii) {
		s.layers[i].Distance = d
	}
}

// Extent returns the distance from the centre to the outside of the
// outermost layer.
func (s *Scene) Extent() float32 {
	if len(s.layers) == 0 {
		return 0
	}
	last := s.layers[len(s.layers)-1]
	return last.Distance + last.Radius
}

// OrbitStep is the view rotation per dragged cell, in radians.
const OrbitStep = 0.05

// Orbit is the viewer's rotation around the sphere, applied on top of
// the spin. Yaw turns about the vertical axis, Pitch about the horizontal.
type Orbit struct {
	Yaw, Pitch float32
}

// Drag turns the view by a pointer drag of dx, dy cells. Pitch stops at
// the poles.
func (o *Orbit) Drag(dx, dy int) {
	o.Yaw = math32.Mod(o.Yaw+float32(dx)*OrbitStep, 2*math32.Pi)
	o.Pitch = math32.Max(-math32.Pi/2, math32.Min(math32.Pi/2, o.Pitch+float32(dy)*OrbitStep))
}

// Quat returns the view rotation: yaw first, then pitch.
func (o Orbit) Quat() math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), o.Pitch)
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), o.Yaw))
	return q
}

// spin returns the global rotation at frame: about Z, then about Y.
func spin(frame int) math32.Quat {
	g := float32(frame) * Spin
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), g)
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), g))
	return q
}

// Point is a projected model copy on a character grid.
type Point struct {
	X, Y  int
	Depth float32
	Glyph string
	Layer int
}

// Project returns every instance of every layer at the given frame, turned
// by the view orbit and orthographically projected onto a w×h grid of cells
// twice as tall as they are wide. Points are sorted far to near.
func (s *Scene) Project(frame int, w, h int, view Orbit) []Point {
	ext := s.Extent()
	if ext <= 0 || w <= 0 || h <= 0 {
		return nil
	}
	k := math32.Min(float32(w-1)/(4*ext), float32(h-1)/(2*ext))
	rot := view.Quat()
	rot.SetMul(spin(frame))
	cx, cy := float32(w-1)/2, float32(h-1)/2

	var out []Point
	for li, l := range s.layers {
		for _, in := range l.Instances() {
			p := rot.MulVector(in.Pos)
			out = append(out, Point{
				X:     int(math32.Round(cx + p.X*2*k)),
				Y:     int(math32.Round(cy - p.Y*k)),
				Depth: p.Z,
				Glyph: l.Model.Glyph,
				Layer: li,
			})
		}
	}
	slices.SortStableFunc(out, func(a, b Point) int { return cmp.Compare(a.Depth, b.Depth) })
	return out
}
