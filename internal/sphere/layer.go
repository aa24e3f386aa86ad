package sphere

import (
	"logosphere/internal/lexicon"

	"cogentcore.org/core/math32"
)

// Compression pulls neighbouring shells slightly into each other.
const Compression = 0.9

// DefaultCopies is the copy count of a layer whose word has no role.
const DefaultCopies = 8

// Copies returns how many model copies a layer repeats for role.
func Copies(r lexicon.Role) int {
	switch r {
	case lexicon.RoleSubject:
		return 8
	case lexicon.RoleObject:
		return 13
	case lexicon.RoleAdverb:
		return 21
	case lexicon.RoleVerb:
		return 34
	}
	return DefaultCopies
}

// Layer is one shell of model copies standing for one sentence word.
type Layer struct {
	Word        string
	Translation string
	Model       Model
	Count       int
	Scale       float32
	// Rot holds the layer's own rotation about X, Y and Z.
	Rot [3]float32

	Radius   float32
	Distance float32
}

// Distances returns the cumulative shell distances for radii:
// d[0] = r[0] and d[i] = d[i-1] + (r[i-1]+r[i])*Compression.
func Distances(radii []float32) []float32 {
	out := make([]float32, len(radii))
	for i, r := range radii {
		if i == 0 {
			out[i] = r
			continue
		}
		out[i] = out[i-1] + (radii[i-1]+r)*Compression
	}
	return out
}

// Instance is one placed model copy.
type Instance struct {
	// Local is the position on the layer's shell before the layer rotation.
	Local math32.Vector3
	// Pos is Local after the layer rotation.
	Pos math32.Vector3
	// Axis and Angle turn the model's up vector to face away from the centre.
	Axis  math32.Vector3
	Angle float32
	Scale float32
}

// Instances spreads the layer's copies over a sphere of radius Distance
// with the golden-angle spiral, each facing outward.
func (l *Layer) Instances() []Instance {
	n := l.Count
	out := make([]Instance, 0, n)
	rot := l.Orientation()
	for i := range n {
		fi := float32(i)
		phi := math32.Acos(1 - 2*(fi+0.5)/float32(n))
		theta := math32.Pi * (1 + math32.Sqrt(5)) * fi

		sp, cp := math32.Sincos(phi)
		st, ct := math32.Sincos(theta)
		local := math32.Vec3(sp*ct, sp*st, cp).MulScalar(l.Distance)

		axis, angle := outward(local)
		out = append(out, Instance{
			Local: local,
			Pos:   rot.MulVector(local),
			Axis:  axis,
			Angle: angle,
			Scale: l.Scale,
		})
	}
	return out
}

// Orientation returns the layer rotation: Z first, then X, then Y.
func (l *Layer) Orientation() math32.Quat {
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), l.Rot[1])
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), l.Rot[0]))
	q.SetMul(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), l.Rot[2]))
	return q
}

// Up is the direction a model points before it is placed.
var Up = math32.Vec3(0, 1, 0)

// outward returns the rotation taking Up onto p's direction.
func outward(p math32.Vector3) (math32.Vector3, float32) {
	if p.Length() == 0 {
		return math32.Vec3(1, 0, 0), 0
	}
	dir := p.Normal()
	d := math32.Max(-1, math32.Min(1, Up.Dot(dir)))
	angle := math32.Acos(d)
	axis := Up.Cross(dir)
	if axis.Length() < 1e-6 {
		return math32.Vec3(1, 0, 0), angle
	}
	return axis.Normal(), angle
}
