package sphere

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"cogentcore.org/core/math32"
	"gopkg.in/yaml.v3"
)

// DefaultGlyph is drawn for a model without its own glyph.
const DefaultGlyph = "*"

// Model is one shape a layer can repeat over its shell.
type Model struct {
	Name  string  `yaml:"name"`
	Scale float32 `yaml:"scale"`
	Glyph string  `yaml:"glyph"`
	// Extent is the bounding-box size used when no OBJ file is given.
	Extent [3]float32 `yaml:"extent"`
	// OBJ is a Wavefront file path relative to the catalog file.
	OBJ string `yaml:"obj"`

	box math32.Box3
}

// Bounds returns the model's bounding box.
func (m Model) Bounds() math32.Box3 { return m.box }

// Radius returns half the longest bounding-box dimension, unscaled.
func (m Model) Radius() float32 { return boxRadius(m.box) }

// ErrEmptyCatalog is returned when a catalog file lists no models.
var ErrEmptyCatalog = errors.New("catalog has no models")

// Catalog maps translations to models. Model names are translations.
type Catalog struct {
	models []Model
	byName map[string]int
}

type catalogFile struct {
	Models []Model `yaml:"models"`
}

// NewCatalog indexes models. A zero scale becomes 1 and an empty glyph the
// default glyph; a model without an OBJ file takes its bounds from Extent.
func NewCatalog(models []Model) *Catalog {
	c := &Catalog{byName: make(map[string]int, len(models))}
	for _, m := range models {
		if m.Scale == 0 {
			m.Scale = 1
		}
		if m.Glyph == "" {
			m.Glyph = DefaultGlyph
		}
		if m.box == (math32.Box3{}) {
			h := math32.Vec3(m.Extent[0], m.Extent[1], m.Extent[2]).MulScalar(0.5)
			m.box = math32.B3Empty()
			m.box.ExpandByPoint(h)
			m.box.ExpandByPoint(h.MulScalar(-1))
		}
		if _, dup := c.byName[m.Name]; !dup {
			c.byName[m.Name] = len(c.models)
		}
		c.models = append(c.models, m)
	}
	return c
}

// LoadCatalog reads a YAML catalog from fsys. OBJ paths are resolved
// relative to the catalog file's directory.
func LoadCatalog(fsys fs.FS, name string) (*Catalog, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	var doc catalogFile
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", name, err)
	}
	if len(doc.Models) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyCatalog)
	}

	dir := path.Dir(name)
	for i := range doc.Models {
		m := &doc.Models[i]
		if m.Name == "" {
			return nil, fmt.Errorf("%s: model %d has no name", name, i)
		}
		if m.OBJ == "" {
			continue
		}
		box, err := readOBJ(fsys, path.Join(dir, m.OBJ))
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", m.Name, err)
		}
		m.box = box
	}
	return NewCatalog(doc.Models), nil
}

func readOBJ(fsys fs.FS, name string) (math32.Box3, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return math32.Box3{}, err
	}
	defer f.Close()
	return ReadOBJBounds(f)
}

// boxRadius returns half the longest side of b, or 0 for an empty box.
func boxRadius(b math32.Box3) float32 {
	if b.IsEmpty() {
		return 0
	}
	sz := b.Size()
	return math32.Max(sz.X, math32.Max(sz.Y, sz.Z)) * 0.5
}

// Len returns the number of models.
func (c *Catalog) Len() int { return len(c.models) }

// Models returns the models in file order.
func (c *Catalog) Models() []Model {
	return append([]Model(nil), c.models...)
}

// Lookup returns the model named after translation.
func (c *Catalog) Lookup(translation string) (Model, bool) {
	i, ok := c.byName[translation]
	if !ok {
		return Model{}, false
	}
	return c.models[i], true
}

// Resolve returns the model for translation and the layer scale to use.
// An unknown translation falls back to the first model at scale 1. It
// reports false only for an empty catalog.
func (c *Catalog) Resolve(translation string) (Model, float32, bool) {
	if m, ok := c.Lookup(translation); ok {
		return m, m.Scale, true
	}
	if len(c.models) == 0 {
		return Model{}, 0, false
	}
	return c.models[0], 1, true
}
