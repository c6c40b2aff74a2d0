// Package svg2lottie converts SVG path descriptions into shape
// documents for a JSON-based motion-graphics animation format. The
// conversion is a one-shot pure function: it reconstructs per-vertex
// bezier handles from the path commands, including smooth (reflected)
// curves, and wraps the result in a single-layer document or a
// lightweight shapes-only listing.
package svg2lottie

import (
	"fmt"
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Config carries the layout options consumed by the serializer. The
// zero value of any field means "use the default".
type Config struct {
	Width       float64    // canvas width, default 24
	Height      float64    // canvas height, default 24
	StrokeWidth float64    // default 2
	StrokeColor [4]float64 // RGBA in 0..1, default opaque black
	FrameRate   float64    // default 24
	Scale       float64    // uniform scale applied to the geometry, 0 or 1 means none
	Name        string     // optional animation name
}

// DefaultConfig returns the documented defaults: a 24x24 canvas with a
// 2-unit opaque black stroke at 24 fps.
func DefaultConfig() Config {
	return Config{
		Width:       24,
		Height:      24,
		StrokeWidth: 2,
		StrokeColor: [4]float64{0, 0, 0, 1},
		FrameRate:   24,
	}
}

func (c Config) withDefaults() Config {
	if c.Width == 0 {
		c.Width = 24
	}
	if c.Height == 0 {
		c.Height = 24
	}
	if c.StrokeWidth == 0 {
		c.StrokeWidth = 2
	}
	if c.StrokeColor == ([4]float64{}) {
		c.StrokeColor = [4]float64{0, 0, 0, 1}
	}
	if c.FrameRate == 0 {
		c.FrameRate = 24
	}
	return c
}

// transform returns the geometry transform for the configured scale,
// or nil when the geometry passes through unscaled.
func (c Config) transform() *mt.Transform {
	if c.Scale == 0 || c.Scale == 1 {
		return nil
	}
	t := mt.NewTransform()
	t.Scale(c.Scale, c.Scale)
	return t
}

// round4 rounds to 4 decimal places, half away from zero. The exact
// rule matters: consumers of the document compare output bit for bit.
func round4(v float64) float64 {
	r := math.Round(v*10000) / 10000
	if r == 0 {
		return 0
	}
	return r
}

// geometry serializes one subpath, applying the optional transform and
// the rounding rule to every component. Tangents are vertex-relative,
// so only the transform's linear part applies to them.
func geometry(sp *Subpath, t *mt.Transform) ShapeGeometry {
	g := ShapeGeometry{
		In:       make([]Tuple, len(sp.Vertices)),
		Out:      make([]Tuple, len(sp.Vertices)),
		Vertices: make([]Tuple, len(sp.Vertices)),
		Closed:   sp.Closed,
	}
	for i, v := range sp.Vertices {
		x, y := v[0], v[1]
		inT, outT := sp.In[i], sp.Out[i]
		if t != nil {
			tx, ty := t.Apply(x, y)
			ix, iy := t.Apply(x+inT[0], y+inT[1])
			ox, oy := t.Apply(x+outT[0], y+outT[1])
			inT = Tuple{ix - tx, iy - ty}
			outT = Tuple{ox - tx, oy - ty}
			x, y = tx, ty
		}
		g.Vertices[i] = Tuple{round4(x), round4(y)}
		g.In[i] = Tuple{round4(inT[0]), round4(inT[1])}
		g.Out[i] = Tuple{round4(outT[0]), round4(outT[1])}
	}
	return g
}

// Convert interprets a path description and wraps the result in a full
// single-layer animation document. It is lenient: malformed or
// unsupported parts of the path are dropped rather than rejected.
func Convert(d string, cfg Config) *Animation {
	return buildDocument(ParsePath(d), cfg)
}

// ConvertStrict is Convert with the strict error policy applied
// uniformly through the tokenizer and the interpreter.
func ConvertStrict(d string, cfg Config) (*Animation, error) {
	subpaths, err := ParsePathStrict(d)
	if err != nil {
		return nil, err
	}
	return buildDocument(subpaths, cfg), nil
}

// ShapeExport is the shapes-only listing for one subpath, for
// consumers that embed geometry without the document envelope.
type ShapeExport struct {
	Name     string        `json:"name"`
	Vertices int           `json:"vertices"`
	Closed   bool          `json:"closed"`
	Shape    ShapeGeometry `json:"shape"`
}

// ConvertShapesOnly interprets a path description leniently and
// returns the per-subpath geometry without the document envelope.
func ConvertShapesOnly(d string) []ShapeExport {
	subpaths := ParsePath(d)
	shapes := make([]ShapeExport, len(subpaths))
	for i, sp := range subpaths {
		g := geometry(sp, nil)
		shapes[i] = ShapeExport{
			Name:     fmt.Sprintf("Path %d", i+1),
			Vertices: len(g.Vertices),
			Closed:   g.Closed,
			Shape:    g,
		}
	}
	return shapes
}

func buildDocument(subpaths []*Subpath, cfg Config) *Animation {
	cfg = cfg.withDefaults()
	t := cfg.transform()

	items := make([]GroupItem, 0, len(subpaths)+2)
	for i, sp := range subpaths {
		items = append(items, ShapeItem{
			Type:  "sh",
			Name:  fmt.Sprintf("Path %d", i+1),
			Shape: ShapeValue{Value: geometry(sp, t)},
		})
	}
	items = append(items, StrokeItem{
		Type:     "st",
		Name:     "Stroke",
		Color:    VectorValue{Value: cfg.StrokeColor[:]},
		Opacity:  ScalarValue{Value: 100},
		Width:    ScalarValue{Value: cfg.StrokeWidth},
		LineCap:  2,
		LineJoin: 2,
	})
	items = append(items, TransformItem{
		Type:     "tr",
		Position: VectorValue{Value: []float64{0, 0}},
		Anchor:   VectorValue{Value: []float64{0, 0}},
		Scale:    VectorValue{Value: []float64{100, 100}},
		Rotation: ScalarValue{Value: 0},
		Opacity:  ScalarValue{Value: 100},
	})

	layer := Layer{
		Index:   1,
		Type:    4,
		Name:    "Shape Layer 1",
		Stretch: 1,
		Transform: LayerTransform{
			Opacity:  ScalarValue{Value: 100},
			Rotation: ScalarValue{Value: 0},
			Position: VectorValue{Value: []float64{cfg.Width / 2, cfg.Height / 2}},
			Anchor:   VectorValue{Value: []float64{cfg.Width / 2, cfg.Height / 2}},
			Scale:    VectorValue{Value: []float64{100, 100}},
		},
		Shapes:   []GroupShape{{Type: "gr", Name: "Group 1", Items: items}},
		InPoint:  0,
		OutPoint: cfg.FrameRate,
	}

	return &Animation{
		Version:   "5.5.2",
		FrameRate: cfg.FrameRate,
		InPoint:   0,
		OutPoint:  cfg.FrameRate,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Name:      cfg.Name,
		Layers:    []Layer{layer},
	}
}
