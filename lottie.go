package svg2lottie

// The types below mirror the animation document schema the converter
// targets. Every property is wrapped in the format's keyframe envelope
// {"a": 0, "k": value}; the converter only ever emits static values.

// ScalarValue is a keyframe-capable scalar property.
type ScalarValue struct {
	Animated int     `json:"a"`
	Value    float64 `json:"k"`
}

// VectorValue is a keyframe-capable multi-component property.
type VectorValue struct {
	Animated int       `json:"a"`
	Value    []float64 `json:"k"`
}

// ShapeGeometry is one subpath in the target schema: parallel
// in-tangent, out-tangent and vertex arrays plus a closed flag.
// Tangents are relative to their vertex.
type ShapeGeometry struct {
	In       []Tuple `json:"i"`
	Out      []Tuple `json:"o"`
	Vertices []Tuple `json:"v"`
	Closed   bool    `json:"c"`
}

// ShapeValue is a keyframe-capable shape property.
type ShapeValue struct {
	Animated int           `json:"a"`
	Value    ShapeGeometry `json:"k"`
}

// GroupItem is implemented by every item that may appear in a shape
// group's contents.
type GroupItem interface {
	groupItem()
}

// ShapeItem is a "sh" group item carrying one subpath's geometry.
type ShapeItem struct {
	Type  string     `json:"ty"`
	Name  string     `json:"nm,omitempty"`
	Shape ShapeValue `json:"ks"`
}

// StrokeItem is a "st" group item: stroke color, opacity and width.
type StrokeItem struct {
	Type     string      `json:"ty"`
	Name     string      `json:"nm,omitempty"`
	Color    VectorValue `json:"c"`
	Opacity  ScalarValue `json:"o"`
	Width    ScalarValue `json:"w"`
	LineCap  int         `json:"lc"`
	LineJoin int         `json:"lj"`
}

// TransformItem is a "tr" group item with identity defaults.
type TransformItem struct {
	Type     string      `json:"ty"`
	Position VectorValue `json:"p"`
	Anchor   VectorValue `json:"a"`
	Scale    VectorValue `json:"s"`
	Rotation ScalarValue `json:"r"`
	Opacity  ScalarValue `json:"o"`
}

// GroupShape is a "gr" group item wrapping shapes, style and transform.
type GroupShape struct {
	Type  string      `json:"ty"`
	Name  string      `json:"nm,omitempty"`
	Items []GroupItem `json:"it"`
}

func (ShapeItem) groupItem()     {}
func (StrokeItem) groupItem()    {}
func (TransformItem) groupItem() {}
func (GroupShape) groupItem()    {}

// LayerTransform is a layer's "ks" transform block.
type LayerTransform struct {
	Opacity  ScalarValue `json:"o"`
	Rotation ScalarValue `json:"r"`
	Position VectorValue `json:"p"`
	Anchor   VectorValue `json:"a"`
	Scale    VectorValue `json:"s"`
}

// Layer is a shape layer (ty 4).
type Layer struct {
	ThreeD     int            `json:"ddd"`
	Index      int            `json:"ind"`
	Type       int            `json:"ty"`
	Name       string         `json:"nm"`
	Stretch    float64        `json:"sr"`
	Transform  LayerTransform `json:"ks"`
	AutoOrient int            `json:"ao"`
	Shapes     []GroupShape   `json:"shapes"`
	InPoint    float64        `json:"ip"`
	OutPoint   float64        `json:"op"`
	Start      float64        `json:"st"`
	BlendMode  int            `json:"bm"`
}

// Animation is the full document envelope.
type Animation struct {
	Version   string  `json:"v"`
	FrameRate float64 `json:"fr"`
	InPoint   float64 `json:"ip"`
	OutPoint  float64 `json:"op"`
	Width     float64 `json:"w"`
	Height    float64 `json:"h"`
	Name      string  `json:"nm,omitempty"`
	Layers    []Layer `json:"layers"`
}
