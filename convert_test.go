package svg2lottie

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRound4(t *testing.T) {
	tests := []struct {
		in, out float64
	}{
		{1.23456789, 1.2346},
		{-1.23456789, -1.2346},
		{0.00005, 0.0001}, // half rounds away from zero
		{-0.00005, -0.0001},
		{0.00004, 0},
		{-0.00004, 0},
		{10, 10},
	}
	for _, test := range tests {
		require.Equal(t, test.out, round4(test.in))
	}
}

func TestConvertDefaults(t *testing.T) {
	doc := Convert("M0 0 L10 0", Config{})

	require.Equal(t, "5.5.2", doc.Version)
	require.Equal(t, 24.0, doc.FrameRate)
	require.Equal(t, 0.0, doc.InPoint)
	require.Equal(t, 24.0, doc.OutPoint)
	require.Equal(t, 24.0, doc.Width)
	require.Equal(t, 24.0, doc.Height)
	require.Len(t, doc.Layers, 1)

	layer := doc.Layers[0]
	require.Equal(t, 4, layer.Type)
	require.Equal(t, []float64{12, 12}, layer.Transform.Position.Value)
	require.Equal(t, []float64{12, 12}, layer.Transform.Anchor.Value)
	require.Len(t, layer.Shapes, 1)

	// One shape per subpath, then the stroke, then the transform.
	items := layer.Shapes[0].Items
	require.Len(t, items, 3)
	shape, ok := items[0].(ShapeItem)
	require.True(t, ok)
	require.Equal(t, "sh", shape.Type)
	stroke, ok := items[1].(StrokeItem)
	require.True(t, ok)
	require.Equal(t, "st", stroke.Type)
	require.Equal(t, 2.0, stroke.Width.Value)
	require.Equal(t, []float64{0, 0, 0, 1}, stroke.Color.Value)
	tr, ok := items[2].(TransformItem)
	require.True(t, ok)
	require.Equal(t, "tr", tr.Type)
	require.Equal(t, []float64{100, 100}, tr.Scale.Value)
	require.Equal(t, 100.0, tr.Opacity.Value)
}

func TestConvertConfig(t *testing.T) {
	cfg := Config{
		Width:       100,
		Height:      50,
		StrokeWidth: 3,
		StrokeColor: [4]float64{1, 0, 0, 1},
		FrameRate:   30,
		Name:        "icon",
	}
	doc := Convert("M0 0 L10 0", cfg)

	require.Equal(t, 100.0, doc.Width)
	require.Equal(t, 50.0, doc.Height)
	require.Equal(t, 30.0, doc.FrameRate)
	require.Equal(t, 30.0, doc.OutPoint)
	require.Equal(t, "icon", doc.Name)
	require.Equal(t, []float64{50, 25}, doc.Layers[0].Transform.Position.Value)

	stroke := doc.Layers[0].Shapes[0].Items[1].(StrokeItem)
	require.Equal(t, 3.0, stroke.Width.Value)
	require.Equal(t, []float64{1, 0, 0, 1}, stroke.Color.Value)
}

func TestConvertRoundsCoordinates(t *testing.T) {
	doc := Convert("M1.23456789 0 C1.00005 0 2 2.99996 3 3", Config{})

	shape := doc.Layers[0].Shapes[0].Items[0].(ShapeItem)
	g := shape.Shape.Value
	require.Equal(t, Tuple{1.2346, 0}, g.Vertices[0])
	// 1.00005 - 1.23456789 = -0.23451789 -> -0.2345
	require.Equal(t, Tuple{-0.2345, 0}, g.Out[0])
	// 2 - 3 = -1, 2.99996 - 3 = -0.00004 -> 0
	require.Equal(t, Tuple{-1, 0}, g.In[1])
}

func TestConvertIdempotent(t *testing.T) {
	const d = "M0 0 C10 0 10 10 0 10 S-10 20 0 20 Z M5 5 h2 v2 h-2 z"
	first := Convert(d, Config{})
	second := Convert(d, Config{})
	require.Equal(t, first, second)

	b1, err := json.Marshal(first)
	require.NoError(t, err)
	b2, err := json.Marshal(second)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}

func TestConvertScale(t *testing.T) {
	doc := Convert("M1 1 C2 1 2 2 1 2", Config{Scale: 2})

	shape := doc.Layers[0].Shapes[0].Items[0].(ShapeItem)
	g := shape.Shape.Value
	require.Equal(t, Tuple{2, 2}, g.Vertices[0])
	require.Equal(t, Tuple{2, 4}, g.Vertices[1])
	require.Equal(t, Tuple{2, 0}, g.Out[0])
	require.Equal(t, Tuple{2, 0}, g.In[1])
}

func TestConvertStrict(t *testing.T) {
	doc, err := ConvertStrict("M0 0 L10 0 Z", Config{})
	require.NoError(t, err)
	require.Len(t, doc.Layers[0].Shapes[0].Items, 3)

	var unsupported *UnsupportedCommandError
	_, err = ConvertStrict("M0 0 A5 5 0 0 1 10 10", Config{})
	require.Error(t, err)
	require.True(t, errors.As(err, &unsupported))
	require.Equal(t, byte('A'), unsupported.Cmd)
}

func TestConvertShapesOnly(t *testing.T) {
	shapes := ConvertShapesOnly("M0 0 L10 0 M5 5 L6 5 L6 6 Z")
	require.Len(t, shapes, 2)

	require.Equal(t, "Path 1", shapes[0].Name)
	require.Equal(t, 2, shapes[0].Vertices)
	require.False(t, shapes[0].Closed)
	require.Equal(t, []Tuple{{0, 0}, {10, 0}}, shapes[0].Shape.Vertices)

	require.Equal(t, "Path 2", shapes[1].Name)
	require.Equal(t, 3, shapes[1].Vertices)
	require.True(t, shapes[1].Closed)
	require.True(t, shapes[1].Shape.Closed)
}

func TestDocumentJSON(t *testing.T) {
	doc := Convert("M0 0 C10 0 10 10 0 10 Z", Config{})
	b, err := json.Marshal(doc)
	require.NoError(t, err)

	s := string(b)
	for _, want := range []string{
		`"v":"5.5.2"`,
		`"fr":24`,
		`"ip":0`,
		`"op":24`,
		`"w":24`,
		`"h":24`,
		`"ty":4`,
		`"ty":"gr"`,
		`"ty":"sh"`,
		`"ty":"st"`,
		`"ty":"tr"`,
		`"c":true`,
	} {
		require.True(t, strings.Contains(s, want), "document JSON missing %s", want)
	}
}
