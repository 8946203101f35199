package vizconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArray_RoundTrip(t *testing.T) {
	assert.Equal(t, "[]", EncodeFloatArray(nil))
	got, err := DecodeFloatArray(EncodeFloatArray([]float32{}))
	require.NoError(t, err)
	assert.Empty(t, got)

	text := EncodeFloatArray([]float32{1, 2.5, -3})
	assert.Equal(t, "[1.0, 2.5, -3.0]", text)
	got, err = DecodeFloatArray(text)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2.5, -3}, got)

	assert.Equal(t, "[0.0, 0.0, 5000.0]", EncodeFloatArray([]float32{0, 0, 5000}))
}

func TestDecodeFloatArray_Short(t *testing.T) {
	for _, in := range []string{"", "[", "[]", "xy"} {
		got, err := DecodeFloatArray(in)
		require.NoError(t, err, in)
		assert.Empty(t, got, in)
	}
}

func TestDecodeFloatArray_Lenient(t *testing.T) {
	got, err := DecodeFloatArray("[5.0,2.1 , 0.0]")
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 2.1, 0}, got)

	got, err = DecodeFloatArray("[1.0,]")
	require.NoError(t, err)
	assert.Equal(t, []float32{1}, got)

	got, err = DecodeFloatArray("(7.5)")
	require.NoError(t, err)
	assert.Equal(t, []float32{7.5}, got)
}

func TestDecodeFloatArray_BadElement(t *testing.T) {
	_, err := DecodeFloatArray("[1.0, , 2.0]")
	assert.Error(t, err)

	_, err = DecodeFloatArray("[abc]")
	assert.Error(t, err)
}

func TestColor_RoundTrip(t *testing.T) {
	colors := []Color{
		White,
		ColorFromFloats(0.2, 0.4, 0.6, 0.5),
		ColorFromFloats(0, 1, 0, 1),
		ColorFromFloats(1, 0, 1, 0),
		{},
	}
	for _, c := range colors {
		text := EncodeColor(c)
		assert.Len(t, text, 8)
		got, err := DecodeColor(text)
		require.NoError(t, err, text)
		assert.Equal(t, c, got, text)
	}

	assert.Equal(t, "ffffffff", EncodeColor(White))
	assert.Equal(t, "f8d753ff", EncodeColor(NewColor(248, 215, 83, 255)))
}

func TestColorFromFloats(t *testing.T) {
	assert.Equal(t, NewColor(128, 128, 128, 128), ColorFromFloats(0.5, 0.5, 0.5, 0.5))
	assert.Equal(t, NewColor(0, 255, 0, 255), ColorFromFloats(-1, 2, 0, 1))

	c := ColorFromFloats(0, 1, 0, 0.5)
	comps := c.Components()
	assert.Equal(t, float32(0), comps[0])
	assert.Equal(t, float32(1), comps[1])
	assert.InDelta(t, 0.5, comps[3], 1.0/255)
}

func TestDecodeColor(t *testing.T) {
	c, err := DecodeColor("FF000080")
	require.NoError(t, err)
	assert.Equal(t, NewColor(255, 0, 0, 128), c)

	c, err = DecodeColor("ff")
	require.NoError(t, err)
	assert.Equal(t, NewColor(0, 0, 0, 255), c)

	_, err = DecodeColor("")
	assert.Error(t, err)
	_, err = DecodeColor("#ffffff")
	assert.Error(t, err)
}

func TestFont_Encode(t *testing.T) {
	assert.Equal(t, "Arial-bold-20", EncodeFont(Font{Family: "Arial", Style: FontBold, Size: 20}))
	assert.Equal(t, "Serif-bolditalic-9", EncodeFont(Font{Family: "Serif", Style: FontBold | FontItalic, Size: 9}))
	assert.Equal(t, "Mono-plain-12", EncodeFont(Font{Family: "Mono", Size: 12}))
}

func TestDecodeFont(t *testing.T) {
	tests := []struct {
		in   string
		want Font
	}{
		{"Arial-bold-20", Font{"Arial", FontBold, 20}},
		{"Times New Roman-bolditalic-14", Font{"Times New Roman", FontBold | FontItalic, 14}},
		{"Arial Bold 18", Font{"Arial", FontBold, 18}},
		{"Arial-ITALIC-10", Font{"Arial", FontItalic, 10}},
		{"Arial", Font{"Arial", FontPlain, 12}},
		{"Arial-italic", Font{"Arial", FontItalic, 12}},
		{"Arial-16", Font{"Arial", FontPlain, 16}},
		{"Arial-0", Font{"Arial", FontPlain, 12}},
		{"Arial-fancy-20", Font{"Arial-fancy", FontPlain, 20}},
		{"Arial-bold-", Font{"Arial", FontBold, 12}},
		{"", Font{"Dialog", FontPlain, 12}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeFont(tt.in))
		})
	}
}

func TestFont_RoundTrip(t *testing.T) {
	for _, f := range []Font{
		{"Arial", FontBold, 20},
		{"DejaVu Sans", FontItalic, 11},
		{"Noto-Sans", FontPlain, 8},
	} {
		assert.Equal(t, f, DecodeFont(EncodeFont(f)))
	}
}

func TestEnums(t *testing.T) {
	for _, name := range ShapeCircle.Variants() {
		s, err := ParseNodeShape(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}
	for _, name := range SelectionNone.Variants() {
		s, err := ParseSelectionType(name)
		require.NoError(t, err)
		assert.Equal(t, name, s.String())
	}

	_, err := ParseNodeShape("circle")
	assert.Error(t, err)
	_, err = ParseSelectionType("LASSO")
	assert.Error(t, err)
}

func TestKind_ParseAndString(t *testing.T) {
	for k := KindString; k <= KindColumns; k++ {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseKind("tuple")
	assert.Error(t, err)

	assert.True(t, Persisted(KindColor))
	assert.False(t, Persisted(KindString))
	assert.False(t, Persisted(KindColumns))
}

func TestDecodeValue(t *testing.T) {
	v, err := DecodeValue(SelectionTypeProperty, KindEnum, "DIRECT")
	require.NoError(t, err)
	assert.Equal(t, SelectionDirect, v.Interface())

	_, err = DecodeValue(ShowEdges, KindEnum, "DIRECT")
	assert.Error(t, err)

	v, err = DecodeValue(ShowEdges, KindBool, "False")
	require.NoError(t, err)
	assert.Equal(t, false, v.Interface())

	_, err = DecodeValue(ShowEdges, KindBool, "1")
	assert.Error(t, err)

	v, err = DecodeValue(EdgeTextColumns, KindColumns, "weight, label,")
	require.NoError(t, err)
	assert.Equal(t, []Column{{ID: "weight"}, {ID: "label"}}, v.Interface())

	text, err := EncodeValue(v)
	require.NoError(t, err)
	assert.Equal(t, "weight,label", text)
}

func TestPropertyName(t *testing.T) {
	name, ok := PropertyName("default_zoom_factor")
	assert.True(t, ok)
	assert.Equal(t, ZoomFactor, name)

	_, ok = PropertyName("zoom_factor")
	assert.False(t, ok)
	_, ok = PropertyName("default_unknown")
	assert.False(t, ok)
}

func TestDocument_ExportApply(t *testing.T) {
	src := newTestPrefs(t)
	require.NoError(t, src.PutString(PreferenceKey(BackgroundColor), "000000ff"))
	s, err := New(src)
	require.NoError(t, err)

	doc, err := Export(s, "visualization")
	require.NoError(t, err)
	assert.Len(t, doc.Properties, 67)
	assert.Equal(t, "000000ff", doc.Properties[BackgroundColor])

	var buf bytes.Buffer
	require.NoError(t, doc.Write(&buf))
	assert.Contains(t, buf.String(), "namespace: visualization")

	read, err := ReadDocument(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, read)

	dst := newTestPrefs(t)
	n, err := read.Apply(dst)
	require.NoError(t, err)
	assert.Equal(t, 67, n)

	restored, err := New(dst)
	require.NoError(t, err)
	c, err := restored.ColorProperty(BackgroundColor)
	require.NoError(t, err)
	assert.Equal(t, Black, c)
}

func TestDocument_ApplyRejectsInvalid(t *testing.T) {
	doc, err := ReadDocument(strings.NewReader(`
namespace: visualization
properties:
  antialiasing: "8"
  node_global_shape: HEXAGON
`))
	require.NoError(t, err)

	p := newTestPrefs(t)
	_, err = doc.Apply(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), NodeGlobalShape)

	keys, err := p.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = Document{Properties: map[string]string{"bogus": "1"}}.Apply(p)
	assert.ErrorIs(t, err, ErrPropertyNotAvailable)
}
