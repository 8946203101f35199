package vizconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalambet/vizprefs/internal/prefs"
)

func newTestPrefs(t *testing.T) *prefs.Preferences {
	t.Helper()
	s, err := prefs.OpenSQLite(":memory:", "visualization")
	require.NoError(t, err)
	p := prefs.New(s)
	t.Cleanup(func() { p.Close() })
	return p
}

func TestNew_PopulatesDefaults(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	defaults := Defaults()
	assert.Len(t, defaults, 69)
	assert.Equal(t, len(defaults), len(s.Names()))

	for _, d := range defaults {
		v, err := s.Property(d.Name)
		require.NoError(t, err, d.Name)
		assert.True(t, d.Value.Equal(v), "%s = %v, want %v", d.Name, v.Interface(), d.Value.Interface())

		kind, err := s.PropertyKind(d.Name)
		require.NoError(t, err)
		assert.Equal(t, d.Value.Kind(), kind, d.Name)
	}
}

func TestNew_DocumentedDefaults(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	b, err := s.BoolProperty(ShowEdges)
	require.NoError(t, err)
	assert.True(t, b)

	b, err = s.BoolProperty(Use3D)
	require.NoError(t, err)
	assert.False(t, b)

	i, err := s.IntProperty(OctreeWidth)
	require.NoError(t, err)
	assert.Equal(t, 50000, i)

	f, err := s.FloatProperty(ZoomFactor)
	require.NoError(t, err)
	assert.Equal(t, float32(0.2), f)

	c, err := s.ColorProperty(BackgroundColor)
	require.NoError(t, err)
	assert.Equal(t, White, c)

	c, err = s.ColorProperty(EdgeUniqueColor)
	require.NoError(t, err)
	assert.Equal(t, NewColor(128, 128, 128, 128), c)

	font, err := s.FontProperty(NodeLabelFont)
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "Arial", Style: FontBold, Size: 20}, font)

	pos, err := s.FloatArrayProperty(CameraPosition)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 5000}, pos)

	shape, err := EnumProperty[NodeShape](s, NodeGlobalShape)
	require.NoError(t, err)
	assert.Equal(t, ShapeCircle, shape)

	sel, err := EnumProperty[SelectionType](s, SelectionTypeProperty)
	require.NoError(t, err)
	assert.Equal(t, SelectionNone, sel)

	cols, err := s.ColumnsProperty(NodeTextColumns)
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestNew_PreferencesOverrideDefaults(t *testing.T) {
	p := newTestPrefs(t)
	require.NoError(t, p.PutBool(PreferenceKey(ShowEdges), false))
	require.NoError(t, p.PutInt(PreferenceKey(Antialiasing), 8))
	require.NoError(t, p.PutFloat(PreferenceKey(EdgeScale), 2.5))
	require.NoError(t, p.PutString(PreferenceKey(BackgroundColor), "102030ff"))
	require.NoError(t, p.PutString(PreferenceKey(EdgeLabelFont), "Helvetica-italic-14"))
	require.NoError(t, p.PutString(PreferenceKey(CameraTarget), "[1.0, 2.5, -3.0]"))
	require.NoError(t, p.PutString(PreferenceKey(SelectionTypeProperty), "RECTANGLE"))

	s, err := New(p)
	require.NoError(t, err)

	b, err := s.BoolProperty(ShowEdges)
	require.NoError(t, err)
	assert.False(t, b)

	i, err := s.IntProperty(Antialiasing)
	require.NoError(t, err)
	assert.Equal(t, 8, i)

	f, err := s.FloatProperty(EdgeScale)
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)

	c, err := s.ColorProperty(BackgroundColor)
	require.NoError(t, err)
	assert.Equal(t, NewColor(0x10, 0x20, 0x30, 0xff), c)

	font, err := s.FontProperty(EdgeLabelFont)
	require.NoError(t, err)
	assert.Equal(t, Font{Family: "Helvetica", Style: FontItalic, Size: 14}, font)

	target, err := s.FloatArrayProperty(CameraTarget)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2.5, -3}, target)

	sel, err := EnumProperty[SelectionType](s, SelectionTypeProperty)
	require.NoError(t, err)
	assert.Equal(t, SelectionRectangle, sel)
}

func TestNew_MalformedNumbersFallBack(t *testing.T) {
	p := newTestPrefs(t)
	require.NoError(t, p.PutString(PreferenceKey(ShowFPS), "sometimes"))
	require.NoError(t, p.PutString(PreferenceKey(OctreeDepth), "deep"))

	s, err := New(p)
	require.NoError(t, err)

	b, err := s.BoolProperty(ShowFPS)
	require.NoError(t, err)
	assert.True(t, b)

	i, err := s.IntProperty(OctreeDepth)
	require.NoError(t, err)
	assert.Equal(t, 5, i)
}

func TestNew_MalformedDataFails(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown enum variant", NodeGlobalShape, "HEXAGON"},
		{"enum name is case sensitive", SelectionTypeProperty, "none"},
		{"bad color", NodeLabelColor, "not-a-color"},
		{"bad float array element", CameraPosition, "[1.0, x, 3.0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPrefs(t)
			require.NoError(t, p.PutString(PreferenceKey(tt.key), tt.value))

			s, err := New(p)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNew_ColumnsAreNotReadFromPreferences(t *testing.T) {
	p := newTestPrefs(t)
	require.NoError(t, p.PutString(PreferenceKey(EdgeTextColumns), "weight,label"))

	s, err := New(p)
	require.NoError(t, err)

	cols, err := s.ColumnsProperty(EdgeTextColumns)
	require.NoError(t, err)
	assert.Empty(t, cols)
}

func TestNew_DoesNotWrite(t *testing.T) {
	p := newTestPrefs(t)
	_, err := New(p)
	require.NoError(t, err)

	keys, err := p.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestStore_KindMismatch(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	_, err = s.BoolProperty(Antialiasing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPropertyNotAvailable))

	var pna *PropertyNotAvailableError
	require.True(t, errors.As(err, &pna))
	assert.Equal(t, Antialiasing, pna.Name)

	_, err = s.FloatProperty(Antialiasing)
	assert.ErrorIs(t, err, ErrPropertyNotAvailable)

	_, err = EnumProperty[SelectionType](s, NodeGlobalShape)
	assert.ErrorIs(t, err, ErrPropertyNotAvailable)
}

func TestStore_UnknownName(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	const missing = "no_such_property"
	checks := map[string]error{}
	_, checks["string"] = s.StringProperty(missing)
	_, checks["int"] = s.IntProperty(missing)
	_, checks["float"] = s.FloatProperty(missing)
	_, checks["bool"] = s.BoolProperty(missing)
	_, checks["float_array"] = s.FloatArrayProperty(missing)
	_, checks["font"] = s.FontProperty(missing)
	_, checks["color"] = s.ColorProperty(missing)
	_, checks["columns"] = s.ColumnsProperty(missing)
	_, checks["enum"] = EnumProperty[NodeShape](s, missing)
	_, checks["property"] = s.Property(missing)
	_, checks["kind"] = s.PropertyKind(missing)

	for kind, err := range checks {
		assert.ErrorIs(t, err, ErrPropertyNotAvailable, kind)
		assert.EqualError(t, err, `property "no_such_property" not available`, kind)
	}
}

func TestStore_WriteThenRead(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	s.SetBool(ShowHulls, false)
	b, err := s.BoolProperty(ShowHulls)
	require.NoError(t, err)
	assert.False(t, b)

	s.SetColor(BackgroundColor, Black)
	c, err := s.ColorProperty(BackgroundColor)
	require.NoError(t, err)
	assert.Equal(t, Black, c)

	s.SetFloatArray(CameraPosition, []float32{1, 2, 3})
	pos, err := s.FloatArrayProperty(CameraPosition)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, pos)

	s.SetEnum(NodeGlobalShape, ShapeDiamond)
	shape, err := EnumProperty[NodeShape](s, NodeGlobalShape)
	require.NoError(t, err)
	assert.Equal(t, ShapeDiamond, shape)

	s.SetColumns(NodeTextColumns, []Column{{ID: "label", Title: "Label"}})
	cols, err := s.ColumnsProperty(NodeTextColumns)
	require.NoError(t, err)
	assert.Equal(t, []Column{{ID: "label", Title: "Label"}}, cols)

	s.SetString("title", "untitled")
	str, err := s.StringProperty("title")
	require.NoError(t, err)
	assert.Equal(t, "untitled", str)
}

func TestStore_WriteChangesKind(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	s.SetInt(ShowEdges, 3)

	kind, err := s.PropertyKind(ShowEdges)
	require.NoError(t, err)
	assert.Equal(t, KindInt, kind)

	_, err = s.BoolProperty(ShowEdges)
	assert.ErrorIs(t, err, ErrPropertyNotAvailable)

	i, err := s.IntProperty(ShowEdges)
	require.NoError(t, err)
	assert.Equal(t, 3, i)
}

func TestStore_ReturnedSlicesAreCopies(t *testing.T) {
	s, err := New(newTestPrefs(t))
	require.NoError(t, err)

	pos, err := s.FloatArrayProperty(CameraPosition)
	require.NoError(t, err)
	pos[0] = 42

	again, err := s.FloatArrayProperty(CameraPosition)
	require.NoError(t, err)
	assert.Equal(t, float32(0), again[0])
}

func TestStore_WriteDefaultsRoundTrip(t *testing.T) {
	p := newTestPrefs(t)
	s, err := New(p)
	require.NoError(t, err)

	s.SetFloat(ZoomFactor, 0.35)
	s.SetColor(NodeLabelColor, NewColor(1, 2, 3, 4))
	s.SetEnum(NodeGlobalShape, ShapeTriangle)
	require.NoError(t, s.WriteDefaults(p, ZoomFactor, NodeLabelColor, NodeGlobalShape))

	raw, err := p.String(PreferenceKey(NodeLabelColor), "")
	require.NoError(t, err)
	assert.Equal(t, "01020304", raw)

	next, err := New(p)
	require.NoError(t, err)

	f, err := next.FloatProperty(ZoomFactor)
	require.NoError(t, err)
	assert.Equal(t, float32(0.35), f)

	shape, err := EnumProperty[NodeShape](next, NodeGlobalShape)
	require.NoError(t, err)
	assert.Equal(t, ShapeTriangle, shape)
}

func TestStore_WriteDefaultsSkipsMemoryOnlyKinds(t *testing.T) {
	p := newTestPrefs(t)
	s, err := New(p)
	require.NoError(t, err)

	require.NoError(t, s.WriteDefaults(p))

	keys, err := p.Keys()
	require.NoError(t, err)
	assert.Len(t, keys, 67)
	assert.NotContains(t, keys, PreferenceKey(EdgeTextColumns))

	err = s.WriteDefaults(p, NodeTextColumns)
	assert.Error(t, err)

	err = s.WriteDefaults(p, "no_such_property")
	assert.ErrorIs(t, err, ErrPropertyNotAvailable)
}
