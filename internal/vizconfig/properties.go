package vizconfig

import (
	"slices"
	"strings"
)

// Recognized property names.
const (
	AdjustByText                  = "adjust_by_text"
	Antialiasing                  = "antialiasing"
	AutoSelectNeighbour           = "auto_select_neighbour"
	BackgroundColor               = "background_color"
	Blending                      = "blending"
	CleanDeletedModels            = "clean_deleted_models"
	ContextMenu                   = "context_menu"
	Culling                       = "culling"
	DisableLOD                    = "disable_lod"
	EdgeHasUniqueColor            = "edge_has_unique_color"
	EdgeLabels                    = "edge_labels"
	EdgeLabelColor                = "edge_label_color"
	EdgeLabelFont                 = "edge_label_font"
	EdgeLabelSizeFactor           = "edge_label_size_factor"
	EdgeScale                     = "edge_scale"
	EdgeTextColumns               = "edge_text_columns"
	EdgeUniqueColor               = "edge_unique_color"
	GLJPanel                      = "gljpanel"
	HideNonSelectedEdges          = "hide_non_selected_edges"
	HighlightNonSelectedAnimation = "highlight_non_selected_animation"
	HighlightNonSelectedColor     = "highlight_non_selected_color"
	HighlightNonSelectedFactor    = "highlight_non_selected_factor"
	HighlightNonSelected          = "highlight_non_selected"
	LabelAntialiased              = "label_antialiased"
	LabelFractionalMetrics        = "label_fractional_metrics"
	LabelMipmap                   = "label_mipmap"
	LabelSelectionOnly            = "label_selection_only"
	MetaEdgeScale                 = "meta_edge_scale"
	NodeGlobalShape               = "node_global_shape"
	NodeLabels                    = "node_labels"
	NodeLabelColor                = "node_label_color"
	NodeLabelFont                 = "node_label_font"
	NodeLabelSizeFactor           = "node_label_size_factor"
	NodeNeighborSelectedColor     = "node_neighbor_selected_unique_color"
	NodeSelectedUniqueColor       = "node_selected_unique_color"
	NodeTextColumns               = "node_text_columns"
	OctreeDepth                   = "octree_depth"
	OctreeWidth                   = "octree_width"
	PauseLoopMouseOut             = "pause_loop_mouse_out"
	PropertiesBar                 = "properties_bar"
	RectangleSelection            = "rectangle_selection"
	RectangleSelectionColor       = "rectangle_selection_color"
	ReduceFPSMouseOut             = "reduce_fps_mouse_out"
	ReduceFPSMouseOutValue        = "reduce_fps_mouse_out_value"
	SelectedEdgeBothColor         = "selected_edge_both_color"
	SelectedEdgeHasColor          = "selected_edge_has_color"
	SelectedEdgeInColor           = "selected_edge_in_color"
	SelectedEdgeOutColor          = "selected_edge_out_color"
	SelectedNodeUniqueColor       = "selected_node_unique_color"
	ShowEdges                     = "show_edges"
	ShowFPS                       = "show_fps"
	ShowHulls                     = "show_hulls"
	Toolbar                       = "toolbar"
	Use3D                         = "use_3d"
	Vizbar                        = "vizbar"
	Wireframe                     = "wireframe"

	CameraControl                  = "camera_control"
	CameraPosition                 = "camera_position"
	CameraTarget                   = "camera_target"
	DirectMouseSelection           = "direct_mouse_selection"
	Dragging                       = "dragging"
	MouseSelectionDiameter         = "mouse_selection_diameter"
	MouseSelectionWhileDragging    = "mouse_selection_while_dragging"
	MouseSelectionZoomProportional = "mouse_selection_zoom_proportional"
	NodeDragging                   = "node_dragging"
	Rotating                       = "rotating"
	Selection                      = "selection"
	SelectionTypeProperty          = "selection_type"
	ZoomFactor                     = "zoom_factor"
)

// Default is a recognized property with its built-in value.
type Default struct {
	Name  string
	Value Value
}

type propertyDef struct {
	value Value
	// parseEnum resolves persisted variant names for enum properties.
	parseEnum func(string) (Enum, error)
}

func enumParser[E Enum](parse func(string) (E, error)) func(string) (Enum, error) {
	return func(name string) (Enum, error) {
		e, err := parse(name)
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

var labelFont = Font{Family: "Arial", Style: FontBold, Size: 20}

var defs = map[string]propertyDef{
	AdjustByText:                  {value: BoolValue(false)},
	Antialiasing:                  {value: IntValue(4)},
	AutoSelectNeighbour:           {value: BoolValue(false)},
	BackgroundColor:               {value: ColorValue(White)},
	Blending:                      {value: BoolValue(true)},
	CleanDeletedModels:            {value: BoolValue(true)},
	ContextMenu:                   {value: BoolValue(true)},
	Culling:                       {value: BoolValue(false)},
	DisableLOD:                    {value: BoolValue(false)},
	EdgeHasUniqueColor:            {value: BoolValue(false)},
	EdgeLabels:                    {value: BoolValue(false)},
	EdgeLabelColor:                {value: ColorValue(ColorFromFloats(0.5, 0.5, 0.5, 1))},
	EdgeLabelFont:                 {value: FontValue(labelFont)},
	EdgeLabelSizeFactor:           {value: FloatValue(0.5)},
	EdgeScale:                     {value: FloatValue(1)},
	EdgeTextColumns:               {value: ColumnsValue(nil)},
	EdgeUniqueColor:               {value: ColorValue(ColorFromFloats(0.5, 0.5, 0.5, 0.5))},
	GLJPanel:                      {value: BoolValue(false)},
	HideNonSelectedEdges:          {value: BoolValue(false)},
	HighlightNonSelectedAnimation: {value: BoolValue(true)},
	HighlightNonSelectedColor:     {value: ColorValue(ColorFromFloats(0.95, 0.95, 0.95, 1))},
	HighlightNonSelectedFactor:    {value: FloatValue(0.5)},
	HighlightNonSelected:          {value: BoolValue(true)},
	LabelAntialiased:              {value: BoolValue(true)},
	LabelFractionalMetrics:        {value: BoolValue(true)},
	LabelMipmap:                   {value: BoolValue(true)},
	LabelSelectionOnly:            {value: BoolValue(false)},
	MetaEdgeScale:                 {value: FloatValue(1)},
	NodeGlobalShape:               {value: EnumValue(ShapeCircle), parseEnum: enumParser(ParseNodeShape)},
	NodeLabels:                    {value: BoolValue(false)},
	NodeLabelColor:                {value: ColorValue(Black)},
	NodeLabelFont:                 {value: FontValue(labelFont)},
	NodeLabelSizeFactor:           {value: FloatValue(0.5)},
	NodeNeighborSelectedColor:     {value: ColorValue(ColorFromFloats(0.2, 1, 0.3, 1))},
	NodeSelectedUniqueColor:       {value: ColorValue(ColorFromFloats(0.8, 0.2, 0.2, 1))},
	NodeTextColumns:               {value: ColumnsValue(nil)},
	OctreeDepth:                   {value: IntValue(5)},
	OctreeWidth:                   {value: IntValue(50000)},
	PauseLoopMouseOut:             {value: BoolValue(false)},
	PropertiesBar:                 {value: BoolValue(true)},
	RectangleSelection:            {value: BoolValue(false)},
	RectangleSelectionColor:       {value: ColorValue(ColorFromFloats(0.16, 0.48, 0.81, 0.2))},
	ReduceFPSMouseOut:             {value: BoolValue(true)},
	ReduceFPSMouseOutValue:        {value: IntValue(20)},
	SelectedEdgeBothColor:         {value: ColorValue(NewColor(248, 215, 83, 255))},
	SelectedEdgeHasColor:          {value: BoolValue(false)},
	SelectedEdgeInColor:           {value: ColorValue(NewColor(32, 95, 154, 255))},
	SelectedEdgeOutColor:          {value: ColorValue(NewColor(196, 66, 79, 255))},
	SelectedNodeUniqueColor:       {value: BoolValue(false)},
	ShowEdges:                     {value: BoolValue(true)},
	ShowFPS:                       {value: BoolValue(true)},
	ShowHulls:                     {value: BoolValue(true)},
	Toolbar:                       {value: BoolValue(true)},
	Use3D:                         {value: BoolValue(false)},
	Vizbar:                        {value: BoolValue(true)},
	Wireframe:                     {value: BoolValue(false)},

	CameraControl:                  {value: BoolValue(true)},
	CameraPosition:                 {value: FloatArrayValue([]float32{0, 0, 5000})},
	CameraTarget:                   {value: FloatArrayValue([]float32{0, 0, 0})},
	DirectMouseSelection:           {value: BoolValue(true)},
	Dragging:                       {value: BoolValue(true)},
	MouseSelectionDiameter:         {value: IntValue(1)},
	MouseSelectionWhileDragging:    {value: BoolValue(false)},
	MouseSelectionZoomProportional: {value: BoolValue(false)},
	NodeDragging:                   {value: BoolValue(false)},
	Rotating:                       {value: BoolValue(true)},
	Selection:                      {value: BoolValue(true)},
	SelectionTypeProperty:          {value: EnumValue(SelectionNone), parseEnum: enumParser(ParseSelectionType)},
	ZoomFactor:                     {value: FloatValue(0.2)},
}

// PreferenceKey is the key a property's default is stored under.
func PreferenceKey(name string) string {
	return "default_" + name
}

// PropertyName reverses PreferenceKey. ok is false for keys that do not
// name a recognized property.
func PropertyName(key string) (name string, ok bool) {
	name, found := strings.CutPrefix(key, "default_")
	if !found {
		return "", false
	}
	_, ok = defs[name]
	return name, ok
}

// Recognized reports whether name is one of the built-in properties.
func Recognized(name string) bool {
	_, ok := defs[name]
	return ok
}

// DefaultValue returns the built-in value for a recognized property.
func DefaultValue(name string) (Value, bool) {
	d, ok := defs[name]
	if !ok {
		return Value{}, false
	}
	return copyValue(d.value), true
}

// Defaults lists every recognized property with its built-in value, ordered
// by name.
func Defaults() []Default {
	names := make([]string, 0, len(defs))
	for n := range defs {
		names = append(names, n)
	}
	slices.Sort(names)

	out := make([]Default, len(names))
	for i, n := range names {
		out[i] = Default{Name: n, Value: copyValue(defs[n].value)}
	}
	return out
}

func copyValue(v Value) Value {
	switch v.kind {
	case KindFloatArray:
		return FloatArrayValue(v.floats)
	case KindColumns:
		return ColumnsValue(v.columns)
	}
	return v
}
