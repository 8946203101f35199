package vizconfig

import "fmt"

// Enum is a value drawn from a closed set of named variants.
type Enum interface {
	fmt.Stringer
	// Variants lists every name the enumeration declares.
	Variants() []string
}

// SelectionType is how the pointer selects graph elements.
type SelectionType int

const (
	SelectionNone SelectionType = iota
	SelectionDirect
	SelectionRectangle
)

var selectionTypeNames = []string{"NONE", "DIRECT", "RECTANGLE"}

func (t SelectionType) String() string {
	if int(t) >= 0 && int(t) < len(selectionTypeNames) {
		return selectionTypeNames[t]
	}
	return fmt.Sprintf("SelectionType(%d)", int(t))
}

func (SelectionType) Variants() []string {
	return append([]string(nil), selectionTypeNames...)
}

// ParseSelectionType resolves an exact variant name.
func ParseSelectionType(name string) (SelectionType, error) {
	i, err := variantIndex("SelectionType", selectionTypeNames, name)
	return SelectionType(i), err
}

// NodeShape is the global shape used to draw nodes.
type NodeShape int

const (
	ShapeCircle NodeShape = iota
	ShapeRectangle
	ShapeTriangle
	ShapeDiamond
)

var nodeShapeNames = []string{"CIRCLE", "RECTANGLE", "TRIANGLE", "DIAMOND"}

func (s NodeShape) String() string {
	if int(s) >= 0 && int(s) < len(nodeShapeNames) {
		return nodeShapeNames[s]
	}
	return fmt.Sprintf("NodeShape(%d)", int(s))
}

func (NodeShape) Variants() []string {
	return append([]string(nil), nodeShapeNames...)
}

// ParseNodeShape resolves an exact variant name.
func ParseNodeShape(name string) (NodeShape, error) {
	i, err := variantIndex("NodeShape", nodeShapeNames, name)
	return NodeShape(i), err
}

func variantIndex(typeName string, names []string, name string) (int, error) {
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no %s variant named %q", typeName, name)
}
