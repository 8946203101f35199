package vizconfig

import "slices"

// Value is a property value tagged with its kind. Only the field matching
// the kind is meaningful.
type Value struct {
	kind    Kind
	str     string
	integer int
	float   float32
	boolean bool
	color   Color
	font    Font
	floats  []float32
	enum    Enum
	columns []Column
}

func StringValue(v string) Value { return Value{kind: KindString, str: v} }

func IntValue(v int) Value { return Value{kind: KindInt, integer: v} }

func FloatValue(v float32) Value { return Value{kind: KindFloat, float: v} }

func BoolValue(v bool) Value { return Value{kind: KindBool, boolean: v} }

func ColorValue(v Color) Value { return Value{kind: KindColor, color: v} }

func FontValue(v Font) Value { return Value{kind: KindFont, font: v} }

// FloatArrayValue copies v.
func FloatArrayValue(v []float32) Value {
	if v == nil {
		v = []float32{}
	}
	return Value{kind: KindFloatArray, floats: slices.Clone(v)}
}

func EnumValue(v Enum) Value { return Value{kind: KindEnum, enum: v} }

// ColumnsValue copies v.
func ColumnsValue(v []Column) Value {
	if v == nil {
		v = []Column{}
	}
	return Value{kind: KindColumns, columns: slices.Clone(v)}
}

// Kind returns the tag. The zero Value has KindInvalid.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the payload as a plain Go value, e.g. for JSON output.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.integer
	case KindFloat:
		return v.float
	case KindBool:
		return v.boolean
	case KindColor:
		return v.color
	case KindFont:
		return v.font
	case KindFloatArray:
		return slices.Clone(v.floats)
	case KindEnum:
		return v.enum
	case KindColumns:
		return slices.Clone(v.columns)
	}
	return nil
}

// Equal compares kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.integer == o.integer
	case KindFloat:
		return v.float == o.float
	case KindBool:
		return v.boolean == o.boolean
	case KindColor:
		return v.color == o.color
	case KindFont:
		return v.font == o.font
	case KindFloatArray:
		return slices.Equal(v.floats, o.floats)
	case KindEnum:
		return v.enum == o.enum
	case KindColumns:
		return slices.Equal(v.columns, o.columns)
	}
	return true
}
