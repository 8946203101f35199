package vizconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kalambet/vizprefs/internal/prefs"
)

// EncodeValue renders v in the text form used by the preferences backend.
// Columns, which are never persisted, are written as comma-separated IDs.
func EncodeValue(v Value) (string, error) {
	switch v.kind {
	case KindString:
		return v.str, nil
	case KindInt:
		return strconv.Itoa(v.integer), nil
	case KindFloat:
		return prefs.FormatFloat(v.float), nil
	case KindBool:
		return strconv.FormatBool(v.boolean), nil
	case KindColor:
		return EncodeColor(v.color), nil
	case KindFont:
		return EncodeFont(v.font), nil
	case KindFloatArray:
		return EncodeFloatArray(v.floats), nil
	case KindEnum:
		if v.enum == nil {
			return "", fmt.Errorf("encoding enum: no variant set")
		}
		return v.enum.String(), nil
	case KindColumns:
		return encodeColumns(v.columns), nil
	}
	return "", fmt.Errorf("encoding value: unsupported kind %s", v.kind)
}

// DecodeValue parses text as a value of kind for the named property. Enum
// names are resolved against the property's own enumeration, so name must
// be a recognized enum property when kind is KindEnum.
func DecodeValue(name string, kind Kind, text string) (Value, error) {
	switch kind {
	case KindString:
		return StringValue(text), nil
	case KindInt:
		i, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return Value{}, fmt.Errorf("decoding %s as int: %w", name, err)
		}
		return IntValue(i), nil
	case KindFloat:
		f, err := prefs.ParseFloat(text)
		if err != nil {
			return Value{}, fmt.Errorf("decoding %s as float: %w", name, err)
		}
		return FloatValue(f), nil
	case KindBool:
		switch {
		case strings.EqualFold(text, "true"):
			return BoolValue(true), nil
		case strings.EqualFold(text, "false"):
			return BoolValue(false), nil
		}
		return Value{}, fmt.Errorf("decoding %s as bool: %q is not true or false", name, text)
	case KindColor:
		c, err := DecodeColor(text)
		if err != nil {
			return Value{}, fmt.Errorf("decoding %s: %w", name, err)
		}
		return ColorValue(c), nil
	case KindFont:
		return FontValue(DecodeFont(text)), nil
	case KindFloatArray:
		f, err := DecodeFloatArray(text)
		if err != nil {
			return Value{}, fmt.Errorf("decoding %s: %w", name, err)
		}
		return FloatArrayValue(f), nil
	case KindEnum:
		d, ok := defs[name]
		if !ok || d.parseEnum == nil {
			return Value{}, fmt.Errorf("decoding %s: not an enum property", name)
		}
		e, err := d.parseEnum(text)
		if err != nil {
			return Value{}, fmt.Errorf("decoding %s: %w", name, err)
		}
		return EnumValue(e), nil
	case KindColumns:
		return ColumnsValue(decodeColumns(text)), nil
	}
	return Value{}, fmt.Errorf("decoding %s: unsupported kind %s", name, kind)
}
