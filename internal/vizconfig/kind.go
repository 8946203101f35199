package vizconfig

import "fmt"

// Kind is the value category a property holds.
type Kind int

const (
	KindInvalid Kind = iota
	KindString
	KindInt
	KindFloat
	KindBool
	KindColor
	KindFont
	KindFloatArray
	KindEnum
	KindColumns
)

var kindNames = map[Kind]string{
	KindString:     "string",
	KindInt:        "int",
	KindFloat:      "float",
	KindBool:       "bool",
	KindColor:      "color",
	KindFont:       "font",
	KindFloatArray: "float_array",
	KindEnum:       "enum",
	KindColumns:    "columns",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind resolves a kind name as printed by Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return KindInvalid, fmt.Errorf("unknown kind %q", s)
}

// Persisted reports whether values of kind k are read from and written to
// the preferences backend.
func Persisted(k Kind) bool {
	switch k {
	case KindInt, KindFloat, KindBool, KindColor, KindFont, KindFloatArray, KindEnum:
		return true
	}
	return false
}

// MarshalText lets kinds appear by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
