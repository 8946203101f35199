package vizconfig

import (
	"fmt"
	"strings"

	"github.com/kalambet/vizprefs/internal/prefs"
)

// EncodeFloatArray renders v as "[v0, v1, ..., vn]", each element written
// by prefs.FormatFloat.
func EncodeFloatArray(v []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, f := range v {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(prefs.FormatFloat(f))
	}
	b.WriteByte(']')
	return b.String()
}

// DecodeFloatArray drops the first and last characters of s and parses the
// comma-separated elements in between. Strings of two characters or fewer
// decode to an empty slice.
func DecodeFloatArray(s string) ([]float32, error) {
	if len(s) <= 2 {
		return []float32{}, nil
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	out := make([]float32, len(parts))
	for i, p := range parts {
		f, err := prefs.ParseFloat(p)
		if err != nil {
			return nil, fmt.Errorf("decoding float array %q: element %d: %w", s, i, err)
		}
		out[i] = f
	}
	return out, nil
}
