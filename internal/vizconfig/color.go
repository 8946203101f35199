package vizconfig

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is an 8-bit-per-channel RGBA color, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

var _ color.Color = Color{}

var (
	White = Color{255, 255, 255, 255}
	Black = Color{0, 0, 0, 255}
)

// NewColor builds a color from 8-bit channels.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// ColorFromFloats builds a color from normalized channels, rounding each to
// the nearest 8-bit value. Channels outside [0, 1] are clamped.
func ColorFromFloats(r, g, b, a float32) Color {
	return Color{R: unitToByte(r), G: unitToByte(g), B: unitToByte(b), A: unitToByte(a)}
}

func unitToByte(f float32) uint8 {
	if f <= 0 || f != f {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

// Components returns the channels normalized to [0, 1].
func (c Color) Components() [4]float32 {
	return [4]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

func (c Color) String() string {
	return EncodeColor(c)
}

// EncodeColor renders c as eight lower-case hex digits, RRGGBBAA.
func EncodeColor(c Color) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// DecodeColor is the inverse of EncodeColor. Only the low 32 bits of the
// parsed number are used, so shorter strings leave the high channels zero.
func DecodeColor(s string) (Color, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("decoding color %q: %w", s, err)
	}
	i := uint32(n)
	return Color{
		R: uint8(i >> 24),
		G: uint8(i >> 16),
		B: uint8(i >> 8),
		A: uint8(i),
	}, nil
}
