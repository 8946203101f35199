package vizconfig

import (
	"strconv"
	"strings"
)

// FontStyle is a set of style flags. The zero value is plain.
type FontStyle int

const (
	FontPlain  FontStyle = 0
	FontBold   FontStyle = 1
	FontItalic FontStyle = 2
)

func (s FontStyle) String() string {
	switch s & (FontBold | FontItalic) {
	case FontBold | FontItalic:
		return "bolditalic"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	}
	return "plain"
}

func parseFontStyle(s string) (FontStyle, bool) {
	switch strings.ToLower(s) {
	case "bolditalic":
		return FontBold | FontItalic, true
	case "italic":
		return FontItalic, true
	case "bold":
		return FontBold, true
	case "plain":
		return FontPlain, true
	}
	return FontPlain, false
}

// Font describes a label font.
type Font struct {
	Family string
	Style  FontStyle
	Size   int
}

const (
	defaultFontFamily = "Dialog"
	defaultFontSize   = 12
)

func (f Font) String() string {
	return EncodeFont(f)
}

// EncodeFont renders f as family-style-size, e.g. "Arial-bold-20".
func EncodeFont(f Font) string {
	return f.Family + "-" + f.Style.String() + "-" + strconv.Itoa(f.Size)
}

// DecodeFont parses a font descriptor. The separator is '-' when the last
// hyphen comes after the last space, ' ' otherwise. The final token is the
// size and the one before it the style, each only when it parses as one;
// whatever remains is the family. Missing parts default to Dialog, plain, 12.
// DecodeFont never fails.
func DecodeFont(s string) Font {
	font := Font{Family: s, Style: FontPlain, Size: defaultFontSize}

	sep := byte(' ')
	if strings.LastIndexByte(s, '-') > strings.LastIndexByte(s, ' ') {
		sep = '-'
	}
	n := len(s)
	sizeIdx := strings.LastIndexByte(s, sep)
	styleIdx := -1
	if sizeIdx > 0 {
		styleIdx = strings.LastIndexByte(s[:sizeIdx], sep)
	}

	if sizeIdx > 0 && sizeIdx+1 < n {
		size, err := strconv.Atoi(s[sizeIdx+1:])
		if err == nil {
			if size > 0 {
				font.Size = size
			}
		} else {
			// Not a size; the last token may be the style instead.
			styleIdx = sizeIdx
			sizeIdx = n
		}
	}

	if styleIdx >= 0 && styleIdx+1 < n {
		if style, ok := parseFontStyle(s[styleIdx+1 : sizeIdx]); ok {
			font.Style = style
		} else {
			styleIdx = sizeIdx
			if s[styleIdx-1] == sep {
				styleIdx--
			}
		}
		font.Family = s[:styleIdx]
		return font
	}

	end := n
	if styleIdx > 0 {
		end = styleIdx
	} else if sizeIdx > 0 {
		end = sizeIdx
	}
	if end > 0 && s[end-1] == sep {
		end--
	}
	font.Family = s[:end]
	if font.Family == "" && s == "" {
		font.Family = defaultFontFamily
	}
	return font
}
