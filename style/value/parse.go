package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/stylekit/pkg/types"
)

// namedColors covers the colour keywords the default registry's tests and
// tools use. Anything else is kept as a keyword.
var namedColors = map[string]RGBA{
	"transparent": {0, 0, 0, 0},
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0x80, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"orange":      {0xff, 0xa5, 0, 0xff},
}

// Parse reads a single value literal:
//
//	12px, 1.5em, 50%, 0        -> KindFloat
//	#rgb, #rrggbb, #rrggbbaa   -> KindColor
//	red, white, transparent    -> KindColor
//	"text", 'text'             -> KindString
//	block, auto, inherit       -> KindKeyword
//
// It is a literal reader for tools and tests, not a CSS parser: shorthand
// lists and functions are rejected.
func Parse(text string) (Value, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty", ErrSyntax)
	}

	switch c := s[0]; {
	case c == '#':
		rgba, err := parseHex(s[1:])
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindColor, Color: rgba}, nil

	case c == '"' || c == '\'':
		if len(s) < 2 || s[len(s)-1] != c {
			return Value{}, fmt.Errorf("%w: unterminated string %s", ErrSyntax, s)
		}
		return Value{Kind: KindString, Text: s[1 : len(s)-1]}, nil

	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		number, unit, ok := types.SplitUnit(s)
		if !ok {
			return Value{}, fmt.Errorf("%w: unknown unit in %s", ErrSyntax, s)
		}
		f, err := strconv.ParseFloat(number, 32)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrSyntax, s)
		}
		return Value{Kind: KindFloat, Number: float32(f), Unit: unit}, nil
	}

	if strings.ContainsAny(s, " \t(),;") {
		return Value{}, fmt.Errorf("%w: %s", ErrSyntax, s)
	}
	lower := strings.ToLower(s)
	if rgba, ok := namedColors[lower]; ok {
		return Value{Kind: KindColor, Color: rgba}, nil
	}
	return Value{Kind: KindKeyword, Text: lower}, nil
}

// ParseEncode parses a literal and returns its encoding.
func ParseEncode(text string) ([]byte, error) {
	v, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return Encode(v)
}

func parseHex(h string) (RGBA, error) {
	expand := func(c byte) string { return string([]byte{c, c}) }
	switch len(h) {
	case 3:
		h = expand(h[0]) + expand(h[1]) + expand(h[2]) + "ff"
	case 4:
		h = expand(h[0]) + expand(h[1]) + expand(h[2]) + expand(h[3])
	case 6:
		h += "ff"
	case 8:
	default:
		return RGBA{}, fmt.Errorf("%w: colour #%s", ErrSyntax, h)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: colour #%s", ErrSyntax, h)
	}
	return RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
