// Package value encodes property values into the opaque byte form stored by
// the attribute store.
//
// Encoding layout (little-endian):
//
//	Float:   [0x01][unit uint32][float32 bits]   9 bytes
//	Keyword: [0x02][identifier bytes]
//	Color:   [0x03][r][g][b][a]                  5 bytes
//	String:  [0x04][utf-8 bytes]
//
// Two values are the same attribute exactly when their encodings are equal,
// so encoders must be canonical: one value, one byte string.
package value

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/joshuapare/stylekit/pkg/types"
)

// Kind identifies the encoded value type.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindKeyword
	KindColor
	KindString
)

const (
	floatSize = 1 + 4 + 4
	colorSize = 1 + 4
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindKeyword:
		return "keyword"
	case KindColor:
		return "color"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// RGBA is an 8-bit per channel colour.
type RGBA struct {
	R, G, B, A uint8
}

// Value is a decoded property value.
type Value struct {
	Kind   Kind
	Number float32    // KindFloat
	Unit   types.Unit // KindFloat
	Color  RGBA       // KindColor
	Text   string     // KindKeyword, KindString
}

// Float encodes a number with a unit.
func Float(v float32, unit types.Unit) []byte {
	if v == 0 {
		v = 0 // fold -0 into +0 so both encode identically
	}
	b := make([]byte, floatSize)
	b[0] = byte(KindFloat)
	binary.LittleEndian.PutUint32(b[1:5], uint32(unit))
	binary.LittleEndian.PutUint32(b[5:9], math.Float32bits(v))
	return b
}

// Keyword encodes a CSS identifier such as "block" or "auto".
// Identifiers are ASCII case-insensitive and stored lowercased.
func Keyword(k string) []byte {
	b := make([]byte, 0, 1+len(k))
	b = append(b, byte(KindKeyword))
	return append(b, strings.ToLower(k)...)
}

// Color encodes an RGBA colour.
func Color(c RGBA) []byte {
	return []byte{byte(KindColor), c.R, c.G, c.B, c.A}
}

// String encodes a string value verbatim.
func String(s string) []byte {
	b := make([]byte, 0, 1+len(s))
	b = append(b, byte(KindString))
	return append(b, s...)
}

// Encode encodes v.
func Encode(v Value) ([]byte, error) {
	var b []byte
	switch v.Kind {
	case KindFloat:
		b = Float(v.Number, v.Unit)
	case KindKeyword:
		b = Keyword(v.Text)
	case KindColor:
		b = Color(v.Color)
	case KindString:
		b = String(v.Text)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, v.Kind)
	}
	if len(b) > types.MaxValueSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(b))
	}
	return b, nil
}

// Decode decodes an encoded value.
func Decode(b []byte) (Value, error) {
	if len(b) == 0 {
		return Value{}, ErrEmpty
	}
	switch k := Kind(b[0]); k {
	case KindFloat:
		if len(b) != floatSize {
			return Value{}, fmt.Errorf("%w: float needs %d bytes, got %d", ErrTruncated, floatSize, len(b))
		}
		return Value{
			Kind:   KindFloat,
			Unit:   types.Unit(binary.LittleEndian.Uint32(b[1:5])),
			Number: math.Float32frombits(binary.LittleEndian.Uint32(b[5:9])),
		}, nil
	case KindKeyword, KindString:
		return Value{Kind: k, Text: string(b[1:])}, nil
	case KindColor:
		if len(b) != colorSize {
			return Value{}, fmt.Errorf("%w: color needs %d bytes, got %d", ErrTruncated, colorSize, len(b))
		}
		return Value{Kind: KindColor, Color: RGBA{b[1], b[2], b[3], b[4]}}, nil
	default:
		return Value{}, fmt.Errorf("%w: 0x%02x", ErrUnknownKind, b[0])
	}
}

// KindOf returns the kind of an encoded value without decoding it.
func KindOf(b []byte) Kind {
	if len(b) == 0 || b[0] > byte(KindString) {
		return KindInvalid
	}
	return Kind(b[0])
}

// IsFloatUnit reports whether b encodes a float whose unit is in mask.
// It never allocates.
func IsFloatUnit(b []byte, mask types.Unit) bool {
	if len(b) != floatSize || Kind(b[0]) != KindFloat {
		return false
	}
	return types.Unit(binary.LittleEndian.Uint32(b[1:5])).In(mask)
}

// String formats v as a CSS-like literal.
func (v Value) String() string {
	switch v.Kind {
	case KindFloat:
		n := strconv.FormatFloat(float64(v.Number), 'g', -1, 32)
		switch v.Unit {
		case types.UnitNumber, types.UnitNone:
			return n
		default:
			return n + v.Unit.String()
		}
	case KindKeyword:
		return v.Text
	case KindColor:
		if v.Color.A == 0xff {
			return fmt.Sprintf("#%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B)
		}
		return fmt.Sprintf("#%02x%02x%02x%02x", v.Color.R, v.Color.G, v.Color.B, v.Color.A)
	case KindString:
		return strconv.Quote(v.Text)
	default:
		return "<invalid>"
	}
}
