package value

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stylekit/pkg/types"
)

func TestFloat_CanonicalEncoding(t *testing.T) {
	require.Equal(t, Float(12, types.UnitPx), Float(12, types.UnitPx))
	require.NotEqual(t, Float(12, types.UnitPx), Float(12, types.UnitEm))

	var negZero float32
	negZero = -negZero
	require.Equal(t, Float(0, types.UnitPx), Float(negZero, types.UnitPx), "-0 and +0 share one encoding")

	v, err := Decode(Float(1.5, types.UnitEm))
	require.NoError(t, err)
	require.Equal(t, KindFloat, v.Kind)
	require.Equal(t, float32(1.5), v.Number)
	require.Equal(t, types.UnitEm, v.Unit)
}

func TestKeyword_Lowercased(t *testing.T) {
	require.Equal(t, Keyword("block"), Keyword("BLOCK"))
	v, err := Decode(Keyword("Inline-Block"))
	require.NoError(t, err)
	require.Equal(t, Value{Kind: KindKeyword, Text: "inline-block"}, v)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(nil)
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Decode([]byte{0x7f})
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = Decode(Float(1, types.UnitPx)[:5])
	require.ErrorIs(t, err, ErrTruncated)

	_, err = Decode([]byte{byte(KindColor), 1, 2})
	require.ErrorIs(t, err, ErrTruncated)
}

func TestEncode_RejectsInvalidKind(t *testing.T) {
	_, err := Encode(Value{})
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestIsFloatUnit(t *testing.T) {
	assert.True(t, IsFloatUnit(Float(2, types.UnitEm), types.UnitFontRelative))
	assert.True(t, IsFloatUnit(Float(2, types.UnitVw), types.UnitLength))
	assert.False(t, IsFloatUnit(Float(2, types.UnitPx), types.UnitViewport))
	assert.False(t, IsFloatUnit(Keyword("em"), types.UnitFontRelative))
	assert.False(t, IsFloatUnit(nil, types.UnitLength))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindColor, KindOf(Color(RGBA{1, 2, 3, 4})))
	assert.Equal(t, KindString, KindOf(String("x")))
	assert.Equal(t, KindInvalid, KindOf([]byte{99}))
	assert.Equal(t, KindInvalid, KindOf(nil))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"12px", Value{Kind: KindFloat, Number: 12, Unit: types.UnitPx}},
		{"-4.5em", Value{Kind: KindFloat, Number: -4.5, Unit: types.UnitEm}},
		{"50%", Value{Kind: KindFloat, Number: 50, Unit: types.UnitPercent}},
		{"0", Value{Kind: KindFloat, Number: 0, Unit: types.UnitNumber}},
		{"#f00", Value{Kind: KindColor, Color: RGBA{0xff, 0, 0, 0xff}}},
		{"#11223380", Value{Kind: KindColor, Color: RGBA{0x11, 0x22, 0x33, 0x80}}},
		{"Red", Value{Kind: KindColor, Color: RGBA{0xff, 0, 0, 0xff}}},
		{`"Noto Sans"`, Value{Kind: KindString, Text: "Noto Sans"}},
		{"Block", Value{Kind: KindKeyword, Text: "block"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", `"open`, "12furlongs", "rgb(1, 2, 3)"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.ErrorIs(t, err, ErrSyntax)
			require.ErrorIs(t, err, types.ErrFormat)
		})
	}
}

func TestEncode_TooLarge(t *testing.T) {
	_, err := Encode(Value{Kind: KindString, Text: strings.Repeat("x", types.MaxValueSize)})
	require.ErrorIs(t, err, ErrTooLarge)
	require.ErrorIs(t, err, types.ErrOutOfRange)
	require.NotErrorIs(t, err, types.ErrFormat)

	_, err = Decode(nil)
	require.ErrorIs(t, err, types.ErrFormat)
	require.NotErrorIs(t, err, ErrTruncated)
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12px", "12px"},
		{"1.5", "1.5"},
		{"#ff000080", "#ff000080"},
		{"white", "#ffffff"},
		{"auto", "auto"},
		{`'a'`, `"a"`},
	}
	for _, tt := range tests {
		v, err := Parse(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, v.String())
	}
}

func TestParseEncode_RoundTrip(t *testing.T) {
	b, err := ParseEncode("3rem")
	require.NoError(t, err)
	require.Equal(t, Float(3, types.UnitRem), b)
}
