package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyIDSet_InsertContainsRemove(t *testing.T) {
	var s PropertyIDSet
	require.True(t, s.Empty())

	s.Insert(0)
	s.Insert(63)
	s.Insert(64)
	s.Insert(127)
	s.Insert(63) // duplicate

	require.Equal(t, 4, s.Len())
	for _, id := range []PropertyID{0, 63, 64, 127} {
		require.True(t, s.Contains(id), "id %d", id)
	}
	require.False(t, s.Contains(1))
	require.False(t, s.Contains(200), "out of range ids are never members")

	s.Remove(63)
	s.Remove(5) // absent
	require.Equal(t, []PropertyID{0, 64, 127}, s.IDs())
}

func TestPropertyIDSet_InsertOutOfRangePanics(t *testing.T) {
	var s PropertyIDSet
	require.Panics(t, func() { s.Insert(MaxPropertyIDs) })
}

func TestPropertyIDSet_SetAlgebra(t *testing.T) {
	a := NewPropertyIDSet(1, 2, 3, 100)
	b := NewPropertyIDSet(3, 4, 100)

	assert.Equal(t, []PropertyID{1, 2, 3, 4, 100}, a.Union(b).IDs())
	assert.Equal(t, []PropertyID{3, 100}, a.Intersect(b).IDs())
	assert.Equal(t, []PropertyID{1, 2}, a.Difference(b).IDs())

	// Operands are values and stay untouched.
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 3, b.Len())
}

func TestPropertyIDSet_EqualityAndString(t *testing.T) {
	a := NewPropertyIDSet(7, 9)
	b := NewPropertyIDSet(9, 7)
	require.Equal(t, a, b)
	require.Equal(t, "{7 9}", a.String())
	require.Equal(t, "{}", PropertyIDSet{}.String())
}

func TestError_IsMatchesWrappedSentinel(t *testing.T) {
	err := fmt.Errorf("loading registry: %w", &Error{Kind: ErrKindNotFound, Msg: "not found", Err: errors.New("color")})
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrOutOfRange)
	require.Contains(t, err.Error(), "not found: color")
}

func TestError_IsMatchesCategory(t *testing.T) {
	errSyntax := &Error{Kind: ErrKindFormat, Msg: "value: invalid literal"}
	err := fmt.Errorf("%w: 12qq", errSyntax)

	require.ErrorIs(t, err, errSyntax)
	require.ErrorIs(t, err, ErrFormat, "package errors match their category")
	require.NotErrorIs(t, err, ErrInvalid)
	require.NotErrorIs(t, err, &Error{Kind: ErrKindFormat, Msg: "registry: bad format"},
		"two errors of one kind stay distinct")
	require.NotErrorIs(t, ErrFormat, errSyntax, "a category does not match its members")
}

func TestUnit_Families(t *testing.T) {
	tests := []struct {
		unit Unit
		mask Unit
		want bool
	}{
		{UnitPx, UnitLength, true},
		{UnitEm, UnitFontRelative, true},
		{UnitVw, UnitViewport, true},
		{UnitPercent, UnitLength, false},
		{UnitPercent, UnitLengthPct, true},
		{UnitDeg, UnitLength, false},
		{UnitMs, UnitTime, true},
		{UnitNone, UnitLength, false},
	}
	for _, tt := range tests {
		t.Run(tt.unit.String()+"_in_"+tt.mask.String(), func(t *testing.T) {
			require.Equal(t, tt.want, tt.unit.In(tt.mask))
		})
	}
}

func TestSplitUnit(t *testing.T) {
	tests := []struct {
		in     string
		number string
		unit   Unit
		ok     bool
	}{
		{"12px", "12", UnitPx, true},
		{"1.5em", "1.5", UnitEm, true},
		{"2rem", "2", UnitRem, true},
		{"50%", "50", UnitPercent, true},
		{"10vmin", "10", UnitVmin, true},
		{"250ms", "250", UnitMs, true},
		{"3s", "3", UnitS, true},
		{"42", "42", UnitNumber, true},
		{" 7PX ", "7", UnitPx, true},
		{"auto", "auto", UnitNone, false},
		{"", "", UnitNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			number, unit, ok := SplitUnit(tt.in)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.unit, unit)
			require.Equal(t, tt.number, number)
		})
	}
}
