package types

import (
	"fmt"
	"math/bits"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindFormat   ErrKind = iota // malformed input (bad encoding, bad config syntax)
	ErrKindInvalid                 // well-formed input that violates a rule (duplicate name)
	ErrKindRange                   // id, size or count outside the allowed range
	ErrKindNotFound                // unknown property name or id
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind and message, or the
// category sentinel of e's kind. Package-level errors built on a kind
// therefore match both themselves and ErrFormat, ErrInvalid, ErrOutOfRange or
// ErrNotFound.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil || e.Kind != t.Kind {
		return false
	}
	return e.Msg == t.Msg || (int(t.Kind) < len(categories) && t == categories[t.Kind])
}

// Category sentinels, one per ErrKind.
var (
	// ErrFormat indicates input that could not be decoded.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed input"}
	// ErrInvalid indicates well-formed input that breaks a rule.
	ErrInvalid = &Error{Kind: ErrKindInvalid, Msg: "invalid input"}
	// ErrOutOfRange indicates an id, size or count outside the allowed range.
	ErrOutOfRange = &Error{Kind: ErrKindRange, Msg: "value out of range"}
	// ErrNotFound indicates an unknown property.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

var categories = [...]*Error{
	ErrKindFormat:   ErrFormat,
	ErrKindInvalid:  ErrInvalid,
	ErrKindRange:    ErrOutOfRange,
	ErrKindNotFound: ErrNotFound,
}

// -----------------------------------------------------------------------------
// Core Identifiers
// -----------------------------------------------------------------------------

// PropertyID identifies a style property (display, color, font-size, ...).
// The numbering is owned by the property registry; this package only fixes
// the range.
type PropertyID uint8

// Valid reports whether id is inside the supported id space.
func (id PropertyID) Valid() bool {
	return int(id) < MaxPropertyIDs
}

// PropertyIDSet is a set of property ids stored as a fixed-size bitset.
// The zero value is an empty set ready to use. Sets are values: copying a
// set copies its contents.
type PropertyIDSet struct {
	words [MaxPropertyIDs / 64]uint64
}

// NewPropertyIDSet returns a set containing ids.
func NewPropertyIDSet(ids ...PropertyID) PropertyIDSet {
	var s PropertyIDSet
	for _, id := range ids {
		s.Insert(id)
	}
	return s
}

// Insert adds id to the set. Out-of-range ids panic.
func (s *PropertyIDSet) Insert(id PropertyID) {
	if !id.Valid() {
		panic(fmt.Sprintf("types: property id %d out of range", id))
	}
	s.words[id>>6] |= 1 << (id & 63)
}

// Remove deletes id from the set. Removing an absent id is a no-op.
func (s *PropertyIDSet) Remove(id PropertyID) {
	if !id.Valid() {
		return
	}
	s.words[id>>6] &^= 1 << (id & 63)
}

// Contains reports whether id is in the set.
func (s PropertyIDSet) Contains(id PropertyID) bool {
	if !id.Valid() {
		return false
	}
	return s.words[id>>6]&(1<<(id&63)) != 0
}

// Len returns the number of ids in the set.
func (s PropertyIDSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Empty reports whether the set has no members.
func (s PropertyIDSet) Empty() bool {
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Union returns s ∪ o.
func (s PropertyIDSet) Union(o PropertyIDSet) PropertyIDSet {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
	return s
}

// Intersect returns s ∩ o.
func (s PropertyIDSet) Intersect(o PropertyIDSet) PropertyIDSet {
	for i := range s.words {
		s.words[i] &= o.words[i]
	}
	return s
}

// Difference returns the ids in s that are not in o.
func (s PropertyIDSet) Difference(o PropertyIDSet) PropertyIDSet {
	for i := range s.words {
		s.words[i] &^= o.words[i]
	}
	return s
}

// Each calls fn for every id in ascending order.
func (s PropertyIDSet) Each(fn func(PropertyID)) {
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(PropertyID(i*64 + b))
			w &= w - 1
		}
	}
}

// IDs returns the members in ascending order.
func (s PropertyIDSet) IDs() []PropertyID {
	out := make([]PropertyID, 0, s.Len())
	s.Each(func(id PropertyID) {
		out = append(out, id)
	})
	return out
}

// String formats the set as {1 5 9}.
func (s PropertyIDSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	s.Each(func(id PropertyID) {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%d", id)
	})
	sb.WriteByte('}')
	return sb.String()
}
