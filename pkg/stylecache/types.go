package stylecache

import (
	"github.com/joshuapare/stylekit/style/attrib"
	"github.com/joshuapare/stylekit/style/table"
)

// Property is a handle to one interned (id, value) attribute. The zero
// Property means "no property".
type Property struct {
	h attrib.Handle
}

// IsZero reports whether p is the absent property.
func (p Property) IsZero() bool { return p.h == attrib.None }

// Handle returns the raw attribute handle, for diagnostics.
func (p Property) Handle() uint32 { return uint32(p.h) }

// PropertyVector is an ordered batch of properties, each carrying its own id.
type PropertyVector []Property

// Table is a read-only view over either table kind. Only TableValue and
// TableCombination implement it.
type Table interface {
	handle() table.Handle
}

// TableValue is a mutable table owned by one element. The zero TableValue is
// the absent table: mutations on it do nothing and reads report empty.
type TableValue struct {
	h table.Handle
}

func (t TableValue) handle() table.Handle { return t.h }

// IsNull reports whether t is the absent table.
func (t TableValue) IsNull() bool { return t.h == table.Null }

// Handle returns the raw table handle, for diagnostics.
func (t TableValue) Handle() uint32 { return uint32(t.h) }

// TableCombination is an immutable, interned table. The zero
// TableCombination is the empty combination.
type TableCombination struct {
	h table.Handle
}

func (t TableCombination) handle() table.Handle { return t.h }

// IsNull reports whether t is the empty combination.
func (t TableCombination) IsNull() bool { return t.h == table.Null }

// Handle returns the raw table handle, for diagnostics.
func (t TableCombination) Handle() uint32 { return uint32(t.h) }

var (
	_ Table = TableValue{}
	_ Table = TableCombination{}
)
