package stylecache

import (
	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/attrib"
	"github.com/joshuapare/stylekit/style/value"
)

// Find returns the property of t for id, or the zero Property. The result is
// borrowed from t.
func (c *Cache) Find(t Table, id types.PropertyID) Property {
	a, _ := c.tables.Find(handleOf(t), id)
	return Property{h: a}
}

// Has reports whether t sets id.
func (c *Cache) Has(t Table, id types.PropertyID) bool {
	_, ok := c.tables.Find(handleOf(t), id)
	return ok
}

// Len returns the number of properties in t.
func (c *Cache) Len(t Table) int {
	return c.tables.Len(handleOf(t))
}

// Index returns the i-th property of t in id order, or the zero Property past
// the end. The result is borrowed from t.
func (c *Cache) Index(t Table, i int) Property {
	a, _ := c.tables.Index(handleOf(t), i)
	return Property{h: a}
}

// Foreach adds every id set on t to out.
func (c *Cache) Foreach(t Table, out *types.PropertyIDSet) {
	c.tables.Each(handleOf(t), func(id types.PropertyID, _ attrib.Handle) {
		out.Insert(id)
	})
}

// ForeachUnit adds to out the ids of t whose value is a number tagged with a
// unit in mask, e.g. types.UnitFontRelative to find what a font-size change
// invalidates.
func (c *Cache) ForeachUnit(t Table, mask types.Unit, out *types.PropertyIDSet) {
	c.tables.Each(handleOf(t), func(id types.PropertyID, a attrib.Handle) {
		if value.IsFloatUnit(c.attrs.Data(a), mask) {
			out.Insert(id)
		}
	})
}

// Diff returns the ids whose property differs between a and b, including ids
// set on only one side. Diff is symmetric and Diff(t, t) is empty.
func (c *Cache) Diff(a, b Table) types.PropertyIDSet {
	var left, right [types.MaxPropertyIDs]attrib.Handle
	var ids types.PropertyIDSet

	c.tables.Each(handleOf(a), func(id types.PropertyID, h attrib.Handle) {
		left[id] = h
		ids.Insert(id)
	})
	c.tables.Each(handleOf(b), func(id types.PropertyID, h attrib.Handle) {
		right[id] = h
		ids.Insert(id)
	})

	var changed types.PropertyIDSet
	ids.Each(func(id types.PropertyID) {
		if left[id] != right[id] {
			changed.Insert(id)
		}
	})
	return changed
}
