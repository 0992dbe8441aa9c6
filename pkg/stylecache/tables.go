package stylecache

import (
	"github.com/joshuapare/stylekit/style/attrib"
	"github.com/joshuapare/stylekit/style/table"
)

// handleOf returns the store handle behind t; a nil Table is the null table.
func handleOf(t Table) table.Handle {
	if t == nil {
		return table.Null
	}
	return t.handle()
}

// Create returns a new, empty value table. The caller owns one reference.
func (c *Cache) Create() TableValue {
	return TableValue{h: c.tables.Create(nil)}
}

// CreateFrom returns a new value table holding vec. When vec has several
// properties for one id the last one wins. Zero properties are skipped. The
// caller keeps its own references to the properties in vec.
func (c *Cache) CreateFrom(vec PropertyVector) TableValue {
	return TableValue{h: c.tables.Create(c.handles(vec))}
}

// Merge folds tables left to right: a property set by a later table overrides
// the same property from an earlier one. Merge of nothing, or of only empty
// tables, is the null combination. The caller owns the result.
func (c *Cache) Merge(tables ...Table) TableCombination {
	if len(tables) == 0 {
		return TableCombination{}
	}
	acc := c.tables.Snapshot(handleOf(tables[0]))
	for _, t := range tables[1:] {
		next := c.tables.Inherit(handleOf(t), acc, nil)
		c.tables.Release(acc)
		acc = next
	}
	return TableCombination{h: acc}
}

// Merge3 is the cascade-then-inherit merge: b inherits from c through the
// cache's inheritable mask, and a then overrides the result outright. a has
// the highest precedence and c the lowest; a non-inheritable property of c
// never reaches the result.
func (c *Cache) Merge3(a, b, cc Table) TableCombination {
	bc := c.tables.Inherit(handleOf(b), handleOf(cc), &c.inherit)
	res := c.tables.Inherit(handleOf(a), bc, nil)
	c.tables.Release(bc)
	return TableCombination{h: res}
}

// Inherit resolves child against parent: every property of child, plus the
// inheritable properties of parent that child does not set. The caller owns
// the result.
func (c *Cache) Inherit(child, parent Table) TableCombination {
	return TableCombination{h: c.tables.Inherit(handleOf(child), handleOf(parent), &c.inherit)}
}

// InheritSelf returns a combination with the same content as t. The caller
// owns the result.
func (c *Cache) InheritSelf(t Table) TableCombination {
	return TableCombination{h: c.tables.Snapshot(handleOf(t))}
}

// Assign replaces the content of to with the content of from and reports
// whether anything changed.
func (c *Cache) Assign(to TableValue, from Table) bool {
	return c.tables.Assign(to.h, handleOf(from))
}

// Clone copies the content of from into to.
func (c *Cache) Clone(to, from TableValue) {
	c.tables.Assign(to.h, from.h)
}

// Compare reports whether a and b hold exactly the same properties.
func (c *Cache) Compare(a TableValue, b Table) bool {
	return c.tables.Compare(a.h, handleOf(b))
}

// AddRef takes another reference to t.
func (c *Cache) AddRef(t Table) {
	c.tables.AddRef(handleOf(t))
}

// Release gives back one reference to t. The null table is ignored.
func (c *Cache) Release(t Table) {
	c.tables.Release(handleOf(t))
}

// handles converts vec to attribute handles, dropping zero properties.
func (c *Cache) handles(vec PropertyVector) []attrib.Handle {
	out := make([]attrib.Handle, 0, len(vec))
	for _, p := range vec {
		if !p.IsZero() {
			out = append(out, p.h)
		}
	}
	return out
}
