package stylecache

import (
	"fmt"

	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/attrib"
	"github.com/joshuapare/stylekit/style/value"
)

// CreateProperty interns (id, data). Equal content returns the same Property
// with one more reference. The caller owns one reference.
func (c *Cache) CreateProperty(id types.PropertyID, data []byte) Property {
	return Property{h: c.attrs.Intern(id, data)}
}

// CreateValue encodes v and interns it under id.
func (c *Cache) CreateValue(id types.PropertyID, v value.Value) (Property, error) {
	data, err := value.Encode(v)
	if err != nil {
		return Property{}, fmt.Errorf("stylecache: property %d: %w", id, err)
	}
	return c.CreateProperty(id, data), nil
}

// PropertyID returns the id of p.
func (c *Cache) PropertyID(p Property) types.PropertyID {
	return c.attrs.ID(p.h)
}

// PropertyData returns the value bytes of p. The slice is shared and must not
// be modified.
func (c *Cache) PropertyData(p Property) []byte {
	return c.attrs.Data(p.h)
}

// PropertyValue decodes the value of p.
func (c *Cache) PropertyValue(p Property) (value.Value, error) {
	return value.Decode(c.attrs.Data(p.h))
}

// PropertyAddRef takes another reference to p. The zero Property is ignored.
func (c *Cache) PropertyAddRef(p Property) {
	if !p.IsZero() {
		c.attrs.AddRef(p.h)
	}
}

// PropertyRelease gives back one reference to p. The zero Property is ignored.
func (c *Cache) PropertyRelease(p Property) {
	if !p.IsZero() {
		c.attrs.Release(p.h)
	}
}

// ReleaseVector releases every property in vec.
func (c *Cache) ReleaseVector(vec PropertyVector) {
	for _, p := range vec {
		c.PropertyRelease(p)
	}
}

// SetProperty sets id on t to p and reports whether the value changed. A zero
// p deletes id. p must carry id.
func (c *Cache) SetProperty(t TableValue, id types.PropertyID, p Property) bool {
	if p.IsZero() {
		return c.DelProperty(t, id)
	}
	if got := c.attrs.ID(p.h); got != id {
		panic(fmt.Sprintf("stylecache: property %d set under id %d", got, id))
	}
	return !c.tables.Modify(t.h, []attrib.Handle{p.h}, nil).Empty()
}

// SetProperties upserts every property of vec into t and returns the ids
// whose value actually changed.
func (c *Cache) SetProperties(t TableValue, vec PropertyVector) types.PropertyIDSet {
	return c.tables.Modify(t.h, c.handles(vec), nil)
}

// DelProperty removes id from t and reports whether it was present.
func (c *Cache) DelProperty(t TableValue, id types.PropertyID) bool {
	return !c.tables.Modify(t.h, nil, []types.PropertyID{id}).Empty()
}

// DelProperties removes every id of set from t and returns the ids that were
// present.
func (c *Cache) DelProperties(t TableValue, set types.PropertyIDSet) types.PropertyIDSet {
	return c.tables.Modify(t.h, nil, set.IDs())
}
