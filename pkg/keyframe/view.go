package keyframe

import (
	"github.com/joshuapare/stylekit/pkg/stylecache"
	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/value"
)

// PropertyView owns one reference to a property. The zero PropertyView owns
// nothing.
type PropertyView struct {
	c  *stylecache.Cache
	id types.PropertyID
	p  stylecache.Property
}

// NewPropertyView takes a new reference to p, which must carry id.
func NewPropertyView(c *stylecache.Cache, id types.PropertyID, p stylecache.Property) PropertyView {
	c.PropertyAddRef(p)
	return PropertyView{c: c, id: id, p: p}
}

// ID returns the property id.
func (v PropertyView) ID() types.PropertyID { return v.id }

// Property returns the viewed property, borrowed from v.
func (v PropertyView) Property() stylecache.Property { return v.p }

// IsZero reports whether v owns nothing.
func (v PropertyView) IsZero() bool { return v.p.IsZero() }

// Data returns the encoded value.
func (v PropertyView) Data() []byte {
	if v.IsZero() {
		return nil
	}
	return v.c.PropertyData(v.p)
}

// Value decodes the value.
func (v PropertyView) Value() (value.Value, error) {
	return value.Decode(v.Data())
}

// Clone returns a second view with its own reference.
func (v PropertyView) Clone() PropertyView {
	if v.IsZero() {
		return v
	}
	return NewPropertyView(v.c, v.id, v.p)
}

// Move transfers the reference to the returned view and zeroes v.
func (v *PropertyView) Move() PropertyView {
	out := *v
	*v = PropertyView{}
	return out
}

// Release gives back the reference and zeroes v. Releasing a zero view does
// nothing.
func (v *PropertyView) Release() {
	if v.IsZero() {
		return
	}
	v.c.PropertyRelease(v.p)
	*v = PropertyView{}
}

// AnimationKey is a property value at a point of an animation, in [0, 1].
type AnimationKey struct {
	Time float32
	Prop PropertyView
}

// Clone returns a copy with its own property reference.
func (k AnimationKey) Clone() AnimationKey {
	return AnimationKey{Time: k.Time, Prop: k.Prop.Clone()}
}

// Move transfers the key's reference and zeroes k's property.
func (k *AnimationKey) Move() AnimationKey {
	return AnimationKey{Time: k.Time, Prop: k.Prop.Move()}
}

// Release gives back the key's reference.
func (k *AnimationKey) Release() {
	k.Prop.Release()
}
