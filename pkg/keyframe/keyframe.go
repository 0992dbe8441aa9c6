package keyframe

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"sort"

	"github.com/joshuapare/stylekit/pkg/stylecache"
	"github.com/joshuapare/stylekit/pkg/types"
)

// Keyframe is the time-ordered key list of one property.
type Keyframe struct {
	keys []AnimationKey
}

// Insert adds k, taking over its reference. Keys with equal times keep
// insertion order.
func (f *Keyframe) Insert(k AnimationKey) {
	n := sort.Search(len(f.keys), func(i int) bool { return f.keys[i].Time > k.Time })
	f.keys = slices.Insert(f.keys, n, k)
}

// Len returns the number of keys.
func (f *Keyframe) Len() int { return len(f.keys) }

// At returns the i-th key, borrowed from f.
func (f *Keyframe) At(i int) AnimationKey { return f.keys[i] }

// Times returns the key times in order.
func (f *Keyframe) Times() []float32 {
	out := make([]float32, len(f.keys))
	for i, k := range f.keys {
		out[i] = k.Time
	}
	return out
}

// Clone returns a copy holding its own references.
func (f *Keyframe) Clone() *Keyframe {
	out := &Keyframe{keys: make([]AnimationKey, len(f.keys))}
	for i, k := range f.keys {
		out.keys[i] = k.Clone()
	}
	return out
}

// Release gives back every key's reference and empties f.
func (f *Keyframe) Release() {
	for i := range f.keys {
		f.keys[i].Release()
	}
	f.keys = nil
}

// Keyframes holds the keys of one animation, per property.
type Keyframes map[types.PropertyID]*Keyframe

// IDs returns the animated property ids.
func (k Keyframes) IDs() types.PropertyIDSet {
	var s types.PropertyIDSet
	for id := range k {
		s.Insert(id)
	}
	return s
}

// Clone returns a copy holding its own references.
func (k Keyframes) Clone() Keyframes {
	out := make(Keyframes, len(k))
	for id, f := range k {
		out[id] = f.Clone()
	}
	return out
}

// Release gives back every reference held by k.
func (k Keyframes) Release() {
	for id, f := range k {
		f.Release()
		delete(k, id)
	}
}

// Set maps animation names to their keyframes.
type Set struct {
	c          *stylecache.Cache
	animatable *types.PropertyIDSet
	anims      map[string]Keyframes
}

// NewSet creates an empty set over c. When animatable is non-nil, Add
// rejects properties outside it.
func NewSet(c *stylecache.Cache, animatable *types.PropertyIDSet) *Set {
	return &Set{
		c:          c,
		animatable: animatable,
		anims:      make(map[string]Keyframes),
	}
}

// Add registers one key per (time, property) under name. Times are fractions
// of the animation in [0, 1]. The caller keeps its references to props. On
// error nothing is added.
func (s *Set) Add(name string, times []float32, props stylecache.PropertyVector) error {
	for _, t := range times {
		if t < 0 || t > 1 || math.IsNaN(float64(t)) {
			return fmt.Errorf("%w: %s at %v", ErrTime, name, t)
		}
	}

	adding := make(map[types.PropertyID]int)
	for _, p := range props {
		if p.IsZero() {
			continue
		}
		id := s.c.PropertyID(p)
		if s.animatable != nil && !s.animatable.Contains(id) {
			return fmt.Errorf("%w: %s: property %d", ErrNotAnimatable, name, id)
		}
		adding[id] += len(times)
	}
	kfs := s.anims[name]
	for id, n := range adding {
		have := 0
		if f, ok := kfs[id]; ok {
			have = f.Len()
		}
		if have+n > types.MaxKeyframesPerProperty {
			return fmt.Errorf("%w: %s: property %d has %d", ErrTooManyKeys, name, id, have+n)
		}
	}

	if len(adding) == 0 {
		return nil
	}
	if kfs == nil {
		kfs = make(Keyframes)
		s.anims[name] = kfs
	}
	for _, t := range times {
		for _, p := range props {
			if p.IsZero() {
				continue
			}
			id := s.c.PropertyID(p)
			f, ok := kfs[id]
			if !ok {
				f = &Keyframe{}
				kfs[id] = f
			}
			f.Insert(AnimationKey{Time: t, Prop: NewPropertyView(s.c, id, p)})
		}
	}
	return nil
}

// Get returns the keyframes of name, borrowed from s.
func (s *Set) Get(name string) (Keyframes, bool) {
	k, ok := s.anims[name]
	return k, ok
}

// Names returns the animation names in order.
func (s *Set) Names() []string {
	return slices.Sorted(maps.Keys(s.anims))
}

// Len returns the number of animations.
func (s *Set) Len() int { return len(s.anims) }

// Merge copies every animation of other into s. An animation defined in both
// takes other's keys. Both sets must share one cache.
func (s *Set) Merge(other *Set) {
	if other == s {
		return
	}
	if other.c != s.c {
		panic("keyframe: merging sets from different caches")
	}
	for name, k := range other.anims {
		if old, ok := s.anims[name]; ok {
			old.Release()
		}
		s.anims[name] = k.Clone()
	}
}

// Release gives back every reference held by s and empties it.
func (s *Set) Release() {
	for name, k := range s.anims {
		k.Release()
		delete(s.anims, name)
	}
}
