package registry

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/joshuapare/stylekit/pkg/types"
)

// Def describes one property.
type Def struct {
	Name       string
	ID         types.PropertyID
	Inherited  bool
	Animatable bool
}

// Registry is an immutable set of property definitions. It is safe for
// concurrent use.
type Registry struct {
	defs       []Def // sorted by id
	byName     map[string]int
	byID       [types.MaxPropertyIDs]int16 // index into defs, -1 if unset
	inherited  types.PropertyIDSet
	animatable types.PropertyIDSet
}

// New validates defs and builds a registry. Names must be non-empty and
// unique ignoring case; ids must be unique and inside the id space.
func New(defs []Def) (*Registry, error) {
	r := &Registry{
		defs:   slices.Clone(defs),
		byName: make(map[string]int, len(defs)),
	}
	slices.SortFunc(r.defs, func(a, b Def) int { return int(a.ID) - int(b.ID) })
	for i := range r.byID {
		r.byID[i] = -1
	}

	for i := range r.defs {
		d := &r.defs[i]
		d.Name = strings.TrimSpace(d.Name)
		if d.Name == "" {
			return nil, fmt.Errorf("%w: id %d has no name", ErrInvalid, d.ID)
		}
		if !d.ID.Valid() {
			return nil, fmt.Errorf("%w: %s: id %d: %w", ErrInvalid, d.Name, d.ID, types.ErrOutOfRange)
		}
		key := fold(d.Name)
		if j, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("%w: name %q (ids %d and %d)", ErrDuplicate, d.Name, r.defs[j].ID, d.ID)
		}
		if j := r.byID[d.ID]; j >= 0 {
			return nil, fmt.Errorf("%w: id %d (%s and %s)", ErrDuplicate, d.ID, r.defs[j].Name, d.Name)
		}
		r.byName[key] = i
		r.byID[d.ID] = int16(i)
		if d.Inherited {
			r.inherited.Insert(d.ID)
		}
		if d.Animatable {
			r.animatable.Insert(d.ID)
		}
	}
	return r, nil
}

// Lookup returns the definition named name, ignoring case.
func (r *Registry) Lookup(name string) (Def, bool) {
	i, ok := r.byName[fold(strings.TrimSpace(name))]
	if !ok {
		return Def{}, false
	}
	return r.defs[i], true
}

// ByID returns the definition for id.
func (r *Registry) ByID(id types.PropertyID) (Def, bool) {
	if !id.Valid() || r.byID[id] < 0 {
		return Def{}, false
	}
	return r.defs[r.byID[id]], true
}

// Name returns the name of id, or its number when id is not registered.
func (r *Registry) Name(id types.PropertyID) string {
	if d, ok := r.ByID(id); ok {
		return d.Name
	}
	return fmt.Sprintf("#%d", id)
}

// Defs returns every definition in id order.
func (r *Registry) Defs() []Def {
	return slices.Clone(r.defs)
}

// Len returns the number of definitions.
func (r *Registry) Len() int {
	return len(r.defs)
}

// Inherited returns the ids of inherited properties, the mask a stylecache
// is built with.
func (r *Registry) Inherited() types.PropertyIDSet {
	return r.inherited
}

// Animatable returns the ids of properties that may carry keyframes.
func (r *Registry) Animatable() types.PropertyIDSet {
	return r.animatable
}

// fold returns the case-insensitive lookup key for a name.
func fold(name string) string {
	return cases.Fold().String(name)
}
