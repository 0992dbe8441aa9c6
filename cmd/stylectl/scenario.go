package main

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/stylekit/internal/logger"
	"github.com/joshuapare/stylekit/pkg/keyframe"
	"github.com/joshuapare/stylekit/pkg/registry"
	"github.com/joshuapare/stylekit/pkg/stylecache"
	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/value"
)

var (
	errUnknownProperty  = &types.Error{Kind: types.ErrKindNotFound, Msg: "unknown property"}
	errDuplicateElement = &types.Error{Kind: types.ErrKindInvalid, Msg: "duplicate element"}
)

// Scenario is an element tree with per-element declarations.
type Scenario struct {
	Name       string               `yaml:"name"`
	Root       Element              `yaml:"root"`
	Animations map[string][]KeyDecl `yaml:"animations"`
}

// Element is one node of a scenario tree.
type Element struct {
	Name     string            `yaml:"name"`
	Style    map[string]string `yaml:"style"`
	Children []Element         `yaml:"children"`
}

// KeyDecl is one keyframe rule: declarations at a point of an animation.
type KeyDecl struct {
	At    float32           `yaml:"at"`
	Style map[string]string `yaml:"style"`
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if s.Root.Name == "" {
		return nil, fmt.Errorf("%s: root element has no name", path)
	}
	if err := checkNames(&s.Root, ""); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &s, nil
}

// checkNames rejects unnamed children and siblings sharing a name, so every
// element has a unique path.
func checkNames(e *Element, parentPath string) error {
	path := e.Name
	if parentPath != "" {
		path = parentPath + "/" + e.Name
	}
	seen := make(map[string]bool, len(e.Children))
	for i := range e.Children {
		child := &e.Children[i]
		if child.Name == "" {
			return fmt.Errorf("%s: child %d has no name", path, i)
		}
		if seen[child.Name] {
			return fmt.Errorf("%w %s/%s", errDuplicateElement, path, child.Name)
		}
		seen[child.Name] = true
		if err := checkNames(child, path); err != nil {
			return err
		}
	}
	return nil
}

// resolver turns scenarios into cache tables.
type resolver struct {
	c   *stylecache.Cache
	reg *registry.Registry
}

func newResolver(reg *registry.Registry) *resolver {
	return &resolver{
		c:   stylecache.New(reg.Inherited(), stylecache.WithLogger(logger.L)),
		reg: reg,
	}
}

// resolved is one element's own and computed style. The resolver owns both
// tables until release.
type resolved struct {
	Path     string
	Own      stylecache.TableValue
	Computed stylecache.TableCombination
}

// declarations interns style in name order. The caller owns the vector.
func (r *resolver) declarations(style map[string]string) (stylecache.PropertyVector, error) {
	vec := make(stylecache.PropertyVector, 0, len(style))
	for _, name := range slices.Sorted(maps.Keys(style)) {
		def, ok := r.reg.Lookup(name)
		if !ok {
			r.c.ReleaseVector(vec)
			return nil, fmt.Errorf("%w %q", errUnknownProperty, name)
		}
		data, err := value.ParseEncode(style[name])
		if err != nil {
			r.c.ReleaseVector(vec)
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		vec = append(vec, r.c.CreateProperty(def.ID, data))
	}
	return vec, nil
}

// resolve computes every element of s, parents before children.
func (r *resolver) resolve(s *Scenario) ([]resolved, error) {
	var out []resolved
	var walk func(e *Element, parentPath string, parent stylecache.Table) error
	walk = func(e *Element, parentPath string, parent stylecache.Table) error {
		path := e.Name
		if parentPath != "" {
			path = parentPath + "/" + e.Name
		}
		vec, err := r.declarations(e.Style)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		own := r.c.CreateFrom(vec)
		r.c.ReleaseVector(vec)

		el := resolved{Path: path, Own: own, Computed: r.c.Inherit(own, parent)}
		out = append(out, el)
		logger.Debug("element resolved", "path", path, "own", r.c.Len(own), "computed", r.c.Len(el.Computed))

		for i := range e.Children {
			if err := walk(&e.Children[i], path, el.Computed); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(&s.Root, "", nil); err != nil {
		r.release(out)
		return nil, err
	}
	return out, nil
}

// animations builds the keyframe set of s. The caller releases it.
func (r *resolver) animations(s *Scenario) (*keyframe.Set, error) {
	animatable := r.reg.Animatable()
	set := keyframe.NewSet(r.c, &animatable)
	for _, name := range slices.Sorted(maps.Keys(s.Animations)) {
		for _, k := range s.Animations[name] {
			vec, err := r.declarations(k.Style)
			if err != nil {
				set.Release()
				return nil, fmt.Errorf("animation %s: %w", name, err)
			}
			err = set.Add(name, []float32{k.At}, vec)
			r.c.ReleaseVector(vec)
			if err != nil {
				set.Release()
				return nil, err
			}
		}
	}
	return set, nil
}

func (r *resolver) release(els []resolved) {
	for _, el := range els {
		r.c.Release(el.Computed)
		r.c.Release(el.Own)
	}
}

func (r *resolver) close() {
	r.c.Close()
}

// properties formats every property of t as name -> literal, in id order.
func (r *resolver) properties(t stylecache.Table) ([]propertyLine, error) {
	lines := make([]propertyLine, 0, r.c.Len(t))
	for i := 0; ; i++ {
		p := r.c.Index(t, i)
		if p.IsZero() {
			break
		}
		v, err := r.c.PropertyValue(p)
		if err != nil {
			return nil, err
		}
		lines = append(lines, propertyLine{
			ID:    r.c.PropertyID(p),
			Name:  r.reg.Name(r.c.PropertyID(p)),
			Value: v.String(),
		})
	}
	return lines, nil
}

// literal prints the value of id on t, or "" when unset.
func (r *resolver) literal(t stylecache.Table, id types.PropertyID) (string, error) {
	p := r.c.Find(t, id)
	if p.IsZero() {
		return "", nil
	}
	v, err := r.c.PropertyValue(p)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}
