package table

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/alloc"
	"github.com/joshuapare/stylekit/style/attrib"
)

// Handle identifies a table. 0 is Null.
type Handle uint32

// Null is the empty table.
const Null Handle = 0

// Kind distinguishes value tables from combination tables.
type Kind = alloc.Class

const (
	KindValue       = alloc.ClassValue
	KindCombination = alloc.ClassCombination
)

// item is one attribute of a table.
type item struct {
	id   types.PropertyID
	attr attrib.Handle
}

// table is the physical representation shared by both kinds.
type table struct {
	kind  Kind
	items []item // sorted by id, unique ids
	key   string // intern key; combinations only
	refs  int32
}

// Store holds value and combination tables over one attribute store.
type Store struct {
	attrs   *attrib.Store
	slots   *alloc.SlotAllocator
	tables  []table // indexed by Handle; tables[0] is Null
	combos  map[string]Handle
	dead    int
	scratch []byte
	merged  []item
}

// Stats describes the store's contents.
type Stats struct {
	// Values is the number of live value tables.
	Values int

	// Combinations is the number of combinations with a positive refcount.
	Combinations int

	// Dead is the number of zero-refcount combinations awaiting Flush.
	Dead int

	// Slots is the size of the handle space including the reserved slot 0.
	Slots int

	// FreeSlots is the number of recycled slots waiting for reuse.
	FreeSlots int
}

// FlushStats reports what a Flush reclaimed.
type FlushStats struct {
	// Combinations is the number of dead combinations destroyed.
	Combinations int

	// Slots is the number of table slots trimmed from the handle space.
	Slots int
}

// New creates a table store over attrs.
func New(attrs *attrib.Store) *Store {
	return &Store{
		attrs:   attrs,
		slots:   alloc.NewSlots(0),
		tables:  make([]table, 1, 256),
		combos:  make(map[string]Handle, 256),
		scratch: make([]byte, 0, 64),
	}
}

// Attributes returns the attribute store backing s.
func (s *Store) Attributes() *attrib.Store {
	return s.attrs
}

// ============================================================================
// Construction
// ============================================================================

// Create returns a new value table holding attrs, with refcount 1.
// When attrs has several attributes for one id, the last one wins.
// The table takes its own reference on every attribute it keeps.
func (s *Store) Create(attrs []attrib.Handle) Handle {
	items := make([]item, 0, len(attrs))
	for _, a := range attrs {
		if a == attrib.None {
			continue
		}
		items = upsert(items, item{id: s.attrs.ID(a), attr: a})
	}
	for _, it := range items {
		s.attrs.AddRef(it.attr)
	}
	return s.alloc(table{kind: KindValue, items: items, refs: 1})
}

// Inherit returns a combination holding every attribute of child plus the
// attributes of parent whose id child lacks. When mask is non-nil only ids in
// mask cross from parent. The result is a new reference owned by the caller;
// an empty result is Null.
func (s *Store) Inherit(child, parent Handle, mask *types.PropertyIDSet) Handle {
	ci := s.items(child)
	pi := s.items(parent)

	out := s.merged[:0]
	i, j := 0, 0
	for i < len(ci) || j < len(pi) {
		switch {
		case j == len(pi) || (i < len(ci) && ci[i].id < pi[j].id):
			out = append(out, ci[i])
			i++
		case i == len(ci) || pi[j].id < ci[i].id:
			if mask == nil || mask.Contains(pi[j].id) {
				out = append(out, pi[j])
			}
			j++
		default:
			// Same id on both sides: child wins.
			out = append(out, ci[i])
			i++
			j++
		}
	}
	s.merged = out
	return s.intern(out)
}

// Snapshot returns a combination with the same content as h. For a
// combination this is h itself with one more reference.
func (s *Store) Snapshot(h Handle) Handle {
	if h == Null {
		return Null
	}
	t := s.live(h)
	if t.kind == KindCombination {
		s.retain(h, t)
		return h
	}
	return s.intern(t.items)
}

// ============================================================================
// Reads
// ============================================================================

// Kind returns the kind of a live table. Null reports KindCombination since
// it is immutable.
func (s *Store) Kind(h Handle) Kind {
	if h == Null {
		return KindCombination
	}
	return s.live(h).kind
}

// Len returns the number of attributes in h.
func (s *Store) Len(h Handle) int {
	return len(s.items(h))
}

// Index returns the i-th attribute of h in id order, or (None, false) once i
// runs past the end.
func (s *Store) Index(h Handle, i int) (attrib.Handle, bool) {
	items := s.items(h)
	if i < 0 || i >= len(items) {
		return attrib.None, false
	}
	return items[i].attr, true
}

// Find returns the attribute of h for id, or (None, false).
func (s *Store) Find(h Handle, id types.PropertyID) (attrib.Handle, bool) {
	items := s.items(h)
	if n, ok := search(items, id); ok {
		return items[n].attr, true
	}
	return attrib.None, false
}

// Each calls fn for every attribute of h in id order.
func (s *Store) Each(h Handle, fn func(id types.PropertyID, a attrib.Handle)) {
	for _, it := range s.items(h) {
		fn(it.id, it.attr)
	}
}

// Compare reports whether a and b hold exactly the same attributes.
func (s *Store) Compare(a, b Handle) bool {
	if a == b {
		return true
	}
	return slices.Equal(s.items(a), s.items(b))
}

// Refs returns the reference count of h. Null reports 0.
func (s *Store) Refs(h Handle) int {
	if h == Null || int(h) >= len(s.tables) {
		return 0
	}
	return int(s.tables[h].refs)
}

// ============================================================================
// Mutation (value tables only)
// ============================================================================

// Modify upserts set and then removes del on the value table h. It returns
// the ids whose attribute differs afterwards. Setting an id to the attribute
// it already holds, or deleting an absent id, is not a change.
// Modifying Null is a no-op; modifying a combination panics.
func (s *Store) Modify(h Handle, set []attrib.Handle, del []types.PropertyID) types.PropertyIDSet {
	var changed types.PropertyIDSet
	if h == Null {
		return changed
	}
	t := s.mutable(h)

	var before [types.MaxPropertyIDs]attrib.Handle
	var touched types.PropertyIDSet
	for _, it := range t.items {
		before[it.id] = it.attr
	}

	for _, a := range set {
		if a == attrib.None {
			continue
		}
		id := s.attrs.ID(a)
		n, ok := search(t.items, id)
		if ok && t.items[n].attr == a {
			continue
		}
		s.attrs.AddRef(a)
		if ok {
			s.attrs.Release(t.items[n].attr)
			t.items[n].attr = a
		} else {
			t.items = slices.Insert(t.items, n, item{id: id, attr: a})
		}
		touched.Insert(id)
	}

	for _, id := range del {
		n, ok := search(t.items, id)
		if !ok {
			continue
		}
		s.attrs.Release(t.items[n].attr)
		t.items = slices.Delete(t.items, n, n+1)
		touched.Insert(id)
	}

	touched.Each(func(id types.PropertyID) {
		after := attrib.None
		if n, ok := search(t.items, id); ok {
			after = t.items[n].attr
		}
		if after != before[id] {
			changed.Insert(id)
		}
	})
	return changed
}

// Assign replaces the content of the value table to with the content of
// from, reporting whether anything changed. Assigning to Null is a no-op.
func (s *Store) Assign(to, from Handle) bool {
	if to == Null || to == from {
		return false
	}
	t := s.mutable(to)
	src := s.items(from)
	if slices.Equal(t.items, src) {
		return false
	}
	for _, it := range src {
		s.attrs.AddRef(it.attr)
	}
	for _, it := range t.items {
		s.attrs.Release(it.attr)
	}
	t.items = append(t.items[:0:0], src...)
	return true
}

// ============================================================================
// Reference counting
// ============================================================================

// AddRef takes another reference to h. Null is ignored.
func (s *Store) AddRef(h Handle) {
	if h == Null {
		return
	}
	s.retain(h, s.live(h))
}

// Release drops one reference to h. A value table is destroyed at zero; a
// combination becomes dead and waits for Flush. Null is ignored. Releasing a
// table whose count is already zero panics.
func (s *Store) Release(h Handle) {
	if h == Null {
		return
	}
	t := s.live(h)
	t.refs--
	if t.refs > 0 {
		return
	}
	if t.kind == KindCombination {
		s.dead++
		return
	}
	s.destroy(h, t)
}

// Flush destroys dead combinations and trims free slots from the end of the
// table and attribute handle spaces. Live handles never move.
func (s *Store) Flush() FlushStats {
	var st FlushStats
	for key, h := range s.combos {
		t := &s.tables[h]
		if t.refs > 0 {
			continue
		}
		delete(s.combos, key)
		s.destroy(h, t)
		st.Combinations++
	}
	s.dead = 0

	st.Slots = s.slots.Truncate()
	if st.Slots > 0 {
		s.tables = s.tables[:s.slots.Cap()]
	}
	s.attrs.Flush()
	return st
}

// Stats returns a snapshot of store usage.
func (s *Store) Stats() Stats {
	st := s.slots.Stats()
	return Stats{
		Values:       st.ByClass[KindValue],
		Combinations: st.ByClass[KindCombination] - s.dead,
		Dead:         s.dead,
		Slots:        st.Cap,
		FreeSlots:    st.Free,
	}
}

// ============================================================================
// Internals
// ============================================================================

// items returns the attributes of h; Null has none.
func (s *Store) items(h Handle) []item {
	if h == Null {
		return nil
	}
	return s.live(h).items
}

// live returns the table for h, panicking unless the caller could hold a
// reference to it. Dead combinations are reached only through the intern
// index.
func (s *Store) live(h Handle) *table {
	if h == Null || int(h) >= len(s.tables) || s.tables[h].refs <= 0 {
		panic(fmt.Sprintf("table: handle %d is not live", h))
	}
	return &s.tables[h]
}

// mutable returns the table for h, panicking unless it is a value table.
func (s *Store) mutable(h Handle) *table {
	t := s.live(h)
	if t.kind != KindValue {
		panic(fmt.Sprintf("table: %d is a combination and cannot be modified", h))
	}
	return t
}

// retain adds a reference, reviving a dead combination.
func (s *Store) retain(h Handle, t *table) {
	if t.refs == 0 {
		s.dead--
	}
	t.refs++
}

// intern returns a new reference to the combination holding items.
func (s *Store) intern(items []item) Handle {
	if len(items) == 0 {
		return Null
	}

	s.scratch = s.scratch[:0]
	for _, it := range items {
		s.scratch = binary.LittleEndian.AppendUint32(s.scratch, uint32(it.attr))
	}
	if h, ok := s.combos[string(s.scratch)]; ok {
		s.retain(h, &s.tables[h])
		return h
	}

	own := slices.Clone(items)
	for _, it := range own {
		s.attrs.AddRef(it.attr)
	}
	key := string(s.scratch)
	h := s.alloc(table{kind: KindCombination, items: own, key: key, refs: 1})
	s.combos[key] = h
	return h
}

// alloc stores t in a fresh slot.
func (s *Store) alloc(t table) Handle {
	ref := s.slots.Alloc(t.kind)
	if int(ref) == len(s.tables) {
		s.tables = append(s.tables, t)
	} else {
		s.tables[ref] = t
	}
	return Handle(ref)
}

// destroy releases the attributes of t and frees its slot.
func (s *Store) destroy(h Handle, t *table) {
	for _, it := range t.items {
		s.attrs.Release(it.attr)
	}
	*t = table{}
	if err := s.slots.Free(alloc.Ref(h)); err != nil {
		panic(fmt.Sprintf("table: release %d: %v", h, err))
	}
}

// search finds id in sorted items, returning its position or the insertion
// point.
func search(items []item, id types.PropertyID) (int, bool) {
	return slices.BinarySearchFunc(items, id, func(it item, id types.PropertyID) int {
		return int(it.id) - int(id)
	})
}

// upsert inserts it into sorted items, replacing an existing entry for its id.
func upsert(items []item, it item) []item {
	n, ok := search(items, it.id)
	if ok {
		items[n] = it
		return items
	}
	return slices.Insert(items, n, it)
}
