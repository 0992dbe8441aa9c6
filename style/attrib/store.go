package attrib

import (
	"fmt"

	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/alloc"
)

// Handle identifies an interned attribute. 0 is None.
type Handle uint32

// None is the absent attribute.
const None Handle = 0

// entry is one interned attribute.
type entry struct {
	id   types.PropertyID
	key  string // id byte + value bytes
	data []byte
	refs int32
}

// Store interns attributes.
type Store struct {
	slots   *alloc.SlotAllocator
	entries []entry // indexed by Handle; entries[0] is unused
	index   map[string]Handle
	scratch []byte
}

// Stats describes the store's contents.
type Stats struct {
	// Live is the number of interned attributes with a positive refcount.
	Live int

	// Slots is the size of the handle space including the reserved slot 0.
	Slots int

	// FreeSlots is the number of recycled slots waiting for reuse.
	FreeSlots int

	// Bytes is the total size of interned value data.
	Bytes int
}

// New creates an empty attribute store.
func New() *Store {
	return &Store{
		slots:   alloc.NewSlots(0),
		entries: make([]entry, 1, 256),
		index:   make(map[string]Handle, 256),
		scratch: make([]byte, 0, 64),
	}
}

// Intern returns the handle for (id, data), adding one reference.
// The first intern of a distinct pair copies data and starts at refcount 1.
func (s *Store) Intern(id types.PropertyID, data []byte) Handle {
	if !id.Valid() {
		panic(fmt.Sprintf("attrib: property id %d out of range", id))
	}

	s.scratch = append(s.scratch[:0], byte(id))
	s.scratch = append(s.scratch, data...)

	// Zero-alloc lookup: the compiler avoids the []byte->string copy here.
	if h, ok := s.index[string(s.scratch)]; ok {
		s.entries[h].refs++
		return h
	}

	key := string(s.scratch)
	ref := s.slots.Alloc(alloc.ClassAttribute)
	e := entry{id: id, key: key, data: []byte(key[1:]), refs: 1}
	if int(ref) == len(s.entries) {
		s.entries = append(s.entries, e)
	} else {
		s.entries[ref] = e
	}
	h := Handle(ref)
	s.index[key] = h
	return h
}

// ID returns the property id of h. h must be live.
func (s *Store) ID(h Handle) types.PropertyID {
	return s.live(h).id
}

// Data returns the value bytes of h. The slice must not be modified.
func (s *Store) Data(h Handle) []byte {
	return s.live(h).data
}

// Refs returns the current reference count of h, or 0 for None.
func (s *Store) Refs(h Handle) int {
	if h == None || int(h) >= len(s.entries) {
		return 0
	}
	return int(s.entries[h].refs)
}

// AddRef takes an additional reference to h. None is ignored.
func (s *Store) AddRef(h Handle) {
	if h == None {
		return
	}
	s.live(h).refs++
}

// Release drops one reference to h and reclaims it at zero. None is ignored.
// Releasing a handle whose count is already zero panics.
func (s *Store) Release(h Handle) {
	if h == None {
		return
	}
	e := s.live(h)
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(s.index, e.key)
	*e = entry{}
	if err := s.slots.Free(alloc.Ref(h)); err != nil {
		panic(fmt.Sprintf("attrib: release %d: %v", h, err))
	}
}

// Len returns the number of live attributes.
func (s *Store) Len() int {
	return len(s.index)
}

// Flush trims recycled slots from the end of the handle space.
// Live handles are never moved. Returns the number of slots dropped.
func (s *Store) Flush() int {
	n := s.slots.Truncate()
	if n > 0 {
		s.entries = s.entries[:s.slots.Cap()]
	}
	return n
}

// Stats returns a snapshot of store usage.
func (s *Store) Stats() Stats {
	st := s.slots.Stats()
	out := Stats{
		Live:      len(s.index),
		Slots:     st.Cap,
		FreeSlots: st.Free,
	}
	for _, h := range s.index {
		out.Bytes += len(s.entries[h].data)
	}
	return out
}

// live returns the entry for h, panicking if h is not a live attribute.
func (s *Store) live(h Handle) *entry {
	if h == None || int(h) >= len(s.entries) || s.entries[h].refs <= 0 {
		panic(fmt.Sprintf("attrib: handle %d is not live", h))
	}
	return &s.entries[h]
}
