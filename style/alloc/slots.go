package alloc

import "fmt"

const (
	// defaultSlotCapacity is the pre-allocated slot capacity.
	// A typical document interns a few hundred distinct records.
	defaultSlotCapacity = 256
)

// SlotAllocator is a free-list allocator over a dense index space.
//
// Key characteristics:
//   - O(1) allocation and deallocation
//   - LIFO reuse of freed slots
//   - Truncate() reclaims the free tail of the index space
//
// NOT thread-safe.
type SlotAllocator struct {
	// classes[i] is the class of slot i; classFree marks a free slot.
	// classes[0] stays classFree forever.
	classes []Class

	// free holds free slot indices, most recently freed last.
	free []Ref

	// live counts allocated slots per class.
	live [numClasses]int
}

var _ Allocator = (*SlotAllocator)(nil)

// NewSlots creates an allocator with room for capacity slots before growth.
// A capacity <= 0 selects the default.
func NewSlots(capacity int) *SlotAllocator {
	if capacity <= 0 {
		capacity = defaultSlotCapacity
	}
	classes := make([]Class, 1, capacity)
	return &SlotAllocator{
		classes: classes,
	}
}

// Alloc implements Allocator.
func (a *SlotAllocator) Alloc(cls Class) Ref {
	if cls == classFree || cls >= numClasses {
		panic(fmt.Sprintf("alloc: invalid class %d", cls))
	}
	a.live[cls]++

	// Fast path: reuse the most recently freed slot
	if n := len(a.free); n > 0 {
		ref := a.free[n-1]
		a.free = a.free[:n-1]
		a.classes[ref] = cls
		return ref
	}

	// Slow path: extend the index space
	ref := Ref(len(a.classes))
	a.classes = append(a.classes, cls)
	return ref
}

// Free implements Allocator.
func (a *SlotAllocator) Free(ref Ref) error {
	if ref == 0 || int(ref) >= len(a.classes) {
		return fmt.Errorf("%w: %d", ErrBadRef, ref)
	}
	cls := a.classes[ref]
	if cls == classFree {
		return fmt.Errorf("%w: %d", ErrNotLive, ref)
	}
	a.live[cls]--
	a.classes[ref] = classFree
	a.free = append(a.free, ref)
	return nil
}

// Truncate implements Allocator.
func (a *SlotAllocator) Truncate() int {
	end := len(a.classes)
	for end > 1 && a.classes[end-1] == classFree {
		end--
	}
	dropped := len(a.classes) - end
	if dropped == 0 {
		return 0
	}
	a.classes = a.classes[:end]

	// Drop free-list entries that now point past the end, keeping order
	kept := a.free[:0]
	for _, ref := range a.free {
		if int(ref) < end {
			kept = append(kept, ref)
		}
	}
	a.free = kept
	return dropped
}

// Cap implements Allocator.
func (a *SlotAllocator) Cap() int {
	return len(a.classes)
}

// IsLive reports whether ref is an allocated slot.
func (a *SlotAllocator) IsLive(ref Ref) bool {
	return ref != 0 && int(ref) < len(a.classes) && a.classes[ref] != classFree
}

// ClassOf returns the class of a live slot, or the free class otherwise.
func (a *SlotAllocator) ClassOf(ref Ref) Class {
	if int(ref) >= len(a.classes) {
		return classFree
	}
	return a.classes[ref]
}

// Live returns the number of allocated slots of class cls.
func (a *SlotAllocator) Live(cls Class) int {
	if cls >= numClasses {
		return 0
	}
	return a.live[cls]
}

// Stats returns a snapshot of slot usage.
func (a *SlotAllocator) Stats() Stats {
	st := Stats{
		Cap:     len(a.classes),
		Free:    len(a.free),
		ByClass: make(map[Class]int, numClasses-1),
	}
	for cls := ClassAttribute; cls < numClasses; cls++ {
		st.ByClass[cls] = a.live[cls]
		st.Live += a.live[cls]
	}
	return st
}
