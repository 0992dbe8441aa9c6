package alloc

// Ref is a slot index. 0 is reserved as the null reference.
type Ref = uint32

// Class represents the kind of record stored in a slot.
type Class uint8

const (
	classFree        Class = 0
	ClassAttribute   Class = 1 // interned (property id, value) pair
	ClassValue       Class = 2 // mutable value table
	ClassCombination Class = 3 // interned combination table

	numClasses = 4
)

// String returns a short name for the class.
func (c Class) String() string {
	switch c {
	case ClassAttribute:
		return "attribute"
	case ClassValue:
		return "value"
	case ClassCombination:
		return "combination"
	default:
		return "free"
	}
}

// Allocator defines the interface for slot allocation and reuse.
//
// Implementations:
//   - SlotAllocator: free-list allocator with tail truncation
type Allocator interface {
	// Alloc reserves a slot for a record of class cls and returns its index.
	// Indices are dense: a fresh index is always Cap() before the call.
	Alloc(cls Class) Ref

	// Free marks a slot as free and available for reuse.
	Free(ref Ref) error

	// Truncate drops trailing free slots so Cap() shrinks to one past the
	// highest live slot. Returns the number of slots dropped.
	Truncate() int

	// Cap returns the size of the slot index space, including slot 0.
	Cap() int
}

// Stats describes slot usage.
type Stats struct {
	// Cap is the size of the index space including the reserved slot 0.
	Cap int

	// Live is the number of allocated slots.
	Live int

	// Free is the number of slots waiting on the free list.
	Free int

	// ByClass counts live slots per record class.
	ByClass map[Class]int
}
