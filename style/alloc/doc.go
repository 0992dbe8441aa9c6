// Package alloc provides slot allocation and free-list management for the
// stylekit interning stores.
//
// # Overview
//
// Attribute and table stores keep their records in dense slices indexed by a
// small integer handle. This package hands out those indices, recycles the
// indices of released records, and shrinks the index space when the tail of
// it is entirely free.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface, which supports:
//
//   - Alloc(class): Reserve a slot for a record of the given class
//   - Free(ref): Return a slot for reuse
//   - Truncate(): Drop trailing free slots and report how many were dropped
//
// # Slot References
//
// Ref 0 is reserved and never allocated. Every store uses 0 as its "no
// record" handle, so callers can pass a zero handle anywhere without
// touching the allocator.
//
// # Reuse Order
//
// Freed slots are reused last-in first-out. Recently released slots are the
// ones most likely to still be in cache, and LIFO keeps handle values small
// under churn.
//
// # Thread Safety
//
// Allocator instances are not thread-safe. The style cache that owns them is
// single-owner by contract.
package alloc
