// Package attrib interns immutable (property id, value bytes) pairs.
//
// Identical pairs share one stored record and one handle. Each handle is
// reference counted: Intern returns a reference the caller owns, AddRef
// takes another, Release drops one. When the count reaches zero the record
// leaves the intern index and its slot is recycled by the allocator.
//
// Lookups are keyed on the raw bytes. Building the key in a scratch buffer
// and indexing the map with string(buf) keeps interning hits allocation free.
//
// Handle 0 (None) is the absent attribute: AddRef and Release ignore it.
//
// The store is not thread-safe.
package attrib
