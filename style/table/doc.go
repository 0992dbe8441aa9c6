// Package table stores style tables: ordered sets of interned attributes,
// at most one per property id.
//
// # Overview
//
// Two kinds of table share one physical representation:
//
//   - Value tables are owned by one element and mutated in place with
//     Modify and Assign. They are never interned: two value tables with
//     equal content are still two tables.
//   - Combination tables are produced by Inherit and Snapshot. They are
//     immutable and interned by content, so equal combinations share one
//     handle and one reference count.
//
// Every table holds one reference on each attribute it contains.
//
// # Dead Combinations
//
// A combination whose reference count drops to zero is not destroyed right
// away. It stays in the intern index as a dead entry, so recomputing the same
// merge revives it without rebuilding it. Flush destroys dead entries,
// releases their attributes and trims the handle space.
//
// # Handles
//
// Handle 0 (Null) is the empty table. Reads on Null see no attributes and
// AddRef/Release ignore it. Operations whose result would be empty return
// Null.
//
// # Thread Safety
//
// A Store is not thread-safe.
package table
