// Package types defines the small, copyable identifiers shared by every
// stylekit package: property ids, property id sets and measurement units.
//
// Design goals:
//   - Small, copyable handles (PropertyID, PropertyIDSet) instead of maps.
//   - A closed, bounded id space so per-id lookup arrays stay tiny.
//   - Typed errors with stable categories (format/invalid/range/...).
//
// This package has no dependencies beyond the standard library.
package types
