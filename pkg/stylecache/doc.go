/*
Package stylecache resolves element styles into shared, reference-counted
property tables.

# Quick Start

	c := stylecache.New(registry.Default().Inherited())
	defer c.Close()

	display := c.CreateProperty(registry.Display, value.Keyword("block"))
	child := c.CreateFrom(stylecache.PropertyVector{display})
	c.PropertyRelease(display)

	resolved := c.Inherit(child, parentStyle)
	defer c.Release(resolved)

# Table Kinds

  - TableValue: owned by one element, mutated with SetProperty, DelProperty,
    Assign and Clone.
  - TableCombination: produced by Merge, Merge3, Inherit and InheritSelf.
    Immutable and interned: elements that resolve to the same style share
    one combination.

Both kinds satisfy Table, which is what the read operations (Find, Has,
Foreach, Diff) accept. Mutations only accept TableValue, so mutating a
combination does not compile.

# Ownership

Every call that returns a table (Create, CreateFrom, Merge, Merge3, Inherit,
InheritSelf) and every CreateProperty returns one reference that the caller
must give back with Release or PropertyRelease. AddRef and PropertyAddRef
take extra references. The zero table and the zero Property are "absent":
they are accepted everywhere and never counted.

Properties returned by Find are borrowed from the table. Take a reference
with PropertyAddRef to keep one beyond the table's lifetime, or wrap it in a
keyframe.PropertyView.

# Lifetime

A Cache is an explicit context object. Code that needs one process-wide cache
uses Initialise, Instance and Shutdown.

# Thread Safety

A Cache must be used from one goroutine (the style thread). Nothing is
locked.
*/
package stylecache
