package stylecache

import "github.com/joshuapare/stylekit/pkg/types"

// Stats describes what a cache currently holds.
type Stats struct {
	// Values is the number of live value tables.
	Values int

	// Combinations is the number of referenced combinations.
	Combinations int

	// Dead is the number of unreferenced combinations waiting for Flush.
	Dead int

	// Attributes is the number of live interned properties, including those
	// pinned only by dead combinations.
	Attributes int
}

// Stats returns the current store counts.
func (c *Cache) Stats() Stats {
	ts := c.tables.Stats()
	return Stats{
		Values:       ts.Values,
		Combinations: ts.Combinations,
		Dead:         ts.Dead,
		Attributes:   c.attrs.Len(),
	}
}

var instance *Cache

// Initialise creates the process-wide cache. It panics if one already
// exists.
func Initialise(inherit types.PropertyIDSet, opts ...Option) *Cache {
	if instance != nil {
		panic("stylecache: already initialised")
	}
	instance = New(inherit, opts...)
	return instance
}

// Instance returns the process-wide cache. It panics before Initialise.
func Instance() *Cache {
	if instance == nil {
		panic("stylecache: not initialised")
	}
	return instance
}

// Shutdown closes and clears the process-wide cache. It panics before
// Initialise.
func Shutdown() {
	c := Instance()
	instance = nil
	c.Close()
}
