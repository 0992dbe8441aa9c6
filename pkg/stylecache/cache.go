package stylecache

import (
	"log/slog"

	"github.com/joshuapare/stylekit/pkg/types"
	"github.com/joshuapare/stylekit/style/attrib"
	"github.com/joshuapare/stylekit/style/table"
)

// Cache owns the attribute and table stores and applies the style policy
// (inheritance mask, merge order, change reporting) on top of them.
type Cache struct {
	attrs   *attrib.Store
	tables  *table.Store
	inherit types.PropertyIDSet
	log     *slog.Logger
}

// Options configures a Cache.
type Options struct {
	// Logger receives flush and shutdown diagnostics. Default: discard.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the cache logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a cache. inherit is the set of property ids that propagate from
// parent to child when the child does not set them; it is fixed for the
// cache's lifetime.
func New(inherit types.PropertyIDSet, opts ...Option) *Cache {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	attrs := attrib.New()
	c := &Cache{
		attrs:   attrs,
		tables:  table.New(attrs),
		inherit: inherit,
		log:     o.Logger,
	}
	c.log.Debug("style cache created", "inheritable", inherit.Len())
	return c
}

// Inheritable returns the inheritable id set the cache was built with.
func (c *Cache) Inheritable() types.PropertyIDSet {
	return c.inherit
}

// Flush reclaims dead combinations and trims free slots. It has no effect on
// the content of any table the caller still references, nor on any handle.
func (c *Cache) Flush() {
	before := c.attrs.Stats()
	fs := c.tables.Flush()
	after := c.attrs.Stats()
	c.log.Debug("style cache flushed",
		"combinations", fs.Combinations,
		"table_slots", fs.Slots,
		"attributes", before.Live-after.Live,
		"attribute_slots", before.Slots-after.Slots,
	)
}

// Close flushes the cache and drops its stores. Tables or properties still
// referenced at this point are leaks in the caller and are logged. The cache
// must not be used afterwards.
func (c *Cache) Close() {
	if c.tables == nil {
		return
	}
	c.Flush()
	st := c.Stats()
	if st.Values > 0 || st.Combinations > 0 || st.Attributes > 0 {
		c.log.Warn("style cache closed with live references",
			"values", st.Values,
			"combinations", st.Combinations,
			"attributes", st.Attributes,
		)
	}
	c.tables = nil
	c.attrs = nil
}
