package types

// ============================================================================
// Property Space Limits
// ============================================================================
// The property id space is closed and known at compile time by the callers
// that produce declarations. Keeping it at or below 128 ids lets a full
// per-id lookup array fit in a couple of cache lines and lets a set of ids
// fit in two machine words.

const (
	// MaxPropertyIDs is the number of distinct property ids a cache accepts.
	// Valid ids are 0..MaxPropertyIDs-1.
	MaxPropertyIDs = 128

	// MaxValueSize is the largest encoded property value accepted by the
	// value codec. Values are small scalars or short strings in practice.
	MaxValueSize = 64 << 10 // 65,536 bytes

	// MaxKeyframesPerProperty bounds the number of keys a single animated
	// property may carry.
	MaxKeyframesPerProperty = 1024
)
