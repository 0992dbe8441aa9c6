package alloc

import "errors"

var (
	// ErrBadRef indicates a reference outside the allocated slot range.
	ErrBadRef = errors.New("alloc: bad slot reference")

	// ErrNotLive indicates an attempt to free a slot that is already free.
	ErrNotLive = errors.New("alloc: slot is not live")
)
