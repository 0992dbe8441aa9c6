package keyframe

import "errors"

var (
	// ErrTime indicates a key time outside [0, 1].
	ErrTime = errors.New("keyframe: key time out of range")

	// ErrTooManyKeys indicates a property with more keys than MaxKeyframesPerProperty.
	ErrTooManyKeys = errors.New("keyframe: too many keys")

	// ErrNotAnimatable indicates a property that cannot carry keyframes.
	ErrNotAnimatable = errors.New("keyframe: property is not animatable")
)
