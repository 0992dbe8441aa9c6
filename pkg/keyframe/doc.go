// Package keyframe stores animation keyframes as owned property references.
//
// PropertyView and AnimationKey wrap a stylecache.Property and own exactly
// one reference to it. Copying the struct does not add a reference: use
// Clone to duplicate ownership, Move to hand it over, and Release when done.
//
// A Set maps animation names to Keyframes, each property's keys kept sorted
// by time.
package keyframe
