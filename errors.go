// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package timelinecore is the interaction and data core of a non-linear
// video editing timeline: tracks and items, drag/resize/split gestures,
// a batched undo/redo history, zoom/scroll coupling, and the thumbnail
// and waveform derivation pipelines item renderers consume.
//
// The core never panics or returns an error across its mutating public
// API surface for recoverable conditions (an invalid drag, an unknown
// id, a below-minimum split); those clamp or no-op and are reported via
// slog warnings instead. Errors are reserved for programmer mistakes
// (index out of range) that a caller can fix at compile
// time.
package timelinecore

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by package-level constructors and accessors.
var (
	// ErrNoTracks is returned when an operation requires at least one
	// track but none were supplied; callers should treat a nil/empty
	// track list the same as a single fresh empty track.
	ErrNoTracks = errors.New("timelinecore: no tracks")

	// ErrItemNotFound indicates an item id was not present in any track.
	ErrItemNotFound = errors.New("timelinecore: item not found")

	// ErrTrackNotFound indicates a track id was not present.
	ErrTrackNotFound = errors.New("timelinecore: track not found")

	// ErrMultiItemOntoMagnetic is returned when a multi-item drop is
	// attempted onto a magnetic track: multi-item drops onto magnetic
	// tracks are rejected.
	ErrMultiItemOntoMagnetic = errors.New("timelinecore: multi-item drop onto a magnetic track is not supported")
)

// IndexError indicates an index out of bounds, in a shape callers can
// type-switch on.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("timelinecore: index %d out of bounds for size %d", e.Index, e.Size)
}

// ValidationError describes why a mutating operation could not be applied
// as requested. Operations that return a ValidationError still return a
// usable (unchanged, or clamped) result alongside it; the error is
// informational, not a failure to produce a result.
type ValidationError struct {
	Op     string // operation name, e.g. "resizeItem"
	ItemID string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.ItemID != "" {
		return fmt.Sprintf("timelinecore: %s %s: %s", e.Op, e.ItemID, e.Reason)
	}
	return fmt.Sprintf("timelinecore: %s: %s", e.Op, e.Reason)
}
