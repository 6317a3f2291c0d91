// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package gaputils implements pure geometry over sorted-by-start item
// intervals: finding gaps, closing them into a magnetic layout,
// previewing a magnetic insertion, pushing items during a non-magnetic
// resize, and placing a brand new item. None of these functions mutate
// their inputs or depend on a Model (only FindBestPositionForNewItem
// takes whole Tracks); every result is a new slice,
// the same return-new-value idiom the rest of this module uses for its
// track and item operations.
package gaputils

import (
	"github.com/mrjoshuak/timelinecore/tracks"
)

// Gap is a [Start, End) interval with no item covering it.
type Gap struct {
	Start, End float64
}

// sortedCopy returns a copy of items sorted by Start ascending.
func sortedCopy(items []*tracks.Item) []*tracks.Item {
	out := append([]*tracks.Item(nil), items...)
	tracks.SortItemsByStart(out)
	return out
}

// FindGaps returns the gaps between sorted items, including a leading
// gap from 0 to the first item's start. There is never a trailing gap.
func FindGaps(items []*tracks.Item) []Gap {
	sorted := sortedCopy(items)
	var gaps []Gap
	cursor := 0.0
	for _, it := range sorted {
		if it.Start > cursor {
			gaps = append(gaps, Gap{Start: cursor, End: it.Start})
		}
		if it.End > cursor {
			cursor = it.End
		}
	}
	return gaps
}

// CloseGaps places items back-to-back starting at 0, preserving
// per-item durations and relative (start-sorted) order. Used whenever a
// track transitions to, or already is, magnetic.
func CloseGaps(items []*tracks.Item) []*tracks.Item {
	sorted := sortedCopy(items)
	cursor := 0.0
	out := make([]*tracks.Item, len(sorted))
	for i, it := range sorted {
		dur := it.Duration()
		out[i] = it.WithStartEnd(cursor, cursor+dur)
		cursor += dur
	}
	return out
}

// InsertionPreview describes where an item of a given duration would
// land in a magnetic layout, and the resulting full reflow.
type InsertionPreview struct {
	InsertionIndex int
	InsertionStart float64
	PreviewItems   []*tracks.Item // full reflowed layout, including the would-be-inserted item's neighbors shifted, but not the new item itself
}

// MagneticInsertionPreview computes where an item of insertDuration
// would be inserted into a magnetic layout if released at intendedStart.
// Each existing item is first projected into its magnetic (gap-free)
// position; the insertion index is the first index whose magnetic
// midpoint exceeds intendedStart.
func MagneticInsertionPreview(items []*tracks.Item, insertDuration, intendedStart float64) InsertionPreview {
	sorted := sortedCopy(items)

	// Project each item into its magnetic position first (in case the
	// input wasn't already gap-free).
	magnetic := CloseGaps(sorted)

	insertionIndex := len(magnetic)
	for i, it := range magnetic {
		midpoint := (it.Start + it.End) / 2
		if midpoint > intendedStart {
			insertionIndex = i
			break
		}
	}

	insertionStart := 0.0
	if insertionIndex > 0 {
		insertionStart = magnetic[insertionIndex-1].End
	}

	preview := make([]*tracks.Item, 0, len(magnetic))
	cursor := 0.0
	for i, it := range magnetic {
		if i == insertionIndex {
			cursor += insertDuration
		}
		dur := it.Duration()
		preview = append(preview, it.WithStartEnd(cursor, cursor+dur))
		cursor += dur
	}

	return InsertionPreview{
		InsertionIndex: insertionIndex,
		InsertionStart: insertionStart,
		PreviewItems:   preview,
	}
}

// PushResult is the outcome of PushItemsDuringResize.
type PushResult struct {
	Items              []*tracks.Item
	ActualStart, ActualEnd float64
}

// CanFitAtPosition reports whether an item of the given duration can be
// placed at start without overlapping any existing item.
func CanFitAtPosition(items []*tracks.Item, start, duration float64) bool {
	end := start + duration
	for _, it := range items {
		if start < it.End && end > it.Start {
			return false
		}
	}
	return true
}
