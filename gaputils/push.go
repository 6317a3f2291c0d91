// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package gaputils

import (
	"math"

	"github.com/mrjoshuak/timelinecore/tracks"
)

// PushItemsDuringResize computes the achievable resize of item
// resizedID to [newStart, newEnd] on a non-magnetic track, pushing
// neighbors out of the way rather than rejecting the resize outright.
//
// Direction is inferred from which edge moved relative to the item's
// current position:
//
//   - Expanding left (newStart < original start): actualStart is
//     clamped to the furthest-right end among items whose end falls in
//     (newStart, originalStart] — the resize cannot eat into a
//     neighbor to the left.
//   - Expanding right (newEnd > original end): overlapping items to
//     the right are cascaded forward by the overlap amount, chaining
//     to subsequent items; an item whose new start is not overlapped
//     stops the cascade.
//
// In both directions, a source-duration clamp (the source-media duration clamp) is
// applied to the resized item alone before neighbors are considered,
// using tolerance as the epsilon.
func PushItemsDuringResize(items []*tracks.Item, resizedID string, newStart, newEnd, tolerance float64) PushResult {
	var resized *tracks.Item
	others := make([]*tracks.Item, 0, len(items))
	for _, it := range items {
		if it.ID == resizedID {
			resized = it
			continue
		}
		others = append(others, it)
	}
	if resized == nil {
		return PushResult{Items: append([]*tracks.Item(nil), items...), ActualStart: newStart, ActualEnd: newEnd}
	}

	actualStart, actualEnd := newStart, newEnd

	switch {
	case newStart < resized.Start:
		actualStart = clampExpandLeft(resized, others, newStart, tolerance)
		actualEnd = resized.End
	case newEnd > resized.End:
		actualEnd = clampExpandRight(resized, newEnd, tolerance)
		actualStart = resized.Start
	default:
		actualStart, actualEnd = resized.Start, resized.End
	}

	updatedResized := resized.WithStartEnd(actualStart, actualEnd)

	var out []*tracks.Item
	if newEnd > resized.End {
		out = cascadePushRight(updatedResized, others)
	} else {
		out = append(out, others...)
		out = append(out, updatedResized)
	}

	return PushResult{Items: out, ActualStart: actualStart, ActualEnd: actualEnd}
}

// clampExpandLeft returns the furthest-left actualStart that does not
// overlap a neighbor and respects the source-duration bound.
func clampExpandLeft(resized *tracks.Item, others []*tracks.Item, newStart, tolerance float64) float64 {
	blockingEnd := math.Inf(-1)
	for _, it := range others {
		if it.End > newStart && it.End <= resized.Start {
			if it.End > blockingEnd {
				blockingEnd = it.End
			}
		}
	}

	actualStart := newStart
	if blockingEnd > actualStart {
		actualStart = blockingEnd
	}

	if resized.Media != nil {
		// The left edge is moving; the source offset shifts by the
		// same delta, so the bound must be computed against the
		// offset the new start would imply.
		delta := actualStart - resized.Start
		shifted := resized.Media.ShiftedStart(delta)
		maxDur := shifted.MaxDuration(tolerance)
		if resized.End-actualStart > maxDur {
			sourceClamp := resized.End - maxDur
			if sourceClamp > actualStart {
				actualStart = sourceClamp
			}
		}
	}
	return actualStart
}

// clampExpandRight returns the furthest-right actualEnd permitted by
// the source-duration bound (neighbor pushing has no upper limit other
// than the source).
func clampExpandRight(resized *tracks.Item, newEnd, tolerance float64) float64 {
	if resized.Media == nil {
		return newEnd
	}
	maxDur := resized.Media.MaxDuration(tolerance)
	maxEnd := resized.Start + maxDur
	if newEnd > maxEnd {
		return maxEnd
	}
	return newEnd
}

// cascadePushRight pushes items overlapping the resized item's new
// range forward, chaining through consecutive overlaps, and leaves
// everything else untouched.
func cascadePushRight(resized *tracks.Item, others []*tracks.Item) []*tracks.Item {
	var left, right []*tracks.Item
	for _, it := range others {
		if it.Start < resized.Start {
			left = append(left, it)
		} else {
			right = append(right, it)
		}
	}
	tracks.SortItemsByStart(right)

	out := make([]*tracks.Item, 0, len(left)+len(right)+1)
	out = append(out, left...)
	out = append(out, resized)

	cursor := resized.End
	for _, it := range right {
		if it.Start < cursor {
			push := cursor - it.Start
			dur := it.Duration()
			newStart := it.Start + push
			moved := it.WithStartEnd(newStart, newStart+dur)
			out = append(out, moved)
			cursor = moved.End
		} else {
			out = append(out, it)
			cursor = it.End
		}
	}
	return out
}
