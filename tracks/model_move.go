// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

import (
	"math"

	"github.com/mrjoshuak/timelinecore/gaputils"
)

// MoveItem removes the item from its source track and inserts it into
// newTrackID at [newStart, newStart+duration). If the target track is
// magnetic, the full track is rebuilt to a contiguous
// layout around the insertion point via gaputils.MagneticInsertionPreview.
// If the source track was magnetic, its remaining items are closed back
// to a gap-free layout. Fails (returns m unchanged) when newTrackID does
// not name an existing track.
func (m *Model) MoveItem(id string, newStart, newEnd float64, newTrackID string) *Model {
	srcTi, _, it := m.findItem(id)
	if it == nil {
		return m
	}
	dstTi := m.findTrack(newTrackID)
	if dstTi < 0 {
		return m
	}

	duration := newEnd - newStart
	moved := it.WithStartEnd(newStart, newEnd)
	moved.TrackID = newTrackID

	next := append([]*Track(nil), m.Tracks...)

	srcTrack := m.Tracks[srcTi]
	remainingSrc := removeItem(srcTrack.Items, id)

	if srcTi == dstTi {
		// Moving within the same track: build the destination list
		// from the post-removal items directly.
		next[srcTi] = rebuildTrack(srcTrack, remainingSrc, moved, duration)
		return m.withTracks(autoRemoveEmpty(next, m.NewID))
	}

	dstTrack := m.Tracks[dstTi]
	next[dstTi] = rebuildTrack(dstTrack, dstTrack.Items, moved, duration)

	srcCopy := srcTrack.Clone()
	if srcTrack.Magnetic {
		srcCopy.Items = gaputils.CloseGaps(remainingSrc)
	} else {
		srcCopy.Items = remainingSrc
	}
	next[srcTi] = srcCopy

	return m.withTracks(autoRemoveEmpty(next, m.NewID))
}

// rebuildTrack returns a clone of track with remaining (the track's
// items minus the moved item) plus moved inserted, either via a
// magnetic reflow or a plain sorted append.
func rebuildTrack(track *Track, remaining []*Item, moved *Item, duration float64) *Track {
	cp := track.Clone()
	if track.Magnetic {
		preview := gaputils.MagneticInsertionPreview(remaining, duration, moved.Start)
		placed := moved.WithStartEnd(preview.InsertionStart, preview.InsertionStart+duration)
		items := make([]*Item, 0, len(preview.PreviewItems)+1)
		items = append(items, preview.PreviewItems[:preview.InsertionIndex]...)
		items = append(items, placed)
		items = append(items, preview.PreviewItems[preview.InsertionIndex:]...)
		for _, i := range items {
			i.TrackID = track.ID
		}
		cp.Items = items
		return cp
	}
	items := append([]*Item(nil), remaining...)
	items = append(items, moved)
	SortItemsByStart(items)
	cp.Items = items
	return cp
}

// removeItem returns a copy of items with the item matching id removed.
func removeItem(items []*Item, id string) []*Item {
	out := make([]*Item, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			out = append(out, it)
		}
	}
	return out
}

// ResizeItem changes id's interval to [newStart, newEnd]. On a
// magnetic track the item is updated in place (with
// its media offset adjusted for a left-edge move) and the track is
// closed back to a contiguous layout; on a non-magnetic track the
// resize is delegated to gaputils.PushItemsDuringResize.
func (m *Model) ResizeItem(id string, newStart, newEnd float64) *Model {
	ti, _, it := m.findItem(id)
	if it == nil {
		return m
	}
	track := m.Tracks[ti]

	if track.Magnetic {
		clampedStart, clampedEnd := clampResizeBounds(it, newStart, newEnd, m.Config.MinItemDuration, m.Config.DurationTolerance)
		updated := it.WithStartEnd(clampedStart, clampedEnd)
		items := make([]*Item, 0, len(track.Items))
		for _, existing := range track.Items {
			if existing.ID == id {
				items = append(items, updated)
			} else {
				items = append(items, existing)
			}
		}
		cp := track.Clone()
		cp.Items = gaputils.CloseGaps(items)
		return m.withTracks(m.replaceTrack(ti, cp))
	}

	result := gaputils.PushItemsDuringResize(track.Items, id, newStart, newEnd, m.Config.DurationTolerance)
	cp := track.Clone()
	cp.Items = result.Items
	return m.withTracks(m.replaceTrack(ti, cp))
}

// clampResizeBounds floors [newStart, newEnd) to minDuration and, when it
// carries source media, caps it at the source-duration limit, anchored at
// whichever edge of it did not move. Mirrors the clamp
// drag.Controller.previewResize applies before a live drag ever reaches
// ResizeItem, so a magnetic-track resize honors the same bounds even when
// called directly.
func clampResizeBounds(it *Item, newStart, newEnd, minDuration, tolerance float64) (float64, float64) {
	if newStart != it.Start {
		dur := math.Max(minDuration, newEnd-newStart)
		newStart = newEnd - dur
		if it.Media != nil {
			delta := newStart - it.Start
			maxDur := it.Media.ShiftedStart(delta).MaxDuration(tolerance)
			if newEnd-newStart > maxDur {
				newStart = newEnd - maxDur
			}
		}
		return newStart, newEnd
	}

	dur := math.Max(minDuration, newEnd-newStart)
	newEnd = newStart + dur
	if it.Media != nil {
		maxDur := it.Media.MaxDuration(tolerance)
		if newEnd-newStart > maxDur {
			newEnd = newStart + maxDur
		}
	}
	return newStart, newEnd
}
