// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

// SplitItem splits the item with the given id at timelineTime (an
// absolute timeline position, not an offset into the item), producing
// two items in its place: [Start, timelineTime) keeping the original
// id, and [timelineTime, End) as a new item sharing its Label/Type/
// Color/Data and a media.Ref adjusted via ShiftedStart so the right
// half continues from the correct source offset. Rejected (a no-op) if
// id is unknown, timelineTime is outside (Start, End), or either
// resulting segment is shorter than minSegment.
func (m *Model) SplitItem(id string, timelineTime, minSegment float64) *Model {
	ti, ii, it := m.findItem(id)
	if it == nil {
		return m
	}
	if timelineTime <= it.Start || timelineTime >= it.End {
		return m
	}
	left := timelineTime - it.Start
	right := it.End - timelineTime
	if left < minSegment || right < minSegment {
		return m
	}

	leftHalf := it.Clone()
	leftHalf.End = timelineTime

	rightHalf := it.Clone()
	rightHalf.ID = m.NewID()
	rightHalf.Start = timelineTime
	if it.Media != nil {
		rightHalf.Media = it.Media.ShiftedStart(left)
	}

	track := m.Tracks[ti]
	items := make([]*Item, 0, len(track.Items)+1)
	items = append(items, track.Items[:ii]...)
	items = append(items, leftHalf, rightHalf)
	items = append(items, track.Items[ii+1:]...)

	next := track.Clone()
	next.Items = items
	return m.withTracks(m.replaceTrack(ti, next))
}
