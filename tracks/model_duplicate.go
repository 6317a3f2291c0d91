// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

// DuplicateItems clones each item named by ids onto the end of its own
// track, offset to start immediately after the track's current last
// item (accumulating across duplicates placed on the same track), and
// returns the updated model plus the duplicates in the same order as
// ids. ids not found are skipped.
func (m *Model) DuplicateItems(ids []string) (*Model, []*Item) {
	next := append([]*Track(nil), m.Tracks...)
	trackEnd := make(map[int]float64, len(next))
	var created []*Item

	for _, id := range ids {
		ti, _, it := m.findItem(id)
		if it == nil {
			continue
		}
		end, seen := trackEnd[ti]
		if !seen {
			end = next[ti].End()
		}

		offset := end - it.Start
		dup := it.Clone()
		dup.ID = m.NewID()
		dup.Start = it.Start + offset
		dup.End = it.End + offset
		if dup.Media != nil {
			dup.Media = dup.Media.ShiftedStart(offset)
		}

		cp := next[ti].Clone()
		cp.Items = append(append([]*Item(nil), next[ti].Items...), dup)
		SortItemsByStart(cp.Items)
		next[ti] = cp

		trackEnd[ti] = dup.End
		created = append(created, dup)
	}

	if len(created) == 0 {
		return m, nil
	}
	return m.withTracks(next), created
}
