// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

import "github.com/mrjoshuak/timelinecore/gaputils"

// DeleteItems removes every item whose id is in ids. Magnetic tracks
// that lost an item are closed back to a gap-free layout; tracks left
// with no items are pruned by autoRemoveEmpty.
func (m *Model) DeleteItems(ids []string) *Model {
	if len(ids) == 0 {
		return m
	}
	toDelete := make(map[string]bool, len(ids))
	for _, id := range ids {
		toDelete[id] = true
	}

	next := make([]*Track, len(m.Tracks))
	changed := false
	for i, tr := range m.Tracks {
		kept := make([]*Item, 0, len(tr.Items))
		lost := false
		for _, it := range tr.Items {
			if toDelete[it.ID] {
				lost = true
				continue
			}
			kept = append(kept, it)
		}
		if !lost {
			next[i] = tr
			continue
		}
		changed = true
		cp := tr.Clone()
		if tr.Magnetic {
			cp.Items = gaputils.CloseGaps(kept)
		} else {
			cp.Items = kept
		}
		next[i] = cp
	}
	if !changed {
		return m
	}
	return m.withTracks(autoRemoveEmpty(next, m.NewID))
}
