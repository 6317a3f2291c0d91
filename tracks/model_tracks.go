// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

import "github.com/mrjoshuak/timelinecore/gaputils"

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// InsertTrackAt inserts track at index, clamped to [0, len(Tracks)].
func (m *Model) InsertTrackAt(index int, track *Track) *Model {
	return m.InsertMultipleTracksAt(index, []*Track{track})
}

// InsertMultipleTracksAt inserts newTracks as a contiguous run starting
// at index, clamped to [0, len(Tracks)], preserving newTracks' order.
func (m *Model) InsertMultipleTracksAt(index int, newTracks []*Track) *Model {
	if len(newTracks) == 0 {
		return m
	}
	index = clampIndex(index, len(m.Tracks))
	next := make([]*Track, 0, len(m.Tracks)+len(newTracks))
	next = append(next, m.Tracks[:index]...)
	next = append(next, CloneTracks(newTracks)...)
	next = append(next, m.Tracks[index:]...)
	return m.withTracks(next)
}

// CreateTracksWithItems atomically replaces the tracks named by
// removeTrackIDs with newTracks inserted at insertIndex (computed
// against the post-removal list, clamped), then prunes any
// resulting empty tracks.
func (m *Model) CreateTracksWithItems(removeTrackIDs []string, newTracks []*Track, insertIndex int) *Model {
	remove := make(map[string]bool, len(removeTrackIDs))
	for _, id := range removeTrackIDs {
		remove[id] = true
	}
	kept := make([]*Track, 0, len(m.Tracks))
	for _, tr := range m.Tracks {
		if !remove[tr.ID] {
			kept = append(kept, tr)
		}
	}
	insertIndex = clampIndex(insertIndex, len(kept))
	next := make([]*Track, 0, len(kept)+len(newTracks))
	next = append(next, kept[:insertIndex]...)
	next = append(next, CloneTracks(newTracks)...)
	next = append(next, kept[insertIndex:]...)
	return m.withTracks(autoRemoveEmpty(next, m.NewID))
}

// ReorderTrack moves the track at fromIndex to toIndex. A no-op if
// either index is out of range or they are equal.
func (m *Model) ReorderTrack(fromIndex, toIndex int) *Model {
	n := len(m.Tracks)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return m
	}
	if fromIndex == toIndex {
		return m
	}
	next := append([]*Track(nil), m.Tracks...)
	moving := next[fromIndex]
	next = append(next[:fromIndex], next[fromIndex+1:]...)
	out := make([]*Track, 0, n)
	out = append(out, next[:toIndex]...)
	out = append(out, moving)
	out = append(out, next[toIndex:]...)
	return m.withTracks(out)
}

// DeleteTrack removes the track with the given id. autoRemoveEmpty
// guarantees the model keeps at least one track.
func (m *Model) DeleteTrack(id string) *Model {
	i := m.findTrack(id)
	if i < 0 {
		return m
	}
	next := append([]*Track(nil), m.Tracks[:i]...)
	next = append(next, m.Tracks[i+1:]...)
	return m.withTracks(autoRemoveEmpty(next, m.NewID))
}

// ToggleMagnetic flips the magnetic flag on the track with the given
// id. Turning magnetic on immediately closes any gaps on that track.
func (m *Model) ToggleMagnetic(id string) *Model {
	i := m.findTrack(id)
	if i < 0 {
		return m
	}
	tr := m.Tracks[i]
	cp := tr.Clone()
	cp.Magnetic = !tr.Magnetic
	if cp.Magnetic {
		cp.Items = gaputils.CloseGaps(cp.Items)
	}
	return m.withTracks(m.replaceTrack(i, cp))
}
