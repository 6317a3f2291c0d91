// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

// Track is a horizontal row containing time-ordered items. On a
// magnetic track, items are kept contiguous starting at 0 (no gaps);
// on a non-magnetic track, items are pairwise non-overlapping.
type Track struct {
	ID   string
	Name string

	Items []*Item

	Magnetic bool
	Visible  bool
	Muted    bool
}

// NewTrack returns an empty, visible, unmuted, non-magnetic track.
func NewTrack(id, name string) *Track {
	return &Track{ID: id, Name: name, Visible: true}
}

// Clone returns a deep copy of t.
func (t *Track) Clone() *Track {
	cp := *t
	cp.Items = CloneItems(t.Items)
	return &cp
}

// IndexOfItem returns the index of the item with the given id, or -1.
func (t *Track) IndexOfItem(id string) int {
	for i, it := range t.Items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// ItemByID returns the item with the given id, or nil.
func (t *Track) ItemByID(id string) *Item {
	if i := t.IndexOfItem(id); i >= 0 {
		return t.Items[i]
	}
	return nil
}

// End returns the maximum item End on the track, or 0 if empty.
func (t *Track) End() float64 {
	var end float64
	for _, it := range t.Items {
		if it.End > end {
			end = it.End
		}
	}
	return end
}

// IsNonOverlapping reports whether items are pairwise disjoint, the
// invariant required on non-magnetic tracks.
func (t *Track) IsNonOverlapping() bool {
	items := append([]*Item(nil), t.Items...)
	SortItemsByStart(items)
	for i := 1; i < len(items); i++ {
		if items[i].Start < items[i-1].End {
			return false
		}
	}
	return true
}

// IsContiguousFromZero reports whether items form a gap-free sequence
// starting at 0, the invariant required on magnetic tracks. eps
// tolerates floating point drift.
func (t *Track) IsContiguousFromZero(eps float64) bool {
	items := append([]*Item(nil), t.Items...)
	SortItemsByStart(items)
	if len(items) == 0 {
		return true
	}
	if abs(items[0].Start) > eps {
		return false
	}
	for i := 1; i < len(items); i++ {
		if abs(items[i].Start-items[i-1].End) > eps {
			return false
		}
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// CloneTracks returns a deep copy of a slice of tracks.
func CloneTracks(tracks []*Track) []*Track {
	out := make([]*Track, len(tracks))
	for i, t := range tracks {
		out[i] = t.Clone()
	}
	return out
}

// EnsureAtLeastOne returns tracks unchanged if non-empty, else a slice
// containing one fresh empty track: at least one track always exists;
// if the last is deleted, a fresh empty track replaces it.
func EnsureAtLeastOne(tracks []*Track, newID func() string) []*Track {
	if len(tracks) > 0 {
		return tracks
	}
	return []*Track{NewTrack(newID(), "")}
}
