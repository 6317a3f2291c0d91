// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

// SameTracks reports whether a and b describe the same tracks and
// items, comparing by value rather than pointer identity. It is used
// to decide whether a mutation actually changed anything worth
// recording as a history entry.
func SameTracks(a, b []*Track) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if !sameTrack(a[i], b[i]) {
			return false
		}
	}
	return true
}

func sameTrack(a, b *Track) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.ID != b.ID || a.Name != b.Name || a.Magnetic != b.Magnetic ||
		a.Visible != b.Visible || a.Muted != b.Muted {
		return false
	}
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !sameItem(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func sameItem(a, b *Item) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.ID != b.ID || a.TrackID != b.TrackID || a.Start != b.Start ||
		a.End != b.End || a.Label != b.Label || a.Type != b.Type {
		return false
	}
	if (a.Media == nil) != (b.Media == nil) {
		return false
	}
	if a.Media != nil && *a.Media != *b.Media {
		return false
	}
	return true
}
