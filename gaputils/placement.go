// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package gaputils

import (
	"github.com/mrjoshuak/timelinecore/tracks"
)

// Placement is where a new item should land.
type Placement struct {
	TrackID string
	Start   float64
}

// FindBestPositionForNewItem picks a landing spot for a new item of the
// given duration. Strategy, in order:
//
//  1. The preferred exact slot (prefTrack + prefStart), if it fits.
//  2. The first track that fits the item at currentTime.
//  3. The first gap (across all tracks, in track order) wide enough.
//  4. The least-loaded track (fewest items, tie-broken by earliest
//     track order), placed after its last item.
//
// Ties throughout are broken by earliest track order.
func FindBestPositionForNewItem(
	trackList []*tracks.Track,
	duration float64,
	currentTime *float64,
	prefTrack *string,
	prefStart *float64,
) Placement {
	if prefTrack != nil && prefStart != nil {
		for _, tr := range trackList {
			if tr.ID == *prefTrack && CanFitAtPosition(tr.Items, *prefStart, duration) {
				return Placement{TrackID: tr.ID, Start: *prefStart}
			}
		}
	}

	if currentTime != nil {
		for _, tr := range trackList {
			if CanFitAtPosition(tr.Items, *currentTime, duration) {
				return Placement{TrackID: tr.ID, Start: *currentTime}
			}
		}
	}

	for _, tr := range trackList {
		for _, g := range FindGaps(tr.Items) {
			if g.End-g.Start >= duration {
				return Placement{TrackID: tr.ID, Start: g.Start}
			}
		}
		// A track with no items at all has one infinite gap starting
		// at 0 that FindGaps does not report (it reports no trailing
		// gap); handle the empty-track case explicitly.
		if len(tr.Items) == 0 {
			return Placement{TrackID: tr.ID, Start: 0}
		}
	}

	if len(trackList) == 0 {
		return Placement{Start: 0}
	}

	least := trackList[0]
	for _, tr := range trackList[1:] {
		if len(tr.Items) < len(least.Items) {
			least = tr
		}
	}
	return Placement{TrackID: least.ID, Start: least.End()}
}
