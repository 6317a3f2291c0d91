// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

import (
	"github.com/mrjoshuak/timelinecore/gaputils"
	"github.com/mrjoshuak/timelinecore/media"
)

// NewItemRequest describes a new item to place onto the timeline.
type NewItemRequest struct {
	Type        Type
	Label       string
	Duration    float64
	Media       *media.Ref
	PrefTrackID *string
	PrefStart   *float64
	CurrentTime *float64
}

// AddNewItem picks a landing spot for req (preferred slot, current
// time, first fitting gap, or least-loaded track, in that order) and
// inserts it there, reflowing a magnetic destination track around the
// insertion point. Returns the updated model and the created item.
func (m *Model) AddNewItem(req NewItemRequest) (*Model, *Item) {
	var placement gaputils.Placement
	// A preferred magnetic track has no real "gap" to fit into (its
	// items are always contiguous); treat PrefStart there as a plain
	// reflow hint rather than running it through the fit-or-fallback
	// search meant for non-magnetic placement.
	if req.PrefTrackID != nil {
		if ti := m.findTrack(*req.PrefTrackID); ti >= 0 && m.Tracks[ti].Magnetic {
			start := 0.0
			if req.PrefStart != nil {
				start = *req.PrefStart
			}
			placement = gaputils.Placement{TrackID: *req.PrefTrackID, Start: start}
		}
	}
	if placement.TrackID == "" {
		placement = gaputils.FindBestPositionForNewItem(m.Tracks, req.Duration, req.CurrentTime, req.PrefTrackID, req.PrefStart)
	}

	ti := m.findTrack(placement.TrackID)
	if ti < 0 {
		return m, nil
	}

	color := DefaultColorForType(req.Type)
	newItem := &Item{
		ID:      m.NewID(),
		TrackID: placement.TrackID,
		Start:   placement.Start,
		End:     placement.Start + req.Duration,
		Label:   req.Label,
		Type:    req.Type,
		Color:   color,
		Media:   req.Media,
	}

	tr := m.Tracks[ti]
	var cp *Track
	if tr.Magnetic {
		preview := gaputils.MagneticInsertionPreview(tr.Items, req.Duration, placement.Start)
		newItem.Start = preview.InsertionStart
		newItem.End = preview.InsertionStart + req.Duration
		items := make([]*Item, 0, len(preview.PreviewItems)+1)
		items = append(items, preview.PreviewItems[:preview.InsertionIndex]...)
		items = append(items, newItem)
		items = append(items, preview.PreviewItems[preview.InsertionIndex:]...)
		cp = tr.Clone()
		cp.Items = items
	} else {
		items := append([]*Item(nil), tr.Items...)
		items = append(items, newItem)
		SortItemsByStart(items)
		cp = tr.Clone()
		cp.Items = items
	}

	return m.withTracks(m.replaceTrack(ti, cp)), newItem
}
