// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package facade

import (
	"github.com/mrjoshuak/timelinecore/media"
	"github.com/mrjoshuak/timelinecore/timemath"
	"github.com/mrjoshuak/timelinecore/tracks"
)

// Overlay is the external, frame-oriented representation a caller
// exchanges with the facade: From/DurationInFrames/Row address the
// same position as an Item's Start/End/TrackID but in frames and row
// index instead of seconds and a track id, and VideoStartTime/
// StartFromSound carry the source-media offset the way an external
// overlay format does (audio expresses it in seconds, video in
// frames). Data carries every field the core does not interpret,
// round-tripped through tracks.Item.Data.
type Overlay struct {
	ID               string
	From             int
	DurationInFrames int
	Row              int

	Type  tracks.Type
	Label string

	VideoStartTime float64 // frames, for video items
	StartFromSound float64 // seconds, for audio items
	SrcDuration    float64 // source seconds, video/audio items only
	Speed          float64 // playback speed multiplier, video/audio items only

	Data map[string]any
}

// transformOverlaysToTracks converts overlays into items placed onto
// trackIDs[overlay.Row] (extra rows beyond len(trackIDs) are dropped;
// callers should ensure enough tracks exist before calling). fps
// converts From/DurationInFrames to seconds.
func transformOverlaysToTracks(overlays []Overlay, trackIDs []string, fps float64) []*tracks.Item {
	items := make([]*tracks.Item, 0, len(overlays))
	for _, ov := range overlays {
		if ov.Row < 0 || ov.Row >= len(trackIDs) {
			continue
		}
		start := timemath.FrameToTime(ov.From, fps)
		end := timemath.FrameToTime(ov.From+ov.DurationInFrames, fps)

		it := &tracks.Item{
			ID:      ov.ID,
			TrackID: trackIDs[ov.Row],
			Start:   start,
			End:     end,
			Label:   ov.Label,
			Type:    ov.Type,
			Data:    cloneAnyMap(ov.Data),
		}
		if ov.Type.HasSourceMedia() {
			it.Media = overlayMediaRef(ov, fps)
		}
		items = append(items, it)
	}
	return items
}

// transformTracksToOverlays converts a track list back into overlays,
// merging each item's current state onto prior, the caller's last-seen
// overlay state, so fields the core doesn't track round-trip intact
// instead of being overwritten by a stale prior snapshot.
func transformTracksToOverlays(trackList []*tracks.Track, prior map[string]Overlay, fps float64) []Overlay {
	out := make([]Overlay, 0)
	for row, tr := range trackList {
		for _, it := range tr.Items {
			base, hadPrior := prior[it.ID]
			if !hadPrior {
				base = Overlay{ID: it.ID}
			}
			base.Row = row
			base.From = timemath.TimeToFrame(it.Start, fps)
			base.DurationInFrames = timemath.TimeToFrame(it.End, fps) - base.From
			base.Type = it.Type
			base.Label = it.Label
			base.Data = cloneAnyMap(it.Data)
			if it.Media != nil {
				base.SrcDuration = it.Media.SrcDuration
				base.Speed = it.Media.Speed
				switch it.Type {
				case tracks.TypeVideo:
					base.VideoStartTime = float64(timemath.TimeToFrame(it.Media.Start, fps))
				case tracks.TypeAudio:
					base.StartFromSound = it.Media.Start
				}
			}
			out = append(out, base)
		}
	}
	return out
}

func overlayMediaRef(ov Overlay, fps float64) *media.Ref {
	switch ov.Type {
	case tracks.TypeVideo:
		start := timemath.FrameToTime(int(ov.VideoStartTime), fps)
		return media.NewRef(start, ov.SrcDuration, ov.Speed)
	case tracks.TypeAudio:
		return media.NewRef(ov.StartFromSound, ov.SrcDuration, ov.Speed)
	default:
		return nil
	}
}

func cloneAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
