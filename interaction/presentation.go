// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package interaction

import (
	"math"

	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/tracks"
)

// PlayheadFraction returns the playhead's horizontal position as a
// fraction of the viewport: currentFrame/fps/viewportDuration. The
// result is not clamped; a playhead past the viewport gives a value
// above 1.
func PlayheadFraction(currentFrame int, fps, viewportDuration float64) float64 {
	if fps <= 0 || viewportDuration <= 0 {
		return 0
	}
	return (float64(currentFrame) / fps) / viewportDuration
}

// Guideline is a single snap guideline drawn during a drag.
type Guideline struct {
	TimeSec float64
}

// Guidelines returns de-duplicated guidelines for every item edge
// outside sourceTrackIdx within tolerance of pos.Start or pos.End.
func Guidelines(trackList []*tracks.Track, sourceTrackIdx int, pos *store.PositionPreview, tolerance float64) []Guideline {
	if pos == nil {
		return nil
	}
	seen := map[float64]bool{}
	var out []Guideline
	add := func(edge float64) {
		near := math.Abs(edge-pos.Start) <= tolerance || math.Abs(edge-pos.End) <= tolerance
		if !near {
			return
		}
		key := math.Round(edge*1000) / 1000
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, Guideline{TimeSec: edge})
	}
	for ti, tr := range trackList {
		if ti == sourceTrackIdx {
			continue
		}
		for _, it := range tr.Items {
			add(it.Start)
			add(it.End)
		}
	}
	return out
}

// InsertionLineTop returns the pixel y-offset of the insertion line:
// the top edge of insertionIndex's row, or the bottom of the track
// stack when insertionIndex equals trackCount.
func InsertionLineTop(insertionIndex, trackCount int, trackHeight float64) float64 {
	if insertionIndex < 0 {
		insertionIndex = 0
	}
	if insertionIndex > trackCount {
		insertionIndex = trackCount
	}
	return float64(insertionIndex) * trackHeight
}

// CanSplit reports whether splitting an item of the given duration at
// offset into its track (0 < offset < duration) leaves both resulting
// segments at least minSegment long.
func CanSplit(duration, offset, minSegment float64) bool {
	if offset <= 0 || offset >= duration {
		return false
	}
	left := offset
	right := duration - offset
	return left >= minSegment && right >= minSegment
}
