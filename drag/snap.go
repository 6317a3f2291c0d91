// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package drag

import (
	"math"

	"github.com/mrjoshuak/timelinecore/tracks"
)

// snapToGridAndEdges finds the nearest snap point to value on trackIndex (or
// an adjacent track), among item edges within tolerance, preferring
// edges over the grid when prioritizeEdgeSnap is true or the closest
// edge beats the closest grid point.
func snapToGridAndEdges(value float64, list []*tracks.Track, trackIndex int, excludeIDs map[string]bool, gridSize, edgeTolerance float64, prioritizeEdgeSnap bool) float64 {
	bestEdge, haveEdge := math.Inf(1), false
	bestEdgeDist := math.Inf(1)

	consider := func(edge float64) {
		d := math.Abs(edge - value)
		if d <= edgeTolerance && d < bestEdgeDist {
			bestEdge, bestEdgeDist, haveEdge = edge, d, true
		}
	}

	for ti, tr := range list {
		if ti != trackIndex && ti != trackIndex-1 && ti != trackIndex+1 {
			continue
		}
		for _, it := range tr.Items {
			if excludeIDs[it.ID] {
				continue
			}
			consider(it.Start)
			consider(it.End)
		}
	}

	gridSnapped := math.Round(value/gridSize) * gridSize
	gridDist := math.Abs(gridSnapped - value)

	if haveEdge && (prioritizeEdgeSnap || bestEdgeDist <= gridDist) {
		return bestEdge
	}
	return gridSnapped
}
