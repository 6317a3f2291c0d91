// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package timemath converts between frames and seconds at a fixed fps and
// computes the viewport duration a zoomed timeline element represents.
//
// Internally it leans on opentime.RationalTime, a rate-aware time type,
// so rounding is performed the same way a tick-based timeline would round
// it; the package boundary stays in plain float64 seconds and ints.
package timemath

import (
	"math"

	"github.com/mrjoshuak/timelinecore/opentime"
)

// FrameToTime converts a frame number to seconds at fps, rounding to
// millisecond precision: round(f/fps * 1000)/1000.
func FrameToTime(frame int, fps float64) float64 {
	rt := opentime.FromFrames(float64(frame), fps)
	seconds := rt.ToSeconds()
	return math.Round(seconds*1000) / 1000
}

// TimeToFrame converts seconds to a frame number at fps:
// round(round(t*1000)/1000 * fps).
func TimeToFrame(seconds float64, fps float64) int {
	rounded := math.Round(seconds*1000) / 1000
	rt := opentime.FromSeconds(rounded, fps)
	return int(math.Round(rt.Value()))
}

// ViewportDuration returns the time span the current timeline element
// width represents. composition is the composition duration in seconds;
// zoom is the current scale factor. At zoom >= 1 the viewport equals the
// composition duration exactly (zooming in keeps the axis but widens the
// element). Below 1, the axis expands without an upper cap.
func ViewportDuration(composition, zoom float64) float64 {
	if zoom >= 1 {
		return composition
	}
	if zoom < 1e-4 {
		zoom = 1e-4
	}
	return composition / zoom
}

// FormatTimecode renders seconds as an "HH:MM:SS:FF" (or ";FF" for drop
// frame rates) timecode at fps, for the markers strip and transport
// readout.
func FormatTimecode(seconds float64, fps float64) string {
	rt := opentime.FromSeconds(seconds, fps).Round()
	tc, err := rt.ToTimecode(fps, opentime.InferFromRate)
	if err != nil {
		return "00:00:00:00"
	}
	return tc
}
