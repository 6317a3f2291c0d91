// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package opentime provides RationalTime, a rate-aware time value used to
// convert between frames, seconds, and timecode the same way a tick-based
// timeline would round them. It carries only the conversions timemath
// needs; OTIO's wider RationalTime/TimeRange/TimeTransform surface is not
// reproduced here.
package opentime

import (
	"fmt"
	"math"
)

// IsDropFrameRate selects drop-frame timecode behavior for ToTimecode.
type IsDropFrameRate int

const (
	// InferFromRate picks drop frame based on the target rate (29.97, 59.94).
	InferFromRate IsDropFrameRate = -1
	// ForceNo forces non-drop frame timecode.
	ForceNo IsDropFrameRate = 0
	// ForceYes forces drop frame timecode.
	ForceYes IsDropFrameRate = 1
)

// RationalTime is a moment in time expressed as value/rate seconds.
type RationalTime struct {
	value float64
	rate  float64
}

// Value returns the time value (ticks at Rate).
func (rt RationalTime) Value() float64 {
	return rt.value
}

// IsInvalidTime reports whether value or rate is NaN, or rate <= 0.
func (rt RationalTime) IsInvalidTime() bool {
	return math.IsNaN(rt.rate) || math.IsNaN(rt.value) || rt.rate <= 0
}

// RescaledTo returns rt converted to a new rate.
func (rt RationalTime) RescaledTo(newRate float64) RationalTime {
	return RationalTime{value: rt.ValueRescaledTo(newRate), rate: newRate}
}

// ValueRescaledTo returns rt's value converted to a new rate.
func (rt RationalTime) ValueRescaledTo(newRate float64) float64 {
	if newRate == rt.rate {
		return rt.value
	}
	return (rt.value * newRate) / rt.rate
}

// Round returns rt with its value rounded to the nearest integer.
func (rt RationalTime) Round() RationalTime {
	return RationalTime{value: math.Round(rt.value), rate: rt.rate}
}

// FromFrames converts a frame number and rate into a RationalTime.
func FromFrames(frame, rate float64) RationalTime {
	return RationalTime{value: math.Trunc(frame), rate: rate}
}

// FromSeconds converts a value in seconds and rate into a RationalTime.
func FromSeconds(seconds, rate float64) RationalTime {
	return RationalTime{value: seconds, rate: 1}.RescaledTo(rate)
}

// ToSeconds returns rt's value in seconds.
func (rt RationalTime) ToSeconds() float64 {
	return rt.ValueRescaledTo(1)
}

// isDropFrameRate reports whether rate conventionally uses drop-frame
// timecode (29.97 or 59.94).
func isDropFrameRate(rate float64) bool {
	return math.Abs(rate-29.97) < 0.01 || math.Abs(rate-59.94) < 0.01
}

// ToTimecode converts rt to an "HH:MM:SS:FF" (or ";FF" for drop frame)
// timecode string at rate.
func (rt RationalTime) ToTimecode(rate float64, dropFrame IsDropFrameRate) (string, error) {
	if rt.IsInvalidTime() {
		return "", fmt.Errorf("invalid time")
	}

	useDropFrame := false
	if dropFrame == ForceYes {
		useDropFrame = true
	} else if dropFrame == InferFromRate {
		useDropFrame = isDropFrameRate(rate)
	}

	rescaled := rt.RescaledTo(rate)
	totalFrames := int64(math.Round(rescaled.value))
	if totalFrames < 0 {
		return "", fmt.Errorf("negative timecode not supported")
	}

	nominalRate := int64(math.Round(rate))
	if useDropFrame {
		// 29.97 drops 2 frames/minute, 59.94 drops 4, except every 10th minute.
		var dropFrames int64 = 2
		if nominalRate >= 60 {
			dropFrames = 4
		}

		framesPerMinute := nominalRate*60 - dropFrames
		framesPer10Minutes := framesPerMinute*10 + dropFrames

		d := totalFrames / framesPer10Minutes
		m := totalFrames % framesPer10Minutes
		if m < dropFrames {
			m += dropFrames
		}

		frameCount := d*framesPer10Minutes + (m-dropFrames)/framesPerMinute*(framesPerMinute+dropFrames) +
			(m-dropFrames)%framesPerMinute + dropFrames

		frames := int(frameCount % nominalRate)
		seconds := int((frameCount / nominalRate) % 60)
		minutes := int((frameCount / nominalRate / 60) % 60)
		hours := int(frameCount / nominalRate / 3600)
		return fmt.Sprintf("%02d:%02d:%02d;%02d", hours, minutes, seconds, frames), nil
	}

	frames := int(totalFrames % nominalRate)
	seconds := int((totalFrames / nominalRate) % 60)
	minutes := int((totalFrames / nominalRate / 60) % 60)
	hours := int(totalFrames / nominalRate / 3600)
	return fmt.Sprintf("%02d:%02d:%02d:%02d", hours, minutes, seconds, frames), nil
}
