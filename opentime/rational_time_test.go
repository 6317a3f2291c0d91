// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package opentime

import (
	"math"
	"testing"
)

func TestFromFramesTruncatesToInteger(t *testing.T) {
	rt := FromFrames(23.7, 24)
	if rt.Value() != 23 {
		t.Errorf("Value() = %g, want 23", rt.Value())
	}
}

func TestFromSecondsRescalesToRate(t *testing.T) {
	rt := FromSeconds(1, 24)
	if rt.Value() != 24 {
		t.Errorf("Value() = %g, want 24", rt.Value())
	}
}

func TestToSecondsRoundTripsFromSeconds(t *testing.T) {
	rt := FromSeconds(2.5, 30)
	if got := rt.ToSeconds(); math.Abs(got-2.5) > 1e-9 {
		t.Errorf("ToSeconds() = %g, want 2.5", got)
	}
}

func TestRoundRoundsToNearestInteger(t *testing.T) {
	rt := RationalTime{value: 23.6, rate: 24}
	if got := rt.Round().Value(); got != 24 {
		t.Errorf("Round().Value() = %g, want 24", got)
	}
}

func TestIsInvalidTime(t *testing.T) {
	tests := []struct {
		name    string
		rt      RationalTime
		invalid bool
	}{
		{"valid", RationalTime{value: 10, rate: 24}, false},
		{"zero rate", RationalTime{value: 10, rate: 0}, true},
		{"negative rate", RationalTime{value: 10, rate: -1}, true},
		{"nan value", RationalTime{value: math.NaN(), rate: 24}, true},
		{"nan rate", RationalTime{value: 10, rate: math.NaN()}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rt.IsInvalidTime(); got != tt.invalid {
				t.Errorf("IsInvalidTime() = %v, want %v", got, tt.invalid)
			}
		})
	}
}

func TestToTimecodeNonDropFrame(t *testing.T) {
	rt := FromSeconds(3661, 24) // 1h 1m 1s
	tc, err := rt.ToTimecode(24, ForceNo)
	if err != nil {
		t.Fatalf("ToTimecode: %v", err)
	}
	if tc != "01:01:01:00" {
		t.Errorf("ToTimecode = %q, want 01:01:01:00", tc)
	}
}

func TestToTimecodeInfersDropFrameAt2997(t *testing.T) {
	rt := FromSeconds(1, 29.97)
	tc, err := rt.ToTimecode(29.97, InferFromRate)
	if err != nil {
		t.Fatalf("ToTimecode: %v", err)
	}
	if tc[8] != ';' {
		t.Errorf("ToTimecode = %q, want a drop-frame separator at index 8", tc)
	}
}

func TestToTimecodeRejectsInvalidTime(t *testing.T) {
	rt := RationalTime{value: 1, rate: 0}
	if _, err := rt.ToTimecode(24, InferFromRate); err == nil {
		t.Fatal("expected an error for an invalid time")
	}
}

func TestToTimecodeRejectsNegativeTime(t *testing.T) {
	rt := FromSeconds(-1, 24)
	if _, err := rt.ToTimecode(24, InferFromRate); err == nil {
		t.Fatal("expected an error for a negative timecode")
	}
}
