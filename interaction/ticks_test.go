// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package interaction

import "testing"

func TestMajorTickIntervalPicksSmallestAboveThreshold(t *testing.T) {
	// 1000s over 1000px = 1 sec/pixel; at 100px/major-tick threshold is
	// 100s, so the ladder should pick 120 (first entry >= 100).
	got := MajorTickInterval(1000, 1000, 100)
	if got != 120 {
		t.Fatalf("MajorTickInterval = %g, want 120", got)
	}
}

func TestMajorTickIntervalZeroInputsFallBackToFinest(t *testing.T) {
	if got := MajorTickInterval(0, 1000, 100); got != 0.1 {
		t.Fatalf("got %g, want the finest ladder entry", got)
	}
}

func TestMinorTickIntervalSubSecondUsesHalf(t *testing.T) {
	if got := MinorTickInterval(0.5); got != 0.25 {
		t.Fatalf("MinorTickInterval(0.5) = %g, want 0.25", got)
	}
	if got := MinorTickInterval(60); got != 12 {
		t.Fatalf("MinorTickInterval(60) = %g, want 12", got)
	}
}

func TestTicksCoversRangeWithMajorFlags(t *testing.T) {
	ticks := Ticks(10, 1000, 100)
	if len(ticks) == 0 {
		t.Fatal("expected at least one tick")
	}
	foundMajor := false
	for _, tk := range ticks {
		if tk.Major {
			foundMajor = true
		}
	}
	if !foundMajor {
		t.Fatal("expected at least one major tick")
	}
}
