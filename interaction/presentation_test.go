// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package interaction

import (
	"testing"

	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/tracks"
)

func TestPlayheadFraction(t *testing.T) {
	got := PlayheadFraction(150, 30, 10)
	if got != 0.5 {
		t.Fatalf("PlayheadFraction = %g, want 0.5 (150/30=5s of 10s)", got)
	}
}

func TestPlayheadFractionZeroViewportIsZero(t *testing.T) {
	if got := PlayheadFraction(10, 30, 0); got != 0 {
		t.Fatalf("expected 0 for a zero-duration viewport, got %g", got)
	}
}

func TestGuidelinesFindsNearbyEdgesOnOtherTracks(t *testing.T) {
	t0 := tracks.NewTrack("t0", "")
	t1 := tracks.NewTrack("t1", "")
	t1.Items = []*tracks.Item{{ID: "b", TrackID: "t1", Start: 5, End: 8}}
	list := []*tracks.Track{t0, t1}

	pos := &store.PositionPreview{Start: 5.02, End: 7, TrackIndex: 0}
	lines := Guidelines(list, 0, pos, 0.05)
	if len(lines) != 1 || lines[0].TimeSec != 5 {
		t.Fatalf("Guidelines = %+v, want one guideline at t=5", lines)
	}
}

func TestGuidelinesIgnoresSourceTrack(t *testing.T) {
	t0 := tracks.NewTrack("t0", "")
	t0.Items = []*tracks.Item{{ID: "a", TrackID: "t0", Start: 5, End: 8}}
	pos := &store.PositionPreview{Start: 5, End: 7, TrackIndex: 0}
	lines := Guidelines([]*tracks.Track{t0}, 0, pos, 0.05)
	if len(lines) != 0 {
		t.Fatalf("expected no guidelines from the dragged item's own track, got %+v", lines)
	}
}

func TestInsertionLineTopAtBottomWhenIndexEqualsTrackCount(t *testing.T) {
	got := InsertionLineTop(3, 3, 48)
	if got != 144 {
		t.Fatalf("InsertionLineTop = %g, want 144", got)
	}
}

func TestCanSplitRejectsBelowMinimum(t *testing.T) {
	if CanSplit(1, 0.01, 0.016) {
		t.Fatal("expected split near the start to be rejected")
	}
	if CanSplit(1, 0.99, 0.016) {
		// 1 - 0.99 = 0.01 < 0.016
		t.Fatal("expected split near the end to be rejected")
	}
	if !CanSplit(1, 0.5, 0.016) {
		t.Fatal("expected a centered split to be accepted")
	}
}
