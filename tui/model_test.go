// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tui

import (
	"testing"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/tracks"
)

func demoModel() *Model {
	t0 := tracks.NewTrack("t0", "Track 0")
	t0.Items = []*tracks.Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: tracks.TypeText},
		{ID: "b", TrackID: "t0", Start: 2, End: 4, Type: tracks.TypeText},
	}
	t1 := tracks.NewTrack("t1", "Track 1")
	return New(timelinecore.DefaultConfig(), []*tracks.Track{t0, t1})
}

func TestClampSelectedTrackStaysInRange(t *testing.T) {
	m := demoModel()
	m.selectedTrack = 5
	m.clampSelectedTrack()
	if m.selectedTrack != 1 {
		t.Fatalf("selectedTrack = %d, want clamped to 1", m.selectedTrack)
	}
	m.selectedTrack = -3
	m.clampSelectedTrack()
	if m.selectedTrack != 0 {
		t.Fatalf("selectedTrack = %d, want clamped to 0", m.selectedTrack)
	}
}

func TestSelectedItemReflectsFacadeSelection(t *testing.T) {
	m := demoModel()
	if id := m.selectedItemID(); id != "" {
		t.Fatalf("expected no selection initially, got %q", id)
	}
	m.f.SelectItem("b")
	ti, _, it := m.selectedItem()
	if it == nil || it.ID != "b" || ti != 0 {
		t.Fatalf("selectedItem = (%d, %v), want track 0 item b", ti, it)
	}
}

func TestSelectFirstOnTrackPicksEarliestItem(t *testing.T) {
	m := demoModel()
	m.selectedTrack = 0
	m.selectFirstOnTrack()
	if id := m.selectedItemID(); id != "a" {
		t.Fatalf("selectFirstOnTrack selected %q, want a", id)
	}
}

func TestSelectAdjacentItemMovesForwardAndStopsAtEnd(t *testing.T) {
	m := demoModel()
	m.f.SelectItem("a")
	m.selectAdjacentItem(1)
	if id := m.selectedItemID(); id != "b" {
		t.Fatalf("expected selection to move to b, got %q", id)
	}
	m.selectAdjacentItem(1)
	if id := m.selectedItemID(); id != "b" {
		t.Fatalf("expected selection to stay at b past the last item, got %q", id)
	}
}
