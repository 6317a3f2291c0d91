// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

import (
	"strconv"
	"testing"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/media"
)

func TestDuplicateItemsPlacesCopyAfterTrackEnd(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 2, End: 5, Type: TypeText},
	}
	m := newTestModel(t0)

	m2, created := m.DuplicateItems([]string{"a"})
	if len(created) != 1 {
		t.Fatalf("expected 1 duplicate, got %d", len(created))
	}
	if created[0].ID != "new-id" || created[0].Start != 5 || created[0].End != 7 {
		t.Fatalf("duplicate = %+v, want Start 5, End 7", created[0])
	}
	if len(m2.Tracks[0].Items) != 3 {
		t.Fatalf("expected 3 items after duplicate, got %d", len(m2.Tracks[0].Items))
	}
}

func TestDuplicateItemsShiftsMediaOffset(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeVideo, Media: media.NewRef(2, 100, 1)},
	}
	m := newTestModel(t0)

	_, created := m.DuplicateItems([]string{"a"})
	if created[0].Media.Start != 4 {
		t.Fatalf("duplicate Media.Start = %v, want 4 (shifted by offset 2)", created[0].Media.Start)
	}
}

func TestDuplicateItemsAccumulatesOffsetOnSameTrack(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 2, End: 3, Type: TypeText},
	}
	n := 0
	m := NewModel([]*Track{t0}, timelinecore.DefaultConfig(), func() string {
		n++
		return "dup-" + strconv.Itoa(n)
	})

	m2, created := m.DuplicateItems([]string{"a", "b"})
	if len(created) != 2 {
		t.Fatalf("expected 2 duplicates, got %d", len(created))
	}
	if created[0].Start != 3 || created[0].End != 5 {
		t.Fatalf("first duplicate = %+v, want Start 3, End 5", created[0])
	}
	if created[1].Start != 5 || created[1].End != 6 {
		t.Fatalf("second duplicate = %+v, want Start 5, End 6", created[1])
	}
	if len(m2.Tracks[0].Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(m2.Tracks[0].Items))
	}
}

func TestDuplicateItemsUnknownIDIsNoop(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText}}
	m := newTestModel(t0)

	m2, created := m.DuplicateItems([]string{"missing"})
	if created != nil {
		t.Fatalf("expected no duplicates, got %v", created)
	}
	if m2 != m {
		t.Fatal("expected unchanged model for an unknown id")
	}
}
