package gaputils

import (
	"testing"

	"github.com/mrjoshuak/timelinecore/tracks"
)

func trackWith(id string, items ...*tracks.Item) *tracks.Track {
	return &tracks.Track{ID: id, Items: items, Visible: true}
}

func TestFindBestPositionPrefersExactSlot(t *testing.T) {
	t0 := trackWith("t0", item("a", 0, 2))
	pref := "t0"
	prefStart := 5.0
	p := FindBestPositionForNewItem([]*tracks.Track{t0}, 1, nil, &pref, &prefStart)
	if p.TrackID != "t0" || p.Start != 5 {
		t.Fatalf("got %+v", p)
	}
}

func TestFindBestPositionFallsBackToGap(t *testing.T) {
	t0 := trackWith("t0", item("a", 0, 2), item("b", 10, 11))
	p := FindBestPositionForNewItem([]*tracks.Track{t0}, 1, nil, nil, nil)
	if p.TrackID != "t0" || p.Start != 2 {
		t.Fatalf("got %+v, want gap at 2", p)
	}
}

func TestFindBestPositionLeastLoaded(t *testing.T) {
	t0 := trackWith("t0", item("a", 0, 10))
	t1 := trackWith("t1")
	p := FindBestPositionForNewItem([]*tracks.Track{t0, t1}, 1, nil, nil, nil)
	if p.TrackID != "t1" || p.Start != 0 {
		t.Fatalf("got %+v, want empty track t1 at 0", p)
	}
}
