package tracks

import (
	"testing"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/media"
)

func newTestModel(trackList ...*Track) *Model {
	return NewModel(trackList, timelinecore.DefaultConfig(), func() string { return "new-id" })
}

func TestMoveItemNonMagneticSameTrack(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 3, End: 4, Type: TypeText},
	}
	m := newTestModel(t0)
	m2 := m.MoveItem("a", 5, 7, "t0")
	tr := m2.Tracks[0]
	if it := tr.ItemByID("a"); it == nil || it.Start != 5 || it.End != 7 {
		t.Fatalf("a = %+v", it)
	}
}

func TestMoveItemAcrossTracksMagneticSourceCloses(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Magnetic = true
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 2, End: 5, Type: TypeText},
	}
	t1 := NewTrack("t1", "")
	m := newTestModel(t0, t1)

	m2 := m.MoveItem("a", 0, 2, "t1")

	src := m2.Tracks[0]
	if len(src.Items) != 1 || src.Items[0].ID != "b" || src.Items[0].Start != 0 {
		t.Fatalf("source track after move = %+v", src.Items)
	}
	dst := m2.Tracks[1]
	if len(dst.Items) != 1 || dst.Items[0].ID != "a" {
		t.Fatalf("dest track after move = %+v", dst.Items)
	}
}

func TestMoveItemUnknownTargetTrackIsNoop(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText}}
	m := newTestModel(t0)
	m2 := m.MoveItem("a", 5, 7, "does-not-exist")
	if m2 != m {
		t.Fatalf("expected unchanged model for unknown target track")
	}
}

func TestResizeItemNonMagneticDelegatesToPush(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 3, End: 4, Type: TypeText},
	}
	m := newTestModel(t0)
	m2 := m.ResizeItem("a", 0, 3.5)
	tr := m2.Tracks[0]
	b := tr.ItemByID("b")
	if b.Start != 3.5 || b.End != 4.5 {
		t.Fatalf("b pushed = %+v", b)
	}
}

func TestResizeItemMagneticClosesGaps(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Magnetic = true
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 2, End: 5, Type: TypeText},
	}
	m := newTestModel(t0)
	m2 := m.ResizeItem("a", 0, 1)
	tr := m2.Tracks[0]
	b := tr.ItemByID("b")
	if b.Start != 1 || b.End != 4 {
		t.Fatalf("b after magnetic close = %+v, want [1,4]", b)
	}
}

func TestResizeItemMagneticClampsToSourceMediaLimit(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Magnetic = true
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeVideo, Media: media.NewRef(0, 3, 1)},
	}
	m := newTestModel(t0)
	m2 := m.ResizeItem("a", 0, 10)
	a := m2.Tracks[0].ItemByID("a")
	if got := a.End - a.Start; got > 3+m.Config.DurationTolerance+1e-9 {
		t.Fatalf("duration = %v, want clamped to source limit of 3 (+tolerance)", got)
	}
}

func TestResizeItemMagneticEnforcesMinimumDuration(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Magnetic = true
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
	}
	m := newTestModel(t0)
	m2 := m.ResizeItem("a", 1.95, 2)
	a := m2.Tracks[0].ItemByID("a")
	if got := a.End - a.Start; got < m.Config.MinItemDuration {
		t.Fatalf("duration = %v, want >= MinItemDuration %v", got, m.Config.MinItemDuration)
	}
}
