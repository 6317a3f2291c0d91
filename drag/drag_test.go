package drag

import (
	"testing"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/media"
	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/tracks"
)

type fakeAccessor struct{ m *tracks.Model }

func (f *fakeAccessor) Model() *tracks.Model    { return f.m }
func (f *fakeAccessor) SetModel(m *tracks.Model) { f.m = m }

func newFixture() (*Controller, *fakeAccessor, *store.Store) {
	t0 := tracks.NewTrack("t0", "")
	t0.Items = []*tracks.Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: tracks.TypeText},
		{ID: "b", TrackID: "t0", Start: 5, End: 6, Type: tracks.TypeText},
	}
	m := tracks.NewModel([]*tracks.Track{t0}, timelinecore.DefaultConfig(), func() string { return "new" })
	acc := &fakeAccessor{m: m}
	st := store.New()
	c := New(timelinecore.DefaultConfig(), st, acc)
	c.SetGeometry(1000, 10) // 1000px <-> 10s, so 100px/s
	return c, acc, st
}

func TestOnStartPublishesGhost(t *testing.T) {
	c, _, st := newFixture()
	c.OnStart("a", 0, 0, ActionMove, nil)
	ghosts := st.GhostElement()
	if len(ghosts) != 1 || ghosts[0].ItemID != "a" {
		t.Fatalf("ghosts = %+v", ghosts)
	}
}

func TestMoveDragCommitsNewPosition(t *testing.T) {
	c, acc, st := newFixture()
	c.OnStart("a", 0, 0, ActionMove, nil)
	// Move 300px right = 3s right, same row.
	c.OnMove(300, 0)
	if !st.IsValidDrop() {
		t.Fatal("expected a valid drop for an open move")
	}
	c.OnEnd()

	tr := acc.Model().Tracks[0]
	it := tr.ItemByID("a")
	if it.Start < 2.9 || it.Start > 3.1 {
		t.Fatalf("a.Start = %g, want ~3", it.Start)
	}
}

func TestResizeEndClampsToSourceDuration(t *testing.T) {
	c, acc, _ := newFixture()
	m := acc.Model()
	tr := m.Tracks[0]
	tr.ItemByID("a").Media = media.NewRef(0, 2.1, 1)

	c.OnStart("a", 0, 0, ActionResizeEnd, nil)
	c.OnMove(500, 0) // attempt to extend end by 5s
	c.OnEnd()

	it := acc.Model().Tracks[0].ItemByID("a")
	if it.End > 2.2 {
		t.Fatalf("End = %g, expected clamp near source limit 2.1", it.End)
	}
}

func TestCancelResetsDragState(t *testing.T) {
	c, _, st := newFixture()
	c.OnStart("a", 0, 0, ActionMove, nil)
	c.Cancel()
	if st.IsDragging() {
		t.Fatal("expected IsDragging false after cancel")
	}
}
