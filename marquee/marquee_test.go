package marquee

import (
	"testing"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/tracks"
)

func fixtureTracks() []*tracks.Track {
	t0 := tracks.NewTrack("t0", "")
	t0.Items = []*tracks.Item{{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: tracks.TypeText}}
	t1 := tracks.NewTrack("t1", "")
	t1.Items = []*tracks.Item{{ID: "b", TrackID: "t1", Start: 5, End: 8, Type: tracks.TypeText}}
	return []*tracks.Track{t0, t1}
}

func TestMarqueeSelectsOverlappingItems(t *testing.T) {
	cfg := timelinecore.DefaultConfig()
	st := store.New()
	c := New(cfg, st)

	// content width 1000px <-> 10s total duration; track height 48px.
	c.OnDown(0, 0, false)
	c.OnMove(300, 60, fixtureTracks(), 1000, 10)

	if !c.Selected["a"] {
		t.Fatal("expected item a (track 0, [0,2]s) to be selected")
	}
	if c.Selected["b"] {
		t.Fatal("expected item b to not be selected (different track and time range)")
	}
}

func TestMarqueeSuppressedDuringDrag(t *testing.T) {
	st := store.New()
	st.SetIsDragging(true)
	c := New(timelinecore.DefaultConfig(), st)
	c.OnDown(0, 0, false)
	if c.Active() {
		t.Fatal("expected marquee to be suppressed while a drag is active")
	}
}

func TestMarqueeShiftHeldAddsToSelection(t *testing.T) {
	cfg := timelinecore.DefaultConfig()
	st := store.New()
	c := New(cfg, st)
	c.Selected["preexisting"] = true

	c.OnDown(0, 0, true)
	c.OnMove(300, 60, fixtureTracks(), 1000, 10)

	if !c.Selected["preexisting"] || !c.Selected["a"] {
		t.Fatalf("expected shift-held marquee to add to selection, got %v", c.Selected)
	}
}
