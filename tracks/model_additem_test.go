package tracks

import "testing"

func TestAddNewItemFallsIntoGap(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 10, End: 11, Type: TypeText},
	}
	m := newTestModel(t0)
	m2, created := m.AddNewItem(NewItemRequest{Type: TypeText, Label: "new", Duration: 1})
	if created == nil {
		t.Fatal("expected an item to be created")
	}
	if created.Start != 2 || created.End != 3 {
		t.Fatalf("placement = [%g,%g], want [2,3]", created.Start, created.End)
	}
	if m2.Tracks[0].ItemByID(created.ID) == nil {
		t.Fatal("created item not present in resulting model")
	}
}

func TestAddNewItemMagneticReflow(t *testing.T) {
	t0 := NewTrack("t0", "")
	t0.Magnetic = true
	t0.Items = []*Item{
		{ID: "a", TrackID: "t0", Start: 0, End: 2, Type: TypeText},
		{ID: "b", TrackID: "t0", Start: 2, End: 5, Type: TypeText},
	}
	m := newTestModel(t0)
	prefTrack := "t0"
	prefStart := 0.5
	m2, created := m.AddNewItem(NewItemRequest{Type: TypeText, Duration: 1, PrefTrackID: &prefTrack, PrefStart: &prefStart})
	if created == nil {
		t.Fatal("expected an item to be created")
	}
	tr := m2.Tracks[0]
	if len(tr.Items) != 3 {
		t.Fatalf("expected 3 items after insert, got %d", len(tr.Items))
	}
	if !tr.IsContiguousFromZero(1e-9) {
		t.Fatalf("expected contiguous magnetic layout, got %+v", tr.Items)
	}
}
