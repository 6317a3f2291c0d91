package store

import "testing"

func TestSettersAreObservable(t *testing.T) {
	s := New()
	calls := 0
	unsub := s.Observe(func() { calls++ })
	defer unsub()

	s.SetIsDragging(true)
	if !s.IsDragging() {
		t.Fatal("expected IsDragging true")
	}
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestResetDragStateClearsEverything(t *testing.T) {
	s := New()
	s.SetIsDragging(true)
	s.SetDraggedItemID("a")
	s.SetGhostElement([]Ghost{{ItemID: "a"}})
	s.SetFloatingGhost(&Ghost{ItemID: "a"})
	s.SetIsValidDrop(true)
	s.SetDragInfo(&DragInfo{ItemID: "a"})
	idx := 2
	s.SetInsertionIndex(&idx)
	s.SetLivePreviewUpdate("a", LiveUpdate{})

	s.ResetDragState()

	if s.IsDragging() || s.DraggedItemID() != "" || s.GhostElement() != nil ||
		s.FloatingGhost() != nil || s.IsValidDrop() || s.DragInfo() != nil ||
		s.InsertionIndex() != nil {
		t.Fatal("expected all drag-specific fields cleared")
	}
	if _, ok := s.LivePreviewUpdate("a"); ok {
		t.Fatal("expected live preview updates cleared")
	}
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := New()
	calls := 0
	unsub := s.Observe(func() { calls++ })
	unsub()
	s.SetIsDragging(true)
	if calls != 0 {
		t.Fatalf("calls = %d, want 0 after unsubscribe", calls)
	}
}
