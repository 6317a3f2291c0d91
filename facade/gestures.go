// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package facade

import (
	"github.com/mrjoshuak/timelinecore/drag"
	"github.com/mrjoshuak/timelinecore/tracks"
)

// gestureState remembers what BeginDrag started so EndDrag can route
// to OnItemMove vs OnItemResize once the gesture commits; drag.Controller
// itself is action-agnostic about which callback that maps to.
type gestureState struct {
	itemID string
	action drag.Action
}

// BeginDrag starts a move/resize gesture over itemID, delegating to
// Drag.OnStart.
func (f *Facade) BeginDrag(itemID string, clientX, clientY float64, action drag.Action) {
	f.activeGesture = &gestureState{itemID: itemID, action: action}
	f.Drag.OnStart(itemID, clientX, clientY, action, f.selected)
}

// UpdateDrag delegates to Drag.OnMove.
func (f *Facade) UpdateDrag(clientX, clientY float64) {
	f.Drag.OnMove(clientX, clientY)
}

// EndDrag commits the active gesture (via Drag.OnEnd, which calls back
// into applyModel) and invokes OnItemMove or OnItemResize for the
// primary dragged item's resulting position.
func (f *Facade) EndDrag() {
	g := f.activeGesture
	f.activeGesture = nil
	f.Drag.OnEnd()
	if g == nil {
		return
	}
	ti, _, it := f.findItem(g.itemID)
	if it == nil {
		return
	}
	switch g.action {
	case drag.ActionResizeStart, drag.ActionResizeEnd:
		if f.cb.OnItemResize != nil {
			f.cb.OnItemResize(it.ID, it.Start, it.End)
		}
	default:
		if f.cb.OnItemMove != nil {
			f.cb.OnItemMove(it.ID, it.Start, it.End, f.model.Tracks[ti].ID)
		}
	}
}

// CancelDrag aborts the active gesture without committing.
func (f *Facade) CancelDrag() {
	f.activeGesture = nil
	f.Drag.Cancel()
}

func (f *Facade) findItem(id string) (trackIdx, itemIdx int, it *tracks.Item) {
	for ti, tr := range f.model.Tracks {
		if ii := tr.IndexOfItem(id); ii >= 0 {
			return ti, ii, tr.Items[ii]
		}
	}
	return -1, -1, nil
}
