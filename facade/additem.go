// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package facade

import "github.com/mrjoshuak/timelinecore/tracks"

// AddNewItem places req onto whichever track/position tracks.AddNewItem
// picks (preferred slot, playhead, first fitting gap, or least-loaded
// track) and invokes OnAddNewItem with the created item.
func (f *Facade) AddNewItem(req tracks.NewItemRequest) *tracks.Item {
	next, created := f.model.AddNewItem(req)
	if created == nil {
		return nil
	}
	f.applyModel(next)
	if f.cb.OnAddNewItem != nil {
		f.cb.OnAddNewItem(created)
	}
	return created
}

// NewItemDrop is AddNewItem for an item dropped in from outside the
// timeline (a media bin, a file picker): same placement rules, but it
// invokes OnNewItemDrop instead of OnAddNewItem so a view can tell the
// two origins apart.
func (f *Facade) NewItemDrop(req tracks.NewItemRequest) *tracks.Item {
	next, created := f.model.AddNewItem(req)
	if created == nil {
		return nil
	}
	f.applyModel(next)
	if f.cb.OnNewItemDrop != nil {
		f.cb.OnNewItemDrop(created)
	}
	return created
}

// DuplicateItems clones each selected item onto the end of its own
// track and selects the duplicates.
func (f *Facade) DuplicateItems(ids []string) {
	next, created := f.model.DuplicateItems(ids)
	if len(created) == 0 {
		return
	}
	f.applyModel(next)
	dupIDs := make([]string, len(created))
	for i, it := range created {
		dupIDs[i] = it.ID
	}
	f.selected = dupIDs
	if f.cb.OnDuplicateItems != nil {
		f.cb.OnDuplicateItems(dupIDs)
	}
	if f.cb.OnSelectedItemsChange != nil {
		f.cb.OnSelectedItemsChange(f.selected)
	}
}
