// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the terminal renderer's full key binding set, grouped into
// navigation, editing, and lifecycle bindings.
type keyMap struct {
	Left, Right          key.Binding // move playhead one frame
	PrevItem, NextItem   key.Binding // change selection within a track
	PrevTrack, NextTrack key.Binding // change selected track

	MoveEarlier, MoveLater key.Binding // nudge the selected item
	Split                  key.Binding
	Delete                 key.Binding
	Duplicate              key.Binding

	Undo, Redo key.Binding
	PlayPause  key.Binding
	Home, End  key.Binding

	ZoomIn, ZoomOut key.Binding
	Quit            key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		PrevItem:  key.NewBinding(key.WithKeys("up")),
		NextItem:  key.NewBinding(key.WithKeys("down")),
		PrevTrack: key.NewBinding(key.WithKeys("[")),
		NextTrack: key.NewBinding(key.WithKeys("]")),

		MoveEarlier: key.NewBinding(key.WithKeys("shift+left", "H")),
		MoveLater:   key.NewBinding(key.WithKeys("shift+right", "L")),
		Split:       key.NewBinding(key.WithKeys("s")),
		Delete:      key.NewBinding(key.WithKeys("d", "backspace")),
		Duplicate:   key.NewBinding(key.WithKeys("c")),

		Undo:      key.NewBinding(key.WithKeys("u")),
		Redo:      key.NewBinding(key.WithKeys("r")),
		PlayPause: key.NewBinding(key.WithKeys(" ")),
		Home:      key.NewBinding(key.WithKeys("home", "g")),
		End:       key.NewBinding(key.WithKeys("end", "G")),

		ZoomIn:  key.NewBinding(key.WithKeys("+", "=")),
		ZoomOut: key.NewBinding(key.WithKeys("-", "_")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}
