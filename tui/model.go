// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package tui is a bubbletea terminal renderer over a facade.Facade:
// it owns no editing logic of its own, translating key presses into
// facade calls and facade state into a rendered frame.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/facade"
	"github.com/mrjoshuak/timelinecore/tracks"
)

// frameTickMsg advances the playhead by one frame while playing.
type frameTickMsg struct{ epoch int }

// Model is the bubbletea model driving a timeline facade.
type Model struct {
	f    *facade.Facade
	cfg  *timelinecore.Config
	keys keyMap

	width, height int

	playing    bool
	playEpoch  int
	statusMsg  string
	statusTime time.Time

	selectedTrack int
}

// New returns a Model over an initial track list, wiring facade
// callbacks that surface into the status line.
func New(cfg *timelinecore.Config, initial []*tracks.Track) *Model {
	cfg = timelinecore.WithConfig(cfg)
	m := &Model{cfg: cfg, keys: defaultKeyMap()}
	m.f = facade.New(cfg, initial, facade.Callbacks{
		OnDeleteItems:    func(ids []string) { m.setStatus("deleted") },
		OnDuplicateItems: func(ids []string) { m.setStatus("duplicated") },
		OnSplitItems:     func(itemID string, at float64) { m.setStatus("split") },
		OnAddNewItem:     func(it *tracks.Item) { m.setStatus("added " + string(it.Type)) },
	})
	return m
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = time.Now()
}

// Init starts the bubbletea program with no initial command.
func (m *Model) Init() tea.Cmd { return nil }

func scheduleFrameTick(epoch int, fps float64) tea.Cmd {
	interval := time.Second
	if fps > 0 {
		interval = time.Duration(float64(time.Second) / fps)
	}
	return tea.Tick(interval, func(time.Time) tea.Msg { return frameTickMsg{epoch: epoch} })
}

// currentTracks returns the facade's current tracks; clamping
// selectedTrack into range is left to clampSelectedTrack.
func (m *Model) currentTracks() []*tracks.Track {
	return m.f.State().Tracks
}

func (m *Model) clampSelectedTrack() {
	n := len(m.currentTracks())
	if n == 0 {
		m.selectedTrack = 0
		return
	}
	if m.selectedTrack < 0 {
		m.selectedTrack = 0
	}
	if m.selectedTrack >= n {
		m.selectedTrack = n - 1
	}
}

func (m *Model) selectedItemID() string {
	sel := m.f.State().SelectedItemIDs
	if len(sel) == 0 {
		return ""
	}
	return sel[0]
}

// selectedItem finds the currently selected item's track index, item
// index, and pointer, or (-1, -1, nil).
func (m *Model) selectedItem() (trackIdx, itemIdx int, it *tracks.Item) {
	id := m.selectedItemID()
	if id == "" {
		return -1, -1, nil
	}
	for ti, tr := range m.currentTracks() {
		if ii := tr.IndexOfItem(id); ii >= 0 {
			return ti, ii, tr.Items[ii]
		}
	}
	return -1, -1, nil
}
