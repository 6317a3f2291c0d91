// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrjoshuak/timelinecore/tracks"
)

// Update handles a bubbletea message, dispatching key presses to the
// underlying facade and advancing the playhead on each frameTickMsg
// while playing.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameTickMsg:
		if !m.playing || msg.epoch != m.playEpoch {
			return m, nil
		}
		return m, m.advanceFrame()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) advanceFrame() tea.Cmd {
	state := m.f.State()
	lastFrame := int(state.TotalDuration * state.FPS)
	next := state.CurrentFrame + 1
	if next > lastFrame {
		m.playing = false
		m.f.Pause()
		return nil
	}
	m.f.SetFrame(next)
	return scheduleFrameTick(m.playEpoch, state.FPS)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Left):
		m.f.SetFrame(max0(m.f.State().CurrentFrame - 1))
	case key.Matches(msg, m.keys.Right):
		m.f.SetFrame(m.f.State().CurrentFrame + 1)
	case key.Matches(msg, m.keys.Home):
		m.f.SeekToStart()
	case key.Matches(msg, m.keys.End):
		m.f.SeekToEnd()

	case key.Matches(msg, m.keys.PlayPause):
		m.togglePlay()

	case key.Matches(msg, m.keys.PrevTrack):
		m.selectedTrack--
		m.clampSelectedTrack()
		m.selectFirstOnTrack()
	case key.Matches(msg, m.keys.NextTrack):
		m.selectedTrack++
		m.clampSelectedTrack()
		m.selectFirstOnTrack()

	case key.Matches(msg, m.keys.PrevItem):
		m.selectAdjacentItem(-1)
	case key.Matches(msg, m.keys.NextItem):
		m.selectAdjacentItem(1)

	case key.Matches(msg, m.keys.MoveEarlier):
		if id := m.selectedItemID(); id != "" {
			m.f.NudgeItem(id, -1.0/m.cfg.FPS)
		}
	case key.Matches(msg, m.keys.MoveLater):
		if id := m.selectedItemID(); id != "" {
			m.f.NudgeItem(id, 1.0/m.cfg.FPS)
		}

	case key.Matches(msg, m.keys.Split):
		if id := m.selectedItemID(); id != "" {
			at := float64(m.f.State().CurrentFrame) / m.cfg.FPS
			m.f.SplitItemAt(id, at)
		}
	case key.Matches(msg, m.keys.Delete):
		m.f.DeleteSelected()
	case key.Matches(msg, m.keys.Duplicate):
		if id := m.selectedItemID(); id != "" {
			m.f.DuplicateItems([]string{id})
		}

	case key.Matches(msg, m.keys.Undo):
		m.f.Undo()
	case key.Matches(msg, m.keys.Redo):
		m.f.Redo()

	case key.Matches(msg, m.keys.ZoomIn):
		m.f.Zoom.SetScaleAt(m.f.Zoom.CurrentScale()*1.5, 0, 0)
	case key.Matches(msg, m.keys.ZoomOut):
		m.f.Zoom.SetScaleAt(m.f.Zoom.CurrentScale()/1.5, 0, 0)
	}
	return m, nil
}

func (m *Model) togglePlay() {
	m.playing = !m.playing
	if !m.playing {
		m.f.Pause()
		return
	}
	m.playEpoch++
	m.f.Play()
}

func (m *Model) selectFirstOnTrack() {
	tracksList := m.currentTracks()
	if len(tracksList) == 0 || m.selectedTrack >= len(tracksList) {
		return
	}
	items := tracksList[m.selectedTrack].Items
	if len(items) == 0 {
		return
	}
	m.f.SelectItem(firstByStart(items).ID)
}

func (m *Model) selectAdjacentItem(dir int) {
	ti, _, it := m.selectedItem()
	if it == nil {
		m.selectFirstOnTrack()
		return
	}
	ordered := sortedByStart(m.currentTracks()[ti].Items)
	pos := 0
	for i, cand := range ordered {
		if cand.ID == it.ID {
			pos = i
			break
		}
	}
	next := pos + dir
	if next < 0 || next >= len(ordered) {
		return
	}
	m.f.SelectItem(ordered[next].ID)
}

func firstByStart(items []*tracks.Item) *tracks.Item {
	best := items[0]
	for _, it := range items[1:] {
		if it.Start < best.Start {
			best = it
		}
	}
	return best
}

func sortedByStart(items []*tracks.Item) []*tracks.Item {
	out := append([]*tracks.Item(nil), items...)
	tracks.SortItemsByStart(out)
	return out
}

func max0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
