// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrjoshuak/timelinecore/interaction"
	"github.com/mrjoshuak/timelinecore/timemath"
	"github.com/mrjoshuak/timelinecore/tracks"
)

var (
	selectedStyle = lipgloss.NewStyle().Reverse(true).Bold(true)
	playheadStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("201"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	trackHandleW  = 12
)

// View renders the current facade state as a ruler, one row per track,
// a status bar, and a one-line help footer.
func (m *Model) View() string {
	state := m.f.State()
	width := m.width
	if width <= trackHandleW+10 {
		width = trackHandleW + 40
	}
	laneWidth := width - trackHandleW

	scale := m.f.Zoom.CurrentScale()
	if scale <= 0 {
		scale = 1
	}
	viewportDuration := float64(laneWidth) / scale

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", trackHandleW))
	b.WriteString(renderRuler(laneWidth, viewportDuration, scale))
	b.WriteString("\n")

	for ti, tr := range state.Tracks {
		b.WriteString(renderTrackHandle(tr, ti == m.selectedTrack))
		b.WriteString(renderTrackLane(tr, laneWidth, scale, state.SelectedItemIDs))
		b.WriteString("\n")
	}

	playheadFraction := interaction.PlayheadFraction(state.CurrentFrame, state.FPS, viewportDuration)
	b.WriteString(strings.Repeat(" ", trackHandleW))
	b.WriteString(renderPlayheadRow(laneWidth, playheadFraction))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar(state.CurrentFrame, state.FPS))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("←→ seek  space play  up/down select  [ ] track  H/L move  s split  d delete  c dup  u/r undo/redo  +/- zoom  q quit"))
	return b.String()
}

func renderRuler(width int, viewportDuration, scale float64) string {
	ticks := interaction.Ticks(viewportDuration, float64(width), 80)
	row := []rune(strings.Repeat(" ", width))
	for _, t := range ticks {
		col := int(t.TimeSec * scale)
		if col < 0 || col >= width {
			continue
		}
		if t.Major {
			row[col] = '|'
		} else if row[col] == ' ' {
			row[col] = '.'
		}
	}
	return string(row)
}

func renderTrackHandle(tr *tracks.Track, selected bool) string {
	name := tr.Name
	if name == "" {
		name = tr.ID
	}
	if len(name) > trackHandleW-1 {
		name = name[:trackHandleW-1]
	}
	label := fmt.Sprintf("%-*s", trackHandleW, name)
	if selected {
		return selectedStyle.Render(label)
	}
	if tr.Muted {
		return mutedStyle.Render(label)
	}
	return label
}

func renderTrackLane(tr *tracks.Track, width int, scale float64, selectedIDs []string) string {
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = '.'
	}
	selected := make(map[string]bool, len(selectedIDs))
	for _, id := range selectedIDs {
		selected[id] = true
	}
	for _, it := range tr.Items {
		from := int(it.Start * scale)
		to := int(it.End * scale)
		if to > width {
			to = width
		}
		glyph := glyphFor(it.Type)
		for c := from; c < to; c++ {
			if c < 0 || c >= width {
				continue
			}
			cells[c] = glyph
		}
	}
	s := string(cells)
	if len(selected) == 0 {
		return s
	}
	for _, it := range tr.Items {
		if !selected[it.ID] {
			continue
		}
		from := clamp(int(it.Start*scale), 0, width)
		to := clamp(int(it.End*scale), 0, width)
		if from >= to {
			continue
		}
		return s[:from] + selectedStyle.Render(s[from:to]) + s[to:]
	}
	return s
}

func glyphFor(t tracks.Type) rune {
	switch t {
	case tracks.TypeVideo:
		return '#'
	case tracks.TypeAudio:
		return '~'
	case tracks.TypeText:
		return 'T'
	case tracks.TypeImage:
		return '%'
	case tracks.TypeCaption:
		return 'c'
	default:
		return '='
	}
}

func renderPlayheadRow(width int, fraction float64) string {
	col := clamp(int(fraction*float64(width)), 0, width-1)
	cells := make([]rune, width)
	for i := range cells {
		cells[i] = ' '
	}
	if width > 0 {
		cells[col] = '^'
	}
	return playheadStyle.Render(string(cells))
}

func (m *Model) renderStatusBar(frame int, fps float64) string {
	tc := timemath.FormatTimecode(float64(frame)/fps, fps)
	msg := m.statusMsg
	if msg != "" && time.Since(m.statusTime) > 5*time.Second {
		msg = ""
	}
	play := "paused"
	if m.playing {
		play = "playing"
	}
	return fmt.Sprintf("%s  %s  %s", tc, play, msg)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
