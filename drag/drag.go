// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package drag implements the single-active-gesture state machine
// driving item move/resize: onStart captures a snapshot of the
// dragged item(s), onMove computes a snapped, clamped preview and
// publishes it to a store.Store, and onEnd commits the gesture to a
// tracks.Model as a move or resize. Dropping onto a new track is not
// handled: the track index is clamped to the existing tracks.
package drag

import (
	"math"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/gaputils"
	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/tracks"
)

// Action identifies which edge (if any) of the dragged item moves.
type Action string

const (
	ActionMove        Action = "move"
	ActionResizeStart Action = "resize-start"
	ActionResizeEnd   Action = "resize-end"
)

// itemSnapshot is one dragged item's state at gesture start.
type itemSnapshot struct {
	ItemID   string
	TrackIdx int
	Start    float64
	Duration float64
}

// ModelAccessor lets the controller read the live model and commit a
// new one, without owning the model itself (the model is typically
// owned by a facade or application loop alongside undo/redo history).
type ModelAccessor interface {
	Model() *tracks.Model
	SetModel(*tracks.Model)
}

// Controller drives a single active move/resize gesture at a time.
type Controller struct {
	cfg   *timelinecore.Config
	store *store.Store
	model ModelAccessor

	active   bool
	action   Action
	startX   float64
	startY   float64
	primary  itemSnapshot
	snapshots []itemSnapshot

	// track width/duration geometry, set on every onMove call since
	// the viewport can change (zoom) mid-drag.
	timelineWidth float64
	totalDuration float64
}

// New returns a Controller bound to cfg, store, and model.
func New(cfg *timelinecore.Config, st *store.Store, model ModelAccessor) *Controller {
	return &Controller{cfg: timelinecore.WithConfig(cfg), store: st, model: model}
}

// OnStart begins a gesture over itemID. selectedIDs is the current
// selection; if itemID is in it, the whole selection drags together,
// otherwise only itemID does.
func (c *Controller) OnStart(itemID string, clientX, clientY float64, action Action, selectedIDs []string) {
	m := c.model.Model()
	ti, _, it := findItem(m, itemID)
	if it == nil {
		return
	}

	dragging := []string{itemID}
	inSelection := false
	for _, id := range selectedIDs {
		if id == itemID {
			inSelection = true
			break
		}
	}
	if inSelection && len(selectedIDs) > 1 {
		dragging = selectedIDs
	}

	c.active = true
	c.action = action
	c.startX, c.startY = clientX, clientY
	c.snapshots = c.snapshots[:0]

	ghosts := make([]store.Ghost, 0, len(dragging))
	for _, id := range dragging {
		dti, _, dit := findItem(m, id)
		if dit == nil {
			continue
		}
		snap := itemSnapshot{ItemID: id, TrackIdx: dti, Start: dit.Start, Duration: dit.Duration()}
		c.snapshots = append(c.snapshots, snap)
		if id == itemID {
			c.primary = snap
		}
		ghosts = append(ghosts, store.Ghost{ItemID: id, TrackIdx: dti})
	}
	_ = ti

	c.store.SetIsDragging(true)
	c.store.SetDraggedItemID(itemID)
	c.store.SetDragInfo(&store.DragInfo{
		ItemID: itemID, Action: string(action), StartX: clientX, StartY: clientY,
		StartPosition: c.primary.Start, StartDuration: c.primary.Duration, StartRow: c.primary.TrackIdx,
		SelectionIDs: dragging,
	})
	c.store.SetGhostElement(ghosts)
}

// SetGeometry sets the viewport geometry onMove needs to convert pixel
// deltas into seconds. Call whenever the timeline width or total
// visible duration changes (e.g. on zoom) during a drag.
func (c *Controller) SetGeometry(timelineWidth, totalDuration float64) {
	c.timelineWidth = timelineWidth
	c.totalDuration = totalDuration
}

// OnMove recomputes the gesture's preview for the current pointer
// position and publishes it to the store. A no-op if no gesture is
// active.
func (c *Controller) OnMove(clientX, clientY float64) {
	if !c.active || c.timelineWidth <= 0 {
		return
	}
	m := c.model.Model()
	trackCount := len(m.Tracks)

	deltaX := clientX - c.startX
	deltaY := clientY - c.startY
	deltaTime := deltaX / c.timelineWidth * c.totalDuration
	deltaTrack := int(math.Round(deltaY / c.cfg.TrackHeight))

	deltaTrack = clampDeltaTrack(c.snapshots, deltaTrack, trackCount)
	deltaTime = clampDeltaTimeNonNegative(c.snapshots, deltaTime)

	excludeIDs := make(map[string]bool, len(c.snapshots))
	for _, s := range c.snapshots {
		excludeIDs[s.ItemID] = true
	}

	switch c.action {
	case ActionResizeStart, ActionResizeEnd:
		c.previewResize(m, deltaTime, excludeIDs)
	default:
		c.previewMove(m, deltaTime, deltaTrack, excludeIDs)
	}
}

func (c *Controller) previewMove(m *tracks.Model, deltaTime float64, deltaTrack int, excludeIDs map[string]bool) {
	ghosts := make([]store.Ghost, 0, len(c.snapshots))
	valid := true
	for _, s := range c.snapshots {
		newTrackIdx := s.TrackIdx + deltaTrack
		if newTrackIdx < 0 || newTrackIdx >= len(m.Tracks) {
			valid = false
			newTrackIdx = clampInt(newTrackIdx, 0, len(m.Tracks)-1)
		}
		target := m.Tracks[newTrackIdx]
		rawStart := s.Start + deltaTime
		newStart := snapToGridAndEdges(rawStart, m.Tracks, newTrackIdx, excludeIDs, c.cfg.GridSize, c.cfg.EdgeSnapTolerance, false)
		if newStart < 0 {
			newStart = 0
			valid = false
		}
		if !target.Magnetic && !gaputils.CanFitAtPosition(withoutExcluded(target.Items, excludeIDs), newStart, s.Duration) {
			valid = false
		}
		ghosts = append(ghosts, store.Ghost{ItemID: s.ItemID, TrackIdx: newTrackIdx})
		if s.ItemID == c.primary.ItemID {
			c.store.SetCurrentDragPosition(&store.PositionPreview{Start: newStart, End: newStart + s.Duration, TrackIndex: newTrackIdx})
		}
	}
	c.store.SetGhostElement(ghosts)
	c.store.SetIsValidDrop(valid)
}

func (c *Controller) previewResize(m *tracks.Model, deltaTime float64, excludeIDs map[string]bool) {
	s := c.primary
	track := m.Tracks[s.TrackIdx]
	_, _, it := findItem(m, s.ItemID)
	if it == nil {
		return
	}

	var newStart, newEnd float64
	if c.action == ActionResizeStart {
		raw := s.Start + deltaTime
		snapped := snapToGridAndEdges(raw, m.Tracks, s.TrackIdx, excludeIDs, c.cfg.GridSize, c.cfg.EdgeSnapTolerance, false)
		originalEnd := s.Start + s.Duration
		dur := math.Max(c.cfg.MinItemDuration, originalEnd-snapped)
		newStart = originalEnd - dur
		newEnd = originalEnd
		if it.Media != nil {
			delta := newStart - it.Start
			maxDur := it.Media.ShiftedStart(delta).MaxDuration(c.cfg.DurationTolerance)
			if newEnd-newStart > maxDur {
				newStart = newEnd - maxDur
			}
		}
	} else {
		raw := s.Start + s.Duration + deltaTime
		snapped := snapToGridAndEdges(raw, m.Tracks, s.TrackIdx, excludeIDs, c.cfg.GridSize, c.cfg.EdgeSnapTolerance, false)
		dur := math.Max(c.cfg.MinItemDuration, snapped-s.Start)
		newStart = s.Start
		newEnd = newStart + dur
		if it.Media != nil {
			maxDur := it.Media.MaxDuration(c.cfg.DurationTolerance)
			if newEnd-newStart > maxDur {
				newEnd = newStart + maxDur
			}
		}
	}

	var preview gaputils.PushResult
	if !track.Magnetic {
		preview = gaputils.PushItemsDuringResize(track.Items, s.ItemID, newStart, newEnd, c.cfg.DurationTolerance)
		newStart, newEnd = preview.ActualStart, preview.ActualEnd
	}

	c.store.SetCurrentDragPosition(&store.PositionPreview{Start: newStart, End: newEnd, TrackIndex: s.TrackIdx})
	c.store.SetIsValidDrop(true)
	c.store.SetGhostElement([]store.Ghost{{ItemID: s.ItemID, TrackIdx: s.TrackIdx}})
}

// OnEnd commits the active gesture to the model (or ends it as a
// no-op drop) and resets drag state. A no-op if no gesture is active.
func (c *Controller) OnEnd() {
	if !c.active {
		return
	}
	defer c.store.ResetDragState()
	defer func() { c.active = false }()

	if !c.store.IsValidDrop() {
		return
	}
	pos := c.store.CurrentDragPosition()
	if pos == nil {
		return
	}

	m := c.model.Model()

	switch c.action {
	case ActionResizeStart, ActionResizeEnd:
		c.model.SetModel(m.ResizeItem(c.primary.ItemID, pos.Start, pos.End))
	default:
		if pos.TrackIndex < 0 || pos.TrackIndex >= len(m.Tracks) {
			return
		}
		deltaTime := pos.Start - c.primary.Start
		deltaTrack := pos.TrackIndex - c.primary.TrackIdx
		next := m
		for _, s := range c.snapshots {
			ti := s.TrackIdx + deltaTrack
			if ti < 0 || ti >= len(m.Tracks) {
				continue
			}
			start := s.Start + deltaTime
			next = next.MoveItem(s.ItemID, start, start+s.Duration, m.Tracks[ti].ID)
		}
		c.model.SetModel(next)
	}
}

// Cancel ends the gesture without committing anything.
func (c *Controller) Cancel() {
	c.active = false
	c.store.ResetDragState()
}

func findItem(m *tracks.Model, id string) (trackIdx, itemIdx int, it *tracks.Item) {
	for ti, tr := range m.Tracks {
		if ii := tr.IndexOfItem(id); ii >= 0 {
			return ti, ii, tr.Items[ii]
		}
	}
	return -1, -1, nil
}

func clampDeltaTrack(snapshots []itemSnapshot, deltaTrack, trackCount int) int {
	for _, s := range snapshots {
		if s.TrackIdx+deltaTrack < 0 {
			deltaTrack = -s.TrackIdx
		}
		if s.TrackIdx+deltaTrack >= trackCount {
			deltaTrack = trackCount - 1 - s.TrackIdx
		}
	}
	return deltaTrack
}

func clampDeltaTimeNonNegative(snapshots []itemSnapshot, deltaTime float64) float64 {
	for _, s := range snapshots {
		if s.Start+deltaTime < 0 {
			deltaTime = -s.Start
		}
	}
	return deltaTime
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func withoutExcluded(items []*tracks.Item, exclude map[string]bool) []*tracks.Item {
	out := make([]*tracks.Item, 0, len(items))
	for _, it := range items {
		if !exclude[it.ID] {
			out = append(out, it)
		}
	}
	return out
}
