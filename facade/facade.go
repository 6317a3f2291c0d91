// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package facade is the single entry point an embedding application
// drives: it owns the tracks.Model, history.Engine, store.Store, and
// the drag/zoom/marquee controllers, translates between the external
// Overlay representation and internal tracks, and exposes one
// callback surface so a view only has to watch State and call methods.
package facade

import (
	"log/slog"

	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/drag"
	"github.com/mrjoshuak/timelinecore/history"
	"github.com/mrjoshuak/timelinecore/marquee"
	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/thumbnail"
	"github.com/mrjoshuak/timelinecore/tracks"
	"github.com/mrjoshuak/timelinecore/waveform"
	"github.com/mrjoshuak/timelinecore/zoom"
)

// Callbacks is the facade's outward notification surface. Any field
// left nil is simply not invoked.
type Callbacks struct {
	OnItemMove            func(itemID string, start, end float64, trackID string)
	OnItemResize          func(itemID string, start, end float64)
	OnItemSelect          func(itemID string)
	OnSelectedItemsChange func(itemIDs []string)
	OnDeleteItems         func(itemIDs []string)
	OnDuplicateItems      func(itemIDs []string)
	OnSplitItems          func(itemID string, at float64)
	OnTracksChange        func(overlays []Overlay)
	OnAddNewItem          func(item *tracks.Item)
	OnNewItemDrop         func(item *tracks.Item)
	OnFrameChange         func(frame int)
	OnPlay                func()
	OnPause               func()
	OnSeekToStart         func()
	OnSeekToEnd           func()
}

// State is the read-only external view a consumer renders from.
type State struct {
	Tracks          []*tracks.Track
	TotalDuration   float64 // seconds
	CurrentFrame    int
	FPS             float64
	SelectedItemIDs []string
}

// modelAdapter satisfies drag.ModelAccessor over a Facade's own model
// field, so the facade is the single owner of record while drag only
// sees the narrow accessor it needs.
type modelAdapter struct{ f *Facade }

func (a *modelAdapter) Model() *tracks.Model     { return a.f.model }
func (a *modelAdapter) SetModel(m *tracks.Model) { a.f.applyModel(m) }

// Facade wires the tracks model, undo/redo history, interaction store,
// and drag/zoom/marquee controllers into one stateful object.
type Facade struct {
	cfg *timelinecore.Config
	cb  Callbacks

	model   *tracks.Model
	history *history.Engine
	store   *store.Store

	Drag    *drag.Controller
	Zoom    *zoom.Controller
	Marquee *marquee.Controller

	thumbnails *thumbnail.Cache
	waveforms  *waveform.Processor

	currentFrame  int
	selected      []string
	priorOverlay  map[string]Overlay
	activeGesture *gestureState

	// isUpdatingFromTimeline guards transformTracksToOverlays from
	// re-entering transformOverlaysToTracks when OnTracksChange's
	// receiver applies the emitted overlays straight back in: while
	// true, SetOverlays is a no-op rather than re-importing a
	// snapshot the facade itself just produced.
	isUpdatingFromTimeline bool
}

// New returns a Facade over an initial track list (or a single fresh
// empty track if nil/empty).
func New(cfg *timelinecore.Config, initial []*tracks.Track, cb Callbacks) *Facade {
	cfg = timelinecore.WithConfig(cfg)
	m := tracks.NewModel(initial, cfg, nil)

	f := &Facade{
		cfg:          cfg,
		cb:           cb,
		model:        m,
		history:      history.New(history.Snapshot(m.Tracks)),
		store:        store.New(),
		priorOverlay: map[string]Overlay{},
	}
	f.Drag = drag.New(cfg, f.store, &modelAdapter{f: f})
	f.Zoom = zoom.New(cfg.Zoom)
	f.Marquee = marquee.New(cfg, f.store)
	f.history.OnChange(func(snap history.Snapshot) {
		f.model = f.model.WithTracks(tracks.CloneTracks(snap))
		f.emitTracksChange()
	})
	return f
}

// State returns the current external-facing state.
func (f *Facade) State() State {
	return State{
		Tracks:          f.model.Tracks,
		TotalDuration:   f.totalDuration(),
		CurrentFrame:    f.currentFrame,
		FPS:             f.cfg.FPS,
		SelectedItemIDs: append([]string(nil), f.selected...),
	}
}

func (f *Facade) totalDuration() float64 {
	var max float64
	for _, tr := range f.model.Tracks {
		if end := tr.End(); end > max {
			max = end
		}
	}
	return max
}

// applyModel commits a new model snapshot to history (which collapses
// into the current batch if it follows quickly). The model field
// itself is updated from history's OnChange callback, the single
// place present is installed, so every path (a fresh commit, undo, or
// redo) notifies OnTracksChange exactly once.
func (f *Facade) applyModel(m *tracks.Model) {
	f.history.Commit(history.Snapshot(m.Tracks))
}

func (f *Facade) emitTracksChange() {
	if f.isUpdatingFromTimeline {
		return
	}
	if f.cb.OnTracksChange == nil {
		return
	}
	overlays := transformTracksToOverlays(f.model.Tracks, f.priorOverlay, f.cfg.FPS)
	next := make(map[string]Overlay, len(overlays))
	for _, ov := range overlays {
		next[ov.ID] = ov
	}
	f.priorOverlay = next
	f.isUpdatingFromTimeline = true
	defer func() { f.isUpdatingFromTimeline = false }()
	f.cb.OnTracksChange(overlays)
}

// SetOverlays imports an externally edited overlay list, replacing the
// track contents it maps onto. A no-op while the facade is itself the
// source of the most recent tracks-changed notification, so a
// receiver that echoes OnTracksChange straight back into SetOverlays
// does not create a feedback loop.
func (f *Facade) SetOverlays(overlays []Overlay, trackIDs []string) {
	if f.isUpdatingFromTimeline {
		return
	}
	f.isUpdatingFromTimeline = true
	defer func() { f.isUpdatingFromTimeline = false }()

	items := transformOverlaysToTracks(overlays, trackIDs, f.cfg.FPS)
	byTrack := map[string][]*tracks.Item{}
	for _, it := range items {
		byTrack[it.TrackID] = append(byTrack[it.TrackID], it)
	}

	next := make([]*tracks.Track, 0, len(f.model.Tracks))
	for _, tr := range f.model.Tracks {
		cp := tr.Clone()
		cp.Items = byTrack[tr.ID]
		next = append(next, cp)
	}
	f.history.Commit(history.Snapshot(next))
}

// SelectItem replaces the selection with a single item and invokes
// OnItemSelect/OnSelectedItemsChange.
func (f *Facade) SelectItem(itemID string) {
	f.selected = []string{itemID}
	if f.cb.OnItemSelect != nil {
		f.cb.OnItemSelect(itemID)
	}
	if f.cb.OnSelectedItemsChange != nil {
		f.cb.OnSelectedItemsChange(f.selected)
	}
}

// ToggleSelect adds or removes itemID from the selection (shift/ctrl
// click semantics).
func (f *Facade) ToggleSelect(itemID string) {
	for i, id := range f.selected {
		if id == itemID {
			f.selected = append(f.selected[:i], f.selected[i+1:]...)
			if f.cb.OnSelectedItemsChange != nil {
				f.cb.OnSelectedItemsChange(f.selected)
			}
			return
		}
	}
	f.selected = append(f.selected, itemID)
	if f.cb.OnSelectedItemsChange != nil {
		f.cb.OnSelectedItemsChange(f.selected)
	}
}

// DeleteSelected deletes every selected item and clears the selection.
func (f *Facade) DeleteSelected() {
	if len(f.selected) == 0 {
		return
	}
	ids := f.selected
	f.applyModel(f.model.DeleteItems(ids))
	f.selected = nil
	if f.cb.OnDeleteItems != nil {
		f.cb.OnDeleteItems(ids)
	}
}

// SplitItemAt splits itemID at the given absolute timeline time,
// rejecting (and logging) a split that would leave either resulting
// segment below the configured minimum.
func (f *Facade) SplitItemAt(itemID string, at float64) {
	before := f.model
	after := f.model.SplitItem(itemID, at, f.cfg.MinSplitSegment)
	if after == before {
		slog.Warn("facade: split rejected, segment below minimum", "item", itemID, "at", at)
		return
	}
	f.applyModel(after)
	if f.cb.OnSplitItems != nil {
		f.cb.OnSplitItems(itemID, at)
	}
}

// Undo flushes any pending history batch and steps back one undo
// entry.
func (f *Facade) Undo() { f.history.Undo() }

// Redo steps forward one redo entry.
func (f *Facade) Redo() { f.history.Redo() }

// SetFrame updates the current playhead frame and invokes
// OnFrameChange.
func (f *Facade) SetFrame(frame int) {
	f.currentFrame = frame
	if f.cb.OnFrameChange != nil {
		f.cb.OnFrameChange(frame)
	}
}

// Play invokes OnPlay.
func (f *Facade) Play() {
	if f.cb.OnPlay != nil {
		f.cb.OnPlay()
	}
}

// Pause invokes OnPause.
func (f *Facade) Pause() {
	if f.cb.OnPause != nil {
		f.cb.OnPause()
	}
}

// SeekToStart sets the current frame to 0 and invokes OnSeekToStart.
func (f *Facade) SeekToStart() {
	f.SetFrame(0)
	if f.cb.OnSeekToStart != nil {
		f.cb.OnSeekToStart()
	}
}

// SeekToEnd sets the current frame to the last frame of the
// composition and invokes OnSeekToEnd.
func (f *Facade) SeekToEnd() {
	lastFrame := int(f.totalDuration() * f.cfg.FPS)
	f.SetFrame(lastFrame)
	if f.cb.OnSeekToEnd != nil {
		f.cb.OnSeekToEnd()
	}
}
