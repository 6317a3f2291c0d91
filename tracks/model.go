// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package tracks is the authoritative list of tracks and items: it owns
// every mutating operation (move, resize, delete, insert-track,
// reorder-track, toggle-magnetic, add-new-item, atomic
// create-tracks-with-items). Every operation takes a whole-tracks
// snapshot and returns a new one; unchanged tracks keep their existing
// pointer (structural sharing) so callers can diff cheaply, a
// copy-on-write discipline applied to a plain flat slice since this
// model has no nested compositions.
package tracks

import (
	"github.com/google/uuid"

	"github.com/mrjoshuak/timelinecore"
)

// IDGenerator returns a fresh unique id. NewModel defaults a nil
// IDGenerator to uuid.NewString (a zero-value Model has none), matching the id-generation need the wider example
// pack (vgalaktionov/runefact, go-coffee) meets with google/uuid.
type IDGenerator func() string

// DefaultIDGenerator returns a uuid.NewString-backed IDGenerator.
func DefaultIDGenerator() IDGenerator {
	return uuid.NewString
}

// Model is the authoritative list of tracks and items.
type Model struct {
	Tracks []*Track
	Config *timelinecore.Config
	NewID  IDGenerator
}

// NewModel returns a Model seeded with tracks (or a single fresh empty
// track if tracks is empty), normalizing a nil Config/NewID to their
// defaults.
func NewModel(list []*Track, cfg *timelinecore.Config, newID IDGenerator) *Model {
	if cfg == nil {
		cfg = timelinecore.DefaultConfig()
	}
	if newID == nil {
		newID = DefaultIDGenerator()
	}
	m := &Model{Config: cfg, NewID: newID}
	m.Tracks = EnsureAtLeastOne(CloneTracks(list), newID)
	return m
}

// withTracks returns a new Model sharing Config/NewID but with an
// independent, possibly-modified Tracks slice. Track pointers that
// weren't touched by the caller should be reused, not re-cloned, to
// preserve structural sharing; callers build `next` explicitly rather
// than deep-cloning every track.
func (m *Model) withTracks(next []*Track) *Model {
	return &Model{Tracks: EnsureAtLeastOne(next, m.NewID), Config: m.Config, NewID: m.NewID}
}

// WithTracks returns a Model over an externally supplied track list,
// sharing this Model's Config/NewID. Exported for callers that install
// a whole snapshot directly rather than through a single mutating
// operation: undo/redo replay and importing an externally edited
// overlay list.
func (m *Model) WithTracks(next []*Track) *Model {
	return m.withTracks(next)
}

// findItem locates an item by id, returning its track index, item
// index, and the item itself, or (-1, -1, nil) if not found.
func (m *Model) findItem(id string) (trackIdx, itemIdx int, it *Item) {
	for ti, tr := range m.Tracks {
		if ii := tr.IndexOfItem(id); ii >= 0 {
			return ti, ii, tr.Items[ii]
		}
	}
	return -1, -1, nil
}

// findTrack locates a track by id, returning its index or -1.
func (m *Model) findTrack(id string) int {
	for i, tr := range m.Tracks {
		if tr.ID == id {
			return i
		}
	}
	return -1
}

// replaceTrack returns a copy of m.Tracks with the track at index
// replaced by next.
func (m *Model) replaceTrack(index int, next *Track) []*Track {
	out := append([]*Track(nil), m.Tracks...)
	out[index] = next
	return out
}

// autoRemoveEmpty drops tracks with no items, always retaining at
// least one track (reusing the first original, emptied, if all were
// emptied by the operation).
func autoRemoveEmpty(list []*Track, newID IDGenerator) []*Track {
	var kept []*Track
	for _, tr := range list {
		if len(tr.Items) > 0 {
			kept = append(kept, tr)
		}
	}
	if len(kept) == 0 {
		if len(list) > 0 {
			reused := list[0].Clone()
			return []*Track{reused}
		}
		return []*Track{NewTrack(newID(), "")}
	}
	return kept
}
