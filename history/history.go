// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package history implements a time-window-batched past/present/future
// snapshot stack over a tracks.Model: rapid-fire edits (a drag that
// fires many intermediate resizes, for example) collapse into a single
// undo step instead of one per intermediate value. Every change, an
// isolated one included, opens a batch; the batch lands on the undo
// stack when Tick finds its window lapsed, when the next change arrives
// after more than batchGapThreshold, or when Undo is called.
package history

import (
	"log/slog"
	"time"

	"github.com/mrjoshuak/timelinecore/tracks"
)

const (
	// batchGapThreshold is the maximum time between two changes for
	// them to be treated as part of the same rapid-fire batch.
	batchGapThreshold = 50 * time.Millisecond
	// batchWindow is how long a batch stays open (and how long its
	// batchStart snapshot can still absorb further changes) before it
	// is committed to the past stack.
	batchWindow = 250 * time.Millisecond
)

// Snapshot is a structural copy of a tracks.Model's Tracks.
type Snapshot []*tracks.Track

// Engine is an undo/redo stack over tracks.Model snapshots.
//
// Engine is not safe for concurrent use; callers that drive it from
// multiple goroutines must serialize access themselves.
type Engine struct {
	past    []Snapshot
	present Snapshot
	future  []Snapshot

	hasBaseline bool

	batchOpen     bool
	batchStart    Snapshot
	batchDeadline time.Time
	lastChange    time.Time

	suppressRecording bool

	now func() time.Time

	onChange func(Snapshot)
}

// New returns an Engine with present seeded from initial. A nil/empty
// initial leaves the baseline unestablished until the first real commit.
func New(initial Snapshot) *Engine {
	e := &Engine{present: cloneSnapshot(initial), now: time.Now}
	e.hasBaseline = len(initial) > 0
	return e
}

// OnChange registers a callback invoked after Undo, Redo, or a Commit
// that records or replaces the present snapshot. Only one callback is
// held; a later call replaces an earlier one.
func (e *Engine) OnChange(fn func(Snapshot)) {
	e.onChange = fn
}

// Present returns the current snapshot.
func (e *Engine) Present() Snapshot {
	return e.present
}

// CanUndo reports whether Undo would have any effect.
func (e *Engine) CanUndo() bool {
	return len(e.past) > 0 || e.batchOpen
}

// CanRedo reports whether Redo would have any effect.
func (e *Engine) CanRedo() bool {
	return len(e.future) > 0
}

// Commit records next as the new present, per the batching rules: a
// follow-up change arriving within batchGapThreshold of the previous
// one joins the open batch (or opens one) rather than committing right
// away. A change after a longer gap closes any open batch and opens a
// new one; it is not pushed to past on its own. A batch's pre-change
// snapshot is pushed to past when Tick runs after its window lapses,
// when a later change closes it, or on Undo (CanUndo already reports an
// open batch). A change identical
// to the current present (by structural equality) is not recorded at
// all. While a snapshot from Undo/Redo is being applied, Commit only
// updates present and notifies — it records nothing.
func (e *Engine) Commit(next Snapshot) {
	if e.suppressRecording {
		e.present = cloneSnapshot(next)
		e.notify()
		return
	}
	if tracks.SameTracks(e.present, next) {
		return
	}

	now := e.now()
	if !e.hasBaseline {
		e.hasBaseline = true
		e.present = cloneSnapshot(next)
		e.notify()
		e.lastChange = now
		return
	}

	if e.batchOpen && now.Sub(e.lastChange) < batchGapThreshold {
		// Still inside a rapid-fire run: fold into the open batch,
		// extend its deadline, but don't push anything to past yet.
		e.batchDeadline = now.Add(batchWindow)
		e.present = cloneSnapshot(next)
		e.lastChange = now
		e.notify()
		return
	}

	if e.batchOpen {
		// The gap since the last change exceeded the threshold: the
		// previous batch is done, commit it before starting fresh.
		e.commitBatch()
	}

	e.batchOpen = true
	e.batchStart = e.present
	e.batchDeadline = now.Add(batchWindow)
	e.lastChange = now
	e.present = cloneSnapshot(next)
	e.future = nil
	e.notify()
}

// Tick closes the open batch if its window has elapsed with no further
// changes. Callers on a timer-driven event loop should call this
// periodically (or at least batchWindow after the last Commit) so a
// batch that goes quiet still lands on the undo stack.
func (e *Engine) Tick() {
	if !e.batchOpen {
		return
	}
	if e.now().Before(e.batchDeadline) {
		return
	}
	e.commitBatch()
}

func (e *Engine) commitBatch() {
	if !tracks.SameTracks(e.batchStart, e.present) {
		e.past = append(e.past, e.batchStart)
	}
	e.batchOpen = false
	e.batchStart = nil
}

// Undo commits any pending batch, then moves the most recent past
// snapshot into present, pushing the prior present onto future. A
// no-op when there is nothing to undo.
func (e *Engine) Undo() {
	if e.batchOpen {
		e.commitBatch()
	}
	if len(e.past) == 0 {
		return
	}
	last := e.past[len(e.past)-1]
	e.past = e.past[:len(e.past)-1]
	e.future = append([]Snapshot{e.present}, e.future...)
	e.setPresentFromHistory(last)
}

// Redo moves the oldest future snapshot into present, pushing the
// prior present onto past. A no-op when there is nothing to redo.
func (e *Engine) Redo() {
	if len(e.future) == 0 {
		return
	}
	next := e.future[0]
	e.future = e.future[1:]
	e.past = append(e.past, e.present)
	e.setPresentFromHistory(next)
}

func (e *Engine) setPresentFromHistory(snap Snapshot) {
	e.suppressRecording = true
	e.present = snap
	e.notify()
	e.suppressRecording = false
}

// ClearHistory drops past and future, keeps present, and resets the
// baseline so the next Commit is treated as the initial one.
func (e *Engine) ClearHistory() {
	e.past = nil
	e.future = nil
	e.batchOpen = false
	e.batchStart = nil
	e.hasBaseline = false
}

func (e *Engine) notify() {
	if e.onChange == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("history: onChange callback panicked", "recovered", r)
		}
	}()
	e.onChange(e.present)
}

func cloneSnapshot(s Snapshot) Snapshot {
	if s == nil {
		return nil
	}
	return tracks.CloneTracks(s)
}
