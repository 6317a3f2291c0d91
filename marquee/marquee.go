// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package marquee implements rectangle-select over item bounding
// boxes: drag a rectangle across empty timeline background to select
// every item it overlaps.
package marquee

import (
	"github.com/mrjoshuak/timelinecore"
	"github.com/mrjoshuak/timelinecore/store"
	"github.com/mrjoshuak/timelinecore/tracks"
)

// Rect is an axis-aligned selection rectangle in content coordinates
// (pixels on both axes).
type Rect struct {
	X0, Y0, X1, Y1 float64
}

func (r Rect) normalized() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Controller tracks an in-progress marquee gesture and the selection
// it produces.
type Controller struct {
	cfg   *timelinecore.Config
	store *store.Store

	active    bool
	shiftHeld bool
	start     Rect
	Selected  map[string]bool
}

// New returns a Controller bound to cfg and store.
func New(cfg *timelinecore.Config, st *store.Store) *Controller {
	return &Controller{cfg: timelinecore.WithConfig(cfg), store: st, Selected: map[string]bool{}}
}

// suppressed reports whether marquee selection should not start: any
// drag or the context menu is active.
func (c *Controller) suppressed() bool {
	return c.store.IsDragging() || c.store.IsContextMenuOpen()
}

// OnDown begins a marquee at (x, y) in content coordinates. If shift
// is not held, the current selection is cleared immediately. A no-op
// while suppressed.
func (c *Controller) OnDown(x, y float64, shiftHeld bool) {
	if c.suppressed() {
		return
	}
	c.active = true
	c.shiftHeld = shiftHeld
	c.start = Rect{X0: x, Y0: y, X1: x, Y1: y}
	if !shiftHeld {
		c.Selected = map[string]bool{}
	}
}

// OnMove updates the marquee rectangle to (x, y) and recomputes the
// selection against trackList. A no-op if no gesture is active.
func (c *Controller) OnMove(x, y float64, trackList []*tracks.Track, contentWidth, totalDuration float64) {
	if !c.active {
		return
	}
	rect := Rect{X0: c.start.X0, Y0: c.start.Y0, X1: x, Y1: y}.normalized()

	hits := map[string]bool{}
	for ti, tr := range trackList {
		top := float64(ti) * c.cfg.TrackHeight
		bottom := top + c.cfg.TrackHeight
		if bottom < rect.Y0 || top > rect.Y1 {
			continue
		}
		for _, it := range tr.Items {
			left := it.Start / totalDuration * contentWidth
			right := it.End / totalDuration * contentWidth
			if right < rect.X0 || left > rect.X1 {
				continue
			}
			hits[it.ID] = true
		}
	}

	if c.shiftHeld {
		for id := range hits {
			c.Selected[id] = true
		}
	} else {
		merged := make(map[string]bool, len(hits))
		for id := range hits {
			merged[id] = true
		}
		c.Selected = merged
	}
}

// OnUp finishes the marquee gesture.
func (c *Controller) OnUp() {
	c.active = false
}

// Active reports whether a marquee gesture is in progress.
func (c *Controller) Active() bool {
	return c.active
}
