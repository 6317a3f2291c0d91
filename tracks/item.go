// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

import (
	"sort"

	"github.com/mrjoshuak/timelinecore/media"
)

// Type tags an Item's renderer kind: a flat tagged variant keyed by
// type, plus a per-type renderer registry, instead of schema-based
// polymorphism (Clip/Gap/Transition subclasses).
type Type string

const (
	TypeText    Type = "text"
	TypeImage   Type = "image"
	TypeVideo   Type = "video"
	TypeAudio   Type = "audio"
	TypeCaption Type = "caption"
	TypeSticker Type = "sticker"
	TypeShape   Type = "shape"
	TypeBlur    Type = "blur"
)

// HasSourceMedia reports whether items of this type carry a media.Ref and
// are therefore subject to the source-duration invariant.
func (t Type) HasSourceMedia() bool {
	return t == TypeVideo || t == TypeAudio
}

// Data is an item's free-form passthrough bag. The facade round-trips
// unknown overlay fields through it so consumers can carry extra
// renderer-specific state without the core needing to know its shape.
type Data map[string]any

// Clone returns a shallow copy of d, or nil if d is nil.
func (d Data) Clone() Data {
	if d == nil {
		return nil
	}
	out := make(Data, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Item is a time interval [Start, End) on a Track carrying media or
// text.
type Item struct {
	ID      string
	TrackID string
	Start   float64
	End     float64

	Label string
	Type  Type
	Color *Color
	Data  Data

	// Media is non-nil only for video/audio items with a known source
	// duration; it holds the source start offset, source duration, and
	// playback speed.
	Media *media.Ref
}

// Duration returns End - Start.
func (it *Item) Duration() float64 {
	return it.End - it.Start
}

// Clone returns a deep copy of it.
func (it *Item) Clone() *Item {
	cp := *it
	cp.Color = CloneColor(it.Color)
	cp.Data = it.Data.Clone()
	cp.Media = it.Media.Clone()
	return &cp
}

// WithStartEnd returns a clone of it repositioned to [start, end), with
// Media.Start shifted by the change in the left edge so the same source
// frames keep lining up with the same timeline position.
func (it *Item) WithStartEnd(start, end float64) *Item {
	cp := it.Clone()
	delta := start - it.Start
	if cp.Media != nil && delta != 0 {
		cp.Media = cp.Media.ShiftedStart(delta)
	}
	cp.Start = start
	cp.End = end
	return cp
}

// SortItemsByStart sorts items in place by Start ascending; items
// within a track are kept sorted by start.
func SortItemsByStart(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Start < items[j].Start
	})
}

// CloneItems returns a deep copy of a slice of items.
func CloneItems(items []*Item) []*Item {
	out := make([]*Item, len(items))
	for i, it := range items {
		out[i] = it.Clone()
	}
	return out
}
