// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package tracks

// Color is an RGBA display color for an item, adapted from the
// teacher's gotio.Color.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// NewColor creates a new Color.
func NewColor(r, g, b, a float64) *Color {
	return &Color{R: r, G: g, B: b, A: a}
}

// NewColorRGB creates a new opaque Color.
func NewColorRGB(r, g, b float64) *Color {
	return &Color{R: r, G: g, B: b, A: 1.0}
}

// CloneColor returns a copy of c, or nil if c is nil.
func CloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

// Predefined item colors, one per item Type, so AddNewItem has a
// sensible default without every call site inventing its own.
var (
	ColorVideo   = NewColorRGB(0.13, 0.55, 1.0)
	ColorAudio   = NewColorRGB(0.13, 0.87, 0.13)
	ColorImage   = NewColorRGB(1.0, 0.55, 0.13)
	ColorText    = NewColorRGB(0.87, 0.13, 0.87)
	ColorCaption = NewColorRGB(1.0, 0.87, 0.13)
	ColorSticker = NewColorRGB(1.0, 0.42, 0.78)
	ColorShape   = NewColorRGB(0.55, 0.13, 1.0)
	ColorBlur    = NewColorRGB(0.5, 0.5, 0.5)
)

// DefaultColorForType returns the default Color for an item Type.
func DefaultColorForType(t Type) *Color {
	switch t {
	case TypeVideo:
		return ColorVideo
	case TypeAudio:
		return ColorAudio
	case TypeImage:
		return ColorImage
	case TypeText:
		return ColorText
	case TypeCaption:
		return ColorCaption
	case TypeSticker:
		return ColorSticker
	case TypeShape:
		return ColorShape
	case TypeBlur:
		return ColorBlur
	default:
		return ColorVideo
	}
}
