// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package zoom maintains a timeline's scale and horizontal scroll
// position, keeping a chosen anchor (the cursor for wheel zoom, the
// playhead for button/slider zoom) visually fixed as the scale changes.
package zoom

import "github.com/mrjoshuak/timelinecore"

// tierSteps are the per-tier multipliers applied to a controller's
// base manual/wheel step, keyed by belowScale: a tier applies to scales
// below it that no earlier tier took.
var tierSteps = []struct {
	belowScale float64
	multiplier float64
}{
	{3, 1},
	{10, 2},
	{20, 4},
	{belowScale: -1, multiplier: 6}, // above 20: the last tier, unconditional
}

// SliderDragState captures the scroll/scale/viewport state of a slider
// drag at its first tick, so subsequent ticks can recompute scroll
// from this fixed reference instead of drifting against a moving one.
type SliderDragState struct {
	PlayheadScreenX float64
	InitialScale    float64
	ScrollLeft      float64
	ViewportWidth   float64
}

// Controller owns a timeline's scale and scroll position.
type Controller struct {
	cfg timelinecore.ZoomConfig

	Scale      float64
	ScrollLeft float64

	// currentScaleRef mirrors Scale so a caller holding a stale
	// snapshot (e.g. a UI frame captured before the last Apply) can
	// still read the true latest scale via CurrentScale.
	currentScaleRef float64

	slider *SliderDragState
}

// New returns a Controller reset to cfg.Default scale and scroll 0.
func New(cfg timelinecore.ZoomConfig) *Controller {
	c := &Controller{cfg: cfg}
	c.Reset()
	return c
}

// Reset returns scale to its configured default and scroll to 0.
func (c *Controller) Reset() {
	c.Scale = c.cfg.Default
	c.currentScaleRef = c.cfg.Default
	c.ScrollLeft = 0
	c.slider = nil
}

// CurrentScale returns the true latest scale, bypassing any stale copy
// a caller might be holding.
func (c *Controller) CurrentScale() float64 {
	return c.currentScaleRef
}

// stepMultiplier returns the tiered multiplier for the scale the zoom
// step is being taken from.
func stepMultiplier(scale float64) float64 {
	for _, tier := range tierSteps {
		if tier.belowScale < 0 || scale < tier.belowScale {
			return tier.multiplier
		}
	}
	return tierSteps[len(tierSteps)-1].multiplier
}

func (c *Controller) clampScale(scale float64) float64 {
	if scale < c.cfg.Min {
		return c.cfg.Min
	}
	if scale > c.cfg.Max {
		return c.cfg.Max
	}
	return scale
}

// ZoomAt changes scale by delta × the tiered step multiplier for the
// current scale (delta is typically ±1), anchored at anchorX so the
// content under anchorX (anchorX - rectLeft + ScrollLeft, in content
// pixels) stays fixed on screen. base is cfg.Step for a manual
// (button/slider) zoom or cfg.WheelStep for a wheel zoom.
func (c *Controller) ZoomAt(delta, base, anchorX, rectLeft float64) {
	oldScale := c.Scale
	newScale := c.clampScale(oldScale + delta*base*stepMultiplier(oldScale))
	c.applyAnchored(oldScale, newScale, anchorX, rectLeft)
}

// SetScaleAt sets scale directly (e.g. from a slider's absolute
// value), anchored at anchorX the same way ZoomAt is.
func (c *Controller) SetScaleAt(newScale, anchorX, rectLeft float64) {
	oldScale := c.Scale
	c.applyAnchored(oldScale, c.clampScale(newScale), anchorX, rectLeft)
}

func (c *Controller) applyAnchored(oldScale, newScale, anchorX, rectLeft float64) {
	if oldScale == 0 {
		oldScale = c.cfg.Default
	}
	relative := anchorX - rectLeft + c.ScrollLeft
	zoomFactor := newScale / oldScale
	newScroll := relative*zoomFactor - (anchorX - rectLeft)
	if newScroll < 0 {
		newScroll = 0
	}
	c.ScrollLeft = newScroll
	c.Scale = newScale
	c.currentScaleRef = newScale
}

// ApplyPendingScroll re-derives ScrollLeft after a layout pass widens
// the content to match the new scale: contentWidth is the
// now-measured post-layout width, and priorContentWidth is what it was
// when ScrollLeft was last computed. Call this once per scale change,
// after layout.
func (c *Controller) ApplyPendingScroll(contentWidth, priorContentWidth float64) {
	if priorContentWidth <= 0 {
		return
	}
	factor := contentWidth / priorContentWidth
	c.ScrollLeft *= factor
}

// BeginSliderDrag captures the reference state for a slider zoom
// gesture: playheadScreenX is the playhead's current screen X.
func (c *Controller) BeginSliderDrag(playheadScreenX, viewportWidth float64) {
	c.slider = &SliderDragState{
		PlayheadScreenX: playheadScreenX,
		InitialScale:    c.Scale,
		ScrollLeft:      c.ScrollLeft,
		ViewportWidth:   viewportWidth,
	}
}

// SliderDragTick applies newScale while keeping the slider drag's
// captured PlayheadScreenX fixed on screen, computed from the
// gesture's initial reference state rather than the latest (possibly
// already-drifted) scroll. A no-op if BeginSliderDrag was not called.
func (c *Controller) SliderDragTick(newScale float64) {
	if c.slider == nil {
		return
	}
	newScale = c.clampScale(newScale)
	relative := c.slider.PlayheadScreenX + c.slider.ScrollLeft
	zoomFactor := newScale / c.slider.InitialScale
	newScroll := relative*zoomFactor - c.slider.PlayheadScreenX
	if newScroll < 0 {
		newScroll = 0
	}
	c.ScrollLeft = newScroll
	c.Scale = newScale
	c.currentScaleRef = newScale
}

// EndSliderDrag clears the captured slider drag reference state.
func (c *Controller) EndSliderDrag() {
	c.slider = nil
}

// PlayheadScreenX computes the playhead's screen X from the current
// frame, fps, viewport duration, and the area's rect/scroll geometry.
func PlayheadScreenX(currentFrame int, fps, viewportDuration, rectLeft, contentWidth, scrollLeft float64) float64 {
	if viewportDuration <= 0 {
		return rectLeft - scrollLeft
	}
	t := float64(currentFrame) / fps
	frac := t / viewportDuration
	return rectLeft + frac*contentWidth - scrollLeft
}
