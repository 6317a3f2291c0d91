// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package facade

import (
	"context"
	"fmt"

	"github.com/absfs/absfs"

	"github.com/mrjoshuak/timelinecore/thumbnail"
	"github.com/mrjoshuak/timelinecore/waveform"
)

// sourceOf returns the source media locator for itemID: item.Data["source"]
// when present, itemID otherwise (enough to key a cache even when the
// embedding application has not attached a real path).
func (f *Facade) sourceOf(itemID string) (string, bool) {
	_, _, it := f.findItem(itemID)
	if it == nil || it.Media == nil {
		return "", false
	}
	if src, ok := it.Data["source"].(string); ok && src != "" {
		return src, true
	}
	return itemID, true
}

// EnableThumbnails installs a thumbnail cache backed by fs (an in-memory
// github.com/absfs/memfs filesystem when fs is nil), using source to
// render and encode frames. Call once before GetThumbnail is used.
func (f *Facade) EnableThumbnails(fs absfs.FileSystem, source thumbnail.FrameSource, dir string) error {
	if fs != nil {
		f.thumbnails = thumbnail.NewFSCache(fs, source, dir)
		return nil
	}
	cache, err := thumbnail.NewMemCache(source, dir)
	if err != nil {
		return fmt.Errorf("facade: enable thumbnails: %w", err)
	}
	f.thumbnails = cache
	return nil
}

// EnableWaveforms installs a waveform processor using decoder to turn
// audio sources into sample buffers. Call once before GetWaveformPeaks
// is used.
func (f *Facade) EnableWaveforms(decoder waveform.Decoder) {
	f.waveforms = waveform.New(decoder)
}

// GetThumbnail returns the thumbnail sprite for itemID's source media at
// the given sampling interval and sprite height, generating it on first
// request. Returns an error if thumbnails have not been enabled or the
// item has no source media.
func (f *Facade) GetThumbnail(itemID string, intervalSec float64, heightPx int) (*thumbnail.Sprite, error) {
	if f.thumbnails == nil {
		return nil, fmt.Errorf("facade: thumbnails not enabled")
	}
	src, ok := f.sourceOf(itemID)
	if !ok {
		return nil, fmt.Errorf("facade: item %q has no source media", itemID)
	}
	_, _, it := f.findItem(itemID)
	return f.thumbnails.GetOrCreate(itemID, src, it.Media.SrcDuration, intervalSec, heightPx)
}

// GetWaveformPeaks returns the normalized peak slice covering
// [startSec, startSec+durationSec) of itemID's source media. Returns an
// error if waveforms have not been enabled or the item has no source
// media.
func (f *Facade) GetWaveformPeaks(ctx context.Context, itemID string, startSec, durationSec float64) (waveform.Peaks, error) {
	if f.waveforms == nil {
		return waveform.Peaks{}, fmt.Errorf("facade: waveforms not enabled")
	}
	src, ok := f.sourceOf(itemID)
	if !ok {
		return waveform.Peaks{}, fmt.Errorf("facade: item %q has no source media", itemID)
	}
	return f.waveforms.GetPeaks(ctx, src, startSec, durationSec)
}
