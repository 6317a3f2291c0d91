// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package thumbnail generates and caches video thumbnail sprites: a
// single image tiling evenly spaced frame captures, with a rectangle
// lookup by timeline position so a renderer can window into it without
// decoding the source video itself. Sprites live on a virtual
// filesystem (github.com/absfs/absfs, typically backed by
// github.com/absfs/memfs) so the cache can be swapped for an on-disk
// store without changing call sites.
package thumbnail

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/absfs/absfs"
)

// Rect is a sprite sub-image's pixel bounds.
type Rect struct {
	X, Y, W, H int
}

// Sprite is a generated thumbnail sheet: Blob is the encoded image
// bytes (caller-defined format, typically JPEG/PNG), tiled in a single
// row of frames spaced IntervalSec apart.
type Sprite struct {
	Path        string
	Blob        []byte
	IntervalSec float64
	HeightPx    int
	FrameWidth  int
	FrameCount  int
}

// RectForTime returns the sub-image bounds covering timestamp t.
func (s *Sprite) RectForTime(t float64) Rect {
	idx := int(t / s.IntervalSec)
	if idx < 0 {
		idx = 0
	}
	if s.FrameCount > 0 && idx >= s.FrameCount {
		idx = s.FrameCount - 1
	}
	return Rect{X: idx * s.FrameWidth, Y: 0, W: s.FrameWidth, H: s.HeightPx}
}

// FrameSource decodes a video source and renders a single frame at
// tSec as heightPx-tall image bytes. Implementations are supplied by
// the embedding application; this package only owns caching and
// sampling-interval bookkeeping.
type FrameSource interface {
	RenderFrame(videoSrc string, tSec float64, heightPx int) (frame []byte, width int, err error)
	Encode(frames [][]byte, frameWidth, heightPx int) ([]byte, error)
}

// entry tracks one in-flight or completed sprite generation, deduping
// concurrent requests for the same cache key.
type entry struct {
	mu      sync.Mutex
	started bool
	ready   bool
	sprite  *Sprite
	err     error
	done    chan struct{}
}

// Cache generates and stores thumbnail sprites on a virtual
// filesystem, keyed by video id, sampling interval, and sprite height.
type Cache struct {
	fs     absfs.FileSystem
	source FrameSource
	dir    string

	mu      sync.Mutex
	entries map[string]*entry

	fineStarted sync.Map // (videoID+interval) -> bool, for background fine-sprite dedup
}

// New returns a Cache storing sprites under dir on fs, using source to
// render and encode frames.
func New(fs absfs.FileSystem, source FrameSource, dir string) *Cache {
	return &Cache{fs: fs, source: source, dir: dir, entries: make(map[string]*entry)}
}

// SamplingInterval picks the adaptive sampling interval for a video of
// the given duration at the given zoom (seconds represented per
// pixel); zoomedIn is the zoom bucket's own classification (sub-hour
// granularity only matters while zoomed in).
func SamplingInterval(durationSec, secPerPixel float64, zoomedIn bool) float64 {
	if zoomedIn {
		switch {
		case durationSec < 7*60:
			return 1
		case durationSec <= 3600:
			return 5
		default:
			return 10
		}
	}
	if secPerPixel <= 1.45 {
		return 60
	}
	return 180
}

func cacheKey(videoID string, intervalSec float64, heightPx int) string {
	return fmt.Sprintf("video-thumbnail-%s-%g-%d", videoID, intervalSec, heightPx)
}

// GetOrCreate returns the sprite for (videoID, intervalSec, heightPx),
// generating it on first request and caching the result for the
// lifetime of the Cache. Concurrent requests for the same key share a
// single generation.
func (c *Cache) GetOrCreate(videoID, videoSrc string, durationSec, intervalSec float64, heightPx int) (*Sprite, error) {
	key := cacheKey(videoID, intervalSec, heightPx)

	c.mu.Lock()
	e, exists := c.entries[key]
	if !exists {
		e = &entry{done: make(chan struct{})}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.mu.Lock()
	if e.started {
		e.mu.Unlock()
		<-e.done
		return e.sprite, e.err
	}
	e.started = true
	e.mu.Unlock()

	sprite, err := c.generate(key, videoSrc, durationSec, intervalSec, heightPx)
	e.sprite, e.err, e.ready = sprite, err, err == nil
	close(e.done)
	return sprite, err
}

// StartFineSpriteInBackground begins generating the fine-interval
// sprite for (videoID, fineIntervalSec, heightPx) if it has not
// already been started for this key, without blocking the caller. fn
// is invoked once with the result when generation finishes. A second
// call with the same (videoID, fineIntervalSec) while the first is
// still running does nothing, so callers can invoke this on every
// render tick without duplicating work.
func (c *Cache) StartFineSpriteInBackground(videoID, videoSrc string, durationSec, fineIntervalSec float64, heightPx int, fn func(*Sprite, error)) {
	dedupKey := fmt.Sprintf("%s:%g", videoID, fineIntervalSec)
	if _, loaded := c.fineStarted.LoadOrStore(dedupKey, true); loaded {
		return
	}
	go func() {
		sprite, err := c.GetOrCreate(videoID, videoSrc, durationSec, fineIntervalSec, heightPx)
		if fn != nil {
			fn(sprite, err)
		}
	}()
}

func (c *Cache) generate(key, videoSrc string, durationSec, intervalSec float64, heightPx int) (*Sprite, error) {
	path := c.dir + "/" + spriteFilename(key)
	if cached, err := c.readCached(path, intervalSec, heightPx); err == nil {
		return cached, nil
	}

	frameCount := int(durationSec/intervalSec) + 1
	if frameCount < 1 {
		frameCount = 1
	}

	frames := make([][]byte, 0, frameCount)
	frameWidth := 0
	for i := 0; i < frameCount; i++ {
		t := float64(i) * intervalSec
		frame, w, err := c.source.RenderFrame(videoSrc, t, heightPx)
		if err != nil {
			return nil, fmt.Errorf("thumbnail: render frame at %gs: %w", t, err)
		}
		frames = append(frames, frame)
		frameWidth = w
	}

	blob, err := c.source.Encode(frames, frameWidth, heightPx)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: encode sprite: %w", err)
	}

	if err := c.writeFile(path, blob); err != nil {
		return nil, fmt.Errorf("thumbnail: write sprite cache: %w", err)
	}

	return &Sprite{
		Path: path, Blob: blob, IntervalSec: intervalSec, HeightPx: heightPx,
		FrameWidth: frameWidth, FrameCount: frameCount,
	}, nil
}

func (c *Cache) readCached(path string, intervalSec float64, heightPx int) (*Sprite, error) {
	blob, err := readFile(c.fs, path)
	if err != nil {
		return nil, err
	}
	return &Sprite{Path: path, Blob: blob, IntervalSec: intervalSec, HeightPx: heightPx}, nil
}

func (c *Cache) writeFile(path string, data []byte) error {
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return err
	}
	f, err := c.fs.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.Write(data)
	return err
}

func readFile(fs absfs.FileSystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func spriteFilename(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:]) + ".sprite"
}
