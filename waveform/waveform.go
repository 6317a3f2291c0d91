// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

// Package waveform decodes audio sources into normalized peak arrays
// for timeline display: a caller asks for a (start, duration) slice of
// a source and gets back a fixed-density array of RMS peaks suitable
// for drawing a waveform without re-decoding on every redraw.
package waveform

import (
	"context"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Peaks is a normalized peak slice for one (src, startSec, durationSec)
// request.
type Peaks struct {
	Values []float64
	Length int
}

// Decoder opens a source by name and decodes it to a single-channel
// float PCM buffer plus its sample rate. Implementations may read from
// disk, a bundle, or an in-memory blob; the NewWAVDecoder
// implementation wraps github.com/go-audio/wav. Implementations that
// stream from I/O should check ctx periodically so a superseded
// request actually stops reading instead of just discarding its
// result.
type Decoder interface {
	Decode(ctx context.Context, src string) (samples []float64, sampleRate int, err error)
}

// wavDecoder decodes PCM WAV files via go-audio/wav, downmixing to a
// single channel by averaging.
type wavDecoder struct {
	open func(src string) (io.ReadCloser, error)
}

// NewWAVDecoder returns a Decoder for PCM WAV sources, using open to
// turn a source identifier into a readable stream.
func NewWAVDecoder(open func(src string) (io.ReadCloser, error)) Decoder {
	return &wavDecoder{open: open}
}

func (d *wavDecoder) Decode(ctx context.Context, src string) ([]float64, int, error) {
	r, err := d.open(src)
	if err != nil {
		return nil, 0, fmt.Errorf("waveform: open %q: %w", src, err)
	}
	defer r.Close()

	dec := wav.NewDecoder(r)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("waveform: decode %q: %w", src, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return downmix(buf), buf.Format.SampleRate, nil
}

func downmix(buf *audio.IntBuffer) []float64 {
	ch := buf.Format.NumChannels
	if ch < 1 {
		ch = 1
	}
	frames := len(buf.Data) / ch
	out := make([]float64, frames)
	max := float64(int(1) << uint(buf.SourceBitDepth-1))
	if max <= 0 {
		max = 1 << 15
	}
	for i := 0; i < frames; i++ {
		var sum float64
		for c := 0; c < ch; c++ {
			sum += float64(buf.Data[i*ch+c])
		}
		out[i] = (sum / float64(ch)) / max
	}
	return out
}

type cacheKey string

func keyFor(src string, startSec, durationSec float64) cacheKey {
	return cacheKey(fmt.Sprintf("%s:%.3f:%.3f", src, startSec, durationSec))
}

type pending struct {
	cancel context.CancelFunc
}

// Processor decodes sources and extracts cached peak slices. One
// in-flight request per cache key; a new request for the same key
// cancels whatever is currently decoding for it.
type Processor struct {
	decoder Decoder

	mu      sync.Mutex
	cache   map[cacheKey]Peaks
	current map[cacheKey]*pending
}

// New returns a Processor using decoder to turn sources into sample
// buffers.
func New(decoder Decoder) *Processor {
	return &Processor{decoder: decoder, cache: make(map[cacheKey]Peaks), current: make(map[cacheKey]*pending)}
}

// GetPeaks returns the normalized peak slice for [startSec, startSec+durationSec)
// of src. If ctx is cancelled, or superseded by a later GetPeaks call
// for the same (src, startSec, durationSec), it returns ctx.Err().
func (p *Processor) GetPeaks(ctx context.Context, src string, startSec, durationSec float64) (Peaks, error) {
	key := keyFor(src, startSec, durationSec)

	p.mu.Lock()
	if cached, ok := p.cache[key]; ok {
		p.mu.Unlock()
		return cached, nil
	}
	if prev, ok := p.current[key]; ok {
		prev.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	self := &pending{cancel: cancel}
	p.current[key] = self
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.current[key] == self {
			delete(p.current, key)
		}
		p.mu.Unlock()
	}()

	samples, sampleRate, err := p.decoder.Decode(ctx, src)
	if err != nil {
		return Peaks{}, err
	}
	if err := ctx.Err(); err != nil {
		return Peaks{}, err
	}

	peaks := extractPeaks(samples, sampleRate, startSec, durationSec)

	p.mu.Lock()
	p.cache[key] = peaks
	p.mu.Unlock()

	return peaks, nil
}

func extractPeaks(samples []float64, sampleRate int, startSec, durationSec float64) Peaks {
	startSample := int(startSec * float64(sampleRate))
	endSample := int((startSec + durationSec) * float64(sampleRate))
	if startSample < 0 {
		startSample = 0
	}
	if endSample > len(samples) {
		endSample = len(samples)
	}
	if endSample < startSample {
		endSample = startSample
	}
	slice := samples[startSample:endSample]

	targetPeaks := int(math.Floor(durationSec * 100))
	if targetPeaks < 10 {
		targetPeaks = 10
	}

	values := make([]float64, targetPeaks)
	if len(slice) == 0 {
		return Peaks{Values: values, Length: targetPeaks}
	}

	segmentLen := float64(len(slice)) / float64(targetPeaks)
	maxPeak := 0.0
	for i := 0; i < targetPeaks; i++ {
		segStart := int(float64(i) * segmentLen)
		segEnd := int(float64(i+1) * segmentLen)
		if segEnd > len(slice) {
			segEnd = len(slice)
		}
		if segEnd <= segStart {
			segEnd = segStart + 1
			if segEnd > len(slice) {
				segEnd = len(slice)
			}
		}
		values[i] = rms(slice[segStart:segEnd])
		if values[i] > maxPeak {
			maxPeak = values[i]
		}
	}

	if maxPeak < 0.001 {
		maxPeak = 0.001
	}
	for i := range values {
		values[i] /= maxPeak
	}

	return Peaks{Values: values, Length: targetPeaks}
}

func rms(segment []float64) float64 {
	if len(segment) == 0 {
		return 0
	}
	var sumSq float64
	for _, v := range segment {
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(segment)))
}
