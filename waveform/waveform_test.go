// SPDX-License-Identifier: Apache-2.0
// Copyright Contributors to the OpenTimelineIO project

package waveform

import (
	"context"
	"math"
	"sync/atomic"
	"testing"
	"time"
)

type fakeDecoder struct {
	decodes    int32
	sampleRate int
	samples    []float64
	blockUntil chan struct{}
}

func (f *fakeDecoder) Decode(ctx context.Context, src string) ([]float64, int, error) {
	atomic.AddInt32(&f.decodes, 1)
	if f.blockUntil != nil {
		select {
		case <-f.blockUntil:
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return f.samples, f.sampleRate, nil
}

func sineSamples(n, sampleRate int, freq float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return out
}

func TestGetPeaksTargetCountAndNormalization(t *testing.T) {
	sr := 1000
	dec := &fakeDecoder{sampleRate: sr, samples: sineSamples(sr*2, sr, 5)}
	p := New(dec)

	peaks, err := p.GetPeaks(context.Background(), "tone.wav", 0, 1)
	if err != nil {
		t.Fatalf("GetPeaks: %v", err)
	}
	if peaks.Length != 100 {
		t.Fatalf("Length = %d, want 100 (floor(1*100))", peaks.Length)
	}
	var maxV float64
	for _, v := range peaks.Values {
		if v > maxV {
			maxV = v
		}
	}
	if maxV < 0.99 || maxV > 1.0001 {
		t.Fatalf("expected normalized max peak ~1.0, got %g", maxV)
	}
}

func TestGetPeaksMinimumTenValues(t *testing.T) {
	dec := &fakeDecoder{sampleRate: 100, samples: sineSamples(100, 100, 2)}
	p := New(dec)

	peaks, err := p.GetPeaks(context.Background(), "short.wav", 0, 0.05)
	if err != nil {
		t.Fatalf("GetPeaks: %v", err)
	}
	if peaks.Length != 10 {
		t.Fatalf("Length = %d, want floor of 10 minimum", peaks.Length)
	}
}

func TestGetPeaksCachesByKey(t *testing.T) {
	dec := &fakeDecoder{sampleRate: 1000, samples: sineSamples(2000, 1000, 5)}
	p := New(dec)

	if _, err := p.GetPeaks(context.Background(), "tone.wav", 0, 1); err != nil {
		t.Fatalf("first GetPeaks: %v", err)
	}
	if _, err := p.GetPeaks(context.Background(), "tone.wav", 0, 1); err != nil {
		t.Fatalf("second GetPeaks: %v", err)
	}
	if got := atomic.LoadInt32(&dec.decodes); got != 1 {
		t.Fatalf("expected a single decode across both calls, got %d", got)
	}
}

func TestGetPeaksDifferentSliceIsSeparateCacheEntry(t *testing.T) {
	dec := &fakeDecoder{sampleRate: 1000, samples: sineSamples(3000, 1000, 5)}
	p := New(dec)

	if _, err := p.GetPeaks(context.Background(), "tone.wav", 0, 1); err != nil {
		t.Fatalf("GetPeaks at 0: %v", err)
	}
	if _, err := p.GetPeaks(context.Background(), "tone.wav", 1, 1); err != nil {
		t.Fatalf("GetPeaks at 1: %v", err)
	}
	if got := atomic.LoadInt32(&dec.decodes); got != 2 {
		t.Fatalf("expected two decodes for two distinct slices, got %d", got)
	}
}

func TestNewRequestCancelsPriorInFlightDecode(t *testing.T) {
	dec := &fakeDecoder{sampleRate: 1000, samples: sineSamples(2000, 1000, 5), blockUntil: make(chan struct{})}
	t.Cleanup(func() { close(dec.blockUntil) })
	p := New(dec)

	firstDone := make(chan error, 1)
	go func() {
		_, err := p.GetPeaks(context.Background(), "tone.wav", 0, 1)
		firstDone <- err
	}()

	// Give the first request time to enter Decode and register as
	// in-flight before the second one supersedes it.
	time.Sleep(20 * time.Millisecond)

	go func() {
		_, _ = p.GetPeaks(context.Background(), "tone.wav", 0, 1)
	}()

	select {
	case err := <-firstDone:
		if err != context.Canceled {
			t.Fatalf("expected first request to observe cancellation, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first GetPeaks never returned")
	}
}
