package timemath

import "testing"

func TestFrameToTimeRoundTrip(t *testing.T) {
	tests := []struct {
		frame int
		fps   float64
		want  float64
	}{
		{0, 30, 0},
		{30, 30, 1},
		{15, 30, 0.5},
		{1, 24, 0.042},
	}
	for _, tt := range tests {
		got := FrameToTime(tt.frame, tt.fps)
		if got != tt.want {
			t.Errorf("FrameToTime(%d, %g) = %g, want %g", tt.frame, tt.fps, got, tt.want)
		}
	}
}

func TestTimeToFrame(t *testing.T) {
	tests := []struct {
		seconds float64
		fps     float64
		want    int
	}{
		{0, 30, 0},
		{1, 30, 30},
		{0.5, 30, 15},
		{2.97, 30, 89}, // exercises the round-then-convert path near a frame boundary
	}
	for _, tt := range tests {
		got := TimeToFrame(tt.seconds, tt.fps)
		if got != tt.want {
			t.Errorf("TimeToFrame(%g, %g) = %d, want %d", tt.seconds, tt.fps, got, tt.want)
		}
	}
}

func TestViewportDuration(t *testing.T) {
	tests := []struct {
		composition, zoom, want float64
	}{
		{100, 1, 100},
		{100, 2, 100},   // zoomed in: axis unchanged
		{100, 0.5, 200}, // zoomed out: axis expands
		{100, 0, 100 / 1e-4},
	}
	for _, tt := range tests {
		got := ViewportDuration(tt.composition, tt.zoom)
		if got != tt.want {
			t.Errorf("ViewportDuration(%g, %g) = %g, want %g", tt.composition, tt.zoom, got, tt.want)
		}
	}
}

func TestFormatTimecodeNonDropFrame(t *testing.T) {
	got := FormatTimecode(3661, 30)
	want := "01:01:01:00"
	if got != want {
		t.Errorf("FormatTimecode(3661, 30) = %q, want %q", got, want)
	}
}
