package timelinecore

// ZoomConfig bounds and tunes ZoomController stepping.
type ZoomConfig struct {
	Min       float64 // minimum scale
	Max       float64 // maximum scale
	Default   float64 // initial scale
	Step      float64 // manual (button/slider) step base
	WheelStep float64 // wheel step base
}

// Config collects every tunable constant this package's callers tune. A nil
// *Config passed to any constructor in this module is treated as
// DefaultConfig().
type Config struct {
	FPS float64 // frame<->seconds conversion rate

	TrackHeight     float64 // px, vertical unit per row
	TrackItemHeight float64 // px, item box height
	HandleWidth     float64 // px, left column for track handles
	MarkersHeight   float64 // px, top ruler

	MinItemDuration   float64 // s, resize floor
	MinSplitSegment   float64 // s, split floor
	DurationTolerance float64 // s, source-duration comparison epsilon

	GridSize          float64 // s, grid snap
	EdgeSnapTolerance float64 // s, edge snap

	Zoom ZoomConfig
}

// DefaultConfig returns the default tuning constants.
func DefaultConfig() *Config {
	return &Config{
		FPS:               30,
		TrackHeight:       48,
		TrackItemHeight:   40,
		HandleWidth:       94,
		MarkersHeight:     40,
		MinItemDuration:   0.1,
		MinSplitSegment:   0.016,
		DurationTolerance: 0.05,
		GridSize:          0.1,
		EdgeSnapTolerance: 0.05,
		Zoom: ZoomConfig{
			Min:       0.5,
			Max:       30,
			Default:   1,
			Step:      0.15,
			WheelStep: 0.1,
		},
	}
}

// orDefault returns cfg if non-nil, else DefaultConfig().
func orDefault(cfg *Config) *Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return cfg
}

// WithConfig returns cfg if non-nil, else DefaultConfig(). Exported so
// other packages in this module can normalize a caller-supplied config
// without duplicating the nil check.
func WithConfig(cfg *Config) *Config {
	return orDefault(cfg)
}
