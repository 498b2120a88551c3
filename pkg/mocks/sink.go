package mocks

import (
	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/ports"
)

// DebugSink records everything saved through it.
type DebugSink struct {
	enabled bool

	Luminance          []pipeline.Frame
	DurationHistograms map[pipeline.State]map[int]int
	SmoothedHistograms map[pipeline.State][]int
	Peaks              map[pipeline.State][]int
	Tokens             string
}

// NewDebugSink creates a recording sink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled:            enabled,
		DurationHistograms: make(map[pipeline.State]map[int]int),
		SmoothedHistograms: make(map[pipeline.State][]int),
		Peaks:              make(map[pipeline.State][]int),
	}
}

// Enabled reports the configured flag.
func (m *DebugSink) Enabled() bool {
	return m.enabled
}

// SaveLuminance records the frame series.
func (m *DebugSink) SaveLuminance(frames []pipeline.Frame) error {
	m.Luminance = frames
	return nil
}

// SaveDurationHistogram records the histogram.
func (m *DebugSink) SaveDurationHistogram(state pipeline.State, hist map[int]int) error {
	m.DurationHistograms[state] = hist
	return nil
}

// SaveSmoothedHistogram records the smoothed series and peaks.
func (m *DebugSink) SaveSmoothedHistogram(state pipeline.State, smoothed []int, peaks []int) error {
	m.SmoothedHistograms[state] = smoothed
	m.Peaks[state] = peaks
	return nil
}

// SaveTokens records the token string.
func (m *DebugSink) SaveTokens(morse string) error {
	m.Tokens = morse
	return nil
}

// Ensure DebugSink implements ports.DebugSink
var _ ports.DebugSink = (*DebugSink)(nil)
