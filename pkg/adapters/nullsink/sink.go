// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveLuminance does nothing.
func (s *Sink) SaveLuminance(frames []pipeline.Frame) error {
	return nil
}

// SaveDurationHistogram does nothing.
func (s *Sink) SaveDurationHistogram(state pipeline.State, hist map[int]int) error {
	return nil
}

// SaveSmoothedHistogram does nothing.
func (s *Sink) SaveSmoothedHistogram(state pipeline.State, smoothed []int, peaks []int) error {
	return nil
}

// SaveTokens does nothing.
func (s *Sink) SaveTokens(morse string) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
