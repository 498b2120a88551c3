// Package histogram implements the luminance histogram stage.
package histogram

import (
	"context"
	"errors"

	"github.com/user/blinkdecode/pkg/pipeline"
)

// Buckets is the number of luminance buckets (one per 8-bit value).
const Buckets = 256

// ErrNoFramesInRange is returned when the frame-range filter left nothing
// to tally, so the mean is undefined.
var ErrNoFramesInRange = errors.New("no frames in range")

// Stage tallies the luminance histogram and derives the global brightness
// threshold. This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new histogram stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute tallies the frames and computes the mean threshold.
func (s *Stage) Execute(ctx context.Context, input pipeline.HistogramInput) (pipeline.HistogramResult, error) {
	return Compute(input.Frames)
}

// Compute tallies a 256-bucket frequency histogram over the frame sequence
// and derives the brightness threshold as the frequency-weighted mean
// luminance, truncated to an integer.
//
// The sum of all bucket counts equals the number of frames supplied.
func Compute(frames []pipeline.Frame) (pipeline.HistogramResult, error) {
	buckets := make([]int, Buckets)
	for _, f := range frames {
		buckets[f.Luminance]++
	}

	total := 0
	weighted := 0
	for value, count := range buckets {
		weighted += value * count
		total += count
	}
	if total == 0 {
		return pipeline.HistogramResult{}, ErrNoFramesInRange
	}

	return pipeline.HistogramResult{
		Buckets: buckets,
		Mean:    weighted / total,
	}, nil
}

// Ensure Stage implements the pipeline stage contract
var _ pipeline.Stage[pipeline.HistogramInput, pipeline.HistogramResult] = (*Stage)(nil)
