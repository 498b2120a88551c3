package ports

import (
	"github.com/user/blinkdecode/pkg/pipeline"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate processing results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveLuminance saves the sampled per-frame luminance series.
	SaveLuminance(frames []pipeline.Frame) error

	// SaveDurationHistogram saves the raw duration histogram for one state.
	SaveDurationHistogram(state pipeline.State, hist map[int]int) error

	// SaveSmoothedHistogram saves a plot of the smoothed duration histogram
	// with the selected peaks marked.
	SaveSmoothedHistogram(state pipeline.State, smoothed []int, peaks []int) error

	// SaveTokens saves the morse token string.
	SaveTokens(morse string) error
}
