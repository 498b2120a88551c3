package pipeline

// =============================================================================
// Common Types
// =============================================================================

// NoBound disables one end of a FrameRange.
const NoBound = -1

// State is the discretized signal level of a frame or run.
type State int

const (
	// Off means the sampled luminance is below the brightness threshold.
	Off State = iota
	// On means the sampled luminance is at or above the brightness threshold.
	On
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Off:
		return "off"
	case On:
		return "on"
	default:
		return "unknown"
	}
}

// Frame is one sampled video frame: its index in decode order and the
// average luminance of the sample region, in [0, 255].
type Frame struct {
	Index     int
	Luminance int
}

// Run is a maximal span of consecutive frames sharing one state.
// Duration is measured in frames and is never zero.
type Run struct {
	State    State
	Duration int
}

// Region is a rectangle in normalized coordinates, (X0,Y0) top-left and
// (X1,Y1) bottom-right, each component in [0, 1].
type Region struct {
	X0 float64
	Y0 float64
	X1 float64
	Y1 float64
}

// FullFrame returns the region covering the whole frame.
func FullFrame() Region {
	return Region{X0: 0, Y0: 0, X1: 1, Y1: 1}
}

// FrameRange bounds frame indices inclusively. NoBound (-1) disables the
// respective end.
type FrameRange struct {
	Start int
	End   int
}

// Unbounded returns a range that admits every frame.
func Unbounded() FrameRange {
	return FrameRange{Start: NoBound, End: NoBound}
}

// Contains reports whether the frame index falls inside the range.
func (r FrameRange) Contains(index int) bool {
	if r.Start != NoBound && index < r.Start {
		return false
	}
	if r.End != NoBound && index > r.End {
		return false
	}
	return true
}

// =============================================================================
// Histogram Stage Types
// =============================================================================

// HistogramInput contains the filtered frame sequence to tally.
type HistogramInput struct {
	Frames []Frame
}

// HistogramResult contains the luminance histogram and its weighted mean.
type HistogramResult struct {
	// Buckets holds one occurrence count per luminance value (256 entries).
	Buckets []int

	// Mean is the frequency-weighted mean luminance, truncated to an
	// integer. It is the global ON/OFF brightness threshold.
	Mean int
}

// =============================================================================
// Segment Stage Types
// =============================================================================

// SegmentInput contains the frame sequence and the brightness threshold.
type SegmentInput struct {
	Frames    []Frame
	Threshold int
}

// SegmentResult contains the ordered, strictly alternating run sequence.
type SegmentResult struct {
	Runs []Run
}

// =============================================================================
// Classify Stage Types
// =============================================================================

// ClassifyInput contains the run sequence and the smoothing window radius.
type ClassifyInput struct {
	Runs         []Run
	WindowRadius int
}

// ClassifyResult contains the per-state duration histograms, the selected
// timing peaks (ascending by duration) and the derived thresholds.
type ClassifyResult struct {
	OffHist map[int]int
	OnHist  map[int]int

	OffPeaks []int
	OnPeaks  []int

	// OffThresholds separates intra-letter, letter and word gaps (2 values).
	OffThresholds []int
	// OnThresholds separates dots from dashes (1 value).
	OnThresholds []int
}

// =============================================================================
// Symbols Stage Types
// =============================================================================

// SymbolsInput contains the run sequence and the timing thresholds.
type SymbolsInput struct {
	Runs          []Run
	OffThresholds []int
	OnThresholds  []int
}

// SymbolsResult contains the morse token string: dots and dashes
// concatenated, letters separated by a space, words by " | ".
type SymbolsResult struct {
	Morse string
}

// =============================================================================
// Morse Stage Types
// =============================================================================

// MorseInput contains the token string to decode.
type MorseInput struct {
	Morse string
}

// MorseResult contains the decoded text.
type MorseResult struct {
	Message string
}
