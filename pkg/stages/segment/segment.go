// Package segment implements the ON/OFF state segmentation stage.
package segment

import (
	"context"

	"github.com/user/blinkdecode/pkg/pipeline"
)

// Stage converts the luminance sequence into signal runs.
type Stage struct{}

// NewStage creates a new segment stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute segments the frames using the brightness threshold.
func (s *Stage) Execute(ctx context.Context, input pipeline.SegmentInput) (pipeline.SegmentResult, error) {
	return pipeline.SegmentResult{Runs: Segment(input.Frames, input.Threshold)}, nil
}

// Segment walks the frame sequence with a two-state machine: OFF while
// luminance < threshold, ON while luminance >= threshold. A run is closed
// each time the state flips, with duration measured in frames since the
// run started. Accounting starts in OFF with a virtual run start at the
// first frame's index; when the first frame is already ON, the resulting
// zero-length OFF run is suppressed.
//
// The trailing partial run is never emitted: a run only exists once a
// transition closes it. Callers that need the final run must arrange a
// closing transition in the input.
func Segment(frames []pipeline.Frame, threshold int) []pipeline.Run {
	if len(frames) == 0 {
		return nil
	}

	var runs []pipeline.Run
	last := pipeline.Off
	runStart := frames[0].Index

	for _, frame := range frames {
		state := pipeline.Off
		if frame.Luminance >= threshold {
			state = pipeline.On
		}

		if state != last {
			if frame.Index != runStart {
				runs = append(runs, pipeline.Run{State: last, Duration: frame.Index - runStart})
			}
			runStart = frame.Index
		}

		last = state
	}

	return runs
}

// Ensure Stage implements the pipeline stage contract
var _ pipeline.Stage[pipeline.SegmentInput, pipeline.SegmentResult] = (*Stage)(nil)
