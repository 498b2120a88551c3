package ports

import (
	"context"

	"github.com/user/blinkdecode/pkg/pipeline"
)

// SampleRequest describes which video to sample and where to look.
type SampleRequest struct {
	// Path is the video file to decode.
	Path string

	// Region is the rectangle to average, in normalized coordinates.
	Region pipeline.Region

	// Range filters frames by index before any accumulation. Frames
	// outside the range never appear in the sampled sequence.
	Range pipeline.FrameRange
}

// FrameSource abstracts video decoding and luminance sampling.
// Implementations yield one Frame per decoded video frame, in increasing
// index order, with the region-average luminance of a single color channel.
type FrameSource interface {
	// Sample decodes the video and returns the filtered frame sequence.
	Sample(ctx context.Context, req SampleRequest) ([]pipeline.Frame, error)
}
