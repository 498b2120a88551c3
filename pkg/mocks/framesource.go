// Package mocks provides test doubles for the ports interfaces.
package mocks

import (
	"context"

	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/ports"
)

// FrameSource is a mock frame source that replays canned frames.
type FrameSource struct {
	Frames []pipeline.Frame
	Err    error

	// LastRequest records the most recent sample request.
	LastRequest ports.SampleRequest
}

// NewFrameSource creates a mock source yielding the given frames.
func NewFrameSource(frames []pipeline.Frame) *FrameSource {
	return &FrameSource{Frames: frames}
}

// Sample returns the canned frames after applying the range filter, the
// same way a real source filters before accumulation.
func (m *FrameSource) Sample(ctx context.Context, req ports.SampleRequest) ([]pipeline.Frame, error) {
	m.LastRequest = req
	if m.Err != nil {
		return nil, m.Err
	}

	var out []pipeline.Frame
	for _, f := range m.Frames {
		if req.Range.Contains(f.Index) {
			out = append(out, f)
		}
	}
	return out, nil
}

// Ensure FrameSource implements ports.FrameSource
var _ ports.FrameSource = (*FrameSource)(nil)
