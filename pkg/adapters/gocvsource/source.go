// Package gocvsource provides an OpenCV-backed frame source. It decodes
// any container/codec the local OpenCV build supports and reduces each
// frame to a single region-average luminance value.
package gocvsource

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/ports"
	"gocv.io/x/gocv"
)

// ErrNoFrames is returned when the capture opened but yielded no frames.
var ErrNoFrames = errors.New("no decodable video frames")

// Source implements ports.FrameSource with gocv.
type Source struct{}

// New creates a new Source.
func New() *Source {
	return &Source{}
}

// Sample decodes the video frame by frame, averages the blue channel over
// the sample region and returns one Frame per decoded frame whose index
// passes the range filter. Filtered frames never enter the sequence.
//
// The blue channel is the original channel choice for this signal; OpenCV
// mats arrive in BGR order, so it is the first channel mean.
func (s *Source) Sample(ctx context.Context, req ports.SampleRequest) ([]pipeline.Frame, error) {
	capture, err := gocv.VideoCaptureFile(req.Path)
	if err != nil {
		return nil, fmt.Errorf("open video file %s: %w", req.Path, err)
	}
	defer capture.Close()

	img := gocv.NewMat()
	defer img.Close()

	var frames []pipeline.Frame
	index := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if ok := capture.Read(&img); !ok {
			break
		}
		if img.Empty() {
			continue
		}

		if req.Range.Contains(index) {
			luminance, err := regionLuminance(img, req.Region)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", index, err)
			}
			frames = append(frames, pipeline.Frame{Index: index, Luminance: luminance})
		}
		index++
	}

	if index == 0 {
		return nil, fmt.Errorf("%s: %w", req.Path, ErrNoFrames)
	}

	return frames, nil
}

// regionLuminance converts the normalized region to pixel bounds for this
// frame and returns the truncated mean of the blue channel over it.
func regionLuminance(img gocv.Mat, region pipeline.Region) (int, error) {
	width := img.Cols()
	height := img.Rows()

	x0 := clamp(int(float64(width)*region.X0), 0, width-1)
	y0 := clamp(int(float64(height)*region.Y0), 0, height-1)
	x1 := clamp(int(float64(width)*region.X1), x0+1, width)
	y1 := clamp(int(float64(height)*region.Y1), y0+1, height)

	roi := img.Region(image.Rect(x0, y0, x1, y1))
	defer roi.Close()

	mean := roi.Mean()
	luminance := int(mean.Val1)
	return clamp(luminance, 0, 255), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Ensure Source implements ports.FrameSource
var _ ports.FrameSource = (*Source)(nil)
