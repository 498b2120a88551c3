// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/ports"
)

// Plot dimensions for the smoothed histogram images.
const (
	plotBarWidth = 6
	plotHeight   = 240
	plotMargin   = 16
	plotMinWidth = 320
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new FileSink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveLuminance saves the per-frame luminance series as CSV.
func (s *Sink) SaveLuminance(frames []pipeline.Frame) error {
	var buf bytes.Buffer
	buf.WriteString("frame,luminance\n")
	for _, f := range frames {
		buf.WriteString(strconv.Itoa(f.Index))
		buf.WriteByte(',')
		buf.WriteString(strconv.Itoa(f.Luminance))
		buf.WriteByte('\n')
	}
	path := filepath.Join(s.baseDir, "luminance.csv")
	return s.fs.WriteFile(path, buf.Bytes())
}

// SaveDurationHistogram saves the raw duration histogram for one state as
// CSV, ascending by duration.
func (s *Sink) SaveDurationHistogram(state pipeline.State, hist map[int]int) error {
	durations := make([]int, 0, len(hist))
	for d := range hist {
		durations = append(durations, d)
	}
	sort.Ints(durations)

	var buf bytes.Buffer
	buf.WriteString("duration,count\n")
	for _, d := range durations {
		buf.WriteString(strconv.Itoa(d))
		buf.WriteByte(',')
		buf.WriteString(strconv.Itoa(hist[d]))
		buf.WriteByte('\n')
	}
	path := filepath.Join(s.baseDir, fmt.Sprintf("hist_%s.csv", state))
	return s.fs.WriteFile(path, buf.Bytes())
}

// SaveSmoothedHistogram saves the smoothed duration histogram as CSV and
// renders it as a bar chart with the selected peaks marked.
func (s *Sink) SaveSmoothedHistogram(state pipeline.State, smoothed []int, peaks []int) error {
	var csv bytes.Buffer
	csv.WriteString("duration,smoothed\n")
	for d, v := range smoothed {
		csv.WriteString(strconv.Itoa(d))
		csv.WriteByte(',')
		csv.WriteString(strconv.Itoa(v))
		csv.WriteByte('\n')
	}
	csvPath := filepath.Join(s.baseDir, fmt.Sprintf("smoothed_%s.csv", state))
	if err := s.fs.WriteFile(csvPath, csv.Bytes()); err != nil {
		return err
	}

	width := len(smoothed)*plotBarWidth + 2*plotMargin
	if width < plotMinWidth {
		width = plotMinWidth
	}

	dc := gg.NewContext(width, plotHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	max := 1
	for _, v := range smoothed {
		if v > max {
			max = v
		}
	}

	scale := float64(plotHeight-2*plotMargin) / float64(max)
	base := float64(plotHeight - plotMargin)

	dc.SetRGB(0.3, 0.3, 0.7)
	for i, v := range smoothed {
		h := float64(v) * scale
		x := float64(plotMargin + i*plotBarWidth)
		dc.DrawRectangle(x, base-h, float64(plotBarWidth-1), h)
		dc.Fill()
	}

	dc.SetRGB(0.8, 0.2, 0.2)
	for _, p := range peaks {
		x := float64(plotMargin+p*plotBarWidth) + float64(plotBarWidth)/2
		dc.DrawLine(x, float64(plotMargin), x, base)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return fmt.Errorf("encode plot: %w", err)
	}
	path := filepath.Join(s.baseDir, fmt.Sprintf("smoothed_%s.png", state))
	return s.fs.WriteFile(path, buf.Bytes())
}

// SaveTokens saves the morse token string.
func (s *Sink) SaveTokens(morse string) error {
	path := filepath.Join(s.baseDir, "tokens.txt")
	return s.fs.WriteFile(path, []byte(morse+"\n"))
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
