// Package report provides the boundary artifact of a pipeline run: a
// single JSON report with the histogram, timing analysis and decoded text.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// Report contains all data collected during one decoding run.
type Report struct {
	// FrameHist holds one count per luminance value (256 entries).
	FrameHist []int `json:"frame_hist"`

	// FrameHistMean is the brightness threshold derived from FrameHist.
	FrameHistMean int `json:"frame_hist_mean"`

	// HistOff and HistOn are the per-state duration histograms.
	HistOff DurationHistogram `json:"hist_off"`
	HistOn  DurationHistogram `json:"hist_on"`

	// Timing peaks, ascending by duration.
	OffTimePeaks []int `json:"off_time_peaks"`
	OnTimePeaks  []int `json:"on_time_peaks"`

	// Derived timing thresholds (2 for OFF, 1 for ON).
	OffThresholds []int `json:"off_thresholds"`
	OnThresholds  []int `json:"on_thresholds"`

	// Morse is the token string with letter spaces and | word markers.
	Morse string `json:"morse"`

	// Message is the decoded text.
	Message string `json:"message"`
}

// DurationBucket is one duration to occurrence-count pair.
type DurationBucket struct {
	Duration int
	Count    int
}

// DurationHistogram is a sparse duration histogram, ascending by duration.
// It marshals as a list of single-key objects: [{"2":12},{"6":7}].
type DurationHistogram []DurationBucket

// NewDurationHistogram converts a duration-count map into an ascending
// histogram.
func NewDurationHistogram(hist map[int]int) DurationHistogram {
	out := make(DurationHistogram, 0, len(hist))
	for duration, count := range hist {
		out = append(out, DurationBucket{Duration: duration, Count: count})
	}
	sort.Slice(out, func(a, b int) bool {
		return out[a].Duration < out[b].Duration
	})
	return out
}

// MarshalJSON renders the histogram as a list of single-key objects.
func (h DurationHistogram) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteString("[")
	for i, bucket := range h {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "{%q:%d}", fmt.Sprintf("%d", bucket.Duration), bucket.Count)
	}
	b.WriteString("]")
	return []byte(b.String()), nil
}
