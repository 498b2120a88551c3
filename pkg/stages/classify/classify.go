// Package classify implements the duration classification stage: it
// discovers the characteristic short/medium/long run durations of the
// signal and derives the timing thresholds that separate them.
package classify

import (
	"context"
	"errors"
	"math"
	"sort"

	"github.com/user/blinkdecode/pkg/pipeline"
)

// DefaultWindowRadius is the Gaussian smoothing window radius.
const DefaultWindowRadius = 3

const (
	// OffPeakCount is the number of OFF timing classes: intra-letter gap,
	// letter gap and word gap.
	OffPeakCount = 3
	// OnPeakCount is the number of ON timing classes: dot and dash.
	OnPeakCount = 2
)

var (
	// ErrInsufficientOffPeaks is returned when the OFF duration histogram
	// has fewer than three distinct timing peaks.
	ErrInsufficientOffPeaks = errors.New("insufficient OFF timing peaks")
	// ErrInsufficientOnPeaks is returned when the ON duration histogram
	// has fewer than two distinct timing peaks.
	ErrInsufficientOnPeaks = errors.New("insufficient ON timing peaks")
)

// Stage derives the timing thresholds from the run sequence.
type Stage struct{}

// NewStage creates a new classify stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute classifies the run durations.
func (s *Stage) Execute(ctx context.Context, input pipeline.ClassifyInput) (pipeline.ClassifyResult, error) {
	return Classify(input.Runs, input.WindowRadius)
}

// Classify builds one duration histogram per state, finds the dominant
// peaks of each smoothed histogram and derives the midpoint thresholds.
// The returned peak slices are sorted ascending by duration.
func Classify(runs []pipeline.Run, windowRadius int) (pipeline.ClassifyResult, error) {
	if windowRadius <= 0 {
		windowRadius = DefaultWindowRadius
	}

	offHist := make(map[int]int)
	onHist := make(map[int]int)
	for _, run := range runs {
		if run.State == pipeline.Off {
			offHist[run.Duration]++
		} else {
			onHist[run.Duration]++
		}
	}

	offPeaks := LocalMaxima(offHist, OffPeakCount, windowRadius)
	if len(offPeaks) < OffPeakCount {
		return pipeline.ClassifyResult{}, ErrInsufficientOffPeaks
	}
	sort.Ints(offPeaks)

	onPeaks := LocalMaxima(onHist, OnPeakCount, windowRadius)
	if len(onPeaks) < OnPeakCount {
		return pipeline.ClassifyResult{}, ErrInsufficientOnPeaks
	}
	sort.Ints(onPeaks)

	return pipeline.ClassifyResult{
		OffHist:  offHist,
		OnHist:   onHist,
		OffPeaks: offPeaks,
		OnPeaks:  onPeaks,
		OffThresholds: []int{
			(offPeaks[0] + offPeaks[1]) / 2,
			(offPeaks[1] + offPeaks[2]) / 2,
		},
		OnThresholds: []int{
			(onPeaks[0] + onPeaks[1]) / 2,
		},
	}, nil
}

// gaussian is the smoothing weight at offset x for a unit shape parameter.
func gaussian(x float64) float64 {
	return math.Sqrt(1/math.Pi) * math.Exp(-x*x)
}

// Smooth densifies a sparse duration histogram into an array indexed
// 0..max(duration) and convolves it with a Gaussian kernel of the given
// window radius. Offsets falling outside the array are omitted rather than
// padded. Each smoothed value is truncated to an integer.
func Smooth(hist map[int]int, windowRadius int) []int {
	if len(hist) == 0 {
		return nil
	}

	max := 0
	for duration := range hist {
		if duration > max {
			max = duration
		}
	}

	dense := make([]int, max+1)
	for duration, count := range hist {
		dense[duration] = count
	}

	smoothed := make([]int, len(dense))
	for i := range dense {
		t := 0.0
		for j := -windowRadius; j <= windowRadius; j++ {
			k := i + j
			if k >= 0 && k < len(dense) {
				t += float64(dense[k]) * gaussian(float64(j))
			}
		}
		smoothed[i] = int(t)
	}

	return smoothed
}

func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// LocalMaxima smooths the duration histogram and returns the durations of
// up to count local maxima, ordered by descending smoothed amplitude.
//
// The scan tracks the sign of the first difference and records a peak at
// i-1 whenever a non-negative running sign turns negative. If the scan
// ends while still rising, the final point is recorded as well: a maximum
// truncated by the data boundary still counts. Equal-amplitude peaks keep
// their detection order (stable sort).
func LocalMaxima(hist map[int]int, count, windowRadius int) []int {
	smoothed := Smooth(hist, windowRadius)
	if len(smoothed) == 0 {
		return nil
	}

	type turningPoint struct {
		duration  int
		amplitude int
	}

	var peaks []turningPoint
	lastSign, diff := 0, 0
	for i := 1; i < len(smoothed); i++ {
		diff = sign(smoothed[i] - smoothed[i-1])
		if (lastSign == 0 || lastSign == 1) && diff == -1 {
			peaks = append(peaks, turningPoint{duration: i - 1, amplitude: smoothed[i-1]})
		}
		lastSign = diff
	}
	if diff > 0 {
		last := len(smoothed) - 1
		peaks = append(peaks, turningPoint{duration: last, amplitude: smoothed[last]})
	}

	sort.SliceStable(peaks, func(a, b int) bool {
		return peaks[a].amplitude > peaks[b].amplitude
	})
	if len(peaks) > count {
		peaks = peaks[:count]
	}

	durations := make([]int, len(peaks))
	for i, p := range peaks {
		durations[i] = p.duration
	}
	return durations
}

// Ensure Stage implements the pipeline stage contract
var _ pipeline.Stage[pipeline.ClassifyInput, pipeline.ClassifyResult] = (*Stage)(nil)
