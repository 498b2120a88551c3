package classify

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/user/blinkdecode/pkg/pipeline"
)

type runCount struct {
	state    pipeline.State
	duration int
	count    int
}

// repeatRuns builds a run slice with count copies of each (state, duration).
func repeatRuns(entries ...runCount) []pipeline.Run {
	var runs []pipeline.Run
	for _, e := range entries {
		for i := 0; i < e.count; i++ {
			runs = append(runs, pipeline.Run{State: e.state, Duration: e.duration})
		}
	}
	return runs
}

func TestSmooth(t *testing.T) {
	tests := []struct {
		name string
		hist map[int]int
		want []int
	}{
		{
			name: "empty histogram",
			hist: map[int]int{},
			want: nil,
		},
		{
			name: "two classes",
			hist: map[int]int{2: 5, 6: 2},
			want: []int{0, 1, 2, 1, 0, 0, 1},
		},
		{
			name: "three classes",
			hist: map[int]int{2: 18, 6: 7, 14: 2},
			want: []int{0, 3, 10, 3, 0, 1, 3, 1, 0, 0, 0, 0, 0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Smooth(tt.hist, DefaultWindowRadius)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Smooth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLocalMaxima(t *testing.T) {
	tests := []struct {
		name  string
		hist  map[int]int
		count int
		want  []int
	}{
		{
			name:  "empty histogram",
			hist:  map[int]int{},
			count: 3,
			want:  nil,
		},
		{
			name:  "two peaks ordered by amplitude",
			hist:  map[int]int{2: 5, 6: 2},
			count: 2,
			want:  []int{2, 6},
		},
		{
			name:  "three peaks with boundary maximum",
			hist:  map[int]int{2: 18, 6: 7, 14: 2},
			count: 3,
			want:  []int{2, 6, 14},
		},
		{
			name:  "still rising at the boundary",
			hist:  map[int]int{3: 5},
			count: 3,
			want:  []int{3},
		},
		{
			name:  "count truncates to the dominant peaks",
			hist:  map[int]int{2: 18, 6: 7, 14: 2},
			count: 1,
			want:  []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalMaxima(tt.hist, tt.count, DefaultWindowRadius)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("LocalMaxima() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	runs := repeatRuns(
		runCount{pipeline.Off, 2, 18},
		runCount{pipeline.Off, 6, 7},
		runCount{pipeline.Off, 14, 2},
		runCount{pipeline.On, 2, 5},
		runCount{pipeline.On, 6, 2},
	)

	result, err := Classify(runs, DefaultWindowRadius)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if !reflect.DeepEqual(result.OffPeaks, []int{2, 6, 14}) {
		t.Errorf("OffPeaks = %v, want [2 6 14]", result.OffPeaks)
	}
	if !reflect.DeepEqual(result.OnPeaks, []int{2, 6}) {
		t.Errorf("OnPeaks = %v, want [2 6]", result.OnPeaks)
	}
	if !reflect.DeepEqual(result.OffThresholds, []int{4, 10}) {
		t.Errorf("OffThresholds = %v, want [4 10]", result.OffThresholds)
	}
	if !reflect.DeepEqual(result.OnThresholds, []int{4}) {
		t.Errorf("OnThresholds = %v, want [4]", result.OnThresholds)
	}
	if result.OffHist[2] != 18 || result.OffHist[6] != 7 || result.OffHist[14] != 2 {
		t.Errorf("OffHist = %v, want {2:18 6:7 14:2}", result.OffHist)
	}
	if result.OnHist[2] != 5 || result.OnHist[6] != 2 {
		t.Errorf("OnHist = %v, want {2:5 6:2}", result.OnHist)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	runs := repeatRuns(
		runCount{pipeline.Off, 2, 18},
		runCount{pipeline.Off, 6, 7},
		runCount{pipeline.Off, 14, 2},
		runCount{pipeline.On, 2, 5},
		runCount{pipeline.On, 6, 2},
	)

	first, err := Classify(runs, DefaultWindowRadius)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	second, err := Classify(runs, DefaultWindowRadius)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Classify() is not deterministic: %+v vs %+v", first, second)
	}
}

func TestClassifyInsufficientOffPeaks(t *testing.T) {
	runs := repeatRuns(
		runCount{pipeline.Off, 2, 10},
		runCount{pipeline.On, 2, 5},
		runCount{pipeline.On, 6, 2},
	)

	_, err := Classify(runs, DefaultWindowRadius)
	if !errors.Is(err, ErrInsufficientOffPeaks) {
		t.Errorf("Classify() error = %v, want ErrInsufficientOffPeaks", err)
	}
}

func TestClassifyInsufficientOnPeaks(t *testing.T) {
	runs := repeatRuns(
		runCount{pipeline.Off, 2, 18},
		runCount{pipeline.Off, 6, 7},
		runCount{pipeline.Off, 14, 2},
		runCount{pipeline.On, 2, 10},
	)

	_, err := Classify(runs, DefaultWindowRadius)
	if !errors.Is(err, ErrInsufficientOnPeaks) {
		t.Errorf("Classify() error = %v, want ErrInsufficientOnPeaks", err)
	}
}

func TestClassifyDefaultRadius(t *testing.T) {
	runs := repeatRuns(
		runCount{pipeline.Off, 2, 18},
		runCount{pipeline.Off, 6, 7},
		runCount{pipeline.Off, 14, 2},
		runCount{pipeline.On, 2, 5},
		runCount{pipeline.On, 6, 2},
	)

	// A non-positive radius falls back to the default.
	result, err := Classify(runs, 0)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if !reflect.DeepEqual(result.OffThresholds, []int{4, 10}) {
		t.Errorf("OffThresholds = %v, want [4 10]", result.OffThresholds)
	}
}

func TestStageExecute(t *testing.T) {
	stage := NewStage()
	_, err := stage.Execute(context.Background(), pipeline.ClassifyInput{
		Runs:         nil,
		WindowRadius: DefaultWindowRadius,
	})
	if !errors.Is(err, ErrInsufficientOffPeaks) {
		t.Errorf("Execute() error = %v, want ErrInsufficientOffPeaks", err)
	}
}
