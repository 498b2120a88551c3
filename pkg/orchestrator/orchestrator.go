// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"
	"github.com/user/blinkdecode/pkg/pipeline"
	"github.com/user/blinkdecode/pkg/ports"
	"github.com/user/blinkdecode/pkg/report"
	"github.com/user/blinkdecode/pkg/stages/classify"
)

// Config contains all configuration for the orchestrator.
type Config struct {
	// Input
	VideoPath string

	// Sampling
	Region pipeline.Region
	Range  pipeline.FrameRange

	// Classification
	WindowRadius int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Region:       pipeline.FullFrame(),
		Range:        pipeline.Unbounded(),
		WindowRadius: classify.DefaultWindowRadius,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	source         ports.FrameSource
	histogramStage pipeline.Stage[pipeline.HistogramInput, pipeline.HistogramResult]
	segmentStage   pipeline.Stage[pipeline.SegmentInput, pipeline.SegmentResult]
	classifyStage  pipeline.Stage[pipeline.ClassifyInput, pipeline.ClassifyResult]
	symbolsStage   pipeline.Stage[pipeline.SymbolsInput, pipeline.SymbolsResult]
	morseStage     pipeline.Stage[pipeline.MorseInput, pipeline.MorseResult]
	sink           ports.DebugSink
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	source ports.FrameSource,
	histogramStage pipeline.Stage[pipeline.HistogramInput, pipeline.HistogramResult],
	segmentStage pipeline.Stage[pipeline.SegmentInput, pipeline.SegmentResult],
	classifyStage pipeline.Stage[pipeline.ClassifyInput, pipeline.ClassifyResult],
	symbolsStage pipeline.Stage[pipeline.SymbolsInput, pipeline.SymbolsResult],
	morseStage pipeline.Stage[pipeline.MorseInput, pipeline.MorseResult],
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		source:         source,
		histogramStage: histogramStage,
		segmentStage:   segmentStage,
		classifyStage:  classifyStage,
		symbolsStage:   symbolsStage,
		morseStage:     morseStage,
		sink:           sink,
		logger:         logger,
	}
}

// Run executes the complete pipeline and returns the report. Any stage
// error is terminal: there are no retries and no partial reports.
func (o *Orchestrator) Run(ctx context.Context, config Config) (*report.Report, error) {
	o.logger.Info(l10n.T("Starting pipeline"))

	// 1. Sample frames (the whole sequence is materialized first)
	o.logger.Info(l10n.F("Sampling %s", config.VideoPath))
	frames, err := o.source.Sample(ctx, ports.SampleRequest{
		Path:   config.VideoPath,
		Region: config.Region,
		Range:  config.Range,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to sample video: %s", err))
		return nil, fmt.Errorf("sample video: %w", err)
	}
	o.logger.Info(l10n.F("Sampled %d frames", len(frames)))

	if o.sink.Enabled() {
		o.sink.SaveLuminance(frames)
	}

	// 2. Luminance histogram and brightness threshold
	hist, err := o.histogramStage.Execute(ctx, pipeline.HistogramInput{Frames: frames})
	if err != nil {
		o.logger.Error(l10n.F("Failed to analyze luminance: %s", err))
		return nil, fmt.Errorf("histogram stage: %w", err)
	}
	o.logger.Info(l10n.F("Brightness threshold: %d", hist.Mean))

	// 3. Segment into ON/OFF runs
	segments, err := o.segmentStage.Execute(ctx, pipeline.SegmentInput{
		Frames:    frames,
		Threshold: hist.Mean,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to segment signal: %s", err))
		return nil, fmt.Errorf("segment stage: %w", err)
	}
	o.logger.Info(l10n.F("Segmented %d signal runs", len(segments.Runs)))

	// 4. Classify run durations
	classified, err := o.classifyStage.Execute(ctx, pipeline.ClassifyInput{
		Runs:         segments.Runs,
		WindowRadius: config.WindowRadius,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to classify timing: %s", err))
		return nil, fmt.Errorf("classify stage: %w", err)
	}
	o.logger.Info(l10n.F("Timing peaks: off %v, on %v", classified.OffPeaks, classified.OnPeaks))

	if o.sink.Enabled() {
		o.sink.SaveDurationHistogram(pipeline.Off, classified.OffHist)
		o.sink.SaveDurationHistogram(pipeline.On, classified.OnHist)
		o.sink.SaveSmoothedHistogram(pipeline.Off,
			classify.Smooth(classified.OffHist, config.WindowRadius), classified.OffPeaks)
		o.sink.SaveSmoothedHistogram(pipeline.On,
			classify.Smooth(classified.OnHist, config.WindowRadius), classified.OnPeaks)
	}

	// 5. Encode symbols
	tokens, err := o.symbolsStage.Execute(ctx, pipeline.SymbolsInput{
		Runs:          segments.Runs,
		OffThresholds: classified.OffThresholds,
		OnThresholds:  classified.OnThresholds,
	})
	if err != nil {
		o.logger.Error(l10n.F("Failed to encode symbols: %s", err))
		return nil, fmt.Errorf("symbols stage: %w", err)
	}

	if o.sink.Enabled() {
		o.sink.SaveTokens(tokens.Morse)
	}

	// 6. Decode morse
	decoded, err := o.morseStage.Execute(ctx, pipeline.MorseInput{Morse: tokens.Morse})
	if err != nil {
		o.logger.Error(l10n.F("Failed to decode morse: %s", err))
		return nil, fmt.Errorf("morse stage: %w", err)
	}

	o.logger.Info(l10n.T("Pipeline completed successfully"))

	return &report.Report{
		FrameHist:     hist.Buckets,
		FrameHistMean: hist.Mean,
		HistOff:       report.NewDurationHistogram(classified.OffHist),
		HistOn:        report.NewDurationHistogram(classified.OnHist),
		OffTimePeaks:  classified.OffPeaks,
		OnTimePeaks:   classified.OnPeaks,
		OffThresholds: classified.OffThresholds,
		OnThresholds:  classified.OnThresholds,
		Morse:         tokens.Morse,
		Message:       decoded.Message,
	}, nil
}
