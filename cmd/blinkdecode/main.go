// Package main provides the CLI entry point for blinkdecode.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/blinkdecode/pkg/adapters/filesink"
	"github.com/user/blinkdecode/pkg/adapters/gocvsource"
	"github.com/user/blinkdecode/pkg/adapters/logger"
	"github.com/user/blinkdecode/pkg/adapters/nullsink"
	"github.com/user/blinkdecode/pkg/adapters/osfilesystem"
	"github.com/user/blinkdecode/pkg/adapters/videoprobe"
	"github.com/user/blinkdecode/pkg/config"
	"github.com/user/blinkdecode/pkg/orchestrator"
	"github.com/user/blinkdecode/pkg/ports"
	"github.com/user/blinkdecode/pkg/report"
	"github.com/user/blinkdecode/pkg/stages/classify"
	"github.com/user/blinkdecode/pkg/stages/histogram"
	"github.com/user/blinkdecode/pkg/stages/morse"
	"github.com/user/blinkdecode/pkg/stages/segment"
	"github.com/user/blinkdecode/pkg/stages/symbols"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Decode  DecodeCmd  `cmd:"" help:"Decode a morse light signal from a video region."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// DecodeCmd defines the decode subcommand.
type DecodeCmd struct {
	// Positional arguments
	Video      string  `arg:"" help:"Video file to analyze (anything the local OpenCV build decodes)."`
	Report     string  `arg:"" help:"Report JSON path, or - for standard output."`
	StartFrame int     `arg:"" help:"First frame to analyze (-1 = from the first frame)."`
	EndFrame   int     `arg:"" help:"Last frame to analyze (-1 = to the last frame)."`
	X0         float64 `arg:"" help:"Left edge of the sample region (0.0-1.0)."`
	Y0         float64 `arg:"" help:"Top edge of the sample region (0.0-1.0)."`
	X1         float64 `arg:"" help:"Right edge of the sample region (0.0-1.0)."`
	Y1         float64 `arg:"" help:"Bottom edge of the sample region (0.0-1.0)."`

	// Configuration
	Config       string `short:"c" help:"YAML config file with defaults for tuning options."`
	WindowRadius *int   `help:"Gaussian smoothing window radius for timing analysis."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("blinkdecode"),
		kong.Description("Decode a morse-coded message from a blinking light in a video."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the decode command.
func (cmd *DecodeCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	source := gocvsource.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	// Pre-flight probe for MP4-family containers
	if videoprobe.IsMP4(cmd.Video) {
		info, err := videoprobe.ProbeFile(cmd.Video)
		switch {
		case errors.Is(err, videoprobe.ErrNoVideoTrack):
			return fmt.Errorf("probe %s: %w", cmd.Video, err)
		case err != nil:
			log.Warn(l10n.F("Container probe failed: %s", err))
		default:
			log.Info(l10n.F("Detected %s video", info.Codec))
		}
	}

	// Create orchestrator
	orch := orchestrator.New(
		source,
		histogram.NewStage(),
		segment.NewStage(),
		classify.NewStage(),
		symbols.NewStage(),
		morse.NewStage(),
		sink,
		log,
	)

	// Run pipeline
	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig(cmd.Video))
	if err != nil {
		return err
	}

	// Write report
	writer := report.NewWriter(report.NewJSONFormatter(), fs)
	if err := writer.Write(cmd.Report, result); err != nil {
		return err
	}

	log.Info(l10n.F("Decoded message: %s", result.Message))
	if cmd.Report != report.StdoutPath {
		log.Info(l10n.F("Report saved to %s", cmd.Report))
	}
	return nil
}

// buildConfig creates a Config from the config file and CLI overrides.
// The positional arguments always win over file values.
func (cmd *DecodeCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		loaded, err := config.Load(cmd.Config)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.StartFrame = cmd.StartFrame
	cfg.EndFrame = cmd.EndFrame
	cfg.Region = config.RegionConfig{
		X0: cmd.X0,
		Y0: cmd.Y0,
		X1: cmd.X1,
		Y1: cmd.Y1,
	}

	if cmd.WindowRadius != nil {
		cfg.WindowRadius = *cmd.WindowRadius
	}
	if cmd.Debug {
		cfg.Debug = true
		cfg.DebugDir = cmd.DebugDir
	}
	if cmd.LogLevel != "" {
		cfg.LogLevel = cmd.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("blinkdecode version %s", version))
	return nil
}
