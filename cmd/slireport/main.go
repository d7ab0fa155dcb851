package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/olegiv/sli-report/internal/config"
	internalerrors "github.com/olegiv/sli-report/internal/errors"
	"github.com/olegiv/sli-report/internal/report"
	"github.com/olegiv/sli-report/internal/sli"
	"github.com/olegiv/sli-report/pkg/logger"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

// maxSkipShapesLogged limits the skipped-line groups logged at debug level.
const maxSkipShapesLogged = 5

// Version information - injected at build time via ldflags
var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cli, err := config.ParseCLI(config.ProgramName(), args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitSuccess
		}
		_, _ = fmt.Fprintln(stderr, internalerrors.Describe(err))
		return exitFailure
	}

	cfg, err := config.LoadWithCLI(cli)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, internalerrors.Describe(err))
		return exitFailure
	}

	log := logger.New(logger.Config{
		Level:      cfg.LogLevel,
		LogDir:     cfg.LogDir,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		Console:    true,
		Out:        stderr,
		NoColor:    !logger.IsTerminal(stderr),
	})
	defer func() {
		if err := log.Close(); err != nil {
			_, _ = fmt.Fprintf(stderr, "Failed to close logger: %v\n", err)
		}
	}()

	log.Debug().
		Str("version", version).
		Str("commit", gitCommit).
		Str("built", buildTime).
		Msg("Starting SLI report")
	if cfg.HasLogFile() {
		log.Debug().Str("log_dir", cfg.LogDir).Msg("Writing application log file")
	}

	if err := runReport(cfg, log, stdout); err != nil {
		_, _ = fmt.Fprintln(stderr, internalerrors.Describe(err))
		return exitFailure
	}

	return exitSuccess
}

func runReport(cfg *config.Config, log *logger.Logger, stdout io.Writer) error {
	startTime := time.Now()
	flog := log.WithField("path", cfg.SourcePath)

	// 1. Select renderer
	renderer, ok := report.DefaultRegistry().Get(cfg.Format)
	if !ok {
		return internalerrors.New(internalerrors.ErrInvalidConfig, "unsupported report format: %s", cfg.Format)
	}

	// 2. Aggregate the log file in a single pass
	reader := sli.NewReader(cfg.MaxLineBytes)

	if info, err := reader.GetSourceInfo(cfg.SourcePath); err == nil {
		flog.Info().
			Float64("size_mb", info["size_mb"].(float64)).
			Bool("compressed", info["compressed"].(bool)).
			Msg("Reading log file")
	}

	agg, err := reader.Read(cfg.SourcePath)
	if agg != nil {
		flog.Info().
			Int("lines", agg.Lines).
			Int("records", agg.Total).
			Int("ignored", agg.Ignored).
			Int("skipped", agg.Skipped).
			Int("invalid_dates", agg.InvalidDates).
			Msg("Log file aggregated")
		for _, shape := range agg.SkipSummary.Top(maxSkipShapesLogged) {
			flog.Debug().
				Int("count", shape.Count).
				Str("shape", shape.Shape).
				Str("example", shape.Example).
				Msg("Dropped lines not matching the log grammar")
		}
		if overflow := agg.SkipSummary.Overflow(); overflow > 0 {
			flog.Debug().
				Int("count", overflow).
				Msg("Dropped lines with untracked shapes")
		}
	}
	if err != nil {
		return err
	}

	// 3. Build and render
	rep := report.Build(cfg.SourcePath, agg)
	if err := renderer.Render(stdout, rep); err != nil {
		return fmt.Errorf("failed to render %s report: %w", renderer.Format(), err)
	}

	flog.Info().
		Str("format", string(renderer.Format())).
		Float64("success_rate", rep.Summary.SuccessRate).
		Int("error_kinds", len(rep.ErrorKinds)).
		Float64("duration_s", time.Since(startTime).Seconds()).
		Msg("Report completed")

	return nil
}
