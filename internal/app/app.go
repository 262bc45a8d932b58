// Package app wires configuration, logging and the pipeline together
// behind the ctcalc entry point.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/agbru/ctkit/ctbool"
	"github.com/agbru/ctkit/ctint"
	"github.com/agbru/ctkit/internal/cli"
	"github.com/agbru/ctkit/internal/config"
	apperrors "github.com/agbru/ctkit/internal/errors"
	"github.com/agbru/ctkit/internal/logging"
	"github.com/agbru/ctkit/internal/metrics"
	"github.com/agbru/ctkit/internal/orchestration"
	"github.com/agbru/ctkit/internal/sysmon"
	"github.com/agbru/ctkit/internal/tui"
	"github.com/agbru/ctkit/internal/ui"
)

// Version is the application version, overridable at link time.
var Version = "dev"

// Application represents the ctcalc application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer
	Metrics   *metrics.Collector
	logger    zerolog.Logger
}

// New creates a new Application instance by parsing command-line
// arguments and applying the engine configuration knobs.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "ctcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(errWriter, err)
		}
		return nil, err
	}

	// The engine knobs are process-global public configuration and
	// must be in place before any secret value is touched.
	ctint.SetScratchBudget(cfg.ScratchBudget)
	ctint.SetHeapEnabled(!cfg.DisableHeap)
	ctbool.SetHardwareMul(cfg.HardwareMul)
	ui.InitTheme()

	return &Application{
		Config:    cfg,
		ErrWriter: errWriter,
		Metrics:   metrics.NewCollector(),
		logger:    logging.New(errWriter, cfg.Verbose, cfg.Quiet),
	}, nil
}

// HasVersionFlag reports whether the arguments request the version.
func HasVersionFlag(args []string) bool {
	for _, a := range args {
		if a == "-version" || a == "--version" {
			return true
		}
	}
	return false
}

// PrintVersion writes the version line.
func PrintVersion(w io.Writer) {
	fmt.Fprintf(w, "ctcalc %s\n", Version)
}

// IsHelpError reports whether err is the flag package's help request.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// Run executes the configured mode and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if a.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Config.Timeout)
		defer cancel()
	}

	switch {
	case a.Config.TUI:
		if err := tui.Run(uint32(a.Config.Width)); err != nil {
			a.logger.Error().Err(err).Msg("inspector failed")
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	case a.Config.REPL:
		cli.NewREPL(os.Stdin, out, cli.REPLConfig{Width: uint32(a.Config.Width)}).Run()
		return apperrors.ExitSuccess
	default:
		return a.runPipeline(ctx, out)
	}
}

// runPipeline executes the one-shot average computation with oracles.
func (a *Application) runPipeline(ctx context.Context, out io.Writer) int {
	cfg := a.Config
	a.logger.Debug().
		Str("engine", cfg.Describe()).
		Int("values", len(cfg.Values)).
		Msg("starting average pipeline")

	engine := &orchestration.Engine{
		Width:   uint32(cfg.Width),
		Metrics: a.Metrics,
	}
	averagers := orchestration.Averagers(engine, cfg.SkipOracles)

	progress := cli.StartProgress(a.ErrWriter, "averaging...", !cfg.Quiet && !cfg.Verbose)
	results := orchestration.ExecuteAverage(ctx, averagers, cfg.Values)
	progress.Stop()
	a.Metrics.Runs.Inc()

	cli.DisplayResults(out, results, cli.OutputConfig{
		Quiet:   cfg.Quiet,
		Verbose: cfg.Verbose,
	})

	if err := orchestration.CompareResults(results); err != nil {
		if apperrors.IsContextError(err) {
			a.logger.Error().Msg("canceled")
			return apperrors.ExitErrorCanceled
		}
		cli.DisplayMismatch(a.ErrWriter, err)
		return apperrors.ExitCodeFor(err)
	}

	if cfg.Verbose {
		a.logger.Debug().Stringer("system", sysmon.Sample()).Msg("resource usage")
		if err := a.Metrics.Dump(a.ErrWriter); err != nil {
			a.logger.Warn().Err(err).Msg("metric dump failed")
		}
	}
	return apperrors.ExitSuccess
}
