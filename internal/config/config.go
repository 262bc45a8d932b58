// Package config holds the application configuration: command-line flags,
// environment variable overrides, and the constant-time engine knobs
// (scratch budget, hardware-multiply opt-in, heap switch).
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/ctkit/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by the
// application (e.g. CTKIT_WIDTH).
const EnvPrefix = "CTKIT_"

// MaxWidth bounds the accepted integer width. The engine itself accepts
// larger values; this cap merely keeps interactive runs sane.
const MaxWidth = 1 << 20

// AppConfig holds the complete configuration of a ctcalc run.
type AppConfig struct {
	// Width is the bit width of the working integers.
	Width uint

	// Values are the u64 inputs to the average pipeline.
	Values []uint64

	// ScratchBudget is the stack-scratch byte budget for the engine
	// (0 selects the default of 4096).
	ScratchBudget int

	// HardwareMul opts into native multiply opcodes; only safe on
	// targets where they are known data-independent.
	HardwareMul bool

	// DisableHeap forbids heap scratch in the engine; oversized
	// operations then produce NaN.
	DisableHeap bool

	// SkipOracles disables the math/big and GMP cross-checks.
	SkipOracles bool

	// Timeout bounds the whole run (0 means no limit).
	Timeout time.Duration

	// REPL starts the interactive line-based calculator.
	REPL bool

	// TUI starts the interactive inspector.
	TUI bool

	// Quiet suppresses everything but the result line.
	Quiet bool

	// Verbose enables debug logging, system stats and metric dumps.
	Verbose bool
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags that were not explicitly set.
//
// Parameters:
//   - progName: The program name for usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: Destination for usage and error output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: A ConfigError on invalid input, or flag.ErrHelp.
func ParseConfig(progName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	var valuesSpec string

	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.UintVar(&cfg.Width, "width", 129, "bit width of the working integers")
	fs.StringVar(&valuesSpec, "values", "1,2,3,4,5", "comma-separated u64 values to average")
	fs.IntVar(&cfg.ScratchBudget, "scratch", 0, "stack scratch budget in bytes (0 = default 4096)")
	fs.BoolVar(&cfg.HardwareMul, "hwmul", false, "use native multiply opcodes (constant-time targets only)")
	fs.BoolVar(&cfg.DisableHeap, "noheap", false, "disable heap scratch; oversized operations yield NaN")
	fs.BoolVar(&cfg.SkipOracles, "no-oracles", false, "skip the math/big and GMP cross-checks")
	fs.DurationVar(&cfg.Timeout, "timeout", 0, "overall run time limit (0 = none)")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive calculator")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the interactive inspector")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the result")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "debug logging, system stats and metric dumps")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return cfg, err
		}
		return cfg, apperrors.NewConfigError("%v", err)
	}

	applyEnvOverrides(fs, &cfg, &valuesSpec)

	values, err := parseValues(valuesSpec)
	if err != nil {
		return cfg, err
	}
	cfg.Values = values

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides fills configuration fields from the environment for
// every flag the user did not set explicitly.
func applyEnvOverrides(fs *flag.FlagSet, cfg *AppConfig, valuesSpec *string) {
	if !isFlagSet(fs, "width") {
		cfg.Width = getEnvUint("WIDTH", cfg.Width)
	}
	if !isFlagSet(fs, "values") {
		*valuesSpec = getEnvString("VALUES", *valuesSpec)
	}
	if !isFlagSet(fs, "scratch") {
		cfg.ScratchBudget = getEnvInt("SCRATCH", cfg.ScratchBudget)
	}
	if !isFlagSet(fs, "hwmul") {
		cfg.HardwareMul = getEnvBool("HWMUL", cfg.HardwareMul)
	}
	if !isFlagSet(fs, "noheap") {
		cfg.DisableHeap = getEnvBool("NOHEAP", cfg.DisableHeap)
	}
	if !isFlagSet(fs, "timeout") {
		cfg.Timeout = getEnvDuration("TIMEOUT", cfg.Timeout)
	}
	if !isFlagSet(fs, "quiet") {
		cfg.Quiet = getEnvBool("QUIET", cfg.Quiet)
	}
	if !isFlagSet(fs, "verbose") {
		cfg.Verbose = getEnvBool("VERBOSE", cfg.Verbose)
	}
}

// parseValues parses a comma-separated list of unsigned 64-bit values.
func parseValues(spec string) ([]uint64, error) {
	parts := strings.Split(spec, ",")
	values := make([]uint64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid value %q: must be an unsigned 64-bit integer", p)
		}
		values = append(values, v)
	}
	return values, nil
}

// validate rejects configurations the pipeline cannot run with.
func validate(cfg AppConfig) error {
	if cfg.Width < 1 || cfg.Width > MaxWidth {
		return apperrors.NewConfigError("width must be in [1, %d], got %d", MaxWidth, cfg.Width)
	}
	if cfg.ScratchBudget < 0 {
		return apperrors.NewConfigError("scratch budget must be nonnegative, got %d", cfg.ScratchBudget)
	}
	if cfg.REPL && cfg.TUI {
		return apperrors.NewConfigError("-repl and -tui are mutually exclusive")
	}
	if !cfg.REPL && !cfg.TUI && len(cfg.Values) == 0 {
		return apperrors.NewConfigError("no input values; pass -values or use -repl")
	}
	return nil
}

// Describe returns a short human-readable summary of the engine knobs,
// used by verbose output.
func (c AppConfig) Describe() string {
	scratch := c.ScratchBudget
	if scratch == 0 {
		scratch = 4096
	}
	return fmt.Sprintf("width=%d scratch=%dB hwmul=%t noheap=%t", c.Width, scratch, c.HardwareMul, c.DisableHeap)
}
