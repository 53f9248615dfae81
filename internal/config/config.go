// Package config parses and validates the calculator's configuration from
// command-line flags and BIGCALC_* environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "BIGCALC_"

// Defaults.
const (
	DefaultRadix       = 10
	DefaultTimeout     = time.Minute
	DefaultCertainty   = 20
	DefaultSearchBound = 100_000
	DefaultAttempts    = 10_000
	DefaultCacheSize   = 1024
)

// Themes lists the names accepted by --theme.
var Themes = []string{"dark", "light", "none"}

// CompletionShells lists the shells accepted by --completion.
var CompletionShells = []string{"bash", "zsh", "fish", "powershell"}

// AppConfig is the fully resolved configuration of one run.
type AppConfig struct {
	// Expr is a single expression to evaluate (-e). Empty means no one-shot.
	Expr string
	// File is a batch file with one expression per line (-f). "-" is stdin.
	File string
	// Radix is the output radix, 2 to 36.
	Radix int
	// Full disables truncation of long values.
	Full bool
	// OutputFile receives the results when set.
	OutputFile string
	// Timeout bounds each evaluation.
	Timeout time.Duration
	// Workers bounds batch concurrency.
	Workers int
	// Certainty is the number of Miller-Rabin rounds.
	Certainty int
	// SearchBound caps the candidates tried by nextprime.
	SearchBound int
	// Attempts caps the draws made by randprime.
	Attempts int
	// Seed makes the primality oracle deterministic when Seeded is set.
	Seed uint64
	// Seeded records that a seed was given by flag or environment, so that
	// zero is a usable seed.
	Seeded bool
	// CacheSize is the number of memoized results; 0 disables the cache.
	CacheSize int
	// MetricsAddr, when set, serves Prometheus metrics on that address.
	MetricsAddr string
	// Verbose enables debug logging; Quiet prints bare values only.
	Verbose bool
	Quiet   bool
	// NoColor disables ANSI colors.
	NoColor bool
	// Theme names the color theme: dark, light or none.
	Theme string
	// Completion names a shell whose completion script is printed instead
	// of evaluating anything.
	Completion string
}

// Interactive reports whether the run should start the REPL.
func (c AppConfig) Interactive() bool { return c.Expr == "" && c.File == "" }

// ParseConfig parses args (without the program name) into an AppConfig.
// Environment overrides are applied for every flag not given explicitly.
// It returns flag.ErrHelp when -h or --help is used.
func ParseConfig(programName string, args []string, errorOutput io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorOutput)
	config := AppConfig{}

	fs.StringVar(&config.Expr, "e", "", "Evaluate a single expression, e.g. \"modpow 4 13 497\".")
	fs.StringVar(&config.File, "f", "", "Evaluate every expression of a file ('-' for stdin).")
	fs.IntVar(&config.Radix, "radix", DefaultRadix, "Output radix (2-36).")
	fs.BoolVar(&config.Full, "full", false, "Print values in full instead of truncating them.")
	fs.StringVar(&config.OutputFile, "output", "", "Write results to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Shorthand for --output.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum duration of a single evaluation.")
	fs.IntVar(&config.Workers, "workers", EstimateWorkers(), "Concurrent evaluations in batch mode.")
	fs.IntVar(&config.Certainty, "certainty", DefaultCertainty, "Miller-Rabin rounds for primality tests.")
	fs.IntVar(&config.SearchBound, "search-bound", DefaultSearchBound, "Candidates examined by nextprime.")
	fs.IntVar(&config.Attempts, "attempts", DefaultAttempts, "Random draws made by randprime.")
	fs.Uint64Var(&config.Seed, "seed", 0, "Seed for reproducible prime generation (random when unset).")
	fs.IntVar(&config.CacheSize, "cache-size", DefaultCacheSize, "Memoized results kept by the evaluator (0 disables).")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&config.Quiet, "q", false, "Print bare results only.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print bare results only.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.Theme, "theme", "dark", "Color theme: dark, light or none.")
	fs.StringVar(&config.Completion, "completion", "", "Print a completion script for bash, zsh, fish or powershell.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.NewConfigError("parsing flags: %v", err)
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}
	config.Seeded = isFlagSet(fs, "seed")

	if err := applyEnvOverrides(&config, fs); err != nil {
		return AppConfig{}, err
	}
	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the configuration for inconsistent or out-of-range values.
func (c AppConfig) Validate() error {
	switch {
	case c.Radix < 2 || c.Radix > 36:
		return apperrors.NewConfigError("radix %d outside [2, 36]", c.Radix)
	case c.Timeout <= 0:
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	case c.Workers < 1:
		return apperrors.NewConfigError("workers must be at least 1, got %d", c.Workers)
	case c.Certainty < 1:
		return apperrors.NewConfigError("certainty must be at least 1, got %d", c.Certainty)
	case c.SearchBound < 1:
		return apperrors.NewConfigError("search bound must be at least 1, got %d", c.SearchBound)
	case c.Attempts < 1:
		return apperrors.NewConfigError("attempts must be at least 1, got %d", c.Attempts)
	case c.CacheSize < 0:
		return apperrors.NewConfigError("cache size cannot be negative, got %d", c.CacheSize)
	case c.Expr != "" && c.File != "":
		return apperrors.NewConfigError("-e and -f are mutually exclusive")
	case c.Verbose && c.Quiet:
		return apperrors.NewConfigError("--verbose and --quiet are mutually exclusive")
	case !slices.Contains(Themes, c.Theme):
		return apperrors.NewConfigError("unknown theme %q", c.Theme)
	case c.Completion != "" && !slices.Contains(CompletionShells, c.Completion):
		return apperrors.NewConfigError("unsupported shell %q for --completion", c.Completion)
	}
	return nil
}

// String summarizes the settings that affect evaluation.
func (c AppConfig) String() string {
	return fmt.Sprintf("radix=%d timeout=%s workers=%d certainty=%d search-bound=%d attempts=%d cache=%d",
		c.Radix, c.Timeout, c.Workers, c.Certainty, c.SearchBound, c.Attempts, c.CacheSize)
}
