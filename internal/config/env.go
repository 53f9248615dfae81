// This file contains environment variable overrides for configuration.

package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v11"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// envConfig mirrors the overridable settings. Pointer fields stay nil when
// the variable is unset, which distinguishes "unset" from a zero value.
type envConfig struct {
	Radix       *int           `env:"RADIX"`
	Timeout     *time.Duration `env:"TIMEOUT"`
	Workers     *int           `env:"WORKERS"`
	Certainty   *int           `env:"CERTAINTY"`
	SearchBound *int           `env:"SEARCH_BOUND"`
	Attempts    *int           `env:"ATTEMPTS"`
	Seed        *uint64        `env:"SEED"`
	CacheSize   *int           `env:"CACHE_SIZE"`
	Output      *string        `env:"OUTPUT"`
	MetricsAddr *string        `env:"METRICS_ADDR"`
	Full        *bool          `env:"FULL"`
	Verbose     *bool          `env:"VERBOSE"`
	Quiet       *bool          `env:"QUIET"`
	NoColor     *bool          `env:"NO_COLOR"`
	Theme       *string        `env:"THEME"`
}

// envOverride binds one environment setting to the flag names it shadows.
type envOverride struct {
	flags []string
	apply func(*AppConfig, envConfig)
}

// envOverrides is the declarative table of all environment overrides.
var envOverrides = []envOverride{
	{[]string{"radix"}, func(c *AppConfig, e envConfig) { setIf(&c.Radix, e.Radix) }},
	{[]string{"timeout"}, func(c *AppConfig, e envConfig) { setIf(&c.Timeout, e.Timeout) }},
	{[]string{"workers"}, func(c *AppConfig, e envConfig) { setIf(&c.Workers, e.Workers) }},
	{[]string{"certainty"}, func(c *AppConfig, e envConfig) { setIf(&c.Certainty, e.Certainty) }},
	{[]string{"search-bound"}, func(c *AppConfig, e envConfig) { setIf(&c.SearchBound, e.SearchBound) }},
	{[]string{"attempts"}, func(c *AppConfig, e envConfig) { setIf(&c.Attempts, e.Attempts) }},
	{[]string{"seed"}, func(c *AppConfig, e envConfig) {
		setIf(&c.Seed, e.Seed)
		c.Seeded = c.Seeded || e.Seed != nil
	}},
	{[]string{"cache-size"}, func(c *AppConfig, e envConfig) { setIf(&c.CacheSize, e.CacheSize) }},
	{[]string{"output", "o"}, func(c *AppConfig, e envConfig) { setIf(&c.OutputFile, e.Output) }},
	{[]string{"metrics-addr"}, func(c *AppConfig, e envConfig) { setIf(&c.MetricsAddr, e.MetricsAddr) }},
	{[]string{"full"}, func(c *AppConfig, e envConfig) { setIf(&c.Full, e.Full) }},
	{[]string{"v", "verbose"}, func(c *AppConfig, e envConfig) { setIf(&c.Verbose, e.Verbose) }},
	{[]string{"q", "quiet"}, func(c *AppConfig, e envConfig) { setIf(&c.Quiet, e.Quiet) }},
	{[]string{"no-color"}, func(c *AppConfig, e envConfig) { setIf(&c.NoColor, e.NoColor) }},
	{[]string{"theme"}, func(c *AppConfig, e envConfig) { setIf(&c.Theme, e.Theme) }},
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// applyEnvOverrides reads BIGCALC_* variables and applies them to every
// setting whose flag was not given explicitly. The priority is
// flags > environment > defaults. Malformed values are a ConfigError.
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet) error {
	var e envConfig
	if err := env.ParseWithOptions(&e, env.Options{Prefix: EnvPrefix}); err != nil {
		return apperrors.NewConfigError("parse env: %v", err)
	}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		o.apply(config, e)
	}
	return nil
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the aliased flags were explicitly set.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}
