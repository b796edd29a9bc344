// Package config parses the command line, the MULTIPLY_* environment
// variables and the optional HCL config file into an AppConfig.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/karatsuba/internal/binary"
	apperrors "github.com/agbru/karatsuba/internal/errors"
	"github.com/agbru/karatsuba/internal/karatsuba"
	"github.com/agbru/karatsuba/internal/logging"
	"github.com/agbru/karatsuba/internal/multiply"
)

// EnvPrefix is the prefix shared by every environment variable override.
const EnvPrefix = "MULTIPLY_"

const (
	// DefaultAlgo is the strategy used when --algo is not given.
	DefaultAlgo = "karatsuba"
	// DefaultTimeout bounds a single run.
	DefaultTimeout = time.Minute
	// AutoParallelThreshold asks ApplyAdaptiveThresholds to pick a
	// parallel threshold from the CPU count.
	AutoParallelThreshold = -1
)

// AppConfig holds the fully resolved application configuration.
type AppConfig struct {
	// X and Y are the validated operands.
	X, Y binary.Digits

	Algo              string
	Threshold         int
	ParallelThreshold int
	Timeout           time.Duration

	Quiet   bool
	Verbose bool
	Details bool
	NoColor bool

	OutputFile  string
	MetricsFile string
	LogLevel    string
	ConfigFile  string
}

// ToMultiplyOptions converts the configuration to strategy options.
func (c AppConfig) ToMultiplyOptions() multiply.Options {
	return multiply.Options{
		Threshold:         c.Threshold,
		ParallelThreshold: c.ParallelThreshold,
	}
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Threshold < 1 {
		return apperrors.ValidationError{Field: "threshold", Message: "must be at least 1"}
	}
	if c.ParallelThreshold < AutoParallelThreshold {
		return apperrors.ValidationError{Field: "parallel-threshold", Message: "must be 0 (sequential) or positive"}
	}
	if c.Timeout <= 0 {
		return apperrors.ValidationError{Field: "timeout", Message: "must be positive"}
	}
	if c.Quiet && c.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	if c.Algo != "all" && !slices.Contains(availableAlgos, c.Algo) {
		return apperrors.ValidationError{
			Field:   "algo",
			Message: fmt.Sprintf("unknown algorithm %q (available: %s, all)", c.Algo, strings.Join(availableAlgos, ", ")),
		}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.ValidationError{Field: "log-level", Message: err.Error()}
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig.
//
// Priority, highest first: command-line flags, MULTIPLY_* environment
// variables, the HCL file named by --config, built-in defaults. The two
// positional arguments are the operands; both must be non-empty binary
// strings. Usage and flag errors are written to errWriter.
func ParseConfig(programName string, args []string, errWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{
		Algo:              DefaultAlgo,
		Threshold:         karatsuba.DefaultThreshold,
		ParallelThreshold: AutoParallelThreshold,
		Timeout:           DefaultTimeout,
		LogLevel:          "info",
	}

	algoHelp := fmt.Sprintf("Algorithm to use: %s or all.", strings.Join(availableAlgos, ", "))
	fs.StringVar(&cfg.Algo, "algo", cfg.Algo, algoHelp)
	fs.IntVar(&cfg.Threshold, "threshold", cfg.Threshold, "Recursion cutoff in digits.")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", cfg.ParallelThreshold,
		"Operand length from which sub-products run concurrently (0 = sequential, -1 = auto).")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Maximum duration of the run.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the product.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Print host system information.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Details, "details", false, "Print recursion and memory statistics.")
	fs.BoolVar(&cfg.Details, "d", false, "Shorthand for --details.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the product to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics to this file.")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error).")
	fs.StringVar(&cfg.ConfigFile, "config", "", "HCL configuration file.")
	fs.Bool("version", false, "Print version information and exit.")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] <x> <y>\n\n", programName)
		fmt.Fprintf(errWriter, "Multiplies two non-negative binary integers with Karatsuba recursion.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.ConfigError{Message: err.Error()}
	}

	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = getEnvString("CONFIG", cfg.ConfigFile)
	}
	if cfg.ConfigFile != "" {
		fileCfg, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return AppConfig{}, apperrors.NewConfigError("%v", err)
		}
		if err := applyFileOverrides(&cfg, fs, fileCfg); err != nil {
			return AppConfig{}, err
		}
	}
	applyEnvOverrides(&cfg, fs)

	if fs.NArg() != 2 {
		fs.Usage()
		return AppConfig{}, apperrors.NewConfigError("expected exactly 2 operands, got %d", fs.NArg())
	}
	var err error
	if cfg.X, err = parseOperand("x", fs.Arg(0)); err != nil {
		return AppConfig{}, err
	}
	if cfg.Y, err = parseOperand("y", fs.Arg(1)); err != nil {
		return AppConfig{}, err
	}

	if err := cfg.Validate(availableAlgos); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func parseOperand(field, s string) (binary.Digits, error) {
	d, err := binary.Parse(s)
	if err != nil {
		return nil, apperrors.ValidationError{Field: field, Message: err.Error()}
	}
	return d, nil
}
