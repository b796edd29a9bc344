package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	apperrors "github.com/agbru/karatsuba/internal/errors"
)

// FileConfig is the decoded form of an HCL config file. Every attribute is
// optional; nil means "not set".
//
//	algo               = "all"
//	threshold          = 32
//	parallel_threshold = 1024
//	timeout            = "30s"
//	details            = true
type FileConfig struct {
	Algo              *string `hcl:"algo,optional"`
	Threshold         *int    `hcl:"threshold,optional"`
	ParallelThreshold *int    `hcl:"parallel_threshold,optional"`
	Timeout           *string `hcl:"timeout,optional"`
	Quiet             *bool   `hcl:"quiet,optional"`
	Verbose           *bool   `hcl:"verbose,optional"`
	Details           *bool   `hcl:"details,optional"`
	NoColor           *bool   `hcl:"no_color,optional"`
	Output            *string `hcl:"output,optional"`
	MetricsFile       *string `hcl:"metrics_file,optional"`
	LogLevel          *string `hcl:"log_level,optional"`
}

// LoadFile parses and decodes the HCL file at path.
func LoadFile(path string) (*FileConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var fc FileConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}
	return &fc, nil
}

// applyFileOverrides copies the attributes set in fc into config, skipping
// settings whose flag was given on the command line.
func applyFileOverrides(config *AppConfig, fs *flag.FlagSet, fc *FileConfig) error {
	set := func(names ...string) bool { return !isFlagSetAny(fs, names...) }

	if fc.Algo != nil && set("algo") {
		config.Algo = *fc.Algo
	}
	if fc.Threshold != nil && set("threshold") {
		config.Threshold = *fc.Threshold
	}
	if fc.ParallelThreshold != nil && set("parallel-threshold") {
		config.ParallelThreshold = *fc.ParallelThreshold
	}
	if fc.Timeout != nil && set("timeout") {
		d, err := time.ParseDuration(*fc.Timeout)
		if err != nil {
			return apperrors.ValidationError{Field: "timeout", Message: err.Error()}
		}
		config.Timeout = d
	}
	if fc.Quiet != nil && set("quiet", "q") {
		config.Quiet = *fc.Quiet
	}
	if fc.Verbose != nil && set("verbose", "v") {
		config.Verbose = *fc.Verbose
	}
	if fc.Details != nil && set("details", "d") {
		config.Details = *fc.Details
	}
	if fc.NoColor != nil && set("no-color") {
		config.NoColor = *fc.NoColor
	}
	if fc.Output != nil && set("output", "o") {
		config.OutputFile = *fc.Output
	}
	if fc.MetricsFile != nil && set("metrics-file") {
		config.MetricsFile = *fc.MetricsFile
	}
	if fc.LogLevel != nil && set("log-level") {
		config.LogLevel = *fc.LogLevel
	}
	return nil
}
