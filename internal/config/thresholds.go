package config

import (
	"runtime"

	"github.com/agbru/karatsuba/internal/karatsuba"
)

// ApplyAdaptiveThresholds replaces an AutoParallelThreshold value with an
// estimate derived from the CPU count. Explicit values are kept.
func ApplyAdaptiveThresholds(cfg AppConfig) AppConfig {
	if cfg.ParallelThreshold == AutoParallelThreshold {
		cfg.ParallelThreshold = EstimateParallelThreshold(runtime.NumCPU())
	}
	return cfg
}

// EstimateParallelThreshold returns a heuristic parallel threshold, in
// digits, for a machine with numCPU logical CPUs. A single CPU gets 0,
// which keeps the recursion sequential.
func EstimateParallelThreshold(numCPU int) int {
	switch {
	case numCPU <= 1:
		return 0
	case numCPU <= 2:
		return 4096
	case numCPU <= 4:
		return 2048
	case numCPU <= 8:
		return 1024
	case numCPU <= 16:
		return 512
	default:
		return karatsuba.MinParallelThreshold
	}
}
