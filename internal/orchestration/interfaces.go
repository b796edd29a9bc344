package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/karatsuba"
	"github.com/agbru/karatsuba/internal/progress"
)

// CalculationResult is the outcome of a single strategy run. It is the
// shared domain type between orchestration and presentation.
type CalculationResult struct {
	// Name is the registry name of the strategy (e.g. "karatsuba").
	Name string
	// Product is the normalized product. It is nil if an error occurred.
	Product binary.Digits
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is the error that ended the run, if any.
	Err error
	// Stats describes the recursion tree for strategies that record it.
	Stats *karatsuba.Stats
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	XDigits int
	YDigits int
	Verbose bool
	Details bool
}

// ProgressReporter displays progress updates until progressChan is closed.
// DisplayProgress runs in its own goroutine and must call wg.Done on return.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without output. It is
// used in quiet mode.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders results. Implementations decide the format.
type ResultPresenter interface {
	// PresentComparisonTable displays one row per strategy run.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the agreed product.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler reports an error and returns the matching exit code.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// RunRecorder receives one observation per completed strategy run.
type RunRecorder interface {
	ObserveRun(result CalculationResult)
}
