package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"
	"unicode/utf8"

	apperrors "github.com/agbru/karatsuba/internal/errors"
	"github.com/agbru/karatsuba/internal/format"
	"github.com/agbru/karatsuba/internal/metrics"
	"github.com/agbru/karatsuba/internal/orchestration"
	"github.com/agbru/karatsuba/internal/progress"
	"github.com/agbru/karatsuba/internal/ui"
)

// CLIColorProvider implements apperrors.ColorProvider with the active theme.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and a progress bar.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress implements orchestration.ProgressReporter.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numCalculators int, out io.Writer) {
	DisplayProgress(wg, progressChan, numCalculators, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter and
// orchestration.ErrorHandler for terminal output.
type CLIResultPresenter struct{}

var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ErrorHandler    = CLIResultPresenter{}
)

// PresentComparisonTable displays one row per strategy with its duration
// and status. Padding is computed on the raw text so that color codes do
// not break the alignment.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.CalculationResult, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Comparison Summary"))

	maxNameLen := len("Algorithm")
	maxDurationLen := len("Duration")
	for _, res := range results {
		maxNameLen = max(maxNameLen, len(res.Name))
		maxDurationLen = max(maxDurationLen, utf8.RuneCountInString(tableDuration(res.Duration)))
	}

	fmt.Fprintf(out, "%sAlgorithm%s%s   %sDuration%s%s   %sStatus%s\n",
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxNameLen-len("Algorithm")),
		ui.ColorUnderline(), ui.ColorReset(), padRight("", maxDurationLen-len("Duration")),
		ui.ColorUnderline(), ui.ColorReset())

	for _, res := range results {
		var status string
		if res.Err != nil {
			status = fmt.Sprintf("%s❌ Failure (%v)%s", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			status = fmt.Sprintf("%s✅ Success%s", ui.ColorGreen(), ui.ColorReset())
		}
		duration := tableDuration(res.Duration)
		fmt.Fprintf(out, "%s%s%s%s   %s%s%s%s   %s\n",
			ui.ColorBlue(), res.Name, ui.ColorReset(), padRight("", maxNameLen-len(res.Name)),
			ui.ColorYellow(), duration, ui.ColorReset(), padRight("", maxDurationLen-utf8.RuneCountInString(duration)),
			status)
	}
}

func tableDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult implements orchestration.ResultPresenter.
func (CLIResultPresenter) PresentResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts, out)
}

// HandleError implements orchestration.ErrorHandler.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleCalculationError(err, duration, out, CLIColorProvider{})
}

// DisplayResult prints the full product on the Result line. With
// opts.Details it adds the operand and product sizes, a shortened preview of
// products longer than TruncationLimit, the recursion statistics and a
// memory reading.
func DisplayResult(result orchestration.CalculationResult, opts orchestration.PresentationOptions, out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Result"))

	product := result.Product.String()
	fmt.Fprintf(out, "Result: %s%s%s\n", ui.ColorGreen(), product, ui.ColorReset())

	if !opts.Details {
		return
	}
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Details"))
	fmt.Fprintf(out, "Algorithm:        %s%s%s\n", ui.ColorBlue(), result.Name, ui.ColorReset())
	fmt.Fprintf(out, "Calculation time: %s%s%s\n",
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())
	fmt.Fprintf(out, "Operand digits:   x=%s%s%s y=%s%s%s\n",
		ui.ColorCyan(), groupDigits(opts.XDigits), ui.ColorReset(), ui.ColorCyan(), groupDigits(opts.YDigits), ui.ColorReset())
	fmt.Fprintf(out, "Product digits:   %s%s%s\n", ui.ColorCyan(), groupDigits(len(result.Product)), ui.ColorReset())
	if len(product) > TruncationLimit {
		fmt.Fprintf(out, "Product preview:  %s\n", format.TruncateDigits(product, DisplayEdges))
	}
	if s := result.Stats; s != nil {
		fmt.Fprintf(out, "Recursive calls:  %d\n", s.RecursiveCalls)
		fmt.Fprintf(out, "Base cases:       %d\n", s.BaseCases)
		fmt.Fprintf(out, "Max depth:        %d\n", s.MaxDepth)
	}
	DisplayMemoryStats(metrics.NewMemoryCollector().Snapshot(), out)
}

func groupDigits(n int) string {
	return format.FormatNumberString(strconv.Itoa(n))
}

// DisplayMemoryStats shows a memory reading taken after a calculation.
func DisplayMemoryStats(snap metrics.MemorySnapshot, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(snap.HeapAlloc))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(snap.TotalAlloc))
	if snap.PeakRSS > 0 {
		fmt.Fprintf(out, "  Peak RSS:        %s\n", format.FormatBytes(snap.PeakRSS))
	}
	fmt.Fprintf(out, "  GC cycles:       %d\n", snap.NumGC)
	if snap.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(snap.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}
