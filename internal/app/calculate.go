package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/cli"
	apperrors "github.com/agbru/karatsuba/internal/errors"
	"github.com/agbru/karatsuba/internal/logging"
	"github.com/agbru/karatsuba/internal/metrics"
	"github.com/agbru/karatsuba/internal/orchestration"
	"github.com/agbru/karatsuba/internal/ui"
)

// runMultiply runs the selected strategies on the configured operands and
// reports the outcome.
func (a *Application) runMultiply(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	calculatorsToRun := orchestration.GetCalculatorsToRun(a.Config.Algo, a.Factory)
	if len(calculatorsToRun) == 0 {
		fmt.Fprintf(a.ErrWriter, "No algorithm available for %q.\n", a.Config.Algo)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calculatorsToRun, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	a.Logger.Debug("starting multiplication",
		logging.String("algo", a.Config.Algo),
		logging.Int("x_digits", len(a.Config.X)),
		logging.Int("y_digits", len(a.Config.Y)),
		logging.Int("threshold", a.Config.Threshold),
		logging.Int("parallel_threshold", a.Config.ParallelThreshold))

	recorder := metrics.NewRecorder()
	run := orchestration.Run{X: a.Config.X, Y: a.Config.Y, Options: a.Config.ToMultiplyOptions()}
	results := orchestration.ExecuteMultiplications(ctx, calculatorsToRun, run, progressReporter, progressOut,
		orchestration.WithLogger(a.Logger), orchestration.WithRecorder(recorder))

	a.markTimeouts(results)
	exitCode := a.analyzeResultsWithOutput(results, out)

	if a.Config.MetricsFile != "" {
		if err := recorder.WriteTextfile(a.Config.MetricsFile); err != nil {
			a.Logger.Error("cannot write metrics file", err, logging.String("path", a.Config.MetricsFile))
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitErrorGeneric
			}
		}
	}
	return exitCode
}

func (a *Application) analyzeResultsWithOutput(results []orchestration.CalculationResult, out io.Writer) int {
	presOpts := orchestration.PresentationOptions{
		XDigits: len(a.Config.X),
		YDigits: len(a.Config.Y),
		Verbose: a.Config.Verbose,
		Details: a.Config.Details,
	}
	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Details:    a.Config.Details,
	}
	presenter := cli.CLIResultPresenter{}

	if a.Config.Quiet {
		best := findBestResult(results)
		if best == nil || !consistent(results) {
			// Quiet mode still needs the failure or mismatch diagnostic.
			return orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, a.ErrWriter)
		}
		if err := cli.DisplayResultWithConfig(out, *best, presOpts, outputCfg); err != nil {
			a.Logger.Error("cannot save result", err, logging.String("path", outputCfg.OutputFile))
			return apperrors.ExitErrorGeneric
		}
		return apperrors.ExitSuccess
	}

	exitCode := orchestration.AnalyzeComparisonResults(results, presOpts, presenter, presenter, out)
	if exitCode != apperrors.ExitSuccess || outputCfg.OutputFile == "" {
		return exitCode
	}
	best := findBestResult(results)
	if err := cli.WriteResultToFile(*best, presOpts, outputCfg); err != nil {
		a.Logger.Error("cannot save result", err, logging.String("path", outputCfg.OutputFile))
		return apperrors.ExitErrorGeneric
	}
	fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
		ui.ColorGreen(), ui.ColorCyan(), outputCfg.OutputFile, ui.ColorReset())
	return exitCode
}

// markTimeouts replaces deadline errors with a TimeoutError naming the
// strategy and the configured limit.
func (a *Application) markTimeouts(results []orchestration.CalculationResult) {
	for i := range results {
		if errors.Is(results[i].Err, context.DeadlineExceeded) {
			results[i].Err = apperrors.TimeoutError{Operation: results[i].Name, Limit: a.Config.Timeout}
		}
	}
}

func findBestResult(results []orchestration.CalculationResult) *orchestration.CalculationResult {
	var best *orchestration.CalculationResult
	for i := range results {
		if results[i].Err == nil && (best == nil || results[i].Duration < best.Duration) {
			best = &results[i]
		}
	}
	return best
}

// consistent reports whether every successful result has the same product.
func consistent(results []orchestration.CalculationResult) bool {
	best := findBestResult(results)
	if best == nil {
		return true
	}
	for _, res := range results {
		if res.Err == nil && !binary.Equal(res.Product, best.Product) {
			return false
		}
	}
	return true
}
