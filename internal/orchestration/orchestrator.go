package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/karatsuba/internal/binary"
	apperrors "github.com/agbru/karatsuba/internal/errors"
	"github.com/agbru/karatsuba/internal/logging"
	"github.com/agbru/karatsuba/internal/multiply"
	"github.com/agbru/karatsuba/internal/progress"
)

const tracerName = "github.com/agbru/karatsuba/internal/orchestration"

// ProgressBufferMultiplier sizes the progress channel per calculator. A
// larger buffer makes dropped updates less likely when the display lags.
const ProgressBufferMultiplier = 5

// Run describes one multiplication to execute with every selected strategy.
type Run struct {
	X, Y    binary.Digits
	Options multiply.Options
}

// ExecOption customizes ExecuteMultiplications.
type ExecOption func(*execSettings)

type execSettings struct {
	logger   logging.Logger
	recorder RunRecorder
}

// WithLogger logs the completion of every strategy run.
func WithLogger(l logging.Logger) ExecOption {
	return func(s *execSettings) { s.logger = l }
}

// WithRecorder forwards every completed run to r.
func WithRecorder(r RunRecorder) ExecOption {
	return func(s *execSettings) { s.recorder = r }
}

// ExecuteMultiplications runs every calculator concurrently on the same
// operands and returns one result per calculator, in input order. Failures
// are reported in the results; a failing strategy does not cancel the
// others. Each run is wrapped in an OpenTelemetry span.
func ExecuteMultiplications(ctx context.Context, calculators []multiply.Calculator, run Run,
	progressReporter ProgressReporter, out io.Writer, opts ...ExecOption) []CalculationResult {
	var settings execSettings
	for _, opt := range opts {
		opt(&settings)
	}

	tracer := otel.Tracer(tracerName)
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan progress.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	var g errgroup.Group
	for i, calc := range calculators {
		g.Go(func() error {
			spanCtx, span := tracer.Start(ctx, "multiply."+calc.Name())
			span.SetAttributes(
				attribute.String("multiply.algo", calc.Name()),
				attribute.Int("multiply.x_digits", len(run.X)),
				attribute.Int("multiply.y_digits", len(run.Y)),
			)
			defer span.End()

			start := time.Now()
			product, err := calc.Multiply(spanCtx, progressChan, i, run.X, run.Y, run.Options)
			if err != nil && !apperrors.IsContextError(err) {
				err = apperrors.CalculationError{Cause: err}
			}
			res := CalculationResult{Name: calc.Name(), Product: product, Duration: time.Since(start), Err: err}
			if sp, ok := calc.(multiply.StatsProvider); ok && err == nil {
				if stats, recorded := sp.LastStats(); recorded {
					res.Stats = &stats
				}
			}
			results[i] = res

			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetAttributes(attribute.Int("multiply.product_digits", len(product)))
			}
			if settings.logger != nil {
				if err != nil {
					settings.logger.Error("strategy failed", err, logging.String("algo", res.Name))
				} else {
					settings.logger.Debug("strategy finished",
						logging.String("algo", res.Name),
						logging.Int("product_digits", len(product)),
						logging.Float64("seconds", res.Duration.Seconds()))
				}
			}
			if settings.recorder != nil {
				settings.recorder.ObserveRun(res)
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results by success then duration, prints
// the comparison table and checks that every successful strategy produced
// the same product. It returns the exit code of the run.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions,
	presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	var firstErrorDuration time.Duration
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError, firstErrorDuration = results[i].Err, results[i].Duration
			}
			continue
		}
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if firstValid == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm could complete the multiplication.\n")
		return errHandler.HandleError(firstError, firstErrorDuration, out)
	}

	for _, res := range results {
		if res.Err == nil && !binary.Equal(res.Product, firstValid.Product) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree on the product.\n", firstValid.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	if len(results) > 1 {
		fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	}
	presenter.PresentResult(*firstValid, opts, out)
	return apperrors.ExitSuccess
}
