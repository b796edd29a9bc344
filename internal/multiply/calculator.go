package multiply

import (
	"context"
	"fmt"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/karatsuba"
	"github.com/agbru/karatsuba/internal/progress"
)

// Options configures a multiplication run. Strategies ignore the fields
// that do not apply to them.
type Options struct {
	// Threshold is the Karatsuba recursion cutoff in digits (0 = default).
	Threshold int
	// ParallelThreshold is the operand length from which Karatsuba
	// sub-products run concurrently (0 = sequential).
	ParallelThreshold int
}

// karatsubaOptions converts o to the core multiplier options.
func (o Options) karatsubaOptions() karatsuba.Options {
	return karatsuba.Options{
		Threshold:         o.Threshold,
		ParallelThreshold: o.ParallelThreshold,
	}
}

// Calculator multiplies two binary digit sequences.
type Calculator interface {
	// Multiply returns x*y in normalized form. Progress is sent to
	// progressChan tagged with calcIndex; a nil channel disables reporting.
	Multiply(ctx context.Context, progressChan chan<- progress.ProgressUpdate, calcIndex int,
		x, y binary.Digits, opts Options) (binary.Digits, error)

	// Name returns the registry key of the strategy.
	Name() string
}

// Strategy is the algorithm behind a Calculator. MultiplyCore may return
// a product with leading zeros.
type Strategy interface {
	Name() string
	MultiplyCore(ctx context.Context, report progress.ProgressCallback, x, y binary.Digits, opts Options) (binary.Digits, error)
}

// StatsProvider is implemented by calculators that record recursion
// statistics. LastStats describes the most recently completed multiplication.
type StatsProvider interface {
	LastStats() (karatsuba.Stats, bool)
}

// MulCalculator adapts a Strategy to the Calculator interface. It handles
// progress plumbing and normalizes the product.
type MulCalculator struct {
	strategy Strategy
}

// NewCalculator wraps strategy in a Calculator. It panics on a nil strategy.
func NewCalculator(strategy Strategy) Calculator {
	if strategy == nil {
		panic("multiply: nil strategy")
	}
	return &MulCalculator{strategy: strategy}
}

// Name returns the strategy name.
func (c *MulCalculator) Name() string {
	return c.strategy.Name()
}

// Multiply implements Calculator.
func (c *MulCalculator) Multiply(ctx context.Context, progressChan chan<- progress.ProgressUpdate, calcIndex int,
	x, y binary.Digits, opts Options) (binary.Digits, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := progress.ChannelCallback(progressChan, calcIndex)
	report.Report(0)

	z, err := c.strategy.MultiplyCore(ctx, report, x, y, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.strategy.Name(), err)
	}
	report.Report(1)
	return binary.StripLeadingZeros(z), nil
}

// LastStats forwards to the strategy when it records statistics.
func (c *MulCalculator) LastStats() (karatsuba.Stats, bool) {
	if sp, ok := c.strategy.(StatsProvider); ok {
		return sp.LastStats()
	}
	return karatsuba.Stats{}, false
}
