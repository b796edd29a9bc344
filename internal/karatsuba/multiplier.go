package karatsuba

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/progress"
)

// Multiplier multiplies binary digit sequences with Karatsuba recursion.
// A Multiplier is safe for concurrent use; Stats then aggregates every
// multiplication since the last ResetStats.
type Multiplier struct {
	opts  Options
	stats statsCollector
}

// New creates a Multiplier with the given options.
func New(opts Options) *Multiplier {
	return &Multiplier{opts: opts}
}

// Multiply returns x*y computed with the default options.
// The result may carry leading zero digits, unlike MultiplyDirect; normalize
// it with binary.StripLeadingZeros before presenting it.
func Multiply(x, y binary.Digits) binary.Digits {
	return New(Options{}).Multiply(x, y)
}

// Options returns the options the Multiplier was created with.
func (m *Multiplier) Options() Options {
	return m.opts
}

// Stats returns the recursion statistics accumulated so far.
func (m *Multiplier) Stats() Stats {
	return m.stats.snapshot()
}

// ResetStats clears the accumulated recursion statistics.
func (m *Multiplier) ResetStats() {
	m.stats.reset()
}

// Multiply returns x*y. It never fails because no cancellation is possible.
// The result may carry leading zero digits.
func (m *Multiplier) Multiply(x, y binary.Digits) binary.Digits {
	z, err := m.MultiplyContext(context.Background(), x, y, nil)
	if err != nil {
		// Unreachable: the background context is never canceled and the
		// recursion reports no other error.
		panic(fmt.Sprintf("karatsuba: unexpected error: %v", err))
	}
	return z
}

// MultiplyContext returns x*y, reporting progress through report (which may
// be nil). ctx is checked at every recursive node, so a canceled context
// aborts the computation with ctx.Err() before the next split.
func (m *Multiplier) MultiplyContext(ctx context.Context, x, y binary.Digits, report progress.ProgressCallback) (binary.Digits, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	z, err := m.mul(ctx, x, y, 0, report)
	if err != nil {
		return nil, err
	}
	report.Report(1)
	return z, nil
}

// mul is the recursive step. Only the root (depth 0) reports progress.
//
// Leading zeros are stripped before the base-case test, so the threshold
// applies to the significant lengths: a 20-digit operand such as 000...01
// takes the direct path even though its written length exceeds the cutoff.
func (m *Multiplier) mul(ctx context.Context, x, y binary.Digits, depth int, report progress.ProgressCallback) (binary.Digits, error) {
	x = binary.StripLeadingZeros(x)
	y = binary.StripLeadingZeros(y)
	if binary.IsZero(x) || binary.IsZero(y) {
		m.stats.recordBaseCase(depth)
		return binary.Digits{0}, nil
	}

	t := m.opts.threshold()
	if len(x) <= t || len(y) <= t {
		m.stats.recordBaseCase(depth)
		return multiplyDirect(ctx, x, y, report)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.stats.recordCall(depth)

	n := max(len(x), len(y))
	x = binary.PadLeft(x, n)
	y = binary.PadLeft(y, n)
	half := n / 2
	low := n - half

	// Full slice expressions keep the halves from sharing spare capacity.
	xHigh, xLow := x[:half:half], x[half:]
	yHigh, yLow := y[:half:half], y[half:]

	var z2, z0, z1 binary.Digits
	var done atomic.Int32
	step := func(dst *binary.Digits, a, b binary.Digits) func(context.Context) error {
		return func(ctx context.Context) error {
			z, err := m.mul(ctx, a, b, depth+1, nil)
			if err != nil {
				return err
			}
			*dst = z
			if depth == 0 {
				report.Report(float64(done.Add(1)) / 3)
			}
			return nil
		}
	}
	highStep := step(&z2, xHigh, yHigh)
	lowStep := step(&z0, xLow, yLow)
	crossStep := step(&z1, binary.Add(xHigh, xLow), binary.Add(yHigh, yLow))

	if m.opts.parallelAt(n) {
		if err := executeParallel3(ctx, highStep, lowStep, crossStep); err != nil {
			return nil, err
		}
	} else {
		for _, f := range []func(context.Context) error{highStep, lowStep, crossStep} {
			if err := f(ctx); err != nil {
				return nil, err
			}
		}
	}

	assertCrossTerm(z1, z2, z0)
	z1 = binary.Subtract(binary.Subtract(z1, z2), z0)

	return binary.Add(
		binary.Add(binary.ShiftLeft(z2, 2*low), binary.ShiftLeft(z1, low)),
		z0,
	), nil
}
