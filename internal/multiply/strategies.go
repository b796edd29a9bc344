package multiply

import (
	"context"
	"math"
	"math/big"
	"sync/atomic"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/karatsuba"
	"github.com/agbru/karatsuba/internal/progress"
)

// KaratsubaStrategy multiplies with the recursive Karatsuba algorithm.
type KaratsubaStrategy struct {
	last atomic.Pointer[karatsuba.Stats]
}

// Name implements Strategy.
func (s *KaratsubaStrategy) Name() string { return "karatsuba" }

// MultiplyCore implements Strategy. Each call uses its own Multiplier so
// that the recorded statistics describe a single product.
func (s *KaratsubaStrategy) MultiplyCore(ctx context.Context, report progress.ProgressCallback, x, y binary.Digits, opts Options) (binary.Digits, error) {
	m := karatsuba.New(opts.karatsubaOptions())
	z, err := m.MultiplyContext(ctx, x, y, report)
	if err != nil {
		return nil, err
	}
	stats := m.Stats()
	s.last.Store(&stats)
	return z, nil
}

// LastStats implements StatsProvider.
func (s *KaratsubaStrategy) LastStats() (karatsuba.Stats, bool) {
	if p := s.last.Load(); p != nil {
		return *p, true
	}
	return karatsuba.Stats{}, false
}

// SchoolbookStrategy runs the direct shift-and-add multiplication over the
// full operands, without any recursion.
type SchoolbookStrategy struct{}

// Name implements Strategy.
func (SchoolbookStrategy) Name() string { return "schoolbook" }

// MultiplyCore implements Strategy.
func (SchoolbookStrategy) MultiplyCore(ctx context.Context, report progress.ProgressCallback, x, y binary.Digits, _ Options) (binary.Digits, error) {
	// A cutoff no operand can exceed keeps the core in its base case.
	m := karatsuba.New(karatsuba.Options{Threshold: math.MaxInt})
	return m.MultiplyContext(ctx, x, y, report)
}

// MathBigStrategy converts the operands to math/big and back.
type MathBigStrategy struct{}

// Name implements Strategy.
func (MathBigStrategy) Name() string { return "mathbig" }

// MultiplyCore implements Strategy.
func (MathBigStrategy) MultiplyCore(ctx context.Context, report progress.ProgressCallback, x, y binary.Digits, _ Options) (binary.Digits, error) {
	a := new(big.Int).SetBytes(packBytes(x))
	b := new(big.Int).SetBytes(packBytes(y))
	report.Report(0.5)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return unpackBytes(new(big.Int).Mul(a, b).Bytes()), nil
}
