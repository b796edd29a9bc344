//go:build gmp

package multiply

import (
	"context"

	"github.com/ncw/gmp"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/progress"
)

func init() {
	optionalStrategies = append(optionalStrategies, func() Strategy { return GMPStrategy{} })
}

// GMPStrategy multiplies with the GNU Multiple Precision library.
type GMPStrategy struct{}

// Name implements Strategy.
func (GMPStrategy) Name() string { return "gmp" }

// MultiplyCore implements Strategy.
func (GMPStrategy) MultiplyCore(ctx context.Context, report progress.ProgressCallback, x, y binary.Digits, _ Options) (binary.Digits, error) {
	a := new(gmp.Int).SetBytes(packBytes(x))
	b := new(gmp.Int).SetBytes(packBytes(y))
	report.Report(0.5)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return unpackBytes(new(gmp.Int).Mul(a, b).Bytes()), nil
}
