package karatsuba

import (
	"context"

	"github.com/agbru/karatsuba/internal/binary"
	"github.com/agbru/karatsuba/internal/progress"
)

const (
	// directProgressSteps is the number of progress reports emitted by a
	// direct multiplication over the digits of its second operand.
	directProgressSteps = 100

	// directCheckWork is the number of digit additions between two
	// context checks in a direct multiplication.
	directCheckWork = 1 << 16
)

// MultiplyDirect returns x*y by shift-and-add: for every 1 digit of y at
// distance d from its least significant position, x<<d is added to a running
// sum that starts at 0. It costs O(len(x)*len(y)) and is the base case of the
// recursion. The result is normalized, unlike the one returned by Multiply.
func MultiplyDirect(x, y binary.Digits) binary.Digits {
	z, _ := multiplyDirect(context.Background(), x, y, nil)
	return z
}

// multiplyDirect checks ctx every directCheckWork digit additions, so a
// long base case stops soon after cancellation.
func multiplyDirect(ctx context.Context, x, y binary.Digits, report progress.ProgressCallback) (binary.Digits, error) {
	// x*y < 2^(len(x)+len(y)), so the accumulator never overflows.
	acc := binary.AcquireScratch(len(x) + len(y))
	defer binary.ReleaseScratch(acc)

	every := max(len(y)/directProgressSteps, 1)
	work := 0
	for i := len(y) - 1; i >= 0; i-- {
		d := len(y) - 1 - i
		if y[i] == 1 {
			binary.AccumulateShifted(acc, x, d)
			work += len(x)
		}
		if work >= directCheckWork {
			work = 0
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if report != nil && (d+1)%every == 0 {
			report.Report(float64(d+1) / float64(len(y)))
		}
	}

	z := binary.StripLeadingZeros(acc)
	out := make(binary.Digits, len(z))
	copy(out, z)
	return out, nil
}
