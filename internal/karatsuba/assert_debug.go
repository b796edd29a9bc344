//go:build debug

package karatsuba

import (
	"fmt"

	"github.com/agbru/karatsuba/internal/binary"
)

// assertionsEnabled reports whether invariant checks are compiled in.
const assertionsEnabled = true

// assertCrossTerm panics unless z1 >= z2+z0. A failure means the split or
// the recombination is wrong, never that the input is bad.
func assertCrossTerm(z1, z2, z0 binary.Digits) {
	if binary.Compare(z1, binary.Add(z2, z0)) < 0 {
		panic(fmt.Sprintf("karatsuba: cross term underflow: z1=%s < z2+z0 (z2=%s, z0=%s)", z1, z2, z0))
	}
}
