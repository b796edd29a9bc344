// Package karatsuba multiplies binary digit sequences with the Karatsuba
// divide-and-conquer algorithm.
//
// Operands at or below the recursion cutoff (DefaultThreshold digits) are
// multiplied directly by shift-and-add. Larger operands are padded to a
// common length m, split at m/2 into high and low halves, and combined from
// three recursive sub-products:
//
//	z2 = xHigh*yHigh
//	z0 = xLow*yLow
//	z1 = (xHigh+xLow)*(yHigh+yLow) - z2 - z0
//	x*y = z2<<2(m-m/2) + z1<<(m-m/2) + z0
//
// The subtraction relies on z1 >= z2+z0, which holds algebraically for every
// split. Builds with the "debug" tag assert it; release builds do not check.
//
// The computation is pure. The three sub-products are independent and may
// run concurrently when Options.ParallelThreshold enables it.
package karatsuba
