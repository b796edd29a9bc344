package karatsuba

// ─────────────────────────────────────────────────────────────────────────────
// Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// DefaultThreshold is the operand length, in digits, at or below which
	// the direct shift-and-add multiplication is used instead of recursing.
	DefaultThreshold = 16

	// MinParallelThreshold is the smallest operand length for which
	// concurrent sub-products are allowed. Below it the goroutine overhead
	// dominates the digit work of a sub-product.
	MinParallelThreshold = 256
)

// Options configures a Multiplier.
type Options struct {
	// Threshold is the recursion cutoff in digits. Values below 1 select
	// DefaultThreshold.
	Threshold int

	// ParallelThreshold is the padded operand length, in digits, from which
	// the three sub-products run concurrently. Zero disables parallelism.
	// Positive values below MinParallelThreshold are raised to it.
	ParallelThreshold int
}

// threshold returns the effective recursion cutoff.
func (o Options) threshold() int {
	if o.Threshold < 1 {
		return DefaultThreshold
	}
	return o.Threshold
}

// parallelAt reports whether a node with padded length m should compute its
// sub-products concurrently.
func (o Options) parallelAt(m int) bool {
	if o.ParallelThreshold <= 0 {
		return false
	}
	return m >= max(o.ParallelThreshold, MinParallelThreshold)
}
