// Package multiply exposes the multiplication strategies behind a common
// Calculator interface and a name-based registry.
//
// The karatsuba strategy is the reference implementation. The schoolbook
// strategy runs the direct shift-and-add over the full operands, and the
// mathbig strategy converts to math/big and back; both serve as independent
// checks when all strategies are run side by side. A gmp strategy is
// registered when the binary is built with the gmp tag.
package multiply
