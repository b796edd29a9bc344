// Package cli renders the terminal output of the multiply command: the
// execution header, the progress spinner, the comparison table and the
// product.
package cli
