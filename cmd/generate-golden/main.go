// Command generate-golden writes the golden products file used by the
// karatsuba package tests. Products are computed with math/big, which serves
// as the independent oracle.
//
// Usage:
//
//	go run ./cmd/generate-golden -out internal/karatsuba/testdata/products.golden.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/big"
	"os"
	"strings"

	"github.com/agbru/karatsuba/internal/logging"
)

// goldenFile is the on-disk layout of the golden products file.
type goldenFile struct {
	Cases []goldenCase `json:"cases"`
}

// goldenCase is a single x*y = product entry, all in binary.
type goldenCase struct {
	Name    string `json:"name"`
	X       string `json:"x"`
	Y       string `json:"y"`
	Product string `json:"product"`
}

// goldenLengths straddle the recursion cutoff and the split points of the
// first few recursion levels.
var goldenLengths = []int{1, 2, 15, 16, 17, 31, 32, 33, 64, 100, 127, 128, 129, 255, 256, 257, 500}

// ones returns the binary string of 2^n - 1.
func ones(n int) string {
	return strings.Repeat("1", n)
}

// alternating returns an n-digit binary string "1010...".
func alternating(n int) string {
	return strings.Repeat("10", (n+1)/2)[:n]
}

// triplet returns an n-digit binary string "110110...".
func triplet(n int) string {
	return strings.Repeat("110", (n+2)/3)[:n]
}

// sparse returns the binary string of 2^(n-1) + 1 (or "1" for n == 1).
func sparse(n int) string {
	if n == 1 {
		return "1"
	}
	return "1" + strings.Repeat("0", n-2) + "1"
}

// product returns x*y in binary.
func product(x, y string) string {
	a, _ := new(big.Int).SetString(x, 2)
	b, _ := new(big.Int).SetString(y, 2)
	return new(big.Int).Mul(a, b).Text(2)
}

// buildCases enumerates the golden cases in a fixed order.
func buildCases() []goldenCase {
	var cases []goldenCase
	add := func(name, x, y string) {
		cases = append(cases, goldenCase{Name: name, X: x, Y: y, Product: product(x, y)})
	}
	for _, n := range goldenLengths {
		add(fmt.Sprintf("ones-%d", n), ones(n), ones(n))
		add(fmt.Sprintf("alternating-triplet-%d", n), alternating(n), triplet(n))
		add(fmt.Sprintf("sparse-ones-%d", n), sparse(n), ones(n/2+1))
	}
	return cases
}

func run(out string, logger logging.Logger) error {
	cases := buildCases()
	data, err := json.MarshalIndent(goldenFile{Cases: cases}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal golden cases: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	logger.Info("golden file written", logging.String("path", out), logging.Int("cases", len(cases)))
	return nil
}

func main() {
	out := flag.String("out", "internal/karatsuba/testdata/products.golden.json", "output path")
	flag.Parse()

	logger := logging.NewStdLoggerAdapter(log.New(os.Stderr, "generate-golden: ", 0))
	if err := run(*out, logger); err != nil {
		logger.Error("failed", err)
		os.Exit(1)
	}
}
