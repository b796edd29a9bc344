// # Naming Conventions
//
// Functions in this package follow consistent naming patterns:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/agbru/karatsuba/internal/errors"
	"github.com/agbru/karatsuba/internal/orchestration"
	"github.com/agbru/karatsuba/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the product (empty for no file output).
	OutputFile string
	// Quiet prints only the product.
	Quiet bool
	// Verbose adds host information to the header.
	Verbose bool
	// Details adds sizes, recursion and memory statistics.
	Details bool
}

// WriteResultToFile writes the product to config.OutputFile, preceded by a
// commented header. Missing parent directories are created. It does nothing
// when no output file is configured.
func WriteResultToFile(result orchestration.CalculationResult, opts orchestration.PresentationOptions, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	if dir := filepath.Dir(config.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.WrapError(err, "failed to create directory")
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return apperrors.WrapError(err, "failed to create output file")
	}

	fmt.Fprintf(file, "# Binary Multiplication Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Algorithm: %s\n", result.Name)
	fmt.Fprintf(file, "# Duration: %s\n", result.Duration)
	fmt.Fprintf(file, "# Operand digits: x=%d y=%d\n", opts.XDigits, opts.YDigits)
	fmt.Fprintf(file, "# Product digits: %d\n", len(result.Product))
	fmt.Fprintf(file, "\n%s\n", result.Product)

	if err := file.Close(); err != nil {
		return apperrors.WrapError(err, "failed to write output file")
	}
	return nil
}

// FormatQuietResult returns the product alone, for scripting.
func FormatQuietResult(result orchestration.CalculationResult) string {
	return result.Product.String()
}

// DisplayQuietResult prints the product alone on one line.
func DisplayQuietResult(out io.Writer, result orchestration.CalculationResult) {
	fmt.Fprintln(out, FormatQuietResult(result))
}

// DisplayResultWithConfig displays result in the mode selected by config and
// saves it to config.OutputFile when set.
func DisplayResultWithConfig(out io.Writer, result orchestration.CalculationResult, opts orchestration.PresentationOptions, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, result)
	} else {
		opts.Verbose = config.Verbose
		opts.Details = config.Details
		DisplayResult(result, opts, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(result, opts, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
