package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/karatsuba/internal/config"
	"github.com/agbru/karatsuba/internal/format"
	"github.com/agbru/karatsuba/internal/multiply"
	"github.com/agbru/karatsuba/internal/sysmon"
	"github.com/agbru/karatsuba/internal/ui"
)

// PrintExecutionConfig displays the operand sizes, the timeout and the
// recursion thresholds. In verbose mode it adds a host resource snapshot.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "%s\n", ui.Heading("Execution Configuration"))
	fmt.Fprintf(out, "Multiplying %s%d%s-digit x by %s%d%s-digit y with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), len(cfg.X), ui.ColorReset(),
		ui.ColorMagenta(), len(cfg.Y), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())

	parallel := "sequential"
	if cfg.ParallelThreshold > 0 {
		parallel = fmt.Sprintf("%d digits", cfg.ParallelThreshold)
	}
	fmt.Fprintf(out, "Thresholds: recursion cutoff=%s%d%s digits, parallelism=%s%s%s.\n",
		ui.ColorCyan(), cfg.Threshold, ui.ColorReset(), ui.ColorCyan(), parallel, ui.ColorReset())

	if cfg.Verbose {
		s := sysmon.Sample()
		fmt.Fprintf(out, "Host: CPU %s%.1f%%%s, memory %s%.1f%%%s used (%s available of %s).\n",
			ui.ColorCyan(), s.CPUPercent, ui.ColorReset(),
			ui.ColorCyan(), s.MemPercent, ui.ColorReset(),
			format.FormatBytes(s.AvailableBytes), format.FormatBytes(s.TotalMemory))
	}
}

// PrintExecutionMode displays whether a single strategy runs or all of them
// are compared.
func PrintExecutionMode(calculators []multiply.Calculator, out io.Writer) {
	var modeDesc string
	if len(calculators) > 1 {
		modeDesc = "Parallel comparison of all algorithms"
	} else {
		modeDesc = fmt.Sprintf("Single calculation with the %s%s%s algorithm",
			ui.ColorGreen(), calculators[0].Name(), ui.ColorReset())
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n%s\n", ui.Heading("Starting Execution"))
}
