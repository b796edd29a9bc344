//go:build linux || darwin

package metrics

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// peakRSS returns the maximum resident set size of the process in bytes.
func peakRSS() (uint64, bool) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, false
	}
	if ru.Maxrss <= 0 {
		return 0, false
	}
	// Linux reports kilobytes, Darwin bytes.
	if runtime.GOOS == "darwin" {
		return uint64(ru.Maxrss), true
	}
	return uint64(ru.Maxrss) * 1024, true
}
