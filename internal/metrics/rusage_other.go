//go:build !linux && !darwin

package metrics

func peakRSS() (uint64, bool) { return 0, false }
