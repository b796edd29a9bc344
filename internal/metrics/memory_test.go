package metrics

import (
	"runtime"
	"testing"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	snap := mc.Snapshot()

	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
	if snap.TotalAlloc < snap.HeapAlloc {
		t.Error("TotalAlloc should cover HeapAlloc")
	}
}

func TestMemoryCollector_Delta(t *testing.T) {
	t.Parallel()

	mc := NewMemoryCollector()
	before := mc.Snapshot()

	buf := make([]byte, 1024*1024)
	runtime.KeepAlive(buf)

	after := mc.Snapshot()

	if after.TotalAlloc < before.TotalAlloc {
		t.Error("TotalAlloc should not decrease between snapshots")
	}
}

func TestMemoryCollector_PeakRSS(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if runtime.GOOS == "linux" && snap.PeakRSS == 0 {
		t.Error("PeakRSS should be reported on linux")
	}
}
