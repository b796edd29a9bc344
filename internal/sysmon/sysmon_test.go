package sysmon

import "testing"

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
	if s.AvailableBytes > s.TotalMemory {
		t.Errorf("available %d exceeds total %d", s.AvailableBytes, s.TotalMemory)
	}
}

func TestSample_HostIsVisible(t *testing.T) {
	s := Sample()
	if s.TotalMemory == 0 {
		t.Error("expected non-zero total memory on a running system")
	}
	if s.LogicalCPUs < 1 {
		t.Errorf("expected at least one logical CPU, got %d", s.LogicalCPUs)
	}
}
