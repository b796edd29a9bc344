// Package sysmon samples host CPU and memory usage for the verbose
// execution header.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of host resource usage.
type Stats struct {
	LogicalCPUs    int
	CPUPercent     float64 // 0.0 .. 100.0
	MemPercent     float64 // 0.0 .. 100.0
	TotalMemory    uint64  // bytes
	AvailableBytes uint64
}

// Sample collects a single host snapshot. CPU usage is the delta since the
// previous call (interval 0). Fields that cannot be read stay zero.
func Sample() Stats {
	var s Stats
	if n, err := cpu.Counts(true); err == nil {
		s.LogicalCPUs = n
	}
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vmem, err := mem.VirtualMemory(); err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.TotalMemory = vmem.Total
		s.AvailableBytes = vmem.Available
	}
	return s
}
