// Package sysmon provides system-wide CPU and memory usage sampling for
// verbose pipeline reports.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemUsed    uint64  // bytes
}

// Sample collects a single system-wide CPU and memory snapshot. CPU uses
// interval=0 (delta since the previous call). Fields that cannot be read
// are left at zero.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
		s.MemUsed = vm.Used
	}
	return s
}

// String formats the snapshot for log output.
func (s Stats) String() string {
	return fmt.Sprintf("cpu=%.1f%% mem=%.1f%% (%d MiB)",
		s.CPUPercent, s.MemPercent, s.MemUsed>>20)
}
