// Package sysmon samples system-wide CPU and memory usage for the REPL
// status box.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes
}

// Sampler reads system statistics through replaceable sources.
type Sampler struct {
	cpuPercent func() ([]float64, error)
	memory     func() (*mem.VirtualMemoryStat, error)
}

// NewSampler returns a Sampler backed by gopsutil. CPU usage is the delta
// since the previous call, so the first sample may report zero.
func NewSampler() *Sampler {
	return &Sampler{
		cpuPercent: func() ([]float64, error) { return cpu.Percent(0, false) },
		memory:     mem.VirtualMemory,
	}
}

// Sample collects one snapshot. Fields whose source fails stay zero.
func (s *Sampler) Sample() Stats {
	var st Stats
	if pcts, err := s.cpuPercent(); err == nil && len(pcts) > 0 {
		st.CPUPercent = clampPercent(pcts[0])
	}
	if vm, err := s.memory(); err == nil && vm != nil {
		st.MemPercent = clampPercent(vm.UsedPercent)
		st.MemTotal = vm.Total
	}
	return st
}

func clampPercent(p float64) float64 {
	return max(0, min(100, p))
}
