package sysmon

import (
	"errors"
	"testing"

	"github.com/shirou/gopsutil/v4/mem"
)

func TestSample_ReturnsValidRanges(t *testing.T) {
	s := NewSampler().Sample()
	if s.CPUPercent < 0 || s.CPUPercent > 100 {
		t.Errorf("CPUPercent out of range: %f", s.CPUPercent)
	}
	if s.MemPercent < 0 || s.MemPercent > 100 {
		t.Errorf("MemPercent out of range: %f", s.MemPercent)
	}
}

func TestSample_Sources(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		cpu    func() ([]float64, error)
		memory func() (*mem.VirtualMemoryStat, error)
		want   Stats
	}{
		{
			name:   "both sources succeed",
			cpu:    func() ([]float64, error) { return []float64{12.5}, nil },
			memory: func() (*mem.VirtualMemoryStat, error) { return &mem.VirtualMemoryStat{UsedPercent: 40, Total: 1 << 30}, nil },
			want:   Stats{CPUPercent: 12.5, MemPercent: 40, MemTotal: 1 << 30},
		},
		{
			name:   "source errors leave zeros",
			cpu:    func() ([]float64, error) { return nil, errors.New("no cpu") },
			memory: func() (*mem.VirtualMemoryStat, error) { return nil, errors.New("no mem") },
			want:   Stats{},
		},
		{
			name:   "out of range values are clamped",
			cpu:    func() ([]float64, error) { return []float64{130}, nil },
			memory: func() (*mem.VirtualMemoryStat, error) { return &mem.VirtualMemoryStat{UsedPercent: -1}, nil },
			want:   Stats{CPUPercent: 100},
		},
		{
			name:   "empty cpu slice",
			cpu:    func() ([]float64, error) { return nil, nil },
			memory: func() (*mem.VirtualMemoryStat, error) { return nil, nil },
			want:   Stats{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &Sampler{cpuPercent: tt.cpu, memory: tt.memory}
			if got := s.Sample(); got != tt.want {
				t.Errorf("Sample() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
