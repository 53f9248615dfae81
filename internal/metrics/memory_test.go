package metrics

import (
	"runtime"
	"testing"
)

func TestMemoryCollector_Snapshot(t *testing.T) {
	t.Parallel()

	snap := NewMemoryCollector().Snapshot()
	if snap.HeapAlloc == 0 {
		t.Error("HeapAlloc should be > 0")
	}
	if snap.Sys == 0 {
		t.Error("Sys should be > 0")
	}
}

func TestMemoryCollector_UsesReader(t *testing.T) {
	t.Parallel()

	mc := &MemoryCollector{read: func(m *runtime.MemStats) {
		m.HeapAlloc = 4096
		m.NumGC = 3
		m.HeapObjects = 12
	}}
	snap := mc.Snapshot()
	if snap.HeapAlloc != 4096 || snap.NumGC != 3 || snap.HeapObjects != 12 {
		t.Errorf("Snapshot() = %+v", snap)
	}
}
