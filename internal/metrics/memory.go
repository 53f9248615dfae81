package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc   uint64 // bytes in use by live values
	Sys         uint64 // total bytes obtained from OS
	NumGC       uint32 // completed GC cycles
	HeapObjects uint64 // allocated heap objects
}

// MemoryCollector reads runtime memory statistics. The REPL status command
// and the memory gauges both read through it.
type MemoryCollector struct {
	read func(*runtime.MemStats)
}

// NewMemoryCollector creates a collector backed by runtime.ReadMemStats.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{read: runtime.ReadMemStats}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	mc.read(&m)
	return MemorySnapshot{
		HeapAlloc:   m.HeapAlloc,
		Sys:         m.Sys,
		NumGC:       m.NumGC,
		HeapObjects: m.HeapObjects,
	}
}

// register exposes the collector as gauges that are sampled on scrape.
func (mc *MemoryCollector) register(factory promauto.Factory) {
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bigcalc_heap_alloc_bytes",
		Help: "Bytes of allocated heap objects",
	}, func() float64 { return float64(mc.Snapshot().HeapAlloc) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bigcalc_heap_objects",
		Help: "Number of allocated heap objects",
	}, func() float64 { return float64(mc.Snapshot().HeapObjects) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "bigcalc_gc_cycles",
		Help: "Number of completed GC cycles",
	}, func() float64 { return float64(mc.Snapshot().NumGC) })
}
