// Package metrics exposes evaluation counters, latency histograms, cache
// statistics and runtime memory gauges in Prometheus format.
//
// The Recorder interface is what the evaluator depends on; Prometheus is the
// production implementation and NopRecorder is used when metrics are off.
package metrics
