package config

import "runtime"

// EstimateWorkers returns the default batch concurrency for this machine.
// Evaluations are CPU bound, so one worker per logical CPU is enough; very
// small machines keep a second worker to overlap I/O with the spinner.
func EstimateWorkers() int {
	switch n := runtime.NumCPU(); {
	case n <= 1:
		return 2
	case n > 64:
		return 64
	default:
		return n
	}
}
