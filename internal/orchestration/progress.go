package orchestration

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// ProgressAggregator turns the stream of ProgressUpdates of one batch into
// a completion fraction, a failure count and an ETA.
type ProgressAggregator struct {
	state  *format.ProgressWithETA
	total  int
	failed int
}

// NewProgressAggregator creates an aggregator for a batch of total
// expressions. It returns nil if total <= 0.
func NewProgressAggregator(total int) *ProgressAggregator {
	if total <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state: format.NewProgressWithETA(total),
		total: total,
	}
}

// AggregatedProgress is the batch state after one update.
type AggregatedProgress struct {
	Completed int
	Failed    int
	Total     int
	// Fraction is Completed / Total.
	Fraction float64
	// ETA is the estimated time remaining.
	ETA time.Duration
}

// Update records one finished expression.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if update.Err != nil {
		a.failed++
	}
	fraction, eta := a.state.Advance(1)
	return AggregatedProgress{
		Completed: a.state.Completed(),
		Failed:    a.failed,
		Total:     a.total,
		Fraction:  fraction,
		ETA:       eta,
	}
}

// Fraction returns the current completion without updating.
func (a *ProgressAggregator) Fraction() float64 { return a.state.Fraction() }

// ETA returns the current estimate without updating.
func (a *ProgressAggregator) ETA() time.Duration { return a.state.ETA() }

// Total returns the batch size.
func (a *ProgressAggregator) Total() int { return a.total }

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
