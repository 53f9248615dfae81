package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/ui"
)

const (
	// TruncationLimit is the digit count above which a value is truncated
	// on the terminal unless --full is given.
	TruncationLimit = 100
	// DisplayEdges is the number of digits kept at each end of a truncated
	// value.
	DisplayEdges = 25
	// ProgressRefreshRate is the refresh period of the batch progress line.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth is the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts a terminal spinner so that DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts *spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix takes the spinner's lock since the animation goroutine reads
// the suffix concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with a progress bar and ETA while a batch
// runs. It returns, calling wg.Done, once progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, total int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(total)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(orchestration.AggregatedProgress{Total: total}))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				displayProgressDone(last, total, out)
				return
			}
			last = agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(last))
		}
	}
}

func progressSuffix(p orchestration.AggregatedProgress) string {
	return fmt.Sprintf(" %s/%s %s", format.FormatCount(p.Completed), format.FormatCount(p.Total),
		format.FormatProgressBarWithETA(p.Fraction, p.ETA, ProgressBarWidth))
}

func displayProgressDone(p orchestration.AggregatedProgress, total int, out io.Writer) {
	if p.Failed > 0 {
		fmt.Fprintf(out, "%s%s of %s expressions failed%s\n",
			ui.ColorRed(), format.FormatCount(p.Failed), format.FormatCount(total), ui.ColorReset())
		return
	}
	fmt.Fprintf(out, "%s%s expressions evaluated%s\n",
		ui.ColorGreen(), format.FormatCount(p.Completed), ui.ColorReset())
}
