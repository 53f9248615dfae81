package orchestration

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/agbru/bigcalc/internal/operations"
)

// Evaluator evaluates one expression line. *operations.Evaluator satisfies
// it.
type Evaluator interface {
	Evaluate(ctx context.Context, line string) operations.Result
}

// ProgressUpdate reports that one expression of a batch has finished.
type ProgressUpdate struct {
	// Index is the position of the expression in the batch.
	Index int
	// Expr is the expression that finished.
	Expr string
	// Err is the evaluation error, if any.
	Err error
}

// ProgressReporter displays batch progress. This interface keeps the
// orchestration layer independent of terminal concerns.
type ProgressReporter interface {
	// DisplayProgress consumes updates until progressChan is closed, then
	// calls wg.Done. total is the number of expressions in the batch.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)
}

// ProgressReporterFunc adapts a function to ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer)

// DisplayProgress calls f.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, total int, out io.Writer) {
	f(wg, progressChan, total, out)
}

// NullProgressReporter drains the progress channel without output. It is
// used in quiet mode and for single expressions.
type NullProgressReporter struct{}

// DisplayProgress drains the channel.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders evaluation results.
type ResultPresenter interface {
	// PresentResult displays one result, successful or not.
	PresentResult(result operations.Result, out io.Writer)
	// PresentSummary displays the per-operation summary of a batch.
	PresentSummary(results []operations.Result, out io.Writer)
	// HandleError reports err and returns the matching exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}
