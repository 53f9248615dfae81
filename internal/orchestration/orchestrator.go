package orchestration

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/operations"
)

// ProgressBufferMultiplier sizes the progress channel relative to the worker
// count so evaluations rarely block on a slow display.
const ProgressBufferMultiplier = 4

// ExecuteBatch evaluates exprs concurrently with at most workers goroutines
// and returns the results in input order.
//
// A failing expression does not stop the batch; its error is kept in its
// Result. Cancelling ctx makes the remaining evaluations return promptly
// with a cancellation or timeout error.
func ExecuteBatch(ctx context.Context, evaluator Evaluator, exprs []string, workers int, reporter ProgressReporter, out io.Writer) []operations.Result {
	if workers < 1 {
		workers = 1
	}
	if reporter == nil {
		reporter = NullProgressReporter{}
	}

	results := make([]operations.Result, len(exprs))
	progressChan := make(chan ProgressUpdate, workers*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(exprs), out)

	var g errgroup.Group
	g.SetLimit(workers)
	for i, expr := range exprs {
		g.Go(func() error {
			res := evaluator.Evaluate(ctx, expr)
			results[i] = res
			progressChan <- ProgressUpdate{Index: i, Expr: expr, Err: res.Err}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeResults presents every result in order, then a summary for batches
// of more than one expression, and returns the exit code of the first
// failure or ExitSuccess.
func AnalyzeResults(results []operations.Result, presenter ResultPresenter, out io.Writer) int {
	var (
		firstErr error
		failed   int
		total    time.Duration
	)
	for _, res := range results {
		presenter.PresentResult(res, out)
		total += res.Duration
		if res.Err != nil {
			failed++
			if firstErr == nil {
				firstErr = res.Err
			}
		}
	}

	if len(results) > 1 {
		presenter.PresentSummary(results, out)
		if failed == 0 {
			fmt.Fprintf(out, "\nGlobal Status: Success. %d expressions evaluated.\n", len(results))
		} else {
			fmt.Fprintf(out, "\nGlobal Status: Failure. %d of %d expressions failed.\n", failed, len(results))
		}
	}

	if firstErr != nil {
		return presenter.HandleError(firstErr, total, out)
	}
	return apperrors.ExitSuccess
}
