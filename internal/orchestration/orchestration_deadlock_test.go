package orchestration

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/operations"
)

// TestOrchestrationNoDeadlock checks that ExecuteBatch returns under slow
// evaluators, slow reporters and cancellation.
func TestOrchestrationNoDeadlock(t *testing.T) {
	t.Parallel()

	slowReporter := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan ProgressUpdate, _ int, _ io.Writer) {
		defer wg.Done()
		for range ch {
			time.Sleep(time.Millisecond)
		}
	})
	slowEval := &MockEvaluator{EvaluateFunc: func(ctx context.Context, line string) operations.Result {
		select {
		case <-ctx.Done():
			return operations.Result{Expr: line, Err: ctx.Err()}
		case <-time.After(5 * time.Millisecond):
			return operations.Result{Expr: line}
		}
	}}

	testCases := []struct {
		name     string
		eval     Evaluator
		reporter ProgressReporter
		n        int
		workers  int
		timeout  time.Duration
	}{
		{"fast_many", &MockEvaluator{}, NullProgressReporter{}, 1000, 4, 0},
		{"slow_reporter", &MockEvaluator{}, slowReporter, 200, 16, 0},
		{"single_worker", slowEval, NullProgressReporter{}, 20, 1, 0},
		{"canceled_midway", slowEval, slowReporter, 500, 2, 20 * time.Millisecond},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			if tc.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, tc.timeout)
				defer cancel()
			}
			exprs := make([]string, tc.n)
			for i := range exprs {
				exprs[i] = "add 1 1"
			}

			done := make(chan []operations.Result, 1)
			go func() { done <- ExecuteBatch(ctx, tc.eval, exprs, tc.workers, tc.reporter, io.Discard) }()

			select {
			case results := <-done:
				if len(results) != tc.n {
					t.Errorf("got %d results, want %d", len(results), tc.n)
				}
			case <-time.After(30 * time.Second):
				t.Fatal("ExecuteBatch deadlocked")
			}
		})
	}
}
