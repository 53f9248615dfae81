// Package orchestration evaluates batches of expressions concurrently and
// aggregates their results. It decouples evaluation from presentation via
// the ProgressReporter and ResultPresenter interfaces.
package orchestration
