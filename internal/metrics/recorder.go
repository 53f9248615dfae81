package metrics

//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// Status labels attached to evaluation metrics.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

// Recorder receives one observation per evaluated expression.
type Recorder interface {
	// ObserveEvaluation records the outcome and latency of an operation.
	ObserveEvaluation(op string, d time.Duration, err error)
	// ObserveCache records a memo cache lookup for op.
	ObserveCache(op string, hit bool)
}

// NopRecorder discards all observations.
type NopRecorder struct{}

// ObserveEvaluation does nothing.
func (NopRecorder) ObserveEvaluation(string, time.Duration, error) {}

// ObserveCache does nothing.
func (NopRecorder) ObserveCache(string, bool) {}

// StatusFor maps an evaluation error to its status label.
func StatusFor(err error) string {
	var timeoutErr apperrors.TimeoutError
	switch {
	case err == nil:
		return StatusSuccess
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return StatusTimeout
	default:
		return StatusError
	}
}
