package apperrors

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

var errDivideByZero = errors.New("bigint: division by zero")

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error returns message", ConfigError{Message: "invalid radix"}, "invalid radix"},
		{"NewConfigError formats", NewConfigError("radix %d outside [%d, %d]", 40, 2, 36), "radix 40 outside [2, 36]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			var configErr ConfigError
			if !errors.As(tt.err, &configErr) {
				t.Error("expected error to be ConfigError type")
			}
		})
	}
}

func TestEvaluationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         EvaluationError
		expectedMsg string
	}{
		{"with operation", EvaluationError{Op: "div", Cause: errDivideByZero}, "div: bigint: division by zero"},
		{"without operation", EvaluationError{Cause: errDivideByZero}, "bigint: division by zero"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, tt.err.Error())
			}
			if !errors.Is(tt.err, errDivideByZero) {
				t.Error("errors.Is should find the cause through EvaluationError")
			}
			if tt.err.Unwrap() != errDivideByZero {
				t.Error("Unwrap should return the original cause")
			}
		})
	}
}

func TestTimeoutError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err      TimeoutError
		expected string
	}{
		{TimeoutError{Operation: "modpow", Limit: 30 * time.Second}, `operation "modpow" timed out after 30s`},
		{TimeoutError{Operation: "nextprime", Limit: 500 * time.Millisecond}, `operation "nextprime" timed out after 500ms`},
	}
	for _, tt := range tests {
		var err error = tt.err
		if err.Error() != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, err.Error())
		}
		var timeoutErr TimeoutError
		if !errors.As(WrapError(err, "batch line 3"), &timeoutErr) || timeoutErr != tt.err {
			t.Errorf("errors.As through WrapError gave %+v", timeoutErr)
		}
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "frobnicate", Message: "unknown operation"}
	if got, want := err.Error(), `validation error for "frobnicate": unknown operation`; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	var validationErr ValidationError
	if !errors.As(EvaluationError{Op: "line", Cause: err}, &validationErr) {
		t.Error("errors.As should find ValidationError through EvaluationError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		original    error
		format      string
		args        []any
		expectedMsg string
		checkIs     error
	}{
		{"wraps error with context", errors.New("no such file"), "reading batch", nil, "reading batch: no such file", nil},
		{"preserves chain", context.DeadlineExceeded, "evaluating", nil, "evaluating: context deadline exceeded", context.DeadlineExceeded},
		{"format arguments", errDivideByZero, "line %d of %s", []any{7, "input.txt"}, "line 7 of input.txt: bigint: division by zero", errDivideByZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := WrapError(tt.original, tt.format, tt.args...)
			if wrapped == nil {
				t.Fatal("wrapped error should not be nil")
			}
			if wrapped.Error() != tt.expectedMsg {
				t.Errorf("expected %q, got %q", tt.expectedMsg, wrapped.Error())
			}
			if tt.checkIs != nil && !errors.Is(wrapped, tt.checkIs) {
				t.Errorf("wrapped error should preserve %v in the chain", tt.checkIs)
			}
		})
	}
	if WrapError(nil, "anything") != nil {
		t.Error("WrapError(nil, ...) should return nil")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"context.Canceled", context.Canceled, true},
		{"context.DeadlineExceeded", context.DeadlineExceeded, true},
		{"wrapped context.Canceled", WrapError(context.Canceled, "batch"), true},
		{"engine error", errDivideByZero, false},
		{"nil error", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.expected {
				t.Errorf("IsContextError(%v) = %v, expected %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"timeout", TimeoutError{Operation: "pow", Limit: time.Second}, ExitErrorTimeout},
		{"deadline", WrapError(context.DeadlineExceeded, "batch"), ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"config", NewConfigError("bad workers"), ExitErrorConfig},
		{"validation", ValidationError{Field: "op", Message: "unknown"}, ExitErrorEvaluation},
		{"evaluation", EvaluationError{Op: "div", Cause: errDivideByZero}, ExitErrorEvaluation},
		{"other", errors.New("disk full"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleEvaluationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		duration time.Duration
		code     int
		contains string
	}{
		{"nil", nil, 0, ExitSuccess, ""},
		{"timeout", TimeoutError{Operation: "modpow", Limit: time.Second}, time.Second, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, 0, ExitErrorCanceled, "Canceled"},
		{"config", NewConfigError("radix 99"), 0, ExitErrorConfig, "radix 99"},
		{"evaluation", EvaluationError{Op: "div", Cause: errDivideByZero}, time.Millisecond, ExitErrorEvaluation, "division by zero"},
		{"generic", errors.New("disk full"), 0, ExitErrorGeneric, "unexpected error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if got := HandleEvaluationError(tt.err, tt.duration, &buf, nil); got != tt.code {
				t.Errorf("exit code = %d, want %d", got, tt.code)
			}
			if !strings.Contains(buf.String(), tt.contains) {
				t.Errorf("output %q should contain %q", buf.String(), tt.contains)
			}
		})
	}
}

func TestExitCodesAreDistinct(t *testing.T) {
	t.Parallel()
	codes := map[string]int{
		"ExitSuccess":         ExitSuccess,
		"ExitErrorGeneric":    ExitErrorGeneric,
		"ExitErrorTimeout":    ExitErrorTimeout,
		"ExitErrorEvaluation": ExitErrorEvaluation,
		"ExitErrorConfig":     ExitErrorConfig,
		"ExitErrorCanceled":   ExitErrorCanceled,
	}
	if ExitErrorCanceled != 130 {
		t.Errorf("ExitErrorCanceled should be 130 (SIGINT convention), got %d", ExitErrorCanceled)
	}
	seen := make(map[int]string)
	for name, code := range codes {
		if existing, ok := seen[code]; ok {
			t.Errorf("duplicate exit code %d: %s and %s", code, existing, name)
		}
		seen[code] = name
	}
}
