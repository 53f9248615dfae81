package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

func TestStatusFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want string
	}{
		{nil, StatusSuccess},
		{errors.New("boom"), StatusError},
		{context.DeadlineExceeded, StatusTimeout},
		{context.Canceled, StatusError},
		{apperrors.EvaluationError{Op: "fact", Cause: apperrors.TimeoutError{Operation: "fact", Limit: time.Second}}, StatusTimeout},
	}
	for _, tt := range tests {
		if got := StatusFor(tt.err); got != tt.want {
			t.Errorf("StatusFor(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestPrometheus_ObserveEvaluation(t *testing.T) {
	t.Parallel()

	p := NewPrometheus(nil)
	p.ObserveEvaluation("add", time.Millisecond, nil)
	p.ObserveEvaluation("add", time.Millisecond, nil)
	p.ObserveEvaluation("div", time.Millisecond, errors.New("division by zero"))

	if got := testutil.ToFloat64(p.evaluations.WithLabelValues("add", StatusSuccess)); got != 2 {
		t.Errorf("add success = %v, want 2", got)
	}
	if got := testutil.ToFloat64(p.evaluations.WithLabelValues("div", StatusError)); got != 1 {
		t.Errorf("div error = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(p.duration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestPrometheus_ObserveCache(t *testing.T) {
	t.Parallel()

	p := NewPrometheus(nil)
	p.ObserveCache("gcd", true)
	p.ObserveCache("gcd", false)
	p.ObserveCache("gcd", true)

	if got := testutil.ToFloat64(p.cache.WithLabelValues("gcd", "true")); got != 2 {
		t.Errorf("hits = %v, want 2", got)
	}
}

func TestPrometheus_Handler(t *testing.T) {
	t.Parallel()

	mc := &MemoryCollector{read: func(m *runtime.MemStats) { m.HeapAlloc = 777 }}
	p := NewPrometheus(mc)
	p.ObserveEvaluation("mul", time.Microsecond, nil)

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`bigcalc_evaluations_total{op="mul",status="success"} 1`,
		"bigcalc_heap_alloc_bytes 777",
		"bigcalc_evaluation_duration_seconds_bucket",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}

	rec = httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST status = %d, want 405", rec.Code)
	}
}

func TestNopRecorder(t *testing.T) {
	t.Parallel()
	var r Recorder = NopRecorder{}
	r.ObserveEvaluation("add", time.Second, nil)
	r.ObserveCache("add", true)
}
