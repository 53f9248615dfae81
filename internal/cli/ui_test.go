package cli

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/orchestration"
)

// MockSpinner records calls for assertions.
type MockSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (m *MockSpinner) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = true
}

func (m *MockSpinner) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
}

func (m *MockSpinner) UpdateSuffix(suffix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suffixes = append(m.suffixes, suffix)
}

func TestRealSpinner(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	rs := &realSpinner{spinner.New(spinner.CharSets[11], 10*time.Millisecond, spinner.WithWriter(&buf))}

	rs.Start()
	rs.UpdateSuffix(" working")
	rs.Stop()
}

// TestDisplayProgress replaces newSpinner and must not run in parallel.
func TestDisplayProgress(t *testing.T) {
	original := newSpinner
	defer func() { newSpinner = original }()

	tests := []struct {
		name    string
		updates []orchestration.ProgressUpdate
		want    string
	}{
		{
			name:    "all succeed",
			updates: []orchestration.ProgressUpdate{{Index: 0}, {Index: 1}, {Index: 2}},
			want:    "3 expressions evaluated",
		},
		{
			name:    "some fail",
			updates: []orchestration.ProgressUpdate{{Index: 0}, {Index: 1, Err: errors.New("boom")}, {Index: 2}},
			want:    "1 of 3 expressions failed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &MockSpinner{}
			newSpinner = func(...spinner.Option) Spinner { return mock }
			var out bytes.Buffer
			var wg sync.WaitGroup
			ch := make(chan orchestration.ProgressUpdate, len(tt.updates))
			for _, u := range tt.updates {
				ch <- u
			}
			close(ch)

			wg.Add(1)
			DisplayProgress(&wg, ch, len(tt.updates), &out)
			wg.Wait()

			if !mock.started || !mock.stopped {
				t.Errorf("spinner started=%v stopped=%v, want both", mock.started, mock.stopped)
			}
			if len(mock.suffixes) == 0 || !strings.Contains(mock.suffixes[0], "0/3") {
				t.Errorf("initial suffix = %v, want a 0/3 counter", mock.suffixes)
			}
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output %q lacks %q", out.String(), tt.want)
			}
		})
	}
}

func TestDisplayProgressEmptyBatch(t *testing.T) {
	original := newSpinner
	defer func() { newSpinner = original }()
	mock := &MockSpinner{}
	newSpinner = func(...spinner.Option) Spinner { return mock }

	var wg sync.WaitGroup
	ch := make(chan orchestration.ProgressUpdate)
	close(ch)
	wg.Add(1)
	DisplayProgress(&wg, ch, 0, &bytes.Buffer{})
	wg.Wait()

	if mock.started {
		t.Error("an empty batch should not start the spinner")
	}
}

func TestProgressSuffix(t *testing.T) {
	t.Parallel()
	got := progressSuffix(orchestration.AggregatedProgress{Completed: 1500, Total: 3000, Fraction: 0.5, ETA: time.Minute})
	for _, want := range []string{"1,500/3,000", "50.0%", "ETA"} {
		if !strings.Contains(got, want) {
			t.Errorf("progressSuffix = %q, lacks %q", got, want)
		}
	}
}
