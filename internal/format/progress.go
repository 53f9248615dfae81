package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// maxETA caps estimates so a stalled batch does not print absurd values.
const maxETA = 24 * time.Hour

// ProgressBar renders a bar of length cells for a fraction in [0, 1].
// Out-of-range fractions are clamped.
func ProgressBar(fraction float64, length int) string {
	fraction = clamp(fraction)
	filled := int(fraction * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatProgressBarWithETA renders "[bar] 42.0% ETA: 1m3s".
func FormatProgressBarWithETA(fraction float64, eta time.Duration, width int) string {
	return fmt.Sprintf("[%s] %5.1f%% ETA: %s", ProgressBar(fraction, width), clamp(fraction)*100, FormatETA(eta))
}

// ProgressWithETA tracks completion of a fixed number of items and
// estimates the time remaining from the average rate so far.
type ProgressWithETA struct {
	mu        sync.Mutex
	total     int
	completed int
	startTime time.Time
	now       func() time.Time
}

// NewProgressWithETA starts tracking total items from now.
func NewProgressWithETA(total int) *ProgressWithETA {
	return &ProgressWithETA{total: total, startTime: time.Now(), now: time.Now}
}

// Advance records n more completed items and returns the new fraction and
// ETA.
func (p *ProgressWithETA) Advance(n int) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.completed += n
	if p.completed > p.total {
		p.completed = p.total
	}
	return p.fraction(), p.eta()
}

// Fraction returns the completed share in [0, 1].
func (p *ProgressWithETA) Fraction() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fraction()
}

// ETA returns the current estimate without recording progress.
func (p *ProgressWithETA) ETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.eta()
}

// Completed returns the number of items recorded so far.
func (p *ProgressWithETA) Completed() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

func (p *ProgressWithETA) fraction() float64 {
	if p.total <= 0 {
		return 0
	}
	return float64(p.completed) / float64(p.total)
}

func (p *ProgressWithETA) eta() time.Duration {
	f := p.fraction()
	if f <= 0 || f >= 1 {
		return 0
	}
	elapsed := p.now().Sub(p.startTime)
	eta := time.Duration(float64(elapsed) * (1 - f) / f)
	if eta > maxETA {
		return maxETA
	}
	return eta
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
