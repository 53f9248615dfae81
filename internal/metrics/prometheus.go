package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus is a Recorder backed by a private Prometheus registry.
type Prometheus struct {
	registry    *prometheus.Registry
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	cache       *prometheus.CounterVec
}

// NewPrometheus registers the evaluation, cache and memory collectors on a
// fresh registry. Each instance is independent, so tests can create many.
func NewPrometheus(memory *MemoryCollector) *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	p := &Prometheus{
		registry: reg,
		evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bigcalc_evaluations_total",
				Help: "The total number of evaluated expressions",
			},
			[]string{"op", "status"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bigcalc_evaluation_duration_seconds",
				Help:    "The duration of expression evaluations in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
			},
			[]string{"op"},
		),
		cache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bigcalc_cache_lookups_total",
				Help: "Memo cache lookups by outcome",
			},
			[]string{"op", "hit"},
		),
	}
	if memory != nil {
		memory.register(factory)
	}
	return p
}

// ObserveEvaluation increments the evaluation counter and records latency.
func (p *Prometheus) ObserveEvaluation(op string, d time.Duration, err error) {
	p.evaluations.WithLabelValues(op, StatusFor(err)).Inc()
	p.duration.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveCache counts a memo cache lookup.
func (p *Prometheus) ObserveCache(op string, hit bool) {
	p.cache.WithLabelValues(op, strconv.FormatBool(hit)).Inc()
}

// Handler serves the registry in the Prometheus text format. Only GET is
// accepted.
func (p *Prometheus) Handler() http.Handler {
	h := promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.ServeHTTP(w, r)
	})
}

// Registry returns the underlying registry.
func (p *Prometheus) Registry() *prometheus.Registry { return p.registry }
