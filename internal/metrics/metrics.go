// Package metrics exposes prometheus collectors for the recognition service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"shogi_insight/internal/domain/pattern"
)

const namespace = "shogi_insight"

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

type Metrics struct {
	// Labels: source (engine, cache)
	Recognitions *prometheus.CounterVec
	// Labels: family, side
	Matches *prometheus.CounterVec
	// Labels: result (hit, miss, error)
	CacheLookups *prometheus.CounterVec
	Duration     prometheus.Histogram
	Confidence   *prometheus.HistogramVec
}

// New registers every collector with reg. Tests pass prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Recognitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recognitions_total",
			Help:      "Positions recognized, by where the result came from",
		}, []string{"source"}),
		Matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Pattern matches reported",
		}, []string{"family", "side"}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Recognition cache lookups by outcome",
		}, []string{"result"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "recognition_duration_seconds",
			Help:      "Time spent in the recognition engine",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
		Confidence: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "match_confidence",
			Help:      "Distribution of reported match confidence",
			Buckets:   []float64{0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1.0},
		}, []string{"family"}),
	}
}

// ObserveRecognition records one engine run and the matches it produced.
func (m *Metrics) ObserveRecognition(elapsed time.Duration, matches []pattern.MatchResult) {
	m.Recognitions.WithLabelValues("engine").Inc()
	m.Duration.Observe(elapsed.Seconds())
	for _, r := range matches {
		m.Matches.WithLabelValues(string(r.Family), r.Side.String()).Inc()
		m.Confidence.WithLabelValues(string(r.Family)).Observe(r.Confidence)
	}
}

// ObserveCache records a cache lookup; a hit also counts as a recognition
// served from cache.
func (m *Metrics) ObserveCache(result string) {
	m.CacheLookups.WithLabelValues(result).Inc()
	if result == CacheHit {
		m.Recognitions.WithLabelValues("cache").Inc()
	}
}
