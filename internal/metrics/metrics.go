// Package metrics exposes Prometheus instrumentation for the decoration
// service. Counters plug into the decorator through blurtext.Hooks.
package metrics

import (
	blurtext "github.com/Kornerupin/blur-text"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the service counters.
type Metrics struct {
	ElementsDecorated prometheus.Counter
	LettersWrapped    *prometheus.CounterVec
	CoverageGaps      prometheus.Counter
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
}

// New creates the counters and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ElementsDecorated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blurtext_elements_decorated_total",
			Help: "Total number of elements decorated",
		}),
		LettersWrapped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "blurtext_letters_wrapped_total",
			Help: "Total number of letters wrapped, by category",
		}, []string{"category"}),
		CoverageGaps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blurtext_coverage_gaps_total",
			Help: "Total reference-alphabet characters left uncovered by configuration",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blurtext_cache_hits_total",
			Help: "Total decorated-document cache hits",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "blurtext_cache_misses_total",
			Help: "Total decorated-document cache misses",
		}),
	}
	reg.MustRegister(m.ElementsDecorated, m.LettersWrapped, m.CoverageGaps, m.CacheHits, m.CacheMisses)
	return m
}

// Hooks adapts the counters to decorator events.
func (m *Metrics) Hooks() blurtext.Hooks {
	return blurtext.Hooks{
		OnElement:     func() { m.ElementsDecorated.Inc() },
		OnLetter:      func(category string) { m.LettersWrapped.WithLabelValues(category).Inc() },
		OnCoverageGap: func(r rune) { m.CoverageGaps.Inc() },
	}
}
