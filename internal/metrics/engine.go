// Package metrics holds the prometheus collectors for the catalog engine.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// SearchesTotal counts searches by outcome: matched, empty, error.
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawsy",
			Name:      "searches_total",
			Help:      "Total number of catalog searches",
		},
		[]string{"outcome"},
	)

	// SearchDuration measures end-to-end search latency.
	SearchDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "pawsy",
			Name:      "search_duration_seconds",
			Help:      "Catalog search duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// RecommendationsTotal counts recommendation requests by context and source.
	RecommendationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawsy",
			Name:      "recommendations_total",
			Help:      "Total number of recommendation requests",
		},
		[]string{"context", "source"}, // source: scored, fallback
	)

	// IndexRebuildsTotal counts search index rebuilds by outcome.
	IndexRebuildsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawsy",
			Name:      "index_rebuilds_total",
			Help:      "Total number of search index rebuilds",
		},
		[]string{"outcome"},
	)

	// SEOGenerationsTotal counts SEO content generations by source: provider, fallback.
	SEOGenerationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pawsy",
			Name:      "seo_generations_total",
			Help:      "Total number of SEO content generations",
		},
		[]string{"source"},
	)
)

// RegisterEngineMetrics registers the catalog engine collectors. Called once
// from the composition root (no init side effects for the domain counters).
func RegisterEngineMetrics() {
	prometheus.MustRegister(
		SearchesTotal,
		SearchDuration,
		RecommendationsTotal,
		IndexRebuildsTotal,
		SEOGenerationsTotal,
	)
}
