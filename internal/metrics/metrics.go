// Package metrics exposes Prometheus instrumentation for the analysis
// cycle and the HTTP UI.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PagesAnalyzedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "pagelens",
			Name:      "pages_analyzed_total",
			Help:      "Total number of completed analysis cycles",
		},
	)

	AnalyzeFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagelens",
			Name:      "analyze_failures_total",
			Help:      "Total analysis cycle failures by kind",
		},
		[]string{"kind"}, // "network", "parse", "selection"
	)

	ChartsRenderedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagelens",
			Name:      "charts_rendered_total",
			Help:      "Total charts rendered by view",
		},
		[]string{"view"},
	)

	ImagesFetchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pagelens",
			Name:      "images_fetched_total",
			Help:      "Gallery image downloads by result",
		},
		[]string{"result"}, // "ok" / "error"
	)
)

var registered bool

// Register registers all pagelens metrics. Must be called once from main.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(PagesAnalyzedTotal)
	prometheus.MustRegister(AnalyzeFailuresTotal)
	prometheus.MustRegister(ChartsRenderedTotal)
	prometheus.MustRegister(ImagesFetchedTotal)
	registered = true
}
