package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	viewsBuilt = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "life_rhythms",
		Name:      "views_built_total",
		Help:      "Number of chart descriptions built, by view.",
	}, []string{"view"})

	viewRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "life_rhythms",
		Name:      "view_rows",
		Help:      "Rows in the most recently built subset, by view.",
	}, []string{"view"})

	invalidFilters = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "life_rhythms",
		Name:      "invalid_filters_total",
		Help:      "Selections rejected because a value was outside the dataset domain.",
	}, []string{"field"})

	datasetRows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "life_rhythms",
		Name:      "dataset_rows",
		Help:      "Rows in the loaded dataset.",
	})

	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "life_rhythms",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(viewsBuilt, viewRows, invalidFilters, datasetRows, requestDuration)
}

// RecordView counts a built view and the size of its subset
func RecordView(view string, rows int) {
	viewsBuilt.WithLabelValues(view).Inc()
	viewRows.WithLabelValues(view).Set(float64(rows))
}

// RecordInvalidFilter counts a rejected selection field
func RecordInvalidFilter(field string) {
	invalidFilters.WithLabelValues(field).Inc()
}

// SetDatasetRows publishes the loaded dataset size
func SetDatasetRows(n int) {
	datasetRows.Set(float64(n))
}

// ObserveRequest records the latency of one HTTP request
func ObserveRequest(method, route, status string, seconds float64) {
	requestDuration.WithLabelValues(method, route, status).Observe(seconds)
}
