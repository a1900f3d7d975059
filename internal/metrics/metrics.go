// Package metrics defines the Prometheus collectors exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "route", "status"},
	)

	// Project listing recomputations by scope and whether the result was empty
	ProjectSearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_search_total",
			Help: "Total number of project listing searches",
		},
		[]string{"scope", "empty"},
	)

	// Contact submissions by outcome: sent, failed, invalid
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submission_total",
			Help: "Total number of contact form submissions",
		},
		[]string{"status"},
	)
)

// RecordHTTPRequest observes one request
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}

// RecordProjectSearch counts one listing recomputation
func RecordProjectSearch(scope string, empty bool) {
	label := "false"
	if empty {
		label = "true"
	}
	ProjectSearches.WithLabelValues(scope, label).Inc()
}

// RecordContactSubmission counts one contact submission outcome
func RecordContactSubmission(status string) {
	ContactSubmissions.WithLabelValues(status).Inc()
}
