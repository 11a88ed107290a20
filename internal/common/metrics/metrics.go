// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SubmissionsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_submissions_completed_total",
			Help: "Total number of submissions that reached results",
		},
	)

	SubmissionsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_submissions_failed_total",
			Help: "Total number of failed submissions",
		},
		[]string{"error_code"},
	)

	SubmissionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "recommend_submission_duration_seconds",
			Help: "Duration of a recommendation round trip in seconds",
		},
	)

	SubmissionsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_submissions_in_flight",
			Help: "Number of submissions currently awaiting a response",
		},
	)

	MatchesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_matches_returned",
			Help:    "Matches returned per successful submission",
			Buckets: prometheus.LinearBuckets(0, 5, 10),
		},
	)
)
