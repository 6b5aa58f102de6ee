package analytics

import (
	"park-analytics/internal/shared/metrics"
)

var (
	// metricAggregationQueriesTotal counts aggregation queries by entity.
	metricAggregationQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "queries_total",
		},
		[]string{"entity", metrics.FieldErrorCode},
	)

	metricFeedbackSubmittedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAnalytics,
			Name:      "feedback_submitted_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
