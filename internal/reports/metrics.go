package reports

import (
	"park-analytics/internal/shared/metrics"
)

var (
	// metricReportsBuiltTotal counts report generations by report kind.
	metricReportsBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "built_total",
		},
		[]string{"report", metrics.FieldErrorCode},
	)

	// metricExportBytes observes the size of rendered CSV exports.
	metricExportBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "export_bytes",
			Buckets:   []float64{1 << 10, 1 << 14, 1 << 18, 1 << 22, 1 << 26},
		},
		[]string{"type"},
	)
)
