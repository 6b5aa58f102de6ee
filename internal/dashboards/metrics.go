package dashboards

import (
	"park-analytics/internal/shared/metrics"
)

var (
	// metricViewsBuiltTotal counts dashboard view assemblies by view.
	metricViewsBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDashboard,
			Name:      "views_built_total",
		},
		[]string{"view", metrics.FieldErrorCode},
	)

	// metricHealthStatus tracks the last computed health verdict, one gauge
	// series per status so alerting rules can match on labels.
	metricHealthStatus = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDashboard,
			Name:      "system_health_status",
		},
		[]string{"status"},
	)

	metricRealTimeUpdatesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDashboard,
			Name:      "real_time_updates_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
