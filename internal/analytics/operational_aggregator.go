package analytics

import "park-analytics/internal/models"

// OperationalStats is the aggregated view of a range of hourly operational rows.
type OperationalStats struct {
	Summary    OperationalSummary               `json:"summary"`
	HourlyData []models.OperationalMetricRecord `json:"hourly_data"`
}

type OperationalSummary struct {
	TotalVisitors              int     `json:"total_visitors"`
	TotalRevenue               float64 `json:"total_revenue"`
	AverageWaitTime            float64 `json:"average_wait_time"`
	AverageCapacityUtilization float64 `json:"average_capacity_utilization"`
	AverageSatisfaction        float64 `json:"average_satisfaction"`
	AverageUptime              float64 `json:"average_uptime"`
	Period                     string  `json:"period"`
}

// AggregateOperational sums visitors and revenue over the range and averages
// the per-hour rate fields with the unweighted mean over rows.
func AggregateOperational(records []models.OperationalMetricRecord, period string) *OperationalStats {
	var (
		totalVisitors   int
		totalRevenue    float64
		waitSum         float64
		capacitySum     float64
		satisfactionSum float64
		uptimeSum       float64
	)
	for _, rec := range records {
		totalVisitors += rec.TotalVisitors
		totalRevenue += rec.TotalRevenue
		waitSum += float64(rec.AverageWaitTime)
		capacitySum += rec.PeakCapacityPct
		satisfactionSum += rec.CustomerSatisfaction
		uptimeSum += rec.SystemUptimePct
	}

	if records == nil {
		records = []models.OperationalMetricRecord{}
	}

	n := len(records)
	return &OperationalStats{
		Summary: OperationalSummary{
			TotalVisitors:              totalVisitors,
			TotalRevenue:               totalRevenue,
			AverageWaitTime:            SafeAvg(waitSum, n),
			AverageCapacityUtilization: SafeAvg(capacitySum, n),
			AverageSatisfaction:        SafeAvg(satisfactionSum, n),
			AverageUptime:              SafeAvg(uptimeSum, n),
			Period:                     period,
		},
		HourlyData: records,
	}
}
