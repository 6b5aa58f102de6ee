package analytics

import "park-analytics/internal/models"

// AttractionSummary aggregates the hourly rows of one attraction over a
// queried range. max_wait_time is the running max across hours; visitor,
// downtime and revenue figures are summed. The rate fields are the
// arithmetic mean of the per-hour values as recorded, not reweighted by
// visitor count.
type AttractionSummary struct {
	AttractionID               string                          `json:"attraction_id"`
	AttractionName             string                          `json:"attraction_name"`
	TotalVisitors              int                             `json:"total_visitors"`
	AverageWaitTime            float64                         `json:"average_wait_time"`
	MaxWaitTime                int                             `json:"max_wait_time"`
	AverageCapacityUtilization float64                         `json:"average_capacity_utilization"`
	AverageSatisfaction        float64                         `json:"average_satisfaction"`
	TotalDowntimeMinutes       int                             `json:"total_downtime_minutes"`
	TotalRevenue               float64                         `json:"total_revenue"`
	DailyData                  []models.AttractionMetricRecord `json:"daily_data"`
}

// AggregateAttractions groups hourly attraction rows by attraction_id.
// Attractions appear in first-seen record order.
func AggregateAttractions(records []models.AttractionMetricRecord) []AttractionSummary {
	index := make(map[string]int)
	summaries := make([]AttractionSummary, 0)

	for _, rec := range records {
		i, exists := index[rec.AttractionID]
		if !exists {
			i = len(summaries)
			index[rec.AttractionID] = i
			summaries = append(summaries, AttractionSummary{
				AttractionID:   rec.AttractionID,
				AttractionName: rec.AttractionName,
			})
		}

		summary := &summaries[i]
		summary.TotalVisitors += rec.TotalVisitors
		if rec.MaxWaitTime > summary.MaxWaitTime {
			summary.MaxWaitTime = rec.MaxWaitTime
		}
		summary.TotalDowntimeMinutes += rec.DowntimeMinutes
		summary.TotalRevenue += rec.RevenueGenerated
		summary.DailyData = append(summary.DailyData, rec)
	}

	// Second pass: unweighted means over each attraction's hourly rows.
	for i := range summaries {
		summary := &summaries[i]
		var waitSum, capacitySum, satisfactionSum float64
		for _, rec := range summary.DailyData {
			waitSum += float64(rec.AverageWaitTime)
			capacitySum += rec.CapacityUtilization
			satisfactionSum += rec.SatisfactionRating
		}
		n := len(summary.DailyData)
		summary.AverageWaitTime = SafeAvg(waitSum, n)
		summary.AverageCapacityUtilization = SafeAvg(capacitySum, n)
		summary.AverageSatisfaction = SafeAvg(satisfactionSum, n)
	}

	return summaries
}
