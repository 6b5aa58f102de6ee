package models

import "time"

// AttractionMetricRecord is one hour of metrics for a single attraction,
// unique per (attraction_id, date, hour). Rate fields are already averages
// over the hour; cross-hour aggregation takes the unweighted mean of these
// per-hour values.
type AttractionMetricRecord struct {
	ID                  string    `json:"id"`
	AttractionID        string    `json:"attraction_id"`
	AttractionName      string    `json:"attraction_name"`
	Date                Date      `json:"date"`
	Hour                int       `json:"hour"` // 0-23
	TotalVisitors       int       `json:"total_visitors"`
	AverageWaitTime     int       `json:"average_wait_time"`
	MaxWaitTime         int       `json:"max_wait_time"`
	CapacityUtilization float64   `json:"capacity_utilization"`
	SatisfactionRating  float64   `json:"satisfaction_rating"`
	DowntimeMinutes     int       `json:"downtime_minutes"`
	RevenueGenerated    float64   `json:"revenue_generated"`
	CreatedAt           time.Time `json:"created_at"`
}
