package models

import "time"

// OperationalMetricRecord is one hour of park-wide operational data,
// unique per (metric_date, metric_hour).
type OperationalMetricRecord struct {
	ID                   string    `json:"id"`
	MetricDate           Date      `json:"metric_date"`
	MetricHour           int       `json:"metric_hour"` // 0-23
	TotalVisitors        int       `json:"total_visitors"`
	TotalRevenue         float64   `json:"total_revenue"`
	AverageWaitTime      int       `json:"average_wait_time"`
	PeakCapacityPct      float64   `json:"peak_capacity_percentage"`
	StaffEfficiency      float64   `json:"staff_efficiency_score"`
	SystemUptimePct      float64   `json:"system_uptime_percentage"`
	ErrorCount           int       `json:"error_count"`
	CustomerSatisfaction float64   `json:"customer_satisfaction_avg"`
	CreatedAt            time.Time `json:"created_at"`
}
