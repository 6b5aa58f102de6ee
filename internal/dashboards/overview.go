// Package dashboards assembles compound dashboard views by merging several
// aggregations over today's and recent data.
package dashboards

import (
	"time"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"
)

// Overview is the dashboard overview: today's summary with day-over-day
// growth, a real-time block and 24 hourly buckets.
type Overview struct {
	Summary      OverviewSummary `json:"summary"`
	RealTime     RealTimeBlock   `json:"real_time"`
	HourlyTrends []HourlyTrend   `json:"hourly_trends"`
	Date         models.Date     `json:"date"`
}

type OverviewSummary struct {
	TotalVisitorsToday       int     `json:"total_visitors_today"`
	TotalRevenueToday        float64 `json:"total_revenue_today"`
	AverageSatisfactionToday float64 `json:"average_satisfaction_today"`
	AverageWaitTimeToday     float64 `json:"average_wait_time_today"`
	VisitorGrowthPct         float64 `json:"visitor_growth_percentage"`
	RevenueGrowthPct         float64 `json:"revenue_growth_percentage"`
}

type RealTimeBlock struct {
	CurrentVisitors    int       `json:"current_visitors"`
	ActiveQueues       int       `json:"active_queues"`
	AverageQueueTime   int       `json:"average_queue_time"`
	SystemLoad         float64   `json:"system_load"`
	PaymentSuccessRate float64   `json:"payment_success_rate"`
	APIResponseTime    int       `json:"api_response_time"`
	LastUpdated        time.Time `json:"last_updated"`
}

type HourlyTrend struct {
	Hour        int     `json:"hour"`
	Visitors    int     `json:"visitors"`
	Revenue     float64 `json:"revenue"`
	AvgWaitTime float64 `json:"avg_wait_time"`
}

// BuildOverview merges today's visitor and operational records, the trailing
// 7-day visitor window and the latest real-time sample into the overview.
// It is a pure function over its inputs.
//
// Revenue reconciliation: visitor spending and operational revenue describe
// the same money through two pipelines, so today's revenue is the max of the
// two sums, never their total. Growth compares today against the 7-day daily
// average, reporting 0 when the baseline is empty.
func BuildOverview(
	todayVisitors []models.VisitorRecord,
	todayMetrics []models.OperationalMetricRecord,
	weekVisitors []models.VisitorRecord,
	latest *models.RealTimeStatRecord,
	today models.Date,
	now time.Time,
) *Overview {
	totalVisitorsToday := len(todayVisitors)

	var spendingToday float64
	var ratingSum, ratingCount int
	for i := range todayVisitors {
		spendingToday += todayVisitors[i].TotalSpending
		if todayVisitors[i].HasRating() {
			ratingSum += *todayVisitors[i].SatisfactionRating
			ratingCount++
		}
	}
	avgSatisfactionToday := 0.0
	if ratingCount > 0 {
		avgSatisfactionToday = float64(ratingSum) / float64(ratingCount)
	}

	var operationalRevenue, waitSum float64
	for _, m := range todayMetrics {
		operationalRevenue += m.TotalRevenue
		waitSum += float64(m.AverageWaitTime)
	}
	avgWaitToday := analytics.SafeAvg(waitSum, len(todayMetrics))

	var weekSpending float64
	for i := range weekVisitors {
		weekSpending += weekVisitors[i].TotalSpending
	}
	visitorGrowth := analytics.GrowthPercent(float64(totalVisitorsToday), float64(len(weekVisitors))/7)
	revenueGrowth := analytics.GrowthPercent(spendingToday, weekSpending/7)

	hourly := make([]HourlyTrend, 0, 24)
	for hour := 0; hour < 24; hour++ {
		trend := HourlyTrend{Hour: hour}
		for i := range todayVisitors {
			if entry := todayVisitors[i].EntryTime; entry != nil && entry.Hour() == hour {
				trend.Visitors++
			}
		}
		var hourWaitSum float64
		hourMetrics := 0
		for _, m := range todayMetrics {
			if m.MetricHour == hour {
				trend.Revenue += m.TotalRevenue
				hourWaitSum += float64(m.AverageWaitTime)
				hourMetrics++
			}
		}
		trend.AvgWaitTime = analytics.SafeAvg(hourWaitSum, hourMetrics)
		hourly = append(hourly, trend)
	}

	realTime := RealTimeBlock{PaymentSuccessRate: 100, LastUpdated: now}
	if latest != nil {
		realTime = RealTimeBlock{
			CurrentVisitors:    latest.CurrentVisitors,
			ActiveQueues:       latest.ActiveQueues,
			AverageQueueTime:   latest.AverageQueueTime,
			SystemLoad:         latest.SystemLoadPct,
			PaymentSuccessRate: latest.PaymentSuccessRate,
			APIResponseTime:    latest.APIResponseTimeMs,
			LastUpdated:        latest.Timestamp,
		}
	}

	return &Overview{
		Summary: OverviewSummary{
			TotalVisitorsToday:       totalVisitorsToday,
			TotalRevenueToday:        max(spendingToday, operationalRevenue),
			AverageSatisfactionToday: analytics.Round2(avgSatisfactionToday),
			AverageWaitTimeToday:     analytics.Round1(avgWaitToday),
			VisitorGrowthPct:         analytics.Round1(visitorGrowth),
			RevenueGrowthPct:         analytics.Round1(revenueGrowth),
		},
		RealTime:     realTime,
		HourlyTrends: hourly,
		Date:         today,
	}
}
