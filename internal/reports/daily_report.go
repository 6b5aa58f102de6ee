// Package reports builds the daily and weekly summary reports and the raw
// CSV exports.
package reports

import (
	"park-analytics/internal/analytics"
	"park-analytics/internal/models"
)

// DailyReport is the full single-day summary assembled from all four metric
// families.
type DailyReport struct {
	ReportDate            string              `json:"report_date"`
	Summary               DailySummary        `json:"summary"`
	VisitorAnalytics      DailyVisitorBlock   `json:"visitor_analytics"`
	AttractionPerformance []AttractionDayStat `json:"attraction_performance"`
	PaymentAnalytics      DailyPaymentBlock   `json:"payment_analytics"`
	PeakHours             PeakHours           `json:"peak_hours"`
	HourlyBreakdown       []ReportHour        `json:"hourly_breakdown"`
}

type DailySummary struct {
	TotalVisitors         int     `json:"total_visitors"`
	TotalRevenue          float64 `json:"total_revenue"`
	AvgVisitDurationMin   float64 `json:"average_visit_duration_minutes"`
	AvgAttractionsVisited float64 `json:"average_attractions_visited"`
	AvgSatisfactionRating float64 `json:"average_satisfaction_rating"`
	AvgWaitTimeMin        float64 `json:"average_wait_time_minutes"`
	PeakCapacityPct       float64 `json:"peak_capacity_percentage"`
	SystemUptimePct       float64 `json:"system_uptime_percentage"`
	TotalSystemErrors     int     `json:"total_system_errors"`
}

type DailyVisitorBlock struct {
	TotalCount               int         `json:"total_count"`
	TotalSpending            float64     `json:"total_spending"`
	SatisfactionDistribution map[int]int `json:"satisfaction_distribution"`
	AverageSatisfaction      float64     `json:"average_satisfaction"`
}

// AttractionDayStat is one attraction's whole-day rollup. The average wait
// is the unweighted mean of the attraction's hourly values; max wait is the
// day's maximum.
type AttractionDayStat struct {
	Name          string  `json:"name"`
	TotalVisitors int     `json:"total_visitors"`
	AvgWaitTime   float64 `json:"avg_wait_time"`
	MaxWaitTime   int     `json:"max_wait_time"`
	Revenue       float64 `json:"revenue"`
	Downtime      int     `json:"downtime"`
}

type DailyPaymentBlock struct {
	TotalTransactions int                         `json:"total_transactions"`
	TotalAmount       float64                     `json:"total_amount"`
	ByMethod          map[string]ReportMethodStat `json:"by_method"`
}

type ReportMethodStat struct {
	TransactionCount  int     `json:"transaction_count"`
	TotalAmount       float64 `json:"total_amount"`
	SuccessRate       float64 `json:"success_rate"`
	AvgProcessingTime float64 `json:"avg_processing_time"`
}

type PeakHours struct {
	HighestVisitors PeakVisitorHour `json:"highest_visitors"`
	HighestRevenue  PeakRevenueHour `json:"highest_revenue"`
}

type PeakVisitorHour struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

type PeakRevenueHour struct {
	Hour   int     `json:"hour"`
	Amount float64 `json:"amount"`
}

type ReportHour struct {
	Hour                int     `json:"hour"`
	Visitors            int     `json:"visitors"`
	Revenue             float64 `json:"revenue"`
	AvgWaitTime         float64 `json:"avg_wait_time"`
	CapacityUtilization float64 `json:"capacity_utilization"`
}

// BuildDailyReport merges one day's visitor, operational, attraction and
// payment rows into the daily summary. Total revenue is reconciled as the
// max of the three independently sourced sums. Peak hours pick the earliest
// hour on ties.
func BuildDailyReport(
	day models.Date,
	visitors []models.VisitorRecord,
	metrics []models.OperationalMetricRecord,
	attractions []models.AttractionMetricRecord,
	payments []models.PaymentMetricRecord,
) *DailyReport {
	totalVisitors := len(visitors)

	var spending float64
	var durationSum, attractionsSum int
	var ratingSum, ratingCount int
	distribution := make(map[int]int)
	for i := range visitors {
		v := &visitors[i]
		spending += v.TotalSpending
		durationSum += v.DurationOrZero()
		attractionsSum += v.AttractionsVisited
		if v.HasRating() {
			ratingSum += *v.SatisfactionRating
			ratingCount++
			distribution[*v.SatisfactionRating]++
		}
	}
	avgSatisfaction := analytics.SafeAvg(float64(ratingSum), ratingCount)

	var operationalRevenue, waitSum, uptimeSum, peakCapacity float64
	var totalErrors int
	for _, m := range metrics {
		operationalRevenue += m.TotalRevenue
		waitSum += float64(m.AverageWaitTime)
		uptimeSum += m.SystemUptimePct
		totalErrors += m.ErrorCount
		if m.PeakCapacityPct > peakCapacity {
			peakCapacity = m.PeakCapacityPct
		}
	}

	attractionStats := buildAttractionDayStats(attractions)

	var totalTransactions int
	var paymentAmount float64
	byMethod := make(map[string]ReportMethodStat)
	for _, stat := range analytics.GroupPaymentsByMethod(payments) {
		byMethod[stat.PaymentMethod] = ReportMethodStat{
			TransactionCount:  stat.TransactionCount,
			TotalAmount:       stat.TotalAmount,
			SuccessRate:       stat.SuccessRate,
			AvgProcessingTime: stat.AvgProcessingTime,
		}
		totalTransactions += stat.TransactionCount
		paymentAmount += stat.TotalAmount
	}

	hourly := make([]ReportHour, 0, 24)
	for hour := 0; hour < 24; hour++ {
		row := ReportHour{Hour: hour}
		for i := range visitors {
			if entry := visitors[i].EntryTime; entry != nil && entry.Hour() == hour {
				row.Visitors++
			}
		}
		var hourWaitSum, hourCapacitySum float64
		hourMetrics := 0
		for _, m := range metrics {
			if m.MetricHour == hour {
				row.Revenue += m.TotalRevenue
				hourWaitSum += float64(m.AverageWaitTime)
				hourCapacitySum += m.PeakCapacityPct
				hourMetrics++
			}
		}
		row.AvgWaitTime = analytics.SafeAvg(hourWaitSum, hourMetrics)
		row.CapacityUtilization = analytics.SafeAvg(hourCapacitySum, hourMetrics)
		hourly = append(hourly, row)
	}

	peakVisitors, peakRevenue := hourly[0], hourly[0]
	for _, row := range hourly[1:] {
		if row.Visitors > peakVisitors.Visitors {
			peakVisitors = row
		}
		if row.Revenue > peakRevenue.Revenue {
			peakRevenue = row
		}
	}

	return &DailyReport{
		ReportDate: day.ISO(),
		Summary: DailySummary{
			TotalVisitors:         totalVisitors,
			TotalRevenue:          max(spending, operationalRevenue, paymentAmount),
			AvgVisitDurationMin:   analytics.Round1(analytics.SafeAvg(float64(durationSum), totalVisitors)),
			AvgAttractionsVisited: analytics.Round1(analytics.SafeAvg(float64(attractionsSum), totalVisitors)),
			AvgSatisfactionRating: analytics.Round2(avgSatisfaction),
			AvgWaitTimeMin:        analytics.Round1(analytics.SafeAvg(waitSum, len(metrics))),
			PeakCapacityPct:       analytics.Round1(peakCapacity),
			SystemUptimePct:       analytics.Round1(analytics.SafeAvg(uptimeSum, len(metrics))),
			TotalSystemErrors:     totalErrors,
		},
		VisitorAnalytics: DailyVisitorBlock{
			TotalCount:               totalVisitors,
			TotalSpending:            spending,
			SatisfactionDistribution: distribution,
			AverageSatisfaction:      analytics.Round2(avgSatisfaction),
		},
		AttractionPerformance: attractionStats,
		PaymentAnalytics: DailyPaymentBlock{
			TotalTransactions: totalTransactions,
			TotalAmount:       paymentAmount,
			ByMethod:          byMethod,
		},
		PeakHours: PeakHours{
			HighestVisitors: PeakVisitorHour{Hour: peakVisitors.Hour, Count: peakVisitors.Visitors},
			HighestRevenue:  PeakRevenueHour{Hour: peakRevenue.Hour, Amount: peakRevenue.Revenue},
		},
		HourlyBreakdown: hourly,
	}
}

func buildAttractionDayStats(attractions []models.AttractionMetricRecord) []AttractionDayStat {
	index := make(map[string]int)
	stats := make([]AttractionDayStat, 0)
	waitSums := make([]float64, 0)
	waitCounts := make([]int, 0)

	for _, rec := range attractions {
		i, exists := index[rec.AttractionID]
		if !exists {
			i = len(stats)
			index[rec.AttractionID] = i
			stats = append(stats, AttractionDayStat{Name: rec.AttractionName})
			waitSums = append(waitSums, 0)
			waitCounts = append(waitCounts, 0)
		}
		stats[i].TotalVisitors += rec.TotalVisitors
		if rec.MaxWaitTime > stats[i].MaxWaitTime {
			stats[i].MaxWaitTime = rec.MaxWaitTime
		}
		stats[i].Revenue += rec.RevenueGenerated
		stats[i].Downtime += rec.DowntimeMinutes
		waitSums[i] += float64(rec.AverageWaitTime)
		waitCounts[i]++
	}

	for i := range stats {
		stats[i].AvgWaitTime = analytics.SafeAvg(waitSums[i], waitCounts[i])
	}
	return stats
}
