package reports

import (
	"fmt"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"
)

// WeeklyReport summarizes the 7-day window ending at the requested end date,
// with per-day breakdown, highlights and growth against the preceding week.
type WeeklyReport struct {
	Period         string         `json:"period"`
	Summary        WeeklySummary  `json:"summary"`
	DailyBreakdown []WeeklyDay    `json:"daily_breakdown"`
	Highlights     WeekHighlights `json:"highlights"`
}

type WeeklySummary struct {
	TotalVisitors        int     `json:"total_visitors"`
	TotalRevenue         float64 `json:"total_revenue"`
	AverageDailyVisitors float64 `json:"average_daily_visitors"`
	AverageDailyRevenue  float64 `json:"average_daily_revenue"`
	AverageSatisfaction  float64 `json:"average_satisfaction"`
	AverageWaitTime      float64 `json:"average_wait_time"`
	VisitorGrowthPct     float64 `json:"visitor_growth_percentage"`
	RevenueGrowthPct     float64 `json:"revenue_growth_percentage"`
}

type WeeklyDay struct {
	Date            string  `json:"date"`
	DayOfWeek       string  `json:"day_of_week"`
	Visitors        int     `json:"visitors"`
	Revenue         float64 `json:"revenue"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
	AvgWaitTime     float64 `json:"avg_wait_time"`
}

type WeekHighlights struct {
	BestDayVisitors  DayVisitorHighlight `json:"best_day_visitors"`
	WorstDayVisitors DayVisitorHighlight `json:"worst_day_visitors"`
	BestDayRevenue   DayRevenueHighlight `json:"best_day_revenue"`
}

type DayVisitorHighlight struct {
	Date  string `json:"date"`
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type DayRevenueHighlight struct {
	Date   string  `json:"date"`
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

// BuildWeeklyReport folds the week's visitor and operational rows into the
// weekly summary. prevVisitors and prevRevenue describe the preceding 7-day
// window; growth reports 0 when that baseline is empty. Highlights pick the
// earliest day on ties.
func BuildWeeklyReport(
	start, end models.Date,
	visitors []models.VisitorRecord,
	metrics []models.OperationalMetricRecord,
	prevVisitors int,
	prevRevenue float64,
) *WeeklyReport {
	days := make([]WeeklyDay, 0, 7)
	for offset := 0; offset < 7; offset++ {
		current := start.AddDays(offset)
		day := WeeklyDay{Date: current.ISO(), DayOfWeek: current.DayName()}

		var ratingSum, ratingCount int
		for i := range visitors {
			if !visitors[i].VisitDate.Equal(current) {
				continue
			}
			day.Visitors++
			if visitors[i].HasRating() {
				ratingSum += *visitors[i].SatisfactionRating
				ratingCount++
			}
		}
		if ratingCount > 0 {
			day.AvgSatisfaction = float64(ratingSum) / float64(ratingCount)
		}

		var waitSum float64
		dayMetrics := 0
		for _, m := range metrics {
			if m.MetricDate.Equal(current) {
				day.Revenue += m.TotalRevenue
				waitSum += float64(m.AverageWaitTime)
				dayMetrics++
			}
		}
		day.AvgWaitTime = analytics.SafeAvg(waitSum, dayMetrics)

		days = append(days, day)
	}

	totalVisitors := len(visitors)
	var totalRevenue, waitSum float64
	for _, m := range metrics {
		totalRevenue += m.TotalRevenue
		waitSum += float64(m.AverageWaitTime)
	}

	var ratingSum, ratingCount int
	for i := range visitors {
		if visitors[i].HasRating() {
			ratingSum += *visitors[i].SatisfactionRating
			ratingCount++
		}
	}
	avgSatisfaction := 0.0
	if ratingCount > 0 {
		avgSatisfaction = float64(ratingSum) / float64(ratingCount)
	}

	best, worst, bestRevenue := days[0], days[0], days[0]
	for _, day := range days[1:] {
		if day.Visitors > best.Visitors {
			best = day
		}
		if day.Visitors < worst.Visitors {
			worst = day
		}
		if day.Revenue > bestRevenue.Revenue {
			bestRevenue = day
		}
	}

	return &WeeklyReport{
		Period: fmt.Sprintf("%s to %s", start.ISO(), end.ISO()),
		Summary: WeeklySummary{
			TotalVisitors:        totalVisitors,
			TotalRevenue:         totalRevenue,
			AverageDailyVisitors: float64(totalVisitors) / 7,
			AverageDailyRevenue:  totalRevenue / 7,
			AverageSatisfaction:  analytics.Round2(avgSatisfaction),
			AverageWaitTime:      analytics.Round1(analytics.SafeAvg(waitSum, len(metrics))),
			VisitorGrowthPct:     analytics.Round1(analytics.GrowthPercent(float64(totalVisitors), float64(prevVisitors))),
			RevenueGrowthPct:     analytics.Round1(analytics.GrowthPercent(totalRevenue, prevRevenue)),
		},
		DailyBreakdown: days,
		Highlights: WeekHighlights{
			BestDayVisitors:  DayVisitorHighlight{Date: best.Date, Day: best.DayOfWeek, Count: best.Visitors},
			WorstDayVisitors: DayVisitorHighlight{Date: worst.Date, Day: worst.DayOfWeek, Count: worst.Visitors},
			BestDayRevenue:   DayRevenueHighlight{Date: bestRevenue.Date, Day: bestRevenue.DayOfWeek, Amount: bestRevenue.Revenue},
		},
	}
}
