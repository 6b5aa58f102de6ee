package dashboards

import (
	"testing"
	"time"

	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func overviewVisitor(spending float64, rating *int, entry *time.Time) models.VisitorRecord {
	return models.VisitorRecord{
		VisitDate:          models.NewDate(2026, time.August, 31),
		TotalSpending:      spending,
		SatisfactionRating: rating,
		EntryTime:          entry,
	}
}

func ratingPtr(n int) *int { return &n }

func entryAt(hour int) *time.Time {
	ts := time.Date(2026, time.August, 31, hour, 15, 0, 0, time.UTC)
	return &ts
}

func TestBuildOverview_RevenueTakesLargerPipeline(t *testing.T) {
	t.Parallel()

	today := models.NewDate(2026, time.August, 31)
	visitors := []models.VisitorRecord{
		overviewVisitor(100, ratingPtr(5), nil),
		overviewVisitor(50, nil, nil),
	}
	metrics := []models.OperationalMetricRecord{
		{MetricDate: today, MetricHour: 10, TotalRevenue: 200, AverageWaitTime: 30},
	}

	view := BuildOverview(visitors, metrics, nil, nil, today, time.Now())

	assert.Equal(t, 2, view.Summary.TotalVisitorsToday)
	// Operational revenue (200) exceeds visitor spending (150).
	assert.Equal(t, 200.0, view.Summary.TotalRevenueToday)
	assert.Equal(t, 5.0, view.Summary.AverageSatisfactionToday)
	assert.Equal(t, 30.0, view.Summary.AverageWaitTimeToday)
	// An empty trailing week reports flat growth.
	assert.Equal(t, 0.0, view.Summary.VisitorGrowthPct)
	assert.Equal(t, 0.0, view.Summary.RevenueGrowthPct)
	assert.Equal(t, today, view.Date)
}

func TestBuildOverview_GrowthAgainstWeeklyAverage(t *testing.T) {
	t.Parallel()

	today := models.NewDate(2026, time.August, 31)
	visitors := []models.VisitorRecord{
		overviewVisitor(70, nil, nil),
		overviewVisitor(70, nil, nil),
	}
	// 7 visitors over the week, 70 total spending: baselines of 1/day
	// and 10/day.
	week := make([]models.VisitorRecord, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, overviewVisitor(10, nil, nil))
	}

	view := BuildOverview(visitors, nil, week, nil, today, time.Now())

	assert.Equal(t, 100.0, view.Summary.VisitorGrowthPct)
	assert.Equal(t, 1300.0, view.Summary.RevenueGrowthPct)
}

func TestBuildOverview_HourlyBuckets(t *testing.T) {
	t.Parallel()

	today := models.NewDate(2026, time.August, 31)
	visitors := []models.VisitorRecord{
		overviewVisitor(10, nil, entryAt(9)),
		overviewVisitor(10, nil, entryAt(9)),
		overviewVisitor(10, nil, nil), // no entry time, no bucket
	}
	metrics := []models.OperationalMetricRecord{
		{MetricDate: today, MetricHour: 9, TotalRevenue: 120, AverageWaitTime: 20},
		{MetricDate: today, MetricHour: 9, TotalRevenue: 80, AverageWaitTime: 40},
	}

	view := BuildOverview(visitors, metrics, nil, nil, today, time.Now())
	require.Len(t, view.HourlyTrends, 24)

	nine := view.HourlyTrends[9]
	assert.Equal(t, 9, nine.Hour)
	assert.Equal(t, 2, nine.Visitors)
	assert.Equal(t, 200.0, nine.Revenue)
	assert.Equal(t, 30.0, nine.AvgWaitTime)

	midnight := view.HourlyTrends[0]
	assert.Equal(t, 0, midnight.Visitors)
	assert.Equal(t, 0.0, midnight.Revenue)
}

func TestBuildOverview_RealTimeDefaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)
	view := BuildOverview(nil, nil, nil, nil, models.DateOf(now), now)

	assert.Equal(t, 0, view.RealTime.CurrentVisitors)
	assert.Equal(t, 100.0, view.RealTime.PaymentSuccessRate)
	assert.Equal(t, now, view.RealTime.LastUpdated)
}

func TestBuildOverview_RealTimeFromLatestSample(t *testing.T) {
	t.Parallel()

	sampledAt := time.Date(2026, time.August, 31, 13, 58, 0, 0, time.UTC)
	latest := &models.RealTimeStatRecord{
		Timestamp:          sampledAt,
		CurrentVisitors:    950,
		ActiveQueues:       12,
		AverageQueueTime:   25,
		SystemLoadPct:      62.5,
		PaymentSuccessRate: 98.2,
		APIResponseTimeMs:  180,
	}

	view := BuildOverview(nil, nil, nil, latest, models.DateOf(sampledAt), time.Now())

	assert.Equal(t, 950, view.RealTime.CurrentVisitors)
	assert.Equal(t, 12, view.RealTime.ActiveQueues)
	assert.Equal(t, 62.5, view.RealTime.SystemLoad)
	assert.Equal(t, 98.2, view.RealTime.PaymentSuccessRate)
	assert.Equal(t, sampledAt, view.RealTime.LastUpdated)
}
