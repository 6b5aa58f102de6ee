package analytics_test

import (
	"testing"
	"time"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int              { return &n }
func timePtr(t time.Time) *time.Time { return &t }

func visitor(day models.Date, spending float64, rating *int) models.VisitorRecord {
	return models.VisitorRecord{
		VisitDate:          day,
		TotalSpending:      spending,
		SatisfactionRating: rating,
	}
}

func TestAggregateVisitors_SatisfactionExcludesUnrated(t *testing.T) {
	t.Parallel()

	day := models.NewDate(2026, time.August, 10)
	records := []models.VisitorRecord{
		visitor(day, 10, intPtr(5)),
		visitor(day, 20, nil),
		visitor(day, 0, intPtr(3)),
	}

	stats := analytics.AggregateVisitors(records, models.GranularityDay, "2026-08-10 to 2026-08-10")

	assert.Equal(t, 3, stats.Summary.TotalVisitors)
	assert.Equal(t, 30.0, stats.Summary.TotalRevenue)
	assert.Equal(t, 10.0, stats.Summary.AverageSpendingPerVisitor)
	// Two rated visitors: (5+3)/2, the unrated one is excluded, not a 0.
	assert.Equal(t, 4.0, stats.Summary.AverageSatisfaction)
}

func TestAggregateVisitors_DurationDividesByGroupSize(t *testing.T) {
	t.Parallel()

	day := models.NewDate(2026, time.August, 10)
	withDuration := visitor(day, 0, nil)
	withDuration.DurationMinutes = intPtr(120)
	records := []models.VisitorRecord{
		withDuration,
		visitor(day, 0, nil), // no duration, counts as 0
	}

	stats := analytics.AggregateVisitors(records, models.GranularityDay, "p")

	// Duration averages over all visitors, unlike satisfaction.
	assert.Equal(t, 60.0, stats.Summary.AverageVisitDuration)
	require.Len(t, stats.TimeSeries, 1)
	assert.Equal(t, 60.0, stats.TimeSeries[0].AvgDuration)
}

func TestAggregateVisitors_Empty(t *testing.T) {
	t.Parallel()

	stats := analytics.AggregateVisitors(nil, models.GranularityDay, "p")

	assert.Equal(t, 0, stats.Summary.TotalVisitors)
	assert.Equal(t, 0.0, stats.Summary.TotalRevenue)
	assert.Equal(t, 0.0, stats.Summary.AverageSatisfaction)
	assert.Empty(t, stats.TimeSeries)
	assert.Equal(t, "p", stats.Summary.Period)
}

func TestAggregateVisitors_HourGranularityOmitsRecordsWithoutEntryTime(t *testing.T) {
	t.Parallel()

	day := models.NewDate(2026, time.August, 10)
	timed := visitor(day, 15, nil)
	timed.EntryTime = timePtr(time.Date(2026, time.August, 10, 9, 45, 0, 0, time.UTC))
	untimed := visitor(day, 5, nil)

	stats := analytics.AggregateVisitors([]models.VisitorRecord{timed, untimed}, models.GranularityHour, "p")

	// Both count toward the summary.
	assert.Equal(t, 2, stats.Summary.TotalVisitors)
	assert.Equal(t, 20.0, stats.Summary.TotalRevenue)
	// Only the timed record lands in a bucket.
	require.Len(t, stats.TimeSeries, 1)
	assert.Equal(t, "2026-08-10 09:00", stats.TimeSeries[0].Period)
	assert.Equal(t, 1, stats.TimeSeries[0].Visitors)
	assert.Equal(t, 15.0, stats.TimeSeries[0].TotalSpending)
}

func TestAggregateVisitors_WeekGranularityGroupsByMonday(t *testing.T) {
	t.Parallel()

	records := []models.VisitorRecord{
		visitor(models.NewDate(2026, time.September, 2), 10, nil), // Wednesday
		visitor(models.NewDate(2026, time.September, 6), 20, nil), // Sunday, same week
		visitor(models.NewDate(2026, time.September, 7), 30, nil), // next Monday
	}

	stats := analytics.AggregateVisitors(records, models.GranularityWeek, "p")

	require.Len(t, stats.TimeSeries, 2)
	assert.Equal(t, "2026-08-31", stats.TimeSeries[0].Period)
	assert.Equal(t, 2, stats.TimeSeries[0].Visitors)
	assert.Equal(t, 30.0, stats.TimeSeries[0].TotalSpending)
	assert.Equal(t, "2026-09-07", stats.TimeSeries[1].Period)
	assert.Equal(t, 1, stats.TimeSeries[1].Visitors)
}

func TestAggregateVisitors_SeriesSortedByPeriod(t *testing.T) {
	t.Parallel()

	records := []models.VisitorRecord{
		visitor(models.NewDate(2026, time.August, 12), 1, nil),
		visitor(models.NewDate(2026, time.August, 10), 2, nil),
		visitor(models.NewDate(2026, time.August, 11), 3, nil),
	}

	stats := analytics.AggregateVisitors(records, models.GranularityDay, "p")

	require.Len(t, stats.TimeSeries, 3)
	assert.Equal(t, "2026-08-10", stats.TimeSeries[0].Period)
	assert.Equal(t, "2026-08-11", stats.TimeSeries[1].Period)
	assert.Equal(t, "2026-08-12", stats.TimeSeries[2].Period)
}
