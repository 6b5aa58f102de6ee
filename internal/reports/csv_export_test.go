package reports

import (
	"strings"
	"testing"
	"time"

	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestRenderVisitorCSV(t *testing.T) {
	t.Parallel()

	start := models.NewDate(2026, time.August, 1)
	end := models.NewDate(2026, time.August, 31)

	entry := time.Date(2026, time.August, 15, 9, 30, 0, 0, time.UTC)
	records := []models.VisitorRecord{
		{
			VisitDate:          models.NewDate(2026, time.August, 15),
			UserID:             strPtr("user-1"),
			EntryTime:          &entry,
			DurationMinutes:    intPtr(150),
			AttractionsVisited: 6,
			TotalSpending:      123.5,
			SatisfactionRating: intPtr(4),
			FeedbackComments:   strPtr("loved the coaster, hated the queue"),
			DeviceType:         strPtr("mobile"),
		},
		{VisitDate: models.NewDate(2026, time.August, 16)},
	}

	export, err := renderVisitorCSV(records, start, end)
	require.NoError(t, err)
	assert.Equal(t, "visitor_analytics_2026-08-01_to_2026-08-31.csv", export.Filename)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,User ID,Entry Time,Exit Time,Duration (minutes),Attractions Visited,Total Spending,Satisfaction Rating,Feedback Comments,Device Type", lines[0])
	assert.Equal(t, `2026-08-15,user-1,2026-08-15T09:30:00Z,,150,6,123.5,4,"loved the coaster, hated the queue",mobile`, lines[1])
	// Optional fields render as empty cells.
	assert.Equal(t, "2026-08-16,,,,0,0,0,,,", lines[2])
}

func TestRenderOperationalCSV(t *testing.T) {
	t.Parallel()

	start := models.NewDate(2026, time.August, 15)
	records := []models.OperationalMetricRecord{
		{
			MetricDate:           start,
			MetricHour:           14,
			TotalVisitors:        1200,
			TotalRevenue:         5400.25,
			AverageWaitTime:      35,
			PeakCapacityPct:      88.5,
			StaffEfficiency:      92,
			SystemUptimePct:      99.9,
			ErrorCount:           3,
			CustomerSatisfaction: 4.4,
		},
	}

	export, err := renderOperationalCSV(records, start, start)
	require.NoError(t, err)
	assert.Equal(t, "operational_metrics_2026-08-15_to_2026-08-15.csv", export.Filename)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-08-15,14,1200,5400.25,35,88.5,92,99.9,3,4.4", lines[1])
}

func TestRenderAttractionCSV(t *testing.T) {
	t.Parallel()

	start := models.NewDate(2026, time.August, 15)
	records := []models.AttractionMetricRecord{
		{
			Date:                start,
			Hour:                11,
			AttractionID:        "coaster",
			AttractionName:      "Coaster",
			TotalVisitors:       240,
			AverageWaitTime:     45,
			MaxWaitTime:         70,
			CapacityUtilization: 91.5,
			SatisfactionRating:  4.6,
			DowntimeMinutes:     5,
			RevenueGenerated:    1320,
		},
	}

	export, err := renderAttractionCSV(records, start, start)
	require.NoError(t, err)
	assert.Equal(t, "attraction_analytics_2026-08-15_to_2026-08-15.csv", export.Filename)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-08-15,11,coaster,Coaster,240,45,70,91.5,4.6,5,1320", lines[1])
}

func TestRenderCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	t.Parallel()

	start := models.NewDate(2026, time.August, 1)
	end := models.NewDate(2026, time.August, 31)

	export, err := renderVisitorCSV(nil, start, end)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(export.Content), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Date,User ID,"))
}
