package analytics_test

import (
	"testing"
	"time"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operationalRow(hour, visitors int, revenue float64, wait int, capacity, satisfaction, uptime float64) models.OperationalMetricRecord {
	return models.OperationalMetricRecord{
		MetricDate:           models.NewDate(2026, time.August, 10),
		MetricHour:           hour,
		TotalVisitors:        visitors,
		TotalRevenue:         revenue,
		AverageWaitTime:      wait,
		PeakCapacityPct:      capacity,
		CustomerSatisfaction: satisfaction,
		SystemUptimePct:      uptime,
	}
}

func TestAggregateOperational(t *testing.T) {
	t.Parallel()

	records := []models.OperationalMetricRecord{
		operationalRow(10, 400, 1500, 20, 70, 4.0, 99),
		operationalRow(11, 600, 2500, 40, 90, 4.5, 97),
	}

	stats := analytics.AggregateOperational(records, "2026-08-10 to 2026-08-10")

	assert.Equal(t, 1000, stats.Summary.TotalVisitors)
	assert.Equal(t, 4000.0, stats.Summary.TotalRevenue)
	assert.Equal(t, 30.0, stats.Summary.AverageWaitTime)
	assert.Equal(t, 80.0, stats.Summary.AverageCapacityUtilization)
	assert.Equal(t, 4.25, stats.Summary.AverageSatisfaction)
	assert.Equal(t, 98.0, stats.Summary.AverageUptime)
	assert.Equal(t, "2026-08-10 to 2026-08-10", stats.Summary.Period)
	require.Len(t, stats.HourlyData, 2)
}

func TestAggregateOperational_Empty(t *testing.T) {
	t.Parallel()

	stats := analytics.AggregateOperational(nil, "p")

	assert.Equal(t, 0, stats.Summary.TotalVisitors)
	assert.Equal(t, 0.0, stats.Summary.AverageWaitTime)
	assert.NotNil(t, stats.HourlyData)
	assert.Empty(t, stats.HourlyData)
}
