package dashboards

import (
	"testing"
	"time"

	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attractionRow(id, name string, hour, visitors, waitTime int, capacity, satisfaction float64) models.AttractionMetricRecord {
	return models.AttractionMetricRecord{
		AttractionID:        id,
		AttractionName:      name,
		Date:                models.NewDate(2026, time.August, 31),
		Hour:                hour,
		TotalVisitors:       visitors,
		AverageWaitTime:     waitTime,
		CapacityUtilization: capacity,
		SatisfactionRating:  satisfaction,
	}
}

func TestAttractionStatus_Priority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		capacity float64
		waitTime int
		want     string
	}{
		{"capacity pressure wins", 96, 90, StatusFullCapacity},
		{"long wait", 80, 61, StatusHighDemand},
		{"near empty", 5, 0, StatusLowDemand},
		{"normal load", 50, 20, StatusOpen},
		{"boundary capacity", 95, 0, StatusOpen},
		{"boundary wait", 50, 60, StatusOpen},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, attractionStatus(tt.capacity, tt.waitTime))
		})
	}
}

func TestBuildAttractionsStatus(t *testing.T) {
	t.Parallel()

	records := []models.AttractionMetricRecord{
		attractionRow("wheel", "Wheel", 9, 50, 10, 30, 4.2),
		attractionRow("coaster", "Coaster", 9, 200, 45, 85, 4.5),
		attractionRow("coaster", "Coaster", 10, 300, 70, 97, 4.4),
		attractionRow("wheel", "Wheel", 10, 60, 15, 35, 4.1),
	}

	board := BuildAttractionsStatus(records, 10)
	require.Len(t, board, 2)

	// Sorted by today's visitor count descending.
	coaster := board[0]
	assert.Equal(t, "coaster", coaster.AttractionID)
	assert.Equal(t, 500, coaster.TotalVisitorsToday)
	// Current fields come from the hour-10 row only.
	assert.Equal(t, 300, coaster.CurrentVisitors)
	assert.Equal(t, 70, coaster.CurrentWaitTime)
	assert.Equal(t, 97.0, coaster.CapacityUtilization)
	assert.Equal(t, 4.4, coaster.SatisfactionRating)
	assert.Equal(t, StatusFullCapacity, coaster.Status)

	wheel := board[1]
	assert.Equal(t, 110, wheel.TotalVisitorsToday)
	assert.Equal(t, 60, wheel.CurrentVisitors)
	assert.Equal(t, StatusOpen, wheel.Status)
}

func TestBuildAttractionsStatus_MissingCurrentHour(t *testing.T) {
	t.Parallel()

	// Only a morning row: the attraction still appears, with zero current
	// load and therefore LOW_DEMAND.
	board := BuildAttractionsStatus([]models.AttractionMetricRecord{
		attractionRow("coaster", "Coaster", 9, 150, 40, 80, 4.5),
	}, 14)

	require.Len(t, board, 1)
	assert.Equal(t, 150, board[0].TotalVisitorsToday)
	assert.Equal(t, 0, board[0].CurrentVisitors)
	assert.Equal(t, 0.0, board[0].CapacityUtilization)
	assert.Equal(t, 0.0, board[0].SatisfactionRating)
	assert.Equal(t, StatusLowDemand, board[0].Status)
}

func TestBuildAttractionsStatus_Empty(t *testing.T) {
	t.Parallel()

	board := BuildAttractionsStatus(nil, 12)
	assert.NotNil(t, board)
	assert.Empty(t, board)
}
