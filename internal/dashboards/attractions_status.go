package dashboards

import (
	"sort"

	"park-analytics/internal/models"
)

// Attraction status values, highest priority first.
const (
	StatusFullCapacity = "FULL_CAPACITY"
	StatusHighDemand   = "HIGH_DEMAND"
	StatusLowDemand    = "LOW_DEMAND"
	StatusOpen         = "OPEN"
)

// AttractionStatus is one attraction's row on the status board. Current
// fields come from the row matching the current hour; the visitor total
// covers the whole day so far.
type AttractionStatus struct {
	AttractionID        string  `json:"attraction_id"`
	AttractionName      string  `json:"attraction_name"`
	CurrentVisitors     int     `json:"current_visitors"`
	CurrentWaitTime     int     `json:"current_wait_time"`
	CapacityUtilization float64 `json:"capacity_utilization"`
	Status              string  `json:"status"`
	SatisfactionRating  float64 `json:"satisfaction_rating"`
	TotalVisitorsToday  int     `json:"total_visitors_today"`
}

// attractionStatus classifies an attraction from its current-hour load.
// Capacity pressure wins over wait time, which wins over emptiness. An
// attraction with no current-hour row classifies as LOW_DEMAND.
func attractionStatus(capacityUtilization float64, waitTime int) string {
	switch {
	case capacityUtilization > 95:
		return StatusFullCapacity
	case waitTime > 60:
		return StatusHighDemand
	case capacityUtilization < 10:
		return StatusLowDemand
	default:
		return StatusOpen
	}
}

// BuildAttractionsStatus folds today's hourly rows up to the current hour
// into one row per attraction, sorted by today's visitor count descending.
func BuildAttractionsStatus(records []models.AttractionMetricRecord, currentHour int) []AttractionStatus {
	index := make(map[string]int)
	board := make([]AttractionStatus, 0)

	for _, rec := range records {
		i, exists := index[rec.AttractionID]
		if !exists {
			i = len(board)
			index[rec.AttractionID] = i
			board = append(board, AttractionStatus{
				AttractionID:   rec.AttractionID,
				AttractionName: rec.AttractionName,
			})
		}

		board[i].TotalVisitorsToday += rec.TotalVisitors

		if rec.Hour == currentHour {
			board[i].CurrentVisitors = rec.TotalVisitors
			board[i].CurrentWaitTime = rec.AverageWaitTime
			board[i].CapacityUtilization = rec.CapacityUtilization
			board[i].SatisfactionRating = rec.SatisfactionRating
		}
	}

	sort.SliceStable(board, func(a, b int) bool {
		return board[a].TotalVisitorsToday > board[b].TotalVisitorsToday
	})

	for i := range board {
		board[i].Status = attractionStatus(board[i].CapacityUtilization, board[i].CurrentWaitTime)
	}
	return board
}
