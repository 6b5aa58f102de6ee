package models

import "time"

// VisitorRecord is one park visit: entry/exit, spending, queue time and an
// optional satisfaction rating. Several fields are nullable because records
// are written incrementally — a feedback submission creates a record with a
// rating but no entry/exit times, while gate telemetry writes the opposite.
//
// An absent satisfaction rating means "no rating given" and is excluded from
// satisfaction averages; it is never treated as a rating of 0.
type VisitorRecord struct {
	ID                 string     `json:"id"`
	UserID             *string    `json:"user_id"`
	SessionID          *string    `json:"session_id"`
	VisitDate          Date       `json:"visit_date"`
	EntryTime          *time.Time `json:"entry_time"`
	ExitTime           *time.Time `json:"exit_time"`
	DurationMinutes    *int       `json:"total_duration_minutes"`
	AttractionsVisited int        `json:"attractions_visited"`
	TotalSpending      float64    `json:"total_spending"`
	QueueTimeMinutes   int        `json:"queue_time_minutes"`
	SatisfactionRating *int       `json:"satisfaction_rating"`
	FeedbackComments   *string    `json:"feedback_comments"`
	DeviceType         *string    `json:"device_type"`
	AppVersion         *string    `json:"app_version"`
	CreatedAt          time.Time  `json:"created_at"`
}

// DurationOrZero returns the visit duration with the documented zero-default
// for records that have none. Duration averages divide by group size, not by
// the count of records with a duration.
func (v *VisitorRecord) DurationOrZero() int {
	if v.DurationMinutes == nil {
		return 0
	}
	return *v.DurationMinutes
}

// HasRating reports whether the visitor left a satisfaction rating.
func (v *VisitorRecord) HasRating() bool {
	return v.SatisfactionRating != nil
}
