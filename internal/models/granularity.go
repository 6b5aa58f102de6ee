package models

import "time"

// Granularity is the time-bucket size used to group visitor records into a
// time series.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity maps a query-string value to a Granularity. Unknown or
// empty values fall back to day, matching the documented default.
func ParseGranularity(s string) Granularity {
	switch Granularity(s) {
	case GranularityHour, GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s)
	default:
		return GranularityDay
	}
}

// Key returns the grouping key for a record with the given visit date and
// optional entry timestamp.
//
// Hour keys are only defined for records that carry an entry timestamp; the
// second return value is false when no key can be produced and the record must
// be omitted from the grouped series (it still counts toward ungrouped
// summaries). Keys:
//
//	hour:  "YYYY-MM-DD HH:00"
//	day:   "YYYY-MM-DD"
//	week:  ISO date of the Monday on/before the record's date
//	month: "YYYY-MM"
func (g Granularity) Key(visitDate Date, entryTime *time.Time) (string, bool) {
	switch g {
	case GranularityHour:
		if entryTime == nil {
			return "", false
		}
		return entryTime.Format("2006-01-02 15:00"), true
	case GranularityWeek:
		return visitDate.WeekStart().ISO(), true
	case GranularityMonth:
		return visitDate.MonthKey(), true
	default:
		return visitDate.ISO(), true
	}
}
