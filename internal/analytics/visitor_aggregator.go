package analytics

import (
	"sort"

	"park-analytics/internal/models"
)

// VisitorStats is the aggregated view of a set of visitor records: one
// summary over the whole range plus a time series grouped by granularity.
type VisitorStats struct {
	Summary     VisitorSummary      `json:"summary"`
	TimeSeries  []VisitorPeriodStat `json:"time_series"`
	Granularity models.Granularity  `json:"granularity"`
}

type VisitorSummary struct {
	TotalVisitors             int     `json:"total_visitors"`
	TotalRevenue              float64 `json:"total_revenue"`
	AverageVisitDuration      float64 `json:"average_visit_duration"`
	AverageSpendingPerVisitor float64 `json:"average_spending_per_visitor"`
	AverageSatisfaction       float64 `json:"average_satisfaction"`
	Period                    string  `json:"period"`
}

// VisitorPeriodStat is one bucket of the grouped time series.
type VisitorPeriodStat struct {
	Period          string  `json:"period"`
	Visitors        int     `json:"visitors"`
	TotalSpending   float64 `json:"total_spending"`
	AvgDuration     float64 `json:"avg_duration"`
	AvgSatisfaction float64 `json:"avg_satisfaction"`
}

// visitorBucket accumulates one group during the first pass.
type visitorBucket struct {
	visitors    int
	spending    float64
	duration    int
	ratingSum   int
	ratingCount int
}

// AggregateVisitors computes the summary and grouped time series for a set of
// visitor records. It is a pure function over its inputs.
//
// Two averaging rules differ on purpose and must stay asymmetric:
// avg_duration divides by the full group size (missing durations count as 0),
// while avg_satisfaction divides by the number of records that carry a rating.
// Records without an entry timestamp are omitted from hour-grouped series but
// still count toward the summary.
func AggregateVisitors(records []models.VisitorRecord, granularity models.Granularity, period string) *VisitorStats {
	totalVisitors := len(records)

	var (
		totalSpending float64
		totalDuration int
		ratingSum     int
		ratingCount   int
	)

	buckets := make(map[string]*visitorBucket)
	for i := range records {
		rec := &records[i]

		totalSpending += rec.TotalSpending
		totalDuration += rec.DurationOrZero()
		if rec.HasRating() {
			ratingSum += *rec.SatisfactionRating
			ratingCount++
		}

		key, ok := granularity.Key(rec.VisitDate, rec.EntryTime)
		if !ok {
			continue
		}
		bucket, exists := buckets[key]
		if !exists {
			bucket = &visitorBucket{}
			buckets[key] = bucket
		}
		bucket.visitors++
		bucket.spending += rec.TotalSpending
		bucket.duration += rec.DurationOrZero()
		if rec.HasRating() {
			bucket.ratingSum += *rec.SatisfactionRating
			bucket.ratingCount++
		}
	}

	// Finalize buckets in key order.
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	timeSeries := make([]VisitorPeriodStat, 0, len(keys))
	for _, key := range keys {
		bucket := buckets[key]
		timeSeries = append(timeSeries, VisitorPeriodStat{
			Period:          key,
			Visitors:        bucket.visitors,
			TotalSpending:   bucket.spending,
			AvgDuration:     SafeAvg(float64(bucket.duration), bucket.visitors),
			AvgSatisfaction: SafeAvg(float64(bucket.ratingSum), bucket.ratingCount),
		})
	}

	return &VisitorStats{
		Summary: VisitorSummary{
			TotalVisitors:             totalVisitors,
			TotalRevenue:              totalSpending,
			AverageVisitDuration:      SafeAvg(float64(totalDuration), totalVisitors),
			AverageSpendingPerVisitor: SafeAvg(totalSpending, totalVisitors),
			AverageSatisfaction:       SafeAvg(float64(ratingSum), ratingCount),
			Period:                    period,
		},
		TimeSeries:  timeSeries,
		Granularity: granularity,
	}
}
