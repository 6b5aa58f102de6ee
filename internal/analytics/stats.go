// Package analytics implements the aggregation engine: pure functions that
// turn raw metric records into grouped summaries, plus the service that feeds
// them from the stores.
package analytics

import "math"

// SafeAvg divides sum by count with the denominator floored to 1, so an
// average over an empty set is 0 rather than an error or NaN. Callers must
// tolerate the potentially misleading 0 instead of expecting null.
func SafeAvg(sum float64, count int) float64 {
	return sum / float64(max(count, 1))
}

// GrowthPercent returns ((current-previous)/previous)*100, or 0 when the
// baseline is not positive. Empty prior periods report flat growth, not a
// division error.
func GrowthPercent(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

// Round1 rounds to 1 decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
