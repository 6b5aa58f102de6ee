package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseGranularity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, GranularityHour, ParseGranularity("hour"))
	assert.Equal(t, GranularityDay, ParseGranularity("day"))
	assert.Equal(t, GranularityWeek, ParseGranularity("week"))
	assert.Equal(t, GranularityMonth, ParseGranularity("month"))

	// Unknown and empty values default to day.
	assert.Equal(t, GranularityDay, ParseGranularity(""))
	assert.Equal(t, GranularityDay, ParseGranularity("year"))
}

func TestGranularity_Key(t *testing.T) {
	t.Parallel()

	visitDate := NewDate(2026, time.September, 2) // a Wednesday
	entry := time.Date(2026, time.September, 2, 14, 35, 0, 0, time.UTC)

	tests := []struct {
		name        string
		granularity Granularity
		entryTime   *time.Time
		wantKey     string
		wantOK      bool
	}{
		{"day", GranularityDay, nil, "2026-09-02", true},
		{"week snaps to monday", GranularityWeek, nil, "2026-08-31", true},
		{"month", GranularityMonth, nil, "2026-09", true},
		{"hour with entry time", GranularityHour, &entry, "2026-09-02 14:00", true},
		{"hour without entry time has no key", GranularityHour, nil, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			key, ok := tt.granularity.Key(visitDate, tt.entryTime)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}
