package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := ParseDate("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", d.ISO())

	_, err = ParseDate("31/08/2026")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDate_WeekStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date Date
		want string
	}{
		{"monday maps to itself", NewDate(2026, time.August, 31), "2026-08-31"},
		{"wednesday maps back to monday", NewDate(2026, time.September, 2), "2026-08-31"},
		{"sunday maps back six days", NewDate(2026, time.September, 6), "2026-08-31"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.date.WeekStart().ISO())
		})
	}
}

func TestDate_MonthKeyAndDayName(t *testing.T) {
	t.Parallel()

	d := NewDate(2026, time.February, 3)
	assert.Equal(t, "2026-02", d.MonthKey())
	assert.Equal(t, "Tuesday", d.DayName())
}

func TestDate_AddDays(t *testing.T) {
	t.Parallel()

	d := NewDate(2026, time.March, 1)
	assert.Equal(t, "2026-02-22", d.AddDays(-7).ISO())
	assert.Equal(t, "2026-03-08", d.AddDays(7).ISO())
}

func TestDate_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := NewDate(2026, time.August, 31)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-31"`, string(b))

	var parsed Date
	require.NoError(t, json.Unmarshal(b, &parsed))
	assert.True(t, d.Equal(parsed))

	var bad Date
	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &bad))
}

func TestDateOf_TruncatesToUTCDay(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*3600)
	// 00:30 on Sep 1 in UTC+2 is still Aug 31 in UTC.
	local := time.Date(2026, time.September, 1, 0, 30, 0, 0, loc)
	assert.Equal(t, "2026-08-31", DateOf(local).ISO())
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-08-31", d.ISO())

	require.NoError(t, d.Scan("2026-01-02"))
	assert.Equal(t, "2026-01-02", d.ISO())

	require.NoError(t, d.Scan([]byte("2026-01-03")))
	assert.Equal(t, "2026-01-03", d.ISO())

	assert.Error(t, d.Scan(42))
}
