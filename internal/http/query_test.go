package http

import (
	"net/http/httptest"
	"testing"
	"time"

	"park-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateRange_Defaults(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)
	r := httptest.NewRequest("GET", "/api/v1/analytics/visitors", nil)

	from, to, err := dateRange(r, 7, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", from.ISO())
	assert.Equal(t, "2026-08-31", to.ISO())
}

func TestDateRange_ExplicitParameters(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)
	r := httptest.NewRequest("GET", "/api/v1/analytics/visitors?start_date=2026-08-01&end_date=2026-08-15", nil)

	from, to, err := dateRange(r, 7, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", from.ISO())
	assert.Equal(t, "2026-08-15", to.ISO())
}

func TestDateRange_PartialOverride(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)
	r := httptest.NewRequest("GET", "/api/v1/analytics/visitors?start_date=2026-08-01", nil)

	from, to, err := dateRange(r, 7, now)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", from.ISO())
	// end_date still defaults to today.
	assert.Equal(t, "2026-08-31", to.ISO())
}

func TestDateRange_InvalidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
	}{
		{"bad start", "/x?start_date=31-08-2026"},
		{"bad end", "/x?end_date=notadate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest("GET", tt.target, nil)
			_, _, err := dateRange(r, 7, time.Now())
			require.Error(t, err)

			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeInvalidDate, svcErr.Code)
			assert.Contains(t, svcErr.Message, "Invalid date format")
		})
	}
}

func TestDateParam(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 14, 0, 0, 0, time.UTC)

	r := httptest.NewRequest("GET", "/x?date=2026-08-15", nil)
	day, err := dateParam(r, "date", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-15", day.ISO())

	r = httptest.NewRequest("GET", "/x", nil)
	day, err = dateParam(r, "date", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-31", day.ISO())

	r = httptest.NewRequest("GET", "/x?date=bogus", nil)
	_, err = dateParam(r, "date", now)
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidDate, svcErr.Code)
}
