package http

import (
	"fmt"
	"net/http"
	"time"

	"park-analytics/internal/models"
	"park-analytics/internal/shared/svcerrors"
)

const codeInvalidDate = "INVALID_DATE"

func errInvalidDate(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDate,
		fmt.Sprintf("Invalid date format: %v", cause), cause)
}

// dateRange reads the start_date/end_date query parameters, defaulting to
// the trailing defaultDays window ending today.
func dateRange(r *http.Request, defaultDays int, now time.Time) (models.Date, models.Date, error) {
	today := models.DateOf(now)
	from := today.AddDays(-defaultDays)
	to := today

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return models.Date{}, models.Date{}, errInvalidDate(err)
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("end_date"); raw != "" {
		parsed, err := models.ParseDate(raw)
		if err != nil {
			return models.Date{}, models.Date{}, errInvalidDate(err)
		}
		to = parsed
	}
	return from, to, nil
}

// dateParam reads a single date query parameter, defaulting to today.
func dateParam(r *http.Request, name string, now time.Time) (models.Date, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return models.DateOf(now), nil
	}
	parsed, err := models.ParseDate(raw)
	if err != nil {
		return models.Date{}, errInvalidDate(err)
	}
	return parsed, nil
}
