package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"park-analytics/internal/models"
)

func TestVisitorStore_RangeByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewVisitorStore(db)
	from := models.NewDate(2026, time.August, 1)
	to := models.NewDate(2026, time.August, 31)

	entry := time.Date(2026, time.August, 15, 9, 30, 0, 0, time.UTC)
	created := time.Date(2026, time.August, 15, 18, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(visitorColumns).
		AddRow("v-1", "user-1", nil, from.Time(), entry, nil,
			150, 6, 123.5, 20, 4, "great day", "mobile", nil, created).
		AddRow("v-2", nil, nil, to.Time(), nil, nil,
			nil, 0, 0, 0, nil, nil, nil, nil, created)

	mock.ExpectQuery("SELECT .+ FROM visitor_analytics WHERE visit_date >= .+ AND visit_date <= .+").
		WithArgs(from, to).
		WillReturnRows(rows)

	records, err := store.RangeByDate(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "v-1", first.ID)
	require.NotNil(t, first.UserID)
	assert.Equal(t, "user-1", *first.UserID)
	assert.Nil(t, first.SessionID)
	assert.Equal(t, "2026-08-01", first.VisitDate.ISO())
	require.NotNil(t, first.EntryTime)
	assert.Equal(t, entry, *first.EntryTime)
	require.NotNil(t, first.DurationMinutes)
	assert.Equal(t, 150, *first.DurationMinutes)
	assert.Equal(t, 123.5, first.TotalSpending)
	require.NotNil(t, first.SatisfactionRating)
	assert.Equal(t, 4, *first.SatisfactionRating)

	second := records[1]
	assert.Nil(t, second.UserID)
	assert.Nil(t, second.DurationMinutes)
	assert.Nil(t, second.SatisfactionRating)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorStore_RangeByDate_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewVisitorStore(db)
	from := models.NewDate(2026, time.August, 1)

	mock.ExpectQuery("SELECT .+ FROM visitor_analytics").
		WillReturnError(errors.New("connection refused"))

	records, err := store.RangeByDate(context.Background(), from, from)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Contains(t, err.Error(), "querying visitor records")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorStore_CountByDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewVisitorStore(db)
	from := models.NewDate(2026, time.August, 1)
	to := models.NewDate(2026, time.August, 7)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM visitor_analytics`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := store.CountByDate(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorStore_Insert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewVisitorStore(db)

	rating := 5
	comments := "best ride ever"
	device := "mobile"
	created := time.Date(2026, time.August, 15, 18, 0, 0, 0, time.UTC)
	rec := &models.VisitorRecord{
		ID:                 "v-9",
		VisitDate:          models.NewDate(2026, time.August, 15),
		SatisfactionRating: &rating,
		FeedbackComments:   &comments,
		DeviceType:         &device,
		CreatedAt:          created,
	}

	mock.ExpectExec("INSERT INTO visitor_analytics").
		WithArgs(
			"v-9", nil, nil, rec.VisitDate, nil, nil,
			nil, 0, 0.0, 0, rating, comments, device, nil, created,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Insert(context.Background(), rec)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVisitorStore_Insert_ExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	store := NewVisitorStore(db)

	mock.ExpectExec("INSERT INTO visitor_analytics").
		WillReturnError(errors.New("connection refused"))

	err = store.Insert(context.Background(), &models.VisitorRecord{ID: "v-9"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inserting visitor record")
	assert.NoError(t, mock.ExpectationsWereMet())
}
