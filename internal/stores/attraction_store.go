package stores

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"park-analytics/internal/models"
)

var attractionColumns = []string{
	"id", "attraction_id", "attraction_name", "date", "hour", "total_visitors",
	"average_wait_time", "max_wait_time", "capacity_utilization",
	"satisfaction_rating", "downtime_minutes", "revenue_generated", "created_at",
}

//go:generate mockgen -source=attraction_store.go -destination=./mocks/attraction_store_mock.go -package=mocks
type AttractionMetricStore interface {
	// RangeByDate returns hourly attraction rows with date in [from, to],
	// ordered by date then hour. An empty attractionID matches all attractions.
	RangeByDate(ctx context.Context, from, to models.Date, attractionID string) ([]models.AttractionMetricRecord, error)
	// OnDateUpToHour returns rows for one day with hour <= maxHour.
	OnDateUpToHour(ctx context.Context, day models.Date, maxHour int) ([]models.AttractionMetricRecord, error)
}

type attractionMetricStore struct {
	db *sql.DB
}

func NewAttractionMetricStore(db *sql.DB) AttractionMetricStore {
	return &attractionMetricStore{db: db}
}

func (s *attractionMetricStore) RangeByDate(ctx context.Context, from, to models.Date, attractionID string) ([]models.AttractionMetricRecord, error) {
	qb := psq.Select(attractionColumns...).
		From("attraction_analytics").
		Where(sq.GtOrEq{"date": from}).
		Where(sq.LtOrEq{"date": to})
	if attractionID != "" {
		qb = qb.Where(sq.Eq{"attraction_id": attractionID})
	}
	query, args, err := qb.OrderBy("date ASC", "hour ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("building attraction range query: %w", err)
	}

	return s.query(ctx, query, args)
}

func (s *attractionMetricStore) OnDateUpToHour(ctx context.Context, day models.Date, maxHour int) ([]models.AttractionMetricRecord, error) {
	query, args, err := psq.Select(attractionColumns...).
		From("attraction_analytics").
		Where(sq.Eq{"date": day}).
		Where(sq.LtOrEq{"hour": maxHour}).
		OrderBy("hour ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building attraction day query: %w", err)
	}

	return s.query(ctx, query, args)
}

func (s *attractionMetricStore) query(ctx context.Context, query string, args []any) ([]models.AttractionMetricRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying attraction metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.AttractionMetricRecord
	for rows.Next() {
		var rec models.AttractionMetricRecord
		if err := rows.Scan(
			&rec.ID, &rec.AttractionID, &rec.AttractionName, &rec.Date,
			&rec.Hour, &rec.TotalVisitors, &rec.AverageWaitTime,
			&rec.MaxWaitTime, &rec.CapacityUtilization, &rec.SatisfactionRating,
			&rec.DowntimeMinutes, &rec.RevenueGenerated, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning attraction metric: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attraction metrics: %w", err)
	}

	return records, nil
}
