package stores

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"park-analytics/internal/models"
)

var operationalColumns = []string{
	"id", "metric_date", "metric_hour", "total_visitors", "total_revenue",
	"average_wait_time", "peak_capacity_percentage", "staff_efficiency_score",
	"system_uptime_percentage", "error_count", "customer_satisfaction_avg",
	"created_at",
}

//go:generate mockgen -source=operational_store.go -destination=./mocks/operational_store_mock.go -package=mocks
type OperationalMetricStore interface {
	// RangeByDate returns hourly operational rows with metric_date in
	// [from, to], ordered by date then hour.
	RangeByDate(ctx context.Context, from, to models.Date) ([]models.OperationalMetricRecord, error)
}

type operationalMetricStore struct {
	db *sql.DB
}

func NewOperationalMetricStore(db *sql.DB) OperationalMetricStore {
	return &operationalMetricStore{db: db}
}

func (s *operationalMetricStore) RangeByDate(ctx context.Context, from, to models.Date) ([]models.OperationalMetricRecord, error) {
	query, args, err := psq.Select(operationalColumns...).
		From("operational_metrics").
		Where(sq.GtOrEq{"metric_date": from}).
		Where(sq.LtOrEq{"metric_date": to}).
		OrderBy("metric_date ASC", "metric_hour ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building operational range query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying operational metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.OperationalMetricRecord
	for rows.Next() {
		var rec models.OperationalMetricRecord
		if err := rows.Scan(
			&rec.ID, &rec.MetricDate, &rec.MetricHour, &rec.TotalVisitors,
			&rec.TotalRevenue, &rec.AverageWaitTime, &rec.PeakCapacityPct,
			&rec.StaffEfficiency, &rec.SystemUptimePct, &rec.ErrorCount,
			&rec.CustomerSatisfaction, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning operational metric: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating operational metrics: %w", err)
	}

	return records, nil
}
