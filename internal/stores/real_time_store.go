package stores

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"park-analytics/internal/models"
)

var realTimeColumns = []string{
	"id", "timestamp", "current_visitors", "active_queues",
	"average_queue_time", "system_load_percentage", "payment_success_rate",
	"api_response_time_ms", "cache_hit_rate", "concurrent_users",
}

//go:generate mockgen -source=real_time_store.go -destination=./mocks/real_time_store_mock.go -package=mocks
type RealTimeStatStore interface {
	// Latest returns the most recent stat by timestamp, or nil when the
	// series is empty.
	Latest(ctx context.Context) (*models.RealTimeStatRecord, error)
	// Since returns stats with timestamp >= cutoff, newest first.
	Since(ctx context.Context, cutoff time.Time) ([]models.RealTimeStatRecord, error)
	// Insert appends a single stat sample. The caller assigns the ID.
	Insert(ctx context.Context, rec *models.RealTimeStatRecord) error
}

type realTimeStatStore struct {
	db *sql.DB
}

func NewRealTimeStatStore(db *sql.DB) RealTimeStatStore {
	return &realTimeStatStore{db: db}
}

func (s *realTimeStatStore) Latest(ctx context.Context) (*models.RealTimeStatRecord, error) {
	query, args, err := psq.Select(realTimeColumns...).
		From("real_time_stats").
		OrderBy("timestamp DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building latest stat query: %w", err)
	}

	var rec models.RealTimeStatRecord
	if err := scanRealTimeStat(s.db.QueryRowContext(ctx, query, args...), &rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying latest stat: %w", err)
	}
	return &rec, nil
}

func (s *realTimeStatStore) Since(ctx context.Context, cutoff time.Time) ([]models.RealTimeStatRecord, error) {
	query, args, err := psq.Select(realTimeColumns...).
		From("real_time_stats").
		Where(sq.GtOrEq{"timestamp": cutoff}).
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building stats since query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying stats since %s: %w", cutoff.Format(time.RFC3339), err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.RealTimeStatRecord
	for rows.Next() {
		var rec models.RealTimeStatRecord
		if err := scanRealTimeStat(rows, &rec); err != nil {
			return nil, fmt.Errorf("scanning real-time stat: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating real-time stats: %w", err)
	}

	return records, nil
}

func (s *realTimeStatStore) Insert(ctx context.Context, rec *models.RealTimeStatRecord) error {
	query, args, err := psq.Insert("real_time_stats").
		Columns(realTimeColumns...).
		Values(
			rec.ID, rec.Timestamp, rec.CurrentVisitors, rec.ActiveQueues,
			rec.AverageQueueTime, rec.SystemLoadPct, rec.PaymentSuccessRate,
			rec.APIResponseTimeMs, rec.CacheHitRate, rec.ConcurrentUsers,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("building stat insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting real-time stat: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRealTimeStat(row rowScanner, rec *models.RealTimeStatRecord) error {
	return row.Scan(
		&rec.ID, &rec.Timestamp, &rec.CurrentVisitors, &rec.ActiveQueues,
		&rec.AverageQueueTime, &rec.SystemLoadPct, &rec.PaymentSuccessRate,
		&rec.APIResponseTimeMs, &rec.CacheHitRate, &rec.ConcurrentUsers,
	)
}
