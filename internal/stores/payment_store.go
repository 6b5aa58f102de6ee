package stores

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"park-analytics/internal/models"
)

var paymentColumns = []string{
	"id", "date", "hour", "payment_method", "transaction_count",
	"total_amount", "average_transaction_amount", "success_rate",
	"average_processing_time_ms", "created_at",
}

//go:generate mockgen -source=payment_store.go -destination=./mocks/payment_store_mock.go -package=mocks
type PaymentMetricStore interface {
	// RangeByDate returns hourly payment rows with date in [from, to].
	// An empty method matches all payment methods.
	RangeByDate(ctx context.Context, from, to models.Date, method string) ([]models.PaymentMetricRecord, error)
}

type paymentMetricStore struct {
	db *sql.DB
}

func NewPaymentMetricStore(db *sql.DB) PaymentMetricStore {
	return &paymentMetricStore{db: db}
}

func (s *paymentMetricStore) RangeByDate(ctx context.Context, from, to models.Date, method string) ([]models.PaymentMetricRecord, error) {
	qb := psq.Select(paymentColumns...).
		From("payment_analytics").
		Where(sq.GtOrEq{"date": from}).
		Where(sq.LtOrEq{"date": to})
	if method != "" {
		qb = qb.Where(sq.Eq{"payment_method": method})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building payment range query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying payment metrics: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.PaymentMetricRecord
	for rows.Next() {
		var rec models.PaymentMetricRecord
		if err := rows.Scan(
			&rec.ID, &rec.Date, &rec.Hour, &rec.PaymentMethod,
			&rec.TransactionCount, &rec.TotalAmount, &rec.AvgTransactionAmount,
			&rec.SuccessRate, &rec.AvgProcessingTimeMs, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning payment metric: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment metrics: %w", err)
	}

	return records, nil
}
