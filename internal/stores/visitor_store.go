package stores

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"park-analytics/internal/models"
)

// visitorColumns lists columns returned by visitor SELECT queries, in scan order.
var visitorColumns = []string{
	"id", "user_id", "session_id", "visit_date", "entry_time", "exit_time",
	"total_duration_minutes", "attractions_visited", "total_spending",
	"queue_time_minutes", "satisfaction_rating", "feedback_comments",
	"device_type", "app_version", "created_at",
}

//go:generate mockgen -source=visitor_store.go -destination=./mocks/visitor_store_mock.go -package=mocks
type VisitorStore interface {
	// RangeByDate returns visitor records with visit_date in [from, to].
	RangeByDate(ctx context.Context, from, to models.Date) ([]models.VisitorRecord, error)
	// CountByDate returns the number of visitor records with visit_date in [from, to].
	CountByDate(ctx context.Context, from, to models.Date) (int, error)
	// Insert stores a single visitor record. The caller assigns the ID.
	Insert(ctx context.Context, rec *models.VisitorRecord) error
}

type visitorStore struct {
	db *sql.DB
}

func NewVisitorStore(db *sql.DB) VisitorStore {
	return &visitorStore{db: db}
}

func (s *visitorStore) RangeByDate(ctx context.Context, from, to models.Date) ([]models.VisitorRecord, error) {
	query, args, err := psq.Select(visitorColumns...).
		From("visitor_analytics").
		Where(sq.GtOrEq{"visit_date": from}).
		Where(sq.LtOrEq{"visit_date": to}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building visitor range query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying visitor records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.VisitorRecord
	for rows.Next() {
		var (
			rec                          models.VisitorRecord
			userID, sessionID            sql.NullString
			entryTime, exitTime          sql.NullTime
			duration, rating             sql.NullInt64
			comments, deviceType, appVer sql.NullString
		)
		if err := rows.Scan(
			&rec.ID, &userID, &sessionID, &rec.VisitDate, &entryTime, &exitTime,
			&duration, &rec.AttractionsVisited, &rec.TotalSpending,
			&rec.QueueTimeMinutes, &rating, &comments, &deviceType, &appVer,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning visitor record: %w", err)
		}
		rec.UserID = stringPtr(userID)
		rec.SessionID = stringPtr(sessionID)
		rec.EntryTime = timePtr(entryTime)
		rec.ExitTime = timePtr(exitTime)
		rec.DurationMinutes = intPtr(duration)
		rec.SatisfactionRating = intPtr(rating)
		rec.FeedbackComments = stringPtr(comments)
		rec.DeviceType = stringPtr(deviceType)
		rec.AppVersion = stringPtr(appVer)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating visitor records: %w", err)
	}

	return records, nil
}

func (s *visitorStore) CountByDate(ctx context.Context, from, to models.Date) (int, error) {
	query, args, err := psq.Select("COUNT(*)").
		From("visitor_analytics").
		Where(sq.GtOrEq{"visit_date": from}).
		Where(sq.LtOrEq{"visit_date": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building visitor count query: %w", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting visitor records: %w", err)
	}
	return count, nil
}

func (s *visitorStore) Insert(ctx context.Context, rec *models.VisitorRecord) error {
	query, args, err := psq.Insert("visitor_analytics").
		Columns(visitorColumns...).
		Values(
			rec.ID, nullString(rec.UserID), nullString(rec.SessionID),
			rec.VisitDate, nullTime(rec.EntryTime), nullTime(rec.ExitTime),
			nullInt(rec.DurationMinutes), rec.AttractionsVisited,
			rec.TotalSpending, rec.QueueTimeMinutes,
			nullInt(rec.SatisfactionRating), nullString(rec.FeedbackComments),
			nullString(rec.DeviceType), nullString(rec.AppVersion), rec.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("building visitor insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("inserting visitor record: %w", err)
	}
	return nil
}
