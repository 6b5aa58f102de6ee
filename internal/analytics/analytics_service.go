package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/mileusna/useragent"

	"park-analytics/internal/models"
	"park-analytics/internal/shared/loggers"
	"park-analytics/internal/shared/metrics"
	"park-analytics/internal/stores"
)

// RealTimeSnapshot is the current-state view derived from the most recent
// real-time stat sample.
type RealTimeSnapshot struct {
	CurrentVisitors    int       `json:"current_visitors"`
	ActiveQueues       int       `json:"active_queues"`
	AverageQueueTime   int       `json:"average_queue_time"`
	SystemLoadPct      float64   `json:"system_load_percentage"`
	PaymentSuccessRate float64   `json:"payment_success_rate"`
	APIResponseTimeMs  int       `json:"api_response_time_ms"`
	CacheHitRate       float64   `json:"cache_hit_rate"`
	ConcurrentUsers    int       `json:"concurrent_users"`
	LastUpdated        time.Time `json:"last_updated"`
}

// FeedbackRequest is the POST /feedback payload. Rating is decoded as a
// float so a non-integer value can be rejected with INVALID_RATING rather
// than a generic decode error.
type FeedbackRequest struct {
	UserID     *string  `json:"user_id"`
	SessionID  *string  `json:"session_id"`
	Rating     *float64 `json:"rating"`
	Comments   string   `json:"comments"`
	DeviceType *string  `json:"device_type"`
	AppVersion *string  `json:"app_version"`
}

type FeedbackReceipt struct {
	FeedbackID string `json:"feedback_id"`
	Message    string `json:"message"`
}

//go:generate mockgen -source=analytics_service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	// VisitorStats aggregates visitor records in [from, to] by granularity.
	VisitorStats(ctx context.Context, from, to models.Date, granularity models.Granularity) (*VisitorStats, error)
	// RealTimeSnapshot returns the latest real-time stat, or the documented
	// zero/100 defaults when the series is empty.
	RealTimeSnapshot(ctx context.Context, now time.Time) (*RealTimeSnapshot, error)
	// AttractionAnalytics aggregates hourly attraction rows in [from, to],
	// optionally filtered to one attraction.
	AttractionAnalytics(ctx context.Context, from, to models.Date, attractionID string) ([]AttractionSummary, error)
	// PaymentAnalytics aggregates hourly payment rows in [from, to],
	// optionally filtered to one method.
	PaymentAnalytics(ctx context.Context, from, to models.Date, method string) (*PaymentStats, error)
	// OperationalMetrics aggregates hourly operational rows in [from, to].
	OperationalMetrics(ctx context.Context, from, to models.Date) (*OperationalStats, error)
	// SubmitFeedback validates and stores one feedback entry as a visitor
	// record dated now.
	SubmitFeedback(ctx context.Context, req *FeedbackRequest, userAgent string, now time.Time) (*FeedbackReceipt, error)
}

type analyticsService struct {
	visitorStore     stores.VisitorStore
	operationalStore stores.OperationalMetricStore
	realTimeStore    stores.RealTimeStatStore
	attractionStore  stores.AttractionMetricStore
	paymentStore     stores.PaymentMetricStore
}

func NewAnalyticsService(
	visitorStore stores.VisitorStore,
	operationalStore stores.OperationalMetricStore,
	realTimeStore stores.RealTimeStatStore,
	attractionStore stores.AttractionMetricStore,
	paymentStore stores.PaymentMetricStore,
) AnalyticsService {
	return &analyticsService{
		visitorStore:     visitorStore,
		operationalStore: operationalStore,
		realTimeStore:    realTimeStore,
		attractionStore:  attractionStore,
		paymentStore:     paymentStore,
	}
}

func rangePeriod(from, to models.Date) string {
	return fmt.Sprintf("%s to %s", from.ISO(), to.ISO())
}

func (s *analyticsService) VisitorStats(ctx context.Context, from, to models.Date, granularity models.Granularity) (*VisitorStats, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldDateFrom, from.ISO()).
		Str(loggers.FieldDateTo, to.ISO()).
		Str(loggers.FieldGranularity, string(granularity)).
		Msg("aggregating visitor stats")

	records, err := s.visitorStore.RangeByDate(ctx, from, to)
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve visitor statistics", err)
		metricAggregationQueriesTotal.WithLabelValues("visitors", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricAggregationQueriesTotal.WithLabelValues("visitors", metrics.ValueNoError).Inc()
	return AggregateVisitors(records, granularity, rangePeriod(from, to)), nil
}

func (s *analyticsService) RealTimeSnapshot(ctx context.Context, now time.Time) (*RealTimeSnapshot, error) {
	latest, err := s.realTimeStore.Latest(ctx)
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve real-time statistics", err)
		metricAggregationQueriesTotal.WithLabelValues("real_time", svcErr.Code).Inc()
		return nil, svcErr
	}
	metricAggregationQueriesTotal.WithLabelValues("real_time", metrics.ValueNoError).Inc()

	if latest == nil {
		// No samples yet: zero defaults, except payment success at 100.
		return &RealTimeSnapshot{
			PaymentSuccessRate: 100.0,
			LastUpdated:        now,
		}, nil
	}

	return &RealTimeSnapshot{
		CurrentVisitors:    latest.CurrentVisitors,
		ActiveQueues:       latest.ActiveQueues,
		AverageQueueTime:   latest.AverageQueueTime,
		SystemLoadPct:      latest.SystemLoadPct,
		PaymentSuccessRate: latest.PaymentSuccessRate,
		APIResponseTimeMs:  latest.APIResponseTimeMs,
		CacheHitRate:       latest.CacheHitRate,
		ConcurrentUsers:    latest.ConcurrentUsers,
		LastUpdated:        latest.Timestamp,
	}, nil
}

func (s *analyticsService) AttractionAnalytics(ctx context.Context, from, to models.Date, attractionID string) ([]AttractionSummary, error) {
	records, err := s.attractionStore.RangeByDate(ctx, from, to, attractionID)
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve attraction analytics", err)
		metricAggregationQueriesTotal.WithLabelValues("attractions", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricAggregationQueriesTotal.WithLabelValues("attractions", metrics.ValueNoError).Inc()
	return AggregateAttractions(records), nil
}

func (s *analyticsService) PaymentAnalytics(ctx context.Context, from, to models.Date, method string) (*PaymentStats, error) {
	records, err := s.paymentStore.RangeByDate(ctx, from, to, method)
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve payment analytics", err)
		metricAggregationQueriesTotal.WithLabelValues("payments", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricAggregationQueriesTotal.WithLabelValues("payments", metrics.ValueNoError).Inc()
	return AggregatePayments(records, rangePeriod(from, to)), nil
}

func (s *analyticsService) OperationalMetrics(ctx context.Context, from, to models.Date) (*OperationalStats, error) {
	records, err := s.operationalStore.RangeByDate(ctx, from, to)
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve operational metrics", err)
		metricAggregationQueriesTotal.WithLabelValues("operational", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricAggregationQueriesTotal.WithLabelValues("operational", metrics.ValueNoError).Inc()
	return AggregateOperational(records, rangePeriod(from, to)), nil
}

func (s *analyticsService) SubmitFeedback(ctx context.Context, req *FeedbackRequest, userAgent string, now time.Time) (*FeedbackReceipt, error) {
	if req == nil {
		return nil, errInvalidData("No data provided")
	}

	rating, err := validateRating(req.Rating)
	if err != nil {
		metricFeedbackSubmittedTotal.WithLabelValues(codeInvalidRating).Inc()
		return nil, err
	}

	comments := req.Comments
	deviceType := req.DeviceType
	if deviceType == nil {
		deviceType = deviceTypeFromUserAgent(userAgent)
	}

	record := &models.VisitorRecord{
		ID:                 uuid.NewString(),
		UserID:             req.UserID,
		SessionID:          req.SessionID,
		VisitDate:          models.DateOf(now),
		SatisfactionRating: &rating,
		FeedbackComments:   &comments,
		DeviceType:         deviceType,
		AppVersion:         req.AppVersion,
		CreatedAt:          now,
	}

	if err := s.visitorStore.Insert(ctx, record); err != nil {
		svcErr := errStoreFailed("Failed to submit feedback", err)
		metricFeedbackSubmittedTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricFeedbackSubmittedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &FeedbackReceipt{
		FeedbackID: record.ID,
		Message:    "Feedback submitted successfully",
	}, nil
}

// validateRating enforces an integral rating between 1 and 5.
func validateRating(rating *float64) (int, error) {
	if rating == nil {
		return 0, errInvalidRating()
	}
	if *rating != math.Trunc(*rating) {
		return 0, errInvalidRating()
	}
	value := int(*rating)
	if value < 1 || value > 5 {
		return 0, errInvalidRating()
	}
	return value, nil
}

// deviceTypeFromUserAgent derives a coarse device type from the request
// User-Agent when the payload does not name one.
func deviceTypeFromUserAgent(ua string) *string {
	if ua == "" {
		return nil
	}
	parsed := useragent.Parse(ua)
	var device string
	switch {
	case parsed.Mobile:
		device = "mobile"
	case parsed.Tablet:
		device = "tablet"
	case parsed.Bot:
		device = "bot"
	case parsed.Desktop:
		device = "desktop"
	default:
		return nil
	}
	return &device
}
