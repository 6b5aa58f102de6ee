package dashboards

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"park-analytics/internal/models"
	"park-analytics/internal/shared/loggers"
	"park-analytics/internal/shared/metrics"
	"park-analytics/internal/stores"
)

// RealTimeUpdate is the POST /update-real-time payload. PaymentSuccessRate
// is a pointer so an absent field defaults to 100 instead of 0.
type RealTimeUpdate struct {
	CurrentVisitors    int      `json:"current_visitors"`
	ActiveQueues       int      `json:"active_queues"`
	AverageQueueTime   int      `json:"average_queue_time"`
	SystemLoadPct      float64  `json:"system_load_percentage"`
	PaymentSuccessRate *float64 `json:"payment_success_rate"`
	APIResponseTimeMs  int      `json:"api_response_time_ms"`
	CacheHitRate       float64  `json:"cache_hit_rate"`
	ConcurrentUsers    int      `json:"concurrent_users"`
}

type UpdateReceipt struct {
	StatsID string `json:"stats_id"`
	Message string `json:"message"`
}

//go:generate mockgen -source=dashboard_service.go -destination=./mocks/dashboard_service_mock.go -package=mocks
type DashboardService interface {
	// Overview assembles today's summary, real-time block and hourly trends.
	Overview(ctx context.Context, now time.Time) (*Overview, error)
	// AttractionsStatus returns the per-attraction status board for today.
	AttractionsStatus(ctx context.Context, now time.Time) ([]AttractionStatus, error)
	// PaymentTrends covers the trailing 7 days of payment rows.
	PaymentTrends(ctx context.Context, now time.Time) (*PaymentTrends, error)
	// SystemHealth evaluates the trailing hour of real-time samples.
	SystemHealth(ctx context.Context, now time.Time) (*SystemHealth, error)
	// UpdateRealTime appends one real-time sample.
	UpdateRealTime(ctx context.Context, req *RealTimeUpdate, now time.Time) (*UpdateReceipt, error)
}

type dashboardService struct {
	visitorStore     stores.VisitorStore
	operationalStore stores.OperationalMetricStore
	realTimeStore    stores.RealTimeStatStore
	attractionStore  stores.AttractionMetricStore
	paymentStore     stores.PaymentMetricStore
}

func NewDashboardService(
	visitorStore stores.VisitorStore,
	operationalStore stores.OperationalMetricStore,
	realTimeStore stores.RealTimeStatStore,
	attractionStore stores.AttractionMetricStore,
	paymentStore stores.PaymentMetricStore,
) DashboardService {
	return &dashboardService{
		visitorStore:     visitorStore,
		operationalStore: operationalStore,
		realTimeStore:    realTimeStore,
		attractionStore:  attractionStore,
		paymentStore:     paymentStore,
	}
}

func (s *dashboardService) Overview(ctx context.Context, now time.Time) (*Overview, error) {
	today := models.DateOf(now)
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldDateFrom, today.ISO()).Msg("assembling dashboard overview")

	var (
		todayVisitors []models.VisitorRecord
		todayMetrics  []models.OperationalMetricRecord
		weekVisitors  []models.VisitorRecord
		latest        *models.RealTimeStatRecord
	)

	// The four source queries are independent, so fetch them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todayVisitors, err = s.visitorStore.RangeByDate(gctx, today, today)
		return err
	})
	g.Go(func() error {
		var err error
		todayMetrics, err = s.operationalStore.RangeByDate(gctx, today, today)
		return err
	})
	g.Go(func() error {
		var err error
		weekVisitors, err = s.visitorStore.RangeByDate(gctx, today.AddDays(-7), today.AddDays(-1))
		return err
	})
	g.Go(func() error {
		var err error
		latest, err = s.realTimeStore.Latest(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		svcErr := errStoreFailed("Failed to retrieve dashboard overview", err)
		metricViewsBuiltTotal.WithLabelValues("overview", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricViewsBuiltTotal.WithLabelValues("overview", metrics.ValueNoError).Inc()
	return BuildOverview(todayVisitors, todayMetrics, weekVisitors, latest, today, now), nil
}

func (s *dashboardService) AttractionsStatus(ctx context.Context, now time.Time) ([]AttractionStatus, error) {
	today := models.DateOf(now)
	records, err := s.attractionStore.OnDateUpToHour(ctx, today, now.Hour())
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve attractions status", err)
		metricViewsBuiltTotal.WithLabelValues("attractions_status", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricViewsBuiltTotal.WithLabelValues("attractions_status", metrics.ValueNoError).Inc()
	return BuildAttractionsStatus(records, now.Hour()), nil
}

func (s *dashboardService) PaymentTrends(ctx context.Context, now time.Time) (*PaymentTrends, error) {
	today := models.DateOf(now)
	records, err := s.paymentStore.RangeByDate(ctx, today.AddDays(-7), today, "")
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve payment trends", err)
		metricViewsBuiltTotal.WithLabelValues("payment_trends", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricViewsBuiltTotal.WithLabelValues("payment_trends", metrics.ValueNoError).Inc()
	return BuildPaymentTrends(records), nil
}

func (s *dashboardService) SystemHealth(ctx context.Context, now time.Time) (*SystemHealth, error) {
	window, err := s.realTimeStore.Since(ctx, now.Add(-time.Hour))
	if err != nil {
		svcErr := errStoreFailed("Failed to retrieve system health", err)
		metricViewsBuiltTotal.WithLabelValues("system_health", svcErr.Code).Inc()
		return nil, svcErr
	}

	health := EvaluateSystemHealth(window, now)
	for _, status := range []string{HealthHealthy, HealthWarning, HealthCritical} {
		value := 0.0
		if status == health.Status {
			value = 1.0
		}
		metricHealthStatus.WithLabelValues(status).Set(value)
	}

	metricViewsBuiltTotal.WithLabelValues("system_health", metrics.ValueNoError).Inc()
	return health, nil
}

func (s *dashboardService) UpdateRealTime(ctx context.Context, req *RealTimeUpdate, now time.Time) (*UpdateReceipt, error) {
	if req == nil {
		metricRealTimeUpdatesTotal.WithLabelValues(codeInvalidData).Inc()
		return nil, errInvalidData("No data provided")
	}

	successRate := 100.0
	if req.PaymentSuccessRate != nil {
		successRate = *req.PaymentSuccessRate
	}

	rec := &models.RealTimeStatRecord{
		ID:                 uuid.NewString(),
		Timestamp:          now,
		CurrentVisitors:    req.CurrentVisitors,
		ActiveQueues:       req.ActiveQueues,
		AverageQueueTime:   req.AverageQueueTime,
		SystemLoadPct:      req.SystemLoadPct,
		PaymentSuccessRate: successRate,
		APIResponseTimeMs:  req.APIResponseTimeMs,
		CacheHitRate:       req.CacheHitRate,
		ConcurrentUsers:    req.ConcurrentUsers,
	}
	if err := s.realTimeStore.Insert(ctx, rec); err != nil {
		svcErr := errStoreFailed("Failed to update real-time stats", err)
		metricRealTimeUpdatesTotal.WithLabelValues(svcErr.Code).Inc()
		return nil, svcErr
	}

	metricRealTimeUpdatesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return &UpdateReceipt{
		StatsID: rec.ID,
		Message: "Real-time stats updated successfully",
	}, nil
}
