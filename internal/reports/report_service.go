package reports

import (
	"context"

	"golang.org/x/sync/errgroup"

	"park-analytics/internal/models"
	"park-analytics/internal/shared/loggers"
	"park-analytics/internal/shared/metrics"
	"park-analytics/internal/stores"
)

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// DailySummary builds the full single-day report.
	DailySummary(ctx context.Context, day models.Date) (*DailyReport, error)
	// WeeklySummary covers the 7 days ending at end, with growth against the
	// preceding week.
	WeeklySummary(ctx context.Context, end models.Date) (*WeeklyReport, error)
	// ExportCSV renders raw rows in [from, to] for the given export type.
	ExportCSV(ctx context.Context, exportType string, from, to models.Date) (*CSVExport, error)
}

type reportService struct {
	visitorStore     stores.VisitorStore
	operationalStore stores.OperationalMetricStore
	attractionStore  stores.AttractionMetricStore
	paymentStore     stores.PaymentMetricStore
}

func NewReportService(
	visitorStore stores.VisitorStore,
	operationalStore stores.OperationalMetricStore,
	attractionStore stores.AttractionMetricStore,
	paymentStore stores.PaymentMetricStore,
) ReportService {
	return &reportService{
		visitorStore:     visitorStore,
		operationalStore: operationalStore,
		attractionStore:  attractionStore,
		paymentStore:     paymentStore,
	}
}

func (s *reportService) DailySummary(ctx context.Context, day models.Date) (*DailyReport, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldReportType, "daily").Str(loggers.FieldDateFrom, day.ISO()).Msg("building report")

	var (
		visitors    []models.VisitorRecord
		metricRows  []models.OperationalMetricRecord
		attractions []models.AttractionMetricRecord
		payments    []models.PaymentMetricRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitors, err = s.visitorStore.RangeByDate(gctx, day, day)
		return err
	})
	g.Go(func() error {
		var err error
		metricRows, err = s.operationalStore.RangeByDate(gctx, day, day)
		return err
	})
	g.Go(func() error {
		var err error
		attractions, err = s.attractionStore.RangeByDate(gctx, day, day, "")
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentStore.RangeByDate(gctx, day, day, "")
		return err
	})
	if err := g.Wait(); err != nil {
		svcErr := errStoreFailed("Failed to generate daily summary", err)
		metricReportsBuiltTotal.WithLabelValues("daily", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportsBuiltTotal.WithLabelValues("daily", metrics.ValueNoError).Inc()
	return BuildDailyReport(day, visitors, metricRows, attractions, payments), nil
}

func (s *reportService) WeeklySummary(ctx context.Context, end models.Date) (*WeeklyReport, error) {
	start := end.AddDays(-6)
	prevStart := start.AddDays(-7)
	prevEnd := start.AddDays(-1)

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldReportType, "weekly").
		Str(loggers.FieldDateFrom, start.ISO()).
		Str(loggers.FieldDateTo, end.ISO()).
		Msg("building report")

	var (
		visitors     []models.VisitorRecord
		metricRows   []models.OperationalMetricRecord
		prevVisitors int
		prevMetrics  []models.OperationalMetricRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		visitors, err = s.visitorStore.RangeByDate(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		metricRows, err = s.operationalStore.RangeByDate(gctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		prevVisitors, err = s.visitorStore.CountByDate(gctx, prevStart, prevEnd)
		return err
	})
	g.Go(func() error {
		var err error
		prevMetrics, err = s.operationalStore.RangeByDate(gctx, prevStart, prevEnd)
		return err
	})
	if err := g.Wait(); err != nil {
		svcErr := errStoreFailed("Failed to generate weekly summary", err)
		metricReportsBuiltTotal.WithLabelValues("weekly", svcErr.Code).Inc()
		return nil, svcErr
	}

	var prevRevenue float64
	for _, m := range prevMetrics {
		prevRevenue += m.TotalRevenue
	}

	metricReportsBuiltTotal.WithLabelValues("weekly", metrics.ValueNoError).Inc()
	return BuildWeeklyReport(start, end, visitors, metricRows, prevVisitors, prevRevenue), nil
}

func (s *reportService) ExportCSV(ctx context.Context, exportType string, from, to models.Date) (*CSVExport, error) {
	var export *CSVExport
	var err error

	switch exportType {
	case ExportVisitors:
		var records []models.VisitorRecord
		records, err = s.visitorStore.RangeByDate(ctx, from, to)
		if err == nil {
			export, err = renderVisitorCSV(records, from, to)
		}
	case ExportOperational:
		var records []models.OperationalMetricRecord
		records, err = s.operationalStore.RangeByDate(ctx, from, to)
		if err == nil {
			export, err = renderOperationalCSV(records, from, to)
		}
	case ExportAttractions:
		var records []models.AttractionMetricRecord
		records, err = s.attractionStore.RangeByDate(ctx, from, to, "")
		if err == nil {
			export, err = renderAttractionCSV(records, from, to)
		}
	default:
		svcErr := errInvalidType()
		metricReportsBuiltTotal.WithLabelValues("export_csv", svcErr.Code).Inc()
		return nil, svcErr
	}

	if err != nil {
		svcErr := errStoreFailed("Failed to export CSV report", err)
		metricReportsBuiltTotal.WithLabelValues("export_csv", svcErr.Code).Inc()
		return nil, svcErr
	}

	metricReportsBuiltTotal.WithLabelValues("export_csv", metrics.ValueNoError).Inc()
	metricExportBytes.WithLabelValues(exportType).Observe(float64(len(export.Content)))
	return export, nil
}
