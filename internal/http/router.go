package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"park-analytics/internal/analytics"
	"park-analytics/internal/dashboards"
	"park-analytics/internal/reports"
	"park-analytics/internal/shared/configs"
	"park-analytics/internal/shared/loggers"
	"park-analytics/internal/shared/metrics"
	"park-analytics/internal/shared/svcerrors"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(
	analyticsService analytics.AnalyticsService,
	dashboardService dashboards.DashboardService,
	reportService reports.ReportService,
	cfg configs.AnalyticsConfig,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	system := &systemHandler{}
	analyticsH := newAnalyticsHandler(analyticsService, cfg.DefaultRangeDays)
	dashboardH := newDashboardHandler(dashboardService)
	reportH := newReportHandler(reportService, cfg.ExportRangeDays)

	// Routes
	router.Get("/health", errorHandlingAdapter(AppHttpHandlerFunc(system.Health)))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	router.Route("/api/v1", func(api chi.Router) {
		api.Get("/info", errorHandlingAdapter(AppHttpHandlerFunc(system.Info)))

		api.Route("/analytics", func(sub chi.Router) {
			sub.Get("/visitor-stats", errorHandlingAdapter(AppHttpHandlerFunc(analyticsH.VisitorStats)))
			sub.Get("/real-time", errorHandlingAdapter(AppHttpHandlerFunc(analyticsH.RealTime)))
			sub.Get("/attractions", errorHandlingAdapter(AppHttpHandlerFunc(analyticsH.Attractions)))
			sub.Get("/payments", errorHandlingAdapter(AppHttpHandlerFunc(analyticsH.Payments)))
			sub.Get("/operational-metrics", errorHandlingAdapter(AppHttpHandlerFunc(analyticsH.OperationalMetrics)))
			sub.Post("/feedback", errorHandlingAdapter(AppHttpHandlerFunc(analyticsH.SubmitFeedback)))
		})

		api.Route("/dashboard", func(sub chi.Router) {
			sub.Get("/overview", errorHandlingAdapter(AppHttpHandlerFunc(dashboardH.Overview)))
			sub.Get("/attractions-status", errorHandlingAdapter(AppHttpHandlerFunc(dashboardH.AttractionsStatus)))
			sub.Get("/payment-trends", errorHandlingAdapter(AppHttpHandlerFunc(dashboardH.PaymentTrends)))
			sub.Get("/system-health", errorHandlingAdapter(AppHttpHandlerFunc(dashboardH.SystemHealth)))
			sub.Post("/update-real-time", errorHandlingAdapter(AppHttpHandlerFunc(dashboardH.UpdateRealTime)))
		})

		api.Route("/reports", func(sub chi.Router) {
			sub.Get("/daily-summary", errorHandlingAdapter(AppHttpHandlerFunc(reportH.DailySummary)))
			sub.Get("/weekly-summary", errorHandlingAdapter(AppHttpHandlerFunc(reportH.WeeklySummary)))
			sub.Get("/export/csv", errorHandlingAdapter(AppHttpHandlerFunc(reportH.ExportCSV)))
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorResponse(w, r, svcerrors.NewNotFoundError("NOT_FOUND", "Resource not found"))
	})

	return router
}
