package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"park-analytics/internal/analytics"
	"park-analytics/internal/dashboards"
	internalhttp "park-analytics/internal/http"
	"park-analytics/internal/reports"
	"park-analytics/internal/shared/configs"
	"park-analytics/internal/shared/loggers"
	"park-analytics/internal/stores"
	"park-analytics/internal/stores/migrate"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
	db        *sql.DB
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "park-analytics").
		Logger()

	// Open the database and bring the schema up to date
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	db, err := stores.Open(ctx, config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	migrateLogger := appLogger.With().Str(loggers.FieldComponent, "migrate").Logger()
	if err := migrate.Run(db, migrateLogger); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize stores
	visitorStore := stores.NewVisitorStore(db)
	operationalStore := stores.NewOperationalMetricStore(db)
	realTimeStore := stores.NewRealTimeStatStore(db)
	attractionStore := stores.NewAttractionMetricStore(db)
	paymentStore := stores.NewPaymentMetricStore(db)

	// Initialize services
	analyticsService := analytics.NewAnalyticsService(
		visitorStore, operationalStore, realTimeStore, attractionStore, paymentStore)
	dashboardService := dashboards.NewDashboardService(
		visitorStore, operationalStore, realTimeStore, attractionStore, paymentStore)
	reportService := reports.NewReportService(
		visitorStore, operationalStore, attractionStore, paymentStore)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(analyticsService, dashboardService, reportService, config.Analytics, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
		db:        db,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting park-analytics service on port %d (log_level=%s)",
			app.config.Server.Port,
			app.config.Log.Level)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	if err := app.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	app.appLogger.Info().Msg("Database connection closed")

	return nil
}
