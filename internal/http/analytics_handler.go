package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"
	"park-analytics/internal/shared/svcerrors"
)

const codeInvalidData = "INVALID_DATA"

type analyticsHandler struct {
	service          analytics.AnalyticsService
	defaultRangeDays int
}

func newAnalyticsHandler(service analytics.AnalyticsService, defaultRangeDays int) *analyticsHandler {
	return &analyticsHandler{service: service, defaultRangeDays: defaultRangeDays}
}

// VisitorStats handles GET /api/v1/analytics/visitor-stats.
func (h *analyticsHandler) VisitorStats(w http.ResponseWriter, r *http.Request) error {
	from, to, err := dateRange(r, h.defaultRangeDays, time.Now().UTC())
	if err != nil {
		return err
	}
	granularity := models.ParseGranularity(r.URL.Query().Get("granularity"))

	stats, err := h.service.VisitorStats(r.Context(), from, to, granularity)
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, stats)
}

// RealTime handles GET /api/v1/analytics/real-time.
func (h *analyticsHandler) RealTime(w http.ResponseWriter, r *http.Request) error {
	snapshot, err := h.service.RealTimeSnapshot(r.Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, snapshot)
}

// Attractions handles GET /api/v1/analytics/attractions.
func (h *analyticsHandler) Attractions(w http.ResponseWriter, r *http.Request) error {
	from, to, err := dateRange(r, h.defaultRangeDays, time.Now().UTC())
	if err != nil {
		return err
	}

	summaries, err := h.service.AttractionAnalytics(r.Context(), from, to, r.URL.Query().Get("attraction_id"))
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, summaries)
}

// Payments handles GET /api/v1/analytics/payments.
func (h *analyticsHandler) Payments(w http.ResponseWriter, r *http.Request) error {
	from, to, err := dateRange(r, h.defaultRangeDays, time.Now().UTC())
	if err != nil {
		return err
	}

	stats, err := h.service.PaymentAnalytics(r.Context(), from, to, r.URL.Query().Get("payment_method"))
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, stats)
}

// OperationalMetrics handles GET /api/v1/analytics/operational-metrics.
func (h *analyticsHandler) OperationalMetrics(w http.ResponseWriter, r *http.Request) error {
	from, to, err := dateRange(r, h.defaultRangeDays, time.Now().UTC())
	if err != nil {
		return err
	}

	stats, err := h.service.OperationalMetrics(r.Context(), from, to)
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, stats)
}

// SubmitFeedback handles POST /api/v1/analytics/feedback.
func (h *analyticsHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeJSONBody[analytics.FeedbackRequest](r)
	if err != nil {
		return err
	}

	receipt, err := h.service.SubmitFeedback(r.Context(), req, r.UserAgent(), time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, receipt)
}

// decodeJSONBody decodes a JSON request body, mapping an empty body to the
// INVALID_DATA error so clients get the documented code instead of a decode
// failure.
func decodeJSONBody[T any](r *http.Request) (*T, error) {
	var payload T
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, svcerrors.NewInvalidArgumentError(codeInvalidData, "No data provided", err)
		}
		return nil, svcerrors.NewInvalidArgumentError(codeInvalidData, "Invalid JSON payload", err)
	}
	return &payload, nil
}
