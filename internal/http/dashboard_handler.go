package http

import (
	"net/http"
	"time"

	"park-analytics/internal/dashboards"
)

type dashboardHandler struct {
	service dashboards.DashboardService
}

func newDashboardHandler(service dashboards.DashboardService) *dashboardHandler {
	return &dashboardHandler{service: service}
}

// Overview handles GET /api/v1/dashboard/overview.
func (h *dashboardHandler) Overview(w http.ResponseWriter, r *http.Request) error {
	overview, err := h.service.Overview(r.Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, overview)
}

// AttractionsStatus handles GET /api/v1/dashboard/attractions-status.
func (h *dashboardHandler) AttractionsStatus(w http.ResponseWriter, r *http.Request) error {
	board, err := h.service.AttractionsStatus(r.Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, board)
}

// PaymentTrends handles GET /api/v1/dashboard/payment-trends.
func (h *dashboardHandler) PaymentTrends(w http.ResponseWriter, r *http.Request) error {
	trends, err := h.service.PaymentTrends(r.Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, trends)
}

// SystemHealth handles GET /api/v1/dashboard/system-health.
func (h *dashboardHandler) SystemHealth(w http.ResponseWriter, r *http.Request) error {
	health, err := h.service.SystemHealth(r.Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, health)
}

// UpdateRealTime handles POST /api/v1/dashboard/update-real-time.
func (h *dashboardHandler) UpdateRealTime(w http.ResponseWriter, r *http.Request) error {
	req, err := decodeJSONBody[dashboards.RealTimeUpdate](r)
	if err != nil {
		return err
	}

	receipt, err := h.service.UpdateRealTime(r.Context(), req, time.Now().UTC())
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, receipt)
}
