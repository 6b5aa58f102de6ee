package http

import (
	"fmt"
	"net/http"
	"time"

	"park-analytics/internal/reports"
)

type reportHandler struct {
	service         reports.ReportService
	exportRangeDays int
}

func newReportHandler(service reports.ReportService, exportRangeDays int) *reportHandler {
	return &reportHandler{service: service, exportRangeDays: exportRangeDays}
}

// DailySummary handles GET /api/v1/reports/daily-summary.
func (h *reportHandler) DailySummary(w http.ResponseWriter, r *http.Request) error {
	day, err := dateParam(r, "date", time.Now().UTC())
	if err != nil {
		return err
	}

	report, err := h.service.DailySummary(r.Context(), day)
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, report)
}

// WeeklySummary handles GET /api/v1/reports/weekly-summary.
func (h *reportHandler) WeeklySummary(w http.ResponseWriter, r *http.Request) error {
	end, err := dateParam(r, "end_date", time.Now().UTC())
	if err != nil {
		return err
	}

	report, err := h.service.WeeklySummary(r.Context(), end)
	if err != nil {
		return err
	}
	return writeSuccessResponse(w, report)
}

// ExportCSV handles GET /api/v1/reports/export/csv. Unlike the JSON
// endpoints it streams a file attachment.
func (h *reportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) error {
	exportType := r.URL.Query().Get("type")
	if exportType == "" {
		exportType = reports.ExportVisitors
	}
	from, to, err := dateRange(r, h.exportRangeDays, time.Now().UTC())
	if err != nil {
		return err
	}

	export, err := h.service.ExportCSV(r.Context(), exportType, from, to)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(export.Content)
	return err
}
