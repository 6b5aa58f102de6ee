package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"park-analytics/internal/models"
)

// CSV export types.
const (
	ExportVisitors    = "visitors"
	ExportOperational = "operational"
	ExportAttractions = "attractions"
)

// CSVExport is a rendered export: the file body plus its download name,
// such as visitor_analytics_2026-08-01_to_2026-08-31.csv.
type CSVExport struct {
	Filename string
	Content  []byte
}

var visitorCSVHeader = []string{
	"Date", "User ID", "Entry Time", "Exit Time", "Duration (minutes)",
	"Attractions Visited", "Total Spending", "Satisfaction Rating",
	"Feedback Comments", "Device Type",
}

var operationalCSVHeader = []string{
	"Date", "Hour", "Total Visitors", "Total Revenue", "Average Wait Time",
	"Peak Capacity %", "Staff Efficiency", "System Uptime %", "Error Count",
	"Customer Satisfaction Avg",
}

var attractionCSVHeader = []string{
	"Date", "Hour", "Attraction ID", "Attraction Name", "Total Visitors",
	"Average Wait Time", "Max Wait Time", "Capacity Utilization %",
	"Satisfaction Rating", "Downtime (minutes)", "Revenue Generated",
}

func renderVisitorCSV(records []models.VisitorRecord, start, end models.Date) (*CSVExport, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(visitorCSVHeader); err != nil {
		return nil, fmt.Errorf("writing visitor csv header: %w", err)
	}

	for i := range records {
		v := &records[i]
		row := []string{
			v.VisitDate.ISO(),
			stringOrEmpty(v.UserID),
			timeOrEmpty(v.EntryTime),
			timeOrEmpty(v.ExitTime),
			strconv.Itoa(v.DurationOrZero()),
			strconv.Itoa(v.AttractionsVisited),
			formatFloat(v.TotalSpending),
			intOrEmpty(v.SatisfactionRating),
			stringOrEmpty(v.FeedbackComments),
			stringOrEmpty(v.DeviceType),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing visitor csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing visitor csv: %w", err)
	}
	return &CSVExport{
		Filename: exportFilename("visitor_analytics", start, end),
		Content:  buf.Bytes(),
	}, nil
}

func renderOperationalCSV(records []models.OperationalMetricRecord, start, end models.Date) (*CSVExport, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(operationalCSVHeader); err != nil {
		return nil, fmt.Errorf("writing operational csv header: %w", err)
	}

	for _, m := range records {
		row := []string{
			m.MetricDate.ISO(),
			strconv.Itoa(m.MetricHour),
			strconv.Itoa(m.TotalVisitors),
			formatFloat(m.TotalRevenue),
			strconv.Itoa(m.AverageWaitTime),
			formatFloat(m.PeakCapacityPct),
			formatFloat(m.StaffEfficiency),
			formatFloat(m.SystemUptimePct),
			strconv.Itoa(m.ErrorCount),
			formatFloat(m.CustomerSatisfaction),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing operational csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing operational csv: %w", err)
	}
	return &CSVExport{
		Filename: exportFilename("operational_metrics", start, end),
		Content:  buf.Bytes(),
	}, nil
}

func renderAttractionCSV(records []models.AttractionMetricRecord, start, end models.Date) (*CSVExport, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(attractionCSVHeader); err != nil {
		return nil, fmt.Errorf("writing attraction csv header: %w", err)
	}

	for _, a := range records {
		row := []string{
			a.Date.ISO(),
			strconv.Itoa(a.Hour),
			a.AttractionID,
			a.AttractionName,
			strconv.Itoa(a.TotalVisitors),
			strconv.Itoa(a.AverageWaitTime),
			strconv.Itoa(a.MaxWaitTime),
			formatFloat(a.CapacityUtilization),
			formatFloat(a.SatisfactionRating),
			strconv.Itoa(a.DowntimeMinutes),
			formatFloat(a.RevenueGenerated),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing attraction csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing attraction csv: %w", err)
	}
	return &CSVExport{
		Filename: exportFilename("attraction_analytics", start, end),
		Content:  buf.Bytes(),
	}, nil
}

func exportFilename(prefix string, start, end models.Date) string {
	return fmt.Sprintf("%s_%s_to_%s.csv", prefix, start.ISO(), end.ISO())
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

func timeOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
