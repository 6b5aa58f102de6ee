package dashboards

import (
	"fmt"
	"math"
	"time"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"
)

// Health status values.
const (
	HealthHealthy  = "HEALTHY"
	HealthWarning  = "WARNING"
	HealthCritical = "CRITICAL"
)

// SystemHealth is the health verdict derived from the trailing hour of
// real-time samples.
type SystemHealth struct {
	Status             string        `json:"status"`
	SystemLoad         float64       `json:"system_load"`
	APIResponseTime    float64       `json:"api_response_time"`
	PaymentSuccessRate float64       `json:"payment_success_rate"`
	CacheHitRate       float64       `json:"cache_hit_rate"`
	UptimePercentage   float64       `json:"uptime_percentage"`
	CurrentVisitors    int           `json:"current_visitors"`
	ConcurrentUsers    int           `json:"concurrent_users"`
	Alerts             []HealthAlert `json:"alerts"`
	LastUpdated        time.Time     `json:"last_updated"`
	MetricsCount       int           `json:"metrics_count"`
}

type HealthAlert struct {
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// EvaluateSystemHealth averages the window's samples and runs the threshold
// checks. Status only escalates: a later WARNING never downgrades an earlier
// CRITICAL, but a payment success rate under 95% always forces CRITICAL.
// The window must be sorted newest first; an empty window reports HEALTHY
// with the idle defaults.
func EvaluateSystemHealth(window []models.RealTimeStatRecord, now time.Time) *SystemHealth {
	if len(window) == 0 {
		return &SystemHealth{
			Status:             HealthHealthy,
			PaymentSuccessRate: 100,
			UptimePercentage:   100,
			Alerts:             []HealthAlert{},
			LastUpdated:        now,
		}
	}

	latest := window[0]

	var loadSum, responseSum, successSum, cacheSum float64
	for _, s := range window {
		loadSum += s.SystemLoadPct
		responseSum += float64(s.APIResponseTimeMs)
		successSum += s.PaymentSuccessRate
		cacheSum += s.CacheHitRate
	}
	n := len(window)
	avgLoad := loadSum / float64(n)
	avgResponse := responseSum / float64(n)
	avgSuccess := successSum / float64(n)
	avgCache := cacheSum / float64(n)

	status := HealthHealthy
	alerts := []HealthAlert{}

	if avgLoad > 90 {
		status = HealthCritical
		alerts = append(alerts, HealthAlert{
			Level:     HealthCritical,
			Message:   fmt.Sprintf("High system load: %.1f%%", avgLoad),
			Timestamp: now,
		})
	} else if avgLoad > 75 {
		status = HealthWarning
		alerts = append(alerts, HealthAlert{
			Level:     HealthWarning,
			Message:   fmt.Sprintf("Elevated system load: %.1f%%", avgLoad),
			Timestamp: now,
		})
	}

	if avgResponse > 1000 {
		if status != HealthCritical {
			status = HealthWarning
		}
		alerts = append(alerts, HealthAlert{
			Level:     HealthWarning,
			Message:   fmt.Sprintf("Slow API response time: %.0fms", avgResponse),
			Timestamp: now,
		})
	}

	if avgSuccess < 95 {
		status = HealthCritical
		alerts = append(alerts, HealthAlert{
			Level:     HealthCritical,
			Message:   fmt.Sprintf("Low payment success rate: %.1f%%", avgSuccess),
			Timestamp: now,
		})
	}

	uptime := 100.0
	if status == HealthCritical {
		uptime = 95.0
	}

	return &SystemHealth{
		Status:             status,
		SystemLoad:         analytics.Round1(avgLoad),
		APIResponseTime:    math.Round(avgResponse),
		PaymentSuccessRate: analytics.Round1(avgSuccess),
		CacheHitRate:       analytics.Round1(avgCache),
		UptimePercentage:   uptime,
		CurrentVisitors:    latest.CurrentVisitors,
		ConcurrentUsers:    latest.ConcurrentUsers,
		Alerts:             alerts,
		LastUpdated:        latest.Timestamp,
		MetricsCount:       n,
	}
}
