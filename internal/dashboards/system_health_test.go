package dashboards

import (
	"testing"
	"time"

	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(load float64, responseMs int, successRate float64) models.RealTimeStatRecord {
	return models.RealTimeStatRecord{
		SystemLoadPct:      load,
		APIResponseTimeMs:  responseMs,
		PaymentSuccessRate: successRate,
		CacheHitRate:       90,
	}
}

func TestEvaluateSystemHealth_EmptyWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	health := EvaluateSystemHealth(nil, now)

	assert.Equal(t, HealthHealthy, health.Status)
	assert.Equal(t, 100.0, health.PaymentSuccessRate)
	assert.Equal(t, 100.0, health.UptimePercentage)
	assert.NotNil(t, health.Alerts)
	assert.Empty(t, health.Alerts)
	assert.Equal(t, now, health.LastUpdated)
	assert.Equal(t, 0, health.MetricsCount)
}

func TestEvaluateSystemHealth_Healthy(t *testing.T) {
	t.Parallel()

	now := time.Now()
	health := EvaluateSystemHealth([]models.RealTimeStatRecord{
		sample(50, 200, 99),
		sample(60, 300, 98),
	}, now)

	assert.Equal(t, HealthHealthy, health.Status)
	assert.Equal(t, 55.0, health.SystemLoad)
	assert.Equal(t, 250.0, health.APIResponseTime)
	assert.Equal(t, 98.5, health.PaymentSuccessRate)
	assert.Equal(t, 100.0, health.UptimePercentage)
	assert.Empty(t, health.Alerts)
	assert.Equal(t, 2, health.MetricsCount)
}

func TestEvaluateSystemHealth_Thresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		window     []models.RealTimeStatRecord
		wantStatus string
		wantAlerts []string
		wantUptime float64
	}{
		{
			name:       "elevated load warns",
			window:     []models.RealTimeStatRecord{sample(80, 200, 99)},
			wantStatus: HealthWarning,
			wantAlerts: []string{"Elevated system load: 80.0%"},
			wantUptime: 100,
		},
		{
			name:       "high load is critical",
			window:     []models.RealTimeStatRecord{sample(95, 200, 99)},
			wantStatus: HealthCritical,
			wantAlerts: []string{"High system load: 95.0%"},
			wantUptime: 95,
		},
		{
			name:       "slow response warns",
			window:     []models.RealTimeStatRecord{sample(50, 1500, 99)},
			wantStatus: HealthWarning,
			wantAlerts: []string{"Slow API response time: 1500ms"},
			wantUptime: 100,
		},
		{
			name:       "slow response does not downgrade critical load",
			window:     []models.RealTimeStatRecord{sample(95, 1500, 99)},
			wantStatus: HealthCritical,
			wantAlerts: []string{"High system load: 95.0%", "Slow API response time: 1500ms"},
			wantUptime: 95,
		},
		{
			name:       "low payment success forces critical",
			window:     []models.RealTimeStatRecord{sample(50, 200, 90)},
			wantStatus: HealthCritical,
			wantAlerts: []string{"Low payment success rate: 90.0%"},
			wantUptime: 95,
		},
		{
			name:       "high load and failing payments alert together",
			window:     []models.RealTimeStatRecord{sample(95, 200, 90)},
			wantStatus: HealthCritical,
			wantAlerts: []string{"High system load: 95.0%", "Low payment success rate: 90.0%"},
			wantUptime: 95,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			health := EvaluateSystemHealth(tt.window, time.Now())
			assert.Equal(t, tt.wantStatus, health.Status)
			assert.Equal(t, tt.wantUptime, health.UptimePercentage)
			require.Len(t, health.Alerts, len(tt.wantAlerts))
			for i, msg := range tt.wantAlerts {
				assert.Equal(t, msg, health.Alerts[i].Message)
			}
		})
	}
}

func TestEvaluateSystemHealth_UsesLatestSample(t *testing.T) {
	t.Parallel()

	latestAt := time.Date(2026, time.August, 31, 11, 59, 0, 0, time.UTC)
	latest := sample(40, 100, 99)
	latest.Timestamp = latestAt
	latest.CurrentVisitors = 800
	latest.ConcurrentUsers = 120

	older := sample(60, 100, 99)
	older.Timestamp = latestAt.Add(-10 * time.Minute)
	older.CurrentVisitors = 700

	health := EvaluateSystemHealth([]models.RealTimeStatRecord{latest, older}, time.Now())

	assert.Equal(t, 800, health.CurrentVisitors)
	assert.Equal(t, 120, health.ConcurrentUsers)
	assert.Equal(t, latestAt, health.LastUpdated)
	// Load still averages over the whole window.
	assert.Equal(t, 50.0, health.SystemLoad)
}
