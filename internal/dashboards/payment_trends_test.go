package dashboards

import (
	"testing"
	"time"

	"park-analytics/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendRow(day models.Date, method string, count int, amount, successRate float64) models.PaymentMetricRecord {
	return models.PaymentMetricRecord{
		Date:             day,
		PaymentMethod:    method,
		TransactionCount: count,
		TotalAmount:      amount,
		SuccessRate:      successRate,
	}
}

func TestBuildPaymentTrends(t *testing.T) {
	t.Parallel()

	monday := models.NewDate(2026, time.August, 24)
	tuesday := models.NewDate(2026, time.August, 25)
	records := []models.PaymentMetricRecord{
		trendRow(tuesday, "CREDIT_CARD", 100, 2500, 98),
		trendRow(monday, "CREDIT_CARD", 300, 7500, 96),
		trendRow(monday, "CASH", 600, 4000, 100),
	}

	trends := BuildPaymentTrends(records)

	assert.Equal(t, 1000, trends.Summary.TotalTransactionsWeek)
	assert.Equal(t, 14000.0, trends.Summary.TotalAmountWeek)
	assert.Equal(t, 14.0, trends.Summary.AverageTransactionAmount)
	assert.Equal(t, 98.0, trends.Summary.OverallSuccessRate)
	assert.Equal(t, "CASH", trends.Summary.MostPopularMethod)

	require.Len(t, trends.ByMethod, 2)
	cc := trends.ByMethod[0]
	assert.Equal(t, "CREDIT_CARD", cc.PaymentMethod)
	assert.Equal(t, 400, cc.TransactionCount)
	require.Len(t, cc.DailyData, 2)
	assert.Equal(t, "2026-08-25", cc.DailyData[0].Date)

	// Daily breakdown is sorted by date even though rows arrived out of
	// order.
	require.Len(t, trends.DailyTrends, 2)
	assert.Equal(t, "2026-08-24", trends.DailyTrends[0].Date)
	assert.Equal(t, 900, trends.DailyTrends[0].TotalTransactions)
	assert.Equal(t, 11500.0, trends.DailyTrends[0].TotalAmount)
	require.Len(t, trends.DailyTrends[0].Methods, 2)
	assert.Equal(t, 300, trends.DailyTrends[0].Methods["CREDIT_CARD"].Transactions)
}

func TestBuildPaymentTrends_LastRowWinsPerMethodDay(t *testing.T) {
	t.Parallel()

	day := models.NewDate(2026, time.August, 24)
	records := []models.PaymentMetricRecord{
		trendRow(day, "CASH", 100, 1000, 100),
		trendRow(day, "CASH", 50, 500, 100),
	}

	trends := BuildPaymentTrends(records)

	require.Len(t, trends.DailyTrends, 1)
	// Totals sum both rows, the method entry keeps only the last one.
	assert.Equal(t, 150, trends.DailyTrends[0].TotalTransactions)
	assert.Equal(t, 50, trends.DailyTrends[0].Methods["CASH"].Transactions)
	assert.Equal(t, 500.0, trends.DailyTrends[0].Methods["CASH"].Amount)
}

func TestBuildPaymentTrends_MostPopularFirstMaxOnTie(t *testing.T) {
	t.Parallel()

	day := models.NewDate(2026, time.August, 24)
	records := []models.PaymentMetricRecord{
		trendRow(day, "CREDIT_CARD", 200, 4000, 98),
		trendRow(day, "CASH", 200, 2000, 100),
	}

	trends := BuildPaymentTrends(records)
	assert.Equal(t, "CREDIT_CARD", trends.Summary.MostPopularMethod)
}

func TestBuildPaymentTrends_Empty(t *testing.T) {
	t.Parallel()

	trends := BuildPaymentTrends(nil)

	assert.Equal(t, 0, trends.Summary.TotalTransactionsWeek)
	assert.Equal(t, 0.0, trends.Summary.AverageTransactionAmount)
	assert.Equal(t, "N/A", trends.Summary.MostPopularMethod)
	assert.NotNil(t, trends.ByMethod)
	assert.Empty(t, trends.ByMethod)
	assert.NotNil(t, trends.DailyTrends)
	assert.Empty(t, trends.DailyTrends)
}
