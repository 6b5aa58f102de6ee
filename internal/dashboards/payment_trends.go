package dashboards

import (
	"sort"

	"park-analytics/internal/analytics"
	"park-analytics/internal/models"
)

// PaymentTrends is the weekly payment view: a summary, per-method rollups
// with their raw daily points and a cross-method daily breakdown.
type PaymentTrends struct {
	Summary     PaymentTrendsSummary `json:"summary"`
	ByMethod    []MethodTrend        `json:"by_payment_method"`
	DailyTrends []DailyTrend         `json:"daily_trends"`
}

type PaymentTrendsSummary struct {
	TotalTransactionsWeek    int     `json:"total_transactions_week"`
	TotalAmountWeek          float64 `json:"total_amount_week"`
	AverageTransactionAmount float64 `json:"average_transaction_amount"`
	OverallSuccessRate       float64 `json:"overall_success_rate"`
	// MostPopularMethod is "N/A" when the window holds no transactions.
	MostPopularMethod string `json:"most_popular_method"`
}

// MethodTrend extends the per-method rollup with one point per source row.
type MethodTrend struct {
	analytics.PaymentMethodStat
	DailyData []MethodPoint `json:"daily_data"`
}

type MethodPoint struct {
	Date         string  `json:"date"`
	Transactions int     `json:"transactions"`
	Amount       float64 `json:"amount"`
}

type DailyTrend struct {
	Date              string                 `json:"date"`
	TotalTransactions int                    `json:"total_transactions"`
	TotalAmount       float64                `json:"total_amount"`
	Methods           map[string]MethodPoint `json:"methods"`
}

// BuildPaymentTrends assembles the weekly trends view from hourly payment
// rows. Per-method stats come from GroupPaymentsByMethod; each method also
// carries its raw points. In the daily breakdown the per-method entry is the
// last row seen for that method on that day, while the daily totals sum all
// rows.
func BuildPaymentTrends(records []models.PaymentMetricRecord) *PaymentTrends {
	stats := analytics.GroupPaymentsByMethod(records)

	methodIndex := make(map[string]int, len(stats))
	byMethod := make([]MethodTrend, len(stats))
	for i, stat := range stats {
		methodIndex[stat.PaymentMethod] = i
		byMethod[i] = MethodTrend{PaymentMethodStat: stat, DailyData: []MethodPoint{}}
	}

	dailyIndex := make(map[string]int)
	daily := make([]DailyTrend, 0)

	var totalTransactions int
	var totalAmount, successSum float64
	for _, rec := range records {
		totalTransactions += rec.TransactionCount
		totalAmount += rec.TotalAmount
		successSum += rec.SuccessRate

		day := rec.Date.ISO()
		point := MethodPoint{Date: day, Transactions: rec.TransactionCount, Amount: rec.TotalAmount}

		mi := methodIndex[rec.PaymentMethod]
		byMethod[mi].DailyData = append(byMethod[mi].DailyData, point)

		di, exists := dailyIndex[day]
		if !exists {
			di = len(daily)
			dailyIndex[day] = di
			daily = append(daily, DailyTrend{Date: day, Methods: make(map[string]MethodPoint)})
		}
		daily[di].TotalTransactions += rec.TransactionCount
		daily[di].TotalAmount += rec.TotalAmount
		daily[di].Methods[rec.PaymentMethod] = point
	}

	sort.Slice(daily, func(a, b int) bool { return daily[a].Date < daily[b].Date })

	mostPopular := "N/A"
	if len(byMethod) > 0 {
		best := 0
		for i := 1; i < len(byMethod); i++ {
			if byMethod[i].TransactionCount > byMethod[best].TransactionCount {
				best = i
			}
		}
		mostPopular = byMethod[best].PaymentMethod
	}

	return &PaymentTrends{
		Summary: PaymentTrendsSummary{
			TotalTransactionsWeek:    totalTransactions,
			TotalAmountWeek:          totalAmount,
			AverageTransactionAmount: analytics.SafeAvg(totalAmount, totalTransactions),
			OverallSuccessRate:       analytics.Round2(analytics.SafeAvg(successSum, len(records))),
			MostPopularMethod:        mostPopular,
		},
		ByMethod:    byMethod,
		DailyTrends: daily,
	}
}
