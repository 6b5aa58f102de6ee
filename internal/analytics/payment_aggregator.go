package analytics

import "park-analytics/internal/models"

// PaymentStats is the aggregated view of a set of payment metric rows.
type PaymentStats struct {
	Summary   PaymentSummary               `json:"summary"`
	ByMethod  []PaymentMethodStat          `json:"by_payment_method"`
	DailyData []models.PaymentMetricRecord `json:"daily_data"`
}

type PaymentSummary struct {
	TotalTransactions        int     `json:"total_transactions"`
	TotalAmount              float64 `json:"total_amount"`
	AverageTransactionAmount float64 `json:"average_transaction_amount"`
	AverageSuccessRate       float64 `json:"average_success_rate"`
	AverageProcessingTimeMs  float64 `json:"average_processing_time_ms"`
	Period                   string  `json:"period"`
}

// PaymentMethodStat aggregates one payment method's hourly rows. Counts and
// amounts are summed; success_rate and avg_processing_time are the unweighted
// mean of the method's per-hour values.
type PaymentMethodStat struct {
	PaymentMethod     string  `json:"payment_method"`
	TransactionCount  int     `json:"transaction_count"`
	TotalAmount       float64 `json:"total_amount"`
	SuccessRate       float64 `json:"success_rate"`
	AvgProcessingTime float64 `json:"avg_processing_time"`
}

// GroupPaymentsByMethod groups hourly payment rows by payment_method, in
// first-seen record order. Shared by the payments endpoint, the dashboard
// payment trends view and the daily report.
func GroupPaymentsByMethod(records []models.PaymentMetricRecord) []PaymentMethodStat {
	index := make(map[string]int)
	stats := make([]PaymentMethodStat, 0)
	rows := make([][]models.PaymentMetricRecord, 0)

	for _, rec := range records {
		i, exists := index[rec.PaymentMethod]
		if !exists {
			i = len(stats)
			index[rec.PaymentMethod] = i
			stats = append(stats, PaymentMethodStat{PaymentMethod: rec.PaymentMethod})
			rows = append(rows, nil)
		}
		stats[i].TransactionCount += rec.TransactionCount
		stats[i].TotalAmount += rec.TotalAmount
		rows[i] = append(rows[i], rec)
	}

	for i := range stats {
		var successSum, processingSum float64
		for _, rec := range rows[i] {
			successSum += rec.SuccessRate
			processingSum += float64(rec.AvgProcessingTimeMs)
		}
		n := len(rows[i])
		stats[i].SuccessRate = SafeAvg(successSum, n)
		stats[i].AvgProcessingTime = SafeAvg(processingSum, n)
	}

	return stats
}

// AggregatePayments computes the payments endpoint view: an overall summary,
// the per-method grouping and the raw rows.
func AggregatePayments(records []models.PaymentMetricRecord, period string) *PaymentStats {
	var (
		totalTransactions int
		totalAmount       float64
		successSum        float64
		processingSum     float64
	)
	for _, rec := range records {
		totalTransactions += rec.TransactionCount
		totalAmount += rec.TotalAmount
		successSum += rec.SuccessRate
		processingSum += float64(rec.AvgProcessingTimeMs)
	}

	if records == nil {
		records = []models.PaymentMetricRecord{}
	}

	return &PaymentStats{
		Summary: PaymentSummary{
			TotalTransactions:        totalTransactions,
			TotalAmount:              totalAmount,
			AverageTransactionAmount: SafeAvg(totalAmount, totalTransactions),
			AverageSuccessRate:       SafeAvg(successSum, len(records)),
			AverageProcessingTimeMs:  SafeAvg(processingSum, len(records)),
			Period:                   period,
		},
		ByMethod:  GroupPaymentsByMethod(records),
		DailyData: records,
	}
}
