package models

import "time"

// PaymentMetricRecord is one hour of transactions for a single payment
// method, unique per (date, hour, payment_method). Method values are
// enum-like strings such as CREDIT_CARD or MOBILE_WALLET.
type PaymentMetricRecord struct {
	ID                   string    `json:"id"`
	Date                 Date      `json:"date"`
	Hour                 int       `json:"hour"`
	PaymentMethod        string    `json:"payment_method"`
	TransactionCount     int       `json:"transaction_count"`
	TotalAmount          float64   `json:"total_amount"`
	AvgTransactionAmount float64   `json:"average_transaction_amount"`
	SuccessRate          float64   `json:"success_rate"`
	AvgProcessingTimeMs  int       `json:"average_processing_time_ms"`
	CreatedAt            time.Time `json:"created_at"`
}
