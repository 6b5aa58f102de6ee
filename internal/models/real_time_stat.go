package models

import "time"

// RealTimeStatRecord is one sample of the append-only real-time series.
// "Current" views read the most recent sample by timestamp.
type RealTimeStatRecord struct {
	ID                 string    `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	CurrentVisitors    int       `json:"current_visitors"`
	ActiveQueues       int       `json:"active_queues"`
	AverageQueueTime   int       `json:"average_queue_time"`
	SystemLoadPct      float64   `json:"system_load_percentage"`
	PaymentSuccessRate float64   `json:"payment_success_rate"`
	APIResponseTimeMs  int       `json:"api_response_time_ms"`
	CacheHitRate       float64   `json:"cache_hit_rate"`
	ConcurrentUsers    int       `json:"concurrent_users"`
}
