package http

import (
	"net/http"
	"time"
)

const (
	serviceName        = "Theme Park Analytics Service"
	serviceVersion     = "1.0.0"
	serviceDescription = "Analytics and reporting service for theme park operations"
)

type systemHandler struct{}

// Health handles GET /health. It reports liveness only; dependency health is
// surfaced by /api/v1/dashboard/system-health.
func (h *systemHandler) Health(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, map[string]string{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Info handles GET /api/v1/info.
func (h *systemHandler) Info(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, map[string]any{
		"service":     serviceName,
		"version":     serviceVersion,
		"description": serviceDescription,
		"endpoints": map[string]string{
			"analytics": "/api/v1/analytics",
			"dashboard": "/api/v1/dashboard",
			"reports":   "/api/v1/reports",
			"health":    "/health",
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
