package http

import (
	"encoding/json"
	"net/http"
	"time"
)

// SuccessResponse is the success envelope shared by every endpoint.
type SuccessResponse struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// writeJSON writes a bare JSON body for the system endpoints that do not
// use the success envelope.
func writeJSON(w http.ResponseWriter, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(body)
}

func writeSuccessResponse(w http.ResponseWriter, data any) error {
	response := SuccessResponse{
		Success:   true,
		Data:      data,
		Message:   "Success",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(response)
}
