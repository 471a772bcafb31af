package controller

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON serializes v with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ writeJSON: Failed to encode response: %v", err)
	}
}
