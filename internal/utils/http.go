package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// CacheControlNoStore disables every layer of HTTP caching.
const CacheControlNoStore = "no-cache, no-store, must-revalidate"

// WriteJSON serializes data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteNoCacheJSON is [WriteJSON] with caching disabled, for values that may
// change between deployments and must never be served stale.
func WriteNoCacheJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Cache-Control", CacheControlNoStore)
	return WriteJSON(w, data, statusCode)
}
