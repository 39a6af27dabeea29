package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it with statusCode. On a marshal
// failure it answers 500 and returns the error.
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

// WriteDetail writes a {"detail": msg} error body, the shape REST framework
// backends use for non-field errors.
func WriteDetail(w http.ResponseWriter, msg string, statusCode int) {
	_, _ = WriteJSON(w, map[string]string{"detail": msg}, statusCode)
}
