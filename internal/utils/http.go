// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// On a marshaling failure it answers 500 and returns the wrapped error.
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

// envelope is the body shape of every JSON answer of the service.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteSuccess writes {"success":true,"message":...,"data":...}.
func WriteSuccess(w http.ResponseWriter, data any, message string, statusCode int) (int, error) {
	return WriteJSON(w, envelope{Success: true, Message: message, Data: data}, statusCode)
}

// WriteFailure writes {"success":false,"message":...}.
func WriteFailure(w http.ResponseWriter, message string, statusCode int) (int, error) {
	return WriteJSON(w, envelope{Message: message}, statusCode)
}
