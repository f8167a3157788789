// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types exchanged with the clipboard-sync
// service and between the layers of the client.
package models

// Envelope is the uniform result of every client call.
//
// Success mirrors the outcome reported by the service (or the HTTP status when
// the body carries no envelope of its own). Message is either the service
// message or a client-side description of the failure. StatusCode is the HTTP
// status of the response; it is zero when no response was received at all
// (connection refused, timeout, WebSocket frames).
type Envelope[T any] struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       T      `json:"data"`
	StatusCode int    `json:"status_code,omitempty"`
}

// OK builds a successful envelope.
func OK[T any](data T, message string, statusCode int) Envelope[T] {
	return Envelope[T]{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	}
}

// Fail builds a failed envelope. An empty message is replaced so that failed
// envelopes always explain themselves.
func Fail[T any](message string, statusCode int) Envelope[T] {
	if message == "" {
		message = "request failed"
	}
	return Envelope[T]{
		Message:    message,
		StatusCode: statusCode,
	}
}

// ServerEnvelope is the body shape used by the service for JSON responses.
// Data is kept raw so the adapter can decode it into the caller's type.
type ServerEnvelope struct {
	Success *bool   `json:"success,omitempty"`
	Message string  `json:"message,omitempty"`
	Error   string  `json:"error,omitempty"`
	Data    RawData `json:"data,omitempty"`
}

// Failed reports whether the service explicitly answered success=false.
func (e ServerEnvelope) Failed() bool {
	return e.Success != nil && !*e.Success
}

// Text returns the human readable part of the body.
func (e ServerEnvelope) Text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
