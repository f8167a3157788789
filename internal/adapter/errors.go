// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors for non-2xx answers. They are wrapped in a [*StatusError]
// so callers can match with errors.Is and still read the status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// Errors for answers that arrived but could not be used.
var (
	// ErrRejected is returned when a 2xx body carries success=false.
	ErrRejected = errors.New("rejected by server")
	// ErrMalformedResponse is returned when a body is not the expected JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// Transport errors, returned when no answer was received.
var (
	ErrTimeout     = errors.New("request timeout")
	ErrUnreachable = errors.New("cannot connect to server")
)

// WebSocket errors.
var (
	ErrNotConnected     = errors.New("websocket not connected")
	ErrConnectionClosed = errors.New("websocket connection closed")
	ErrMalformedFrame   = errors.New("malformed websocket frame")
)

// StatusError is an answer with a status code that the adapter treats as a
// failure. Err is one of the sentinels above.
type StatusError struct {
	Code    int
	Message string
	Err     error
}

// Error implements error.
func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v (status %d)", e.Err, e.Code)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Message)
}

// Unwrap returns the sentinel.
func (e *StatusError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 when err holds no
// [*StatusError].
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code
	}
	return 0
}
