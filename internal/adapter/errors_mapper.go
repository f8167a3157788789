// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses and a [*StatusError] otherwise.
// The message is the "message" (or "error") field of a JSON body, the raw
// body when it is not JSON, or "failed, status N" when the body is empty.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	return &StatusError{
		Code:    code,
		Message: bodyMessage(resp.Body(), code),
		Err:     sentinelFor(code),
	}
}

func sentinelFor(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusRequestEntityTooLarge:
		return ErrPayloadTooLarge
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusServiceUnavailable:
		return ErrServiceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}

func bodyMessage(body []byte, code int) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return fmt.Sprintf("failed, status %d", code)
	}

	var env models.ServerEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		if msg := env.Text(); msg != "" {
			return msg
		}
		return fmt.Sprintf("failed, status %d", code)
	}

	const maxLen = 200
	if runes := []rune(text); len(runes) > maxLen {
		text = string(runes[:maxLen]) + "..."
	}
	return text
}

// mapTransportError classifies a failure that produced no response.
func mapTransportError(op string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrUnreachable, err)
	}
}
