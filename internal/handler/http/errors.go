// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the request decoding layer. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidSecurityKey is returned by the security key middleware when
	// the shared key is enabled and the request does not carry it.
	ErrInvalidSecurityKey = errors.New("invalid security key")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON body")

	// ErrMissingFilePart is returned by the upload endpoint when the
	// multipart form has no "file" part.
	ErrMissingFilePart = errors.New("multipart form must contain a file")

	// ErrInvalidQuery is returned for malformed query parameters.
	ErrInvalidQuery = errors.New("invalid query parameter")
)
