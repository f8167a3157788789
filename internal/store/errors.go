// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors of the history journal. Callers should use [errors.Is].
var (
	// ErrUnsupportedDSN is returned when the DSN is neither a file path nor a
	// postgres:// URL.
	ErrUnsupportedDSN = errors.New("unsupported journal dsn")

	// ErrJournalUnavailable wraps failures classified as transient, e.g. a
	// dropped postgres connection.
	ErrJournalUnavailable = errors.New("journal temporarily unavailable")
)

// Low-level database operation errors, wrapped by repository methods when a
// SQL call fails.
var (
	ErrBuildingSQLQuery = errors.New("error building sql query")
	ErrExecutingQuery   = errors.New("error executing sql query")
	ErrScanningRows     = errors.New("failed to scan history rows")
)

// Errors of the development server item store.
var (
	ErrItemNotFound = errors.New("clipboard item not found")
)
