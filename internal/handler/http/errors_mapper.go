// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidSecurityKey: http.StatusUnauthorized,
	ErrInvalidJSONBody:    http.StatusBadRequest,
	ErrMissingFilePart:    http.StatusBadRequest,
	ErrInvalidQuery:       http.StatusBadRequest,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrUnsupportedUpload:   http.StatusBadRequest,
	service.ErrEmptyItemID:         http.StatusBadRequest,
	service.ErrMalformedContent:    http.StatusUnprocessableEntity,

	store.ErrItemNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers {"success":false,"message":...} with the status mapped
// from err. Internal errors are logged and their text is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("request failed")
		message = http.StatusText(status)
	}
	_, _ = utils.WriteFailure(w, message, status)
}
