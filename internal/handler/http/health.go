// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	report := h.services.AppInfoService.Health(r.Context())
	_, _ = utils.WriteSuccess(w, report, report.Message, http.StatusOK)
}
