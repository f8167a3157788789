// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

func (h *Handler) connectionStats(w http.ResponseWriter, r *http.Request) {
	stats := h.hub.Stats()
	_, _ = utils.WriteSuccess(w, stats, fmt.Sprintf("%d active connections", stats.ActiveConnections), http.StatusOK)
}
