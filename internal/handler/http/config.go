// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

func (h *Handler) clientConfig(w http.ResponseWriter, r *http.Request) {
	cfg := h.services.MaintenanceService.ClientConfig(r.Context())
	_, _ = utils.WriteSuccess(w, cfg, "client config", http.StatusOK)
}

func (h *Handler) userConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.services.MaintenanceService.UserConfig(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, cfg, "user config", http.StatusOK)
}

func (h *Handler) updateUserConfig(w http.ResponseWriter, r *http.Request) {
	var patch models.UserConfig
	if err := decodeJSON(r, &patch, false); err != nil {
		writeError(w, r, err)
		return
	}

	cfg, err := h.services.MaintenanceService.UpdateUserConfig(r.Context(), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, cfg, "config updated", http.StatusOK)
}

// cleanup accepts an empty body, which removes expired items only.
func (h *Handler) cleanup(w http.ResponseWriter, r *http.Request) {
	var req models.CleanupRequest
	if err := decodeJSON(r, &req, true); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.services.MaintenanceService.Cleanup(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, res, "cleanup completed", http.StatusOK)
}

func (h *Handler) clearAll(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.MaintenanceService.ClearAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, res, "all items cleared", http.StatusOK)
}

func (h *Handler) storageStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.MaintenanceService.StorageStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, stats, "storage stats", http.StatusOK)
}
