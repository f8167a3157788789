// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
)

const (
	dispositionInline     = "inline"
	dispositionAttachment = "attachment"
)

func (h *Handler) previewFile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serveFile(w, r, models.ItemID(q.Get("id")), q.Get("name"), dispositionInline)
}

func (h *Handler) downloadFile(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.serveFile(w, r, models.ItemID(q.Get("id")), q.Get("name"), dispositionAttachment)
}

func (h *Handler) previewFileLegacy(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, itemID(r), "", dispositionInline)
}

func (h *Handler) downloadFileLegacy(w http.ResponseWriter, r *http.Request) {
	h.serveFile(w, r, itemID(r), "", dispositionAttachment)
}

// serveFile writes the decoded item content. name is used as the file name
// when the item has none.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request, id models.ItemID, name, disposition string) {
	file, err := h.services.ItemService.ItemFile(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	fileName := file.FileName
	if name != "" && fileName == "" {
		fileName = name
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(file.Size, 10))
	w.Header().Set("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": fileName}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(file.Content)
}

func (h *Handler) fileStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.MaintenanceService.FileStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, stats, "file stats", http.StatusOK)
}

func (h *Handler) cleanupFiles(w http.ResponseWriter, r *http.Request) {
	res, err := h.services.MaintenanceService.CleanupFiles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, res, "file cleanup completed", http.StatusOK)
}

func (h *Handler) cleanupStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.MaintenanceService.CleanupStatus(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, status, "file cleanup status", http.StatusOK)
}
