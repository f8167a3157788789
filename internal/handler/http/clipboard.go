// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/go-chi/chi/v5"
)

const maxUploadMemory = 32 << 20

func itemID(r *http.Request) models.ItemID {
	return models.ItemID(chi.URLParam(r, "id"))
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.services.ItemService.ListItems(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, page, fmt.Sprintf("%d items", len(page.Items)), http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	item, err := h.services.ItemService.GetItem(r.Context(), itemID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	_, _ = utils.WriteSuccess(w, item, "item found", http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.CreateItemRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}
	if req.DeviceID == "" {
		req.DeviceID, _ = utils.GetDeviceIDFromContext(r.Context())
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.hub.BroadcastItem(item)
	_, _ = utils.WriteSuccess(w, item, "item created", http.StatusCreated)
}

func (h *Handler) uploadItem(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFilePart, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingFilePart, err))
		return
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		writeError(w, r, fmt.Errorf("read upload: %w", err))
		return
	}

	upload := models.UploadedFile{
		Type:     models.ItemType(r.FormValue("type")),
		DeviceID: r.FormValue("deviceId"),
		FileName: r.FormValue("fileName"),
		MimeType: header.Header.Get("Content-Type"),
		Content:  content,
	}
	if upload.FileName == "" {
		upload.FileName = header.Filename
	}
	if upload.DeviceID == "" {
		upload.DeviceID, _ = utils.GetDeviceIDFromContext(r.Context())
	}

	item, err := h.services.ItemService.UploadItem(r.Context(), upload)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.hub.BroadcastItem(item)
	_, _ = utils.WriteSuccess(w, item, "file uploaded", http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateItemRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.UpdateItem(r.Context(), itemID(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.hub.BroadcastItem(item)
	_, _ = utils.WriteSuccess(w, item, "item updated", http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id := itemID(r)
	if err := h.services.ItemService.DeleteItem(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	h.hub.BroadcastDelete(id, "")
	_, _ = utils.WriteSuccess(w, map[string]models.ItemID{"id": id}, "item deleted", http.StatusOK)
}
