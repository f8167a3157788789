// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the REST router. The WebSocket endpoint is mounted at /ws as
// well, for setups serving both on one address.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without the security key
	router.Get("/api/health", h.health)

	router.Group(func(r chi.Router) {
		r.Use(h.withSecurityKey)

		r.Get("/ws", h.serveWS)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)

			r.Route("/api/clipboard", func(r chi.Router) {
				r.Get("/", h.listItems)
				r.Post("/", h.createItem)
				r.Post("/upload", h.uploadItem)
				r.Get("/{id}", h.getItem)
				r.Put("/{id}", h.updateItem)
				r.Delete("/{id}", h.deleteItem)
			})

			r.Get("/api/devices/connections", h.connectionStats)

			r.Route("/api/config", func(r chi.Router) {
				r.Get("/", h.userConfig)
				r.Put("/", h.updateUserConfig)
				r.Get("/client", h.clientConfig)
				r.Post("/cleanup", h.cleanup)
				r.Delete("/clear-all", h.clearAll)
				r.Get("/stats", h.storageStats)
			})

			r.Route("/api/files", func(r chi.Router) {
				r.Get("/preview", h.previewFile)
				r.Get("/download", h.downloadFile)
				r.Get("/stats", h.fileStats)
				r.Post("/cleanup", h.cleanupFiles)
				r.Get("/cleanup/status", h.cleanupStatus)
				r.Get("/{id}", h.downloadFileLegacy)
				r.Get("/{id}/preview", h.previewFileLegacy)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteFailure(w, "route not found: "+r.Method+" "+r.URL.Path, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

// InitWS builds the router of the dedicated WebSocket listener.
func (h *Handler) InitWS() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withSecurityKey)

	router.Get("/ws", h.serveWS)
	router.Get("/", h.serveWS)

	return router
}
