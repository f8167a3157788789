// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

// withLogging writes one access line per request. A WebSocket session is
// logged once it ends, so its duration is the session length.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", lw.status).
			Dur("duration", time.Since(start))

		if lw.status == http.StatusSwitchingProtocols {
			event.Msg("websocket session closed")
			return
		}
		event.Int("size", lw.size).Send()
	})
}
