// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// withSecurityKey enforces the optional shared key. When the server has an
// AuthKey configured, a request must carry "AuthKey: AuthValue" as a header
// or, for WebSocket handshakes from browsers, as the authKey and authValue
// query parameters. Requests without the key are rejected with 401.
//
// The device id of the caller (deviceId query parameter or X-Device-ID
// header) is stored in the request context for downstream handlers.
func (h *Handler) withSecurityKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if deviceID := requestDeviceID(r); deviceID != "" {
			r = r.WithContext(utils.WithDeviceID(r.Context(), deviceID))
		}

		if h.authKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		value := r.Header.Get(h.authKey)
		if value == "" {
			q := r.URL.Query()
			if q.Get("authKey") == h.authKey {
				value = q.Get("authValue")
			}
		}

		if subtle.ConstantTimeCompare([]byte(value), []byte(h.authValue)) != 1 {
			logger.FromRequest(r).Warn().Str("uri", r.URL.Path).Msg("security key rejected")
			_, _ = utils.WriteFailure(w, ErrInvalidSecurityKey.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func requestDeviceID(r *http.Request) string {
	if id := r.URL.Query().Get("deviceId"); id != "" {
		return id
	}
	return r.Header.Get("X-Device-ID")
}
