// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-clip-sync/internal/utils"
)

// CheckHTTPMethod replaces chi's 405 answer. A path served under another
// method is reported as 404 with the usual failure envelope, so clients see
// one "not found" shape for every unknown endpoint.
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteFailure(w, "route not found: "+r.Method+" "+r.URL.Path, http.StatusNotFound)
}
