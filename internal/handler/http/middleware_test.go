// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- trace id ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantSame  bool
		wantValid bool
	}{
		{name: "reuses the request header", header: "trace-from-client", wantSame: true},
		{name: "generates a uuid", wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			var sawLogger bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sawLogger = zerolog.Ctx(r.Context()) != nil
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(traceIDHeader, tt.header)
			}
			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			assert.True(t, sawLogger)
			assert.Equal(t, http.StatusNoContent, rr.Code)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			}
			if tt.wantValid {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
		})
	}
}

// ---- logging ----

func TestWithLoggingWritesAccessEntry(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodPost, "/api/clipboard?x=1", nil)
	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	entry := buf.String()
	assert.Contains(t, entry, `"status":418`)
	assert.Contains(t, entry, `"size":15`)
	assert.Contains(t, entry, `"method":"POST"`)
	assert.Contains(t, entry, `"uri":"/api/clipboard?x=1"`)
	assert.Contains(t, entry, `"trace_id":`)
}

func TestWithTraceIDTagsDevice(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("handled")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/clipboard?deviceId=laptop-1", nil)
	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"device_id":"laptop-1"`)
}

// ---- response writer ----

func TestResponseWriter(t *testing.T) {
	t.Run("implicit 200 on write", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		n, err := w.Write([]byte("abc"))
		require.NoError(t, err)
		assert.Equal(t, 3, n)
		assert.Equal(t, http.StatusOK, w.status)
		assert.Equal(t, 3, w.size)
	})

	t.Run("first status wins", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}

		w.WriteHeader(http.StatusCreated)
		w.WriteHeader(http.StatusInternalServerError)
		assert.Equal(t, http.StatusCreated, w.status)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("hijack needs a hijacker", func(t *testing.T) {
		w := &responseWriter{ResponseWriter: httptest.NewRecorder()}
		_, _, err := w.Hijack()
		assert.Error(t, err)
	})

	t.Run("unwrap", func(t *testing.T) {
		rr := httptest.NewRecorder()
		w := &responseWriter{ResponseWriter: rr}
		assert.Same(t, rr, w.Unwrap())
	})
}

// ---- security key ----

func TestWithSecurityKeyStoresDeviceID(t *testing.T) {
	tests := []struct {
		name   string
		target string
		header string
		want   string
	}{
		{name: "query", target: "/?deviceId=from-query", header: "from-header", want: "from-query"},
		{name: "header", target: "/", header: "from-header", want: "from-header"},
		{name: "none", target: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{logger: logger.Nop()}
			var got string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = utils.GetDeviceIDFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("X-Device-ID", tt.header)
			}
			h.withSecurityKey(next).ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ---- method check ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Route("/nested", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
	})
	router.MethodNotAllowed(CheckHTTPMethod)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: "/items", want: http.StatusOK},
		{method: http.MethodPost, path: "/items", want: http.StatusNotFound},
		{method: http.MethodPost, path: "/nested", want: http.StatusCreated},
		{method: http.MethodDelete, path: "/nested", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

// ---- gzip ----

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestWithGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Length", "999")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	})

	t.Run("compressed request and response", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipped(t, "payload")))
		req.Header.Set("Content-Encoding", "gzip")
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
		assert.Empty(t, rr.Header().Get("Content-Length"))
		assert.Equal(t, "Accept-Encoding", rr.Header().Get("Vary"))

		zr, err := gzip.NewReader(rr.Body)
		require.NoError(t, err)
		plain, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(plain))
	})

	t.Run("plain client", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("payload"))
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)

		assert.Empty(t, rr.Header().Get("Content-Encoding"))
		assert.Equal(t, "payload", rr.Body.String())
	})

	t.Run("broken gzip body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("not gzip"))
		req.Header.Set("Content-Encoding", "gzip")
		rr := httptest.NewRecorder()

		withGZip(echo).ServeHTTP(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
