// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/service"
	"github.com/MKhiriev/go-clip-sync/internal/store"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer runs the full router over a fresh in-memory store.
func newTestServer(t *testing.T, cfg config.Server) (*httptest.Server, *Handler) {
	t.Helper()
	if cfg.MaxItems == 0 {
		cfg.MaxItems = 100
	}

	log := logger.Nop()
	services, err := service.NewServices(store.NewServerStorages(cfg, log), cfg,
		models.NewAppBuildInfo("v1.2.3", "2026-01-01", "abc123"), log)
	require.NoError(t, err)

	h := NewHandler(services, cfg, log)
	srv := httptest.NewServer(h.Init())
	t.Cleanup(func() {
		h.Close()
		srv.Close()
	})
	return srv, h
}

func doJSON(t *testing.T, method, url string, body any, headers ...string) (*http.Response, models.ServerEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env models.ServerEnvelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func TestHealthIsPublic(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{AuthKey: "X-Clip-Key", AuthValue: "secret"})

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *env.Success)

	var report models.HealthReport
	require.NoError(t, env.Data.Decode(&report))
	assert.Equal(t, "ok", report.Status)
	assert.Equal(t, "v1.2.3", report.Version)
}

func TestSecurityKey(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{AuthKey: "X-Clip-Key", AuthValue: "secret"})

	tests := []struct {
		name       string
		url        string
		headers    []string
		wantStatus int
	}{
		{name: "missing", url: "/api/clipboard", wantStatus: http.StatusUnauthorized},
		{name: "wrong value", url: "/api/clipboard", headers: []string{"X-Clip-Key", "nope"}, wantStatus: http.StatusUnauthorized},
		{name: "header", url: "/api/clipboard", headers: []string{"X-Clip-Key", "secret"}, wantStatus: http.StatusOK},
		{name: "query", url: "/api/clipboard?authKey=X-Clip-Key&authValue=secret", wantStatus: http.StatusOK},
		{name: "query with another key name", url: "/api/clipboard?authKey=Other&authValue=secret", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, http.MethodGet, srv.URL+tt.url, nil, tt.headers...)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.True(t, env.Failed())
				assert.Equal(t, ErrInvalidSecurityKey.Error(), env.Text())
			}
		})
	}
}

func TestClipboardCRUD(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{})
	base := srv.URL + "/api/clipboard"

	resp, env := doJSON(t, http.MethodPost, base, models.CreateItemRequest{Type: models.ItemText, Content: "hello"}, "X-Device-ID", "dev-1")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created models.ClipboardItem
	require.NoError(t, env.Data.Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "dev-1", created.DeviceID, "device id taken from the header")

	resp, env = doJSON(t, http.MethodGet, base+"?type=text&limit=5", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page models.ItemPage
	require.NoError(t, env.Data.Decode(&page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, 5, page.Limit)

	content := "changed"
	resp, env = doJSON(t, http.MethodPut, base+"/"+created.ID.String(), models.UpdateItemRequest{Content: &content})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated models.ClipboardItem
	require.NoError(t, env.Data.Decode(&updated))
	assert.Equal(t, "changed", updated.Content)

	resp, _ = doJSON(t, http.MethodDelete, base+"/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, base+"/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.True(t, env.Failed())
}

func TestClipboardBadRequests(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{})
	base := srv.URL + "/api/clipboard"

	tests := []struct {
		name       string
		method     string
		url        string
		body       any
		wantStatus int
	}{
		{name: "bad page", method: http.MethodGet, url: base + "?page=x", wantStatus: http.StatusBadRequest},
		{name: "unknown type", method: http.MethodGet, url: base + "?type=video", wantStatus: http.StatusBadRequest},
		{name: "empty content", method: http.MethodPost, url: base, body: models.CreateItemRequest{Type: models.ItemText}, wantStatus: http.StatusBadRequest},
		{name: "not json", method: http.MethodPost, url: base, body: "just a string", wantStatus: http.StatusBadRequest},
		{name: "empty update", method: http.MethodPut, url: base + "/1", body: map[string]any{}, wantStatus: http.StatusBadRequest},
		{name: "unknown id", method: http.MethodDelete, url: base + "/missing", wantStatus: http.StatusNotFound},
		{name: "unregistered method", method: http.MethodPatch, url: srv.URL + "/api/config/stats", wantStatus: http.StatusNotFound},
		{name: "wrong method on mounted root", method: http.MethodPatch, url: srv.URL + "/api/config", wantStatus: http.StatusNotFound},
		{name: "wrong method on mounted leaf", method: http.MethodGet, url: srv.URL + "/api/config/cleanup", wantStatus: http.StatusNotFound},
		{name: "wrong method on clipboard root", method: http.MethodDelete, url: base, wantStatus: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, url: srv.URL + "/api/nothing", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := doJSON(t, tt.method, tt.url, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.True(t, env.Failed())
		})
	}
}

func uploadRequest(t *testing.T, url, itemType, name, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", itemType))
	require.NoError(t, mw.WriteField("deviceId", "uploader"))

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadAndDownload(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{})
	png := []byte("\x89PNG\r\n\x1a\nimage-bytes")

	resp, err := http.DefaultClient.Do(uploadRequest(t, srv.URL+"/api/clipboard/upload", "image", "shot.png", "image/png", png))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var env models.ServerEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	var item models.ClipboardItem
	require.NoError(t, env.Data.Decode(&item))
	assert.Equal(t, models.ItemImage, item.Type)
	assert.Equal(t, "uploader", item.DeviceID)
	assert.True(t, strings.HasPrefix(item.Content, "data:image/png;base64,"))

	tests := []struct {
		name            string
		path            string
		wantDisposition string
	}{
		{name: "download", path: "/api/files/download?id=" + item.ID.String(), wantDisposition: `attachment; filename=shot.png`},
		{name: "preview", path: "/api/files/preview?id=" + item.ID.String(), wantDisposition: `inline; filename=shot.png`},
		{name: "legacy download", path: "/api/files/" + item.ID.String(), wantDisposition: `attachment; filename=shot.png`},
		{name: "legacy preview", path: "/api/files/" + item.ID.String() + "/preview", wantDisposition: `inline; filename=shot.png`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(srv.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, png, body)
			assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
			assert.Equal(t, tt.wantDisposition, resp.Header.Get("Content-Disposition"))
		})
	}
}

func TestUploadWithoutFilePart(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("type", "file"))
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/api/clipboard/upload", mw.FormDataContentType(), &buf)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestConfigEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{MaxItems: 10})
	base := srv.URL + "/api/config"

	for _, c := range []string{"a", "b", "c"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/clipboard", models.CreateItemRequest{Type: models.ItemText, Content: c})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, http.MethodGet, base+"/client", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var client models.ClientConfig
	require.NoError(t, env.Data.Decode(&client))
	assert.EqualValues(t, 10, client["maxItems"])

	resp, env = doJSON(t, http.MethodPut, base, map[string]any{"maxItems": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user models.UserConfig
	require.NoError(t, env.Data.Decode(&user))
	assert.Equal(t, 2, *user.MaxItems)

	resp, env = doJSON(t, http.MethodGet, base+"/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats models.StorageStats
	require.NoError(t, env.Data.Decode(&stats))
	assert.Equal(t, 2, stats.TotalItems, "lowered maxItems evicted the oldest")

	resp, env = doJSON(t, http.MethodPost, base+"/cleanup", models.CleanupRequest{MaxCount: 1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res models.CleanupResult
	require.NoError(t, env.Data.Decode(&res))
	assert.EqualValues(t, 1, res["deletedCount"])

	// an empty body falls back to the auto cleanup age
	resp, _ = doJSON(t, http.MethodPost, base+"/cleanup", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodDelete, base+"/clear-all", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	res = nil
	require.NoError(t, env.Data.Decode(&res))
	assert.EqualValues(t, 1, res["deletedCount"])

	resp, _ = doJSON(t, http.MethodPut, base, map[string]any{"maxItems": -1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFileMaintenanceEndpoints(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{})

	resp, err := http.DefaultClient.Do(uploadRequest(t, srv.URL+"/api/clipboard/upload", "file", "a.bin", "application/octet-stream", []byte{1, 2, 3}))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/files/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats models.FileStats
	require.NoError(t, env.Data.Decode(&stats))
	assert.Equal(t, 1, stats.TotalFiles)
	assert.Equal(t, int64(3), stats.TotalSize)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/files/cleanup", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, http.MethodGet, srv.URL+"/api/files/cleanup/status", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status models.CleanupStatus
	require.NoError(t, env.Data.Decode(&status))
	assert.NotEmpty(t, status.LastRun)
}

func TestConnectionStatsWithoutClients(t *testing.T) {
	srv, _ := newTestServer(t, config.Server{})

	resp, env := doJSON(t, http.MethodGet, srv.URL+"/api/devices/connections", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats models.ConnectionStats
	require.NoError(t, env.Data.Decode(&stats))
	assert.Zero(t, stats.ActiveConnections)
}

func TestErrorStatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: ErrInvalidSecurityKey, want: http.StatusUnauthorized},
		{err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{err: service.ErrMalformedContent, want: http.StatusUnprocessableEntity},
		{err: store.ErrItemNotFound, want: http.StatusNotFound},
		{err: io.ErrUnexpectedEOF, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}

	rr := httptest.NewRecorder()
	writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), io.ErrUnexpectedEOF)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "unexpected EOF", "internal errors are not exposed")
}

func TestWrongMethodOnMountedRouteAnswers404(t *testing.T) {
	cfg := config.Server{MaxItems: 10}
	services, err := service.NewServices(store.NewServerStorages(cfg, logger.Nop()), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	h := NewHandler(services, cfg, logger.Nop())
	t.Cleanup(h.Close)
	router := h.Init()

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodPatch, "/api/config", nil))
		done <- rr
	}()

	select {
	case rr := <-done:
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Contains(t, rr.Body.String(), "route not found: PATCH /api/config")
	case <-time.After(2 * time.Second):
		t.Fatal("router did not answer")
	}
}
