// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
	"github.com/MKhiriev/go-clip-sync/internal/utils"
	"github.com/MKhiriev/go-clip-sync/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	requestTimeout time.Duration
	healthTimeout  time.Duration
	fileTimeout    time.Duration
	cleanupTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the resty implementation of [ServerAdapter].
// It normalises adapterCfg.HTTPAddress, attaches the security headers to
// every request and keeps the per-class timeouts, which are applied as
// context deadlines on each call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// URL with a host.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.SecurityHeaders())
	client.SetBaseURL(baseURL)

	return &httpServerAdapter{
		client:         client,
		requestTimeout: adapterCfg.RequestTimeout,
		healthTimeout:  adapterCfg.HealthTimeout,
		fileTimeout:    adapterCfg.FileTimeout,
		cleanupTimeout: adapterCfg.CleanupTimeout,
		logger:         log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// request returns a resty request bound to a context limited by timeout.
// The cancel func must be called once the response has been consumed.
func (h *httpServerAdapter) request(ctx context.Context, timeout time.Duration) (*resty.Request, context.CancelFunc) {
	cancel := context.CancelFunc(func() {})
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	}
	return h.client.R().SetContext(ctx), cancel
}

// execute sends req and decodes the service envelope into T.
func execute[T any](h *httpServerAdapter, req *resty.Request, method, path, op string) (Reply[T], error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("func", op).Str("path", path).Msg("request failed")
		return Reply[T]{}, mapTransportError(op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Reply[T]{StatusCode: resp.StatusCode()}, err
	}

	return decodeEnvelope[T](resp)
}

func decodeEnvelope[T any](resp *resty.Response) (Reply[T], error) {
	reply := Reply[T]{StatusCode: resp.StatusCode()}

	var env models.ServerEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return reply, &StatusError{
			Code:    resp.StatusCode(),
			Message: fmt.Sprintf("response parse failed, status %d", resp.StatusCode()),
			Err:     ErrMalformedResponse,
		}
	}

	reply.Message = env.Text()
	if env.Failed() {
		return reply, &StatusError{Code: resp.StatusCode(), Message: env.Text(), Err: ErrRejected}
	}

	if err := env.Data.Decode(&reply.Data); err != nil {
		return reply, &StatusError{
			Code:    resp.StatusCode(),
			Message: fmt.Sprintf("unexpected data: %v", err),
			Err:     ErrMalformedResponse,
		}
	}

	return reply, nil
}

// Health implements [ServerAdapter]. The endpoint may answer with the plain
// health document instead of an envelope; both are accepted.
func (h *httpServerAdapter) Health(ctx context.Context) (Reply[models.HealthReport], error) {
	req, cancel := h.request(ctx, h.healthTimeout)
	defer cancel()

	start := time.Now()
	resp, err := req.Get("/api/health")
	elapsed := time.Since(start)
	if err != nil {
		return Reply[models.HealthReport]{}, mapTransportError("health request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Reply[models.HealthReport]{StatusCode: resp.StatusCode()}, err
	}

	reply := Reply[models.HealthReport]{StatusCode: resp.StatusCode()}

	var env models.ServerEnvelope
	if err = json.Unmarshal(resp.Body(), &env); err == nil && !env.Data.Empty() {
		if err = env.Data.Decode(&reply.Data); err != nil {
			h.logger.Debug().Err(err).Str("func", "health").Str("path", "/api/health").Msg("health data not decoded")
			reply.Data = models.HealthReport{}
		}
	} else if err = json.Unmarshal(resp.Body(), &reply.Data); err != nil {
		reply.Data = models.HealthReport{}
	}

	switch {
	case reply.Data.Message != "":
		reply.Message = reply.Data.Message
	case env.Text() != "":
		reply.Message = env.Text()
	default:
		reply.Message = "ok"
	}
	reply.Data.ResponseTime = elapsed

	return reply, nil
}

// ConnectionStats implements [ServerAdapter].
func (h *httpServerAdapter) ConnectionStats(ctx context.Context) (Reply[models.ConnectionStats], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	return execute[models.ConnectionStats](h, req, resty.MethodGet, "/api/devices/connections", "connection stats request")
}

// ListItems implements [ServerAdapter].
func (h *httpServerAdapter) ListItems(ctx context.Context, q models.ListQuery) (Reply[models.ItemPage], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	req.SetQueryParam("page", strconv.Itoa(q.Page)).
		SetQueryParam("limit", strconv.Itoa(q.Limit))
	if q.Type != "" {
		req.SetQueryParam("type", string(q.Type))
	}
	if q.Search != "" {
		req.SetQueryParam("search", q.Search)
	}
	if q.Filter != "" {
		req.SetQueryParam("filter", string(q.Filter))
	}
	if q.DeviceID != "" {
		req.SetQueryParam("deviceId", q.DeviceID)
	}

	return execute[models.ItemPage](h, req, resty.MethodGet, "/api/clipboard", "list items request")
}

// GetItem implements [ServerAdapter].
func (h *httpServerAdapter) GetItem(ctx context.Context, id models.ItemID) (Reply[models.ClipboardItem], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	req.SetPathParam("id", id.String())
	return execute[models.ClipboardItem](h, req, resty.MethodGet, "/api/clipboard/{id}", "get item request")
}

// CreateItem implements [ServerAdapter].
func (h *httpServerAdapter) CreateItem(ctx context.Context, body models.CreateItemRequest) (Reply[models.ClipboardItem], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	req.SetHeader("Content-Type", "application/json").SetBody(body)
	return execute[models.ClipboardItem](h, req, resty.MethodPost, "/api/clipboard", "create item request")
}

// UploadItem implements [ServerAdapter].
func (h *httpServerAdapter) UploadItem(ctx context.Context, body models.UploadRequest, content io.Reader) (Reply[models.ClipboardItem], error) {
	req, cancel := h.request(ctx, h.fileTimeout)
	defer cancel()

	fileName := body.FileName
	if fileName == "" {
		fileName = filepath.Base(body.FilePath)
	}
	itemType := body.Type
	if itemType == "" {
		itemType = models.ItemFile
	}

	req.SetFileReader("file", fileName, content).
		SetMultipartFormData(map[string]string{
			"type":     string(itemType),
			"deviceId": body.DeviceID,
			"fileName": fileName,
		})

	return execute[models.ClipboardItem](h, req, resty.MethodPost, "/api/clipboard/upload", "upload item request")
}

// UpdateItem implements [ServerAdapter].
func (h *httpServerAdapter) UpdateItem(ctx context.Context, id models.ItemID, body models.UpdateItemRequest) (Reply[models.ClipboardItem], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	req.SetPathParam("id", id.String()).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	return execute[models.ClipboardItem](h, req, resty.MethodPut, "/api/clipboard/{id}", "update item request")
}

// DeleteItem implements [ServerAdapter].
func (h *httpServerAdapter) DeleteItem(ctx context.Context, id models.ItemID) (Reply[models.RawData], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	req.SetPathParam("id", id.String())
	return execute[models.RawData](h, req, resty.MethodDelete, "/api/clipboard/{id}", "delete item request")
}

// ClientConfig implements [ServerAdapter].
func (h *httpServerAdapter) ClientConfig(ctx context.Context) (Reply[models.ClientConfig], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	return execute[models.ClientConfig](h, req, resty.MethodGet, "/api/config/client", "client config request")
}

// UserConfig implements [ServerAdapter].
func (h *httpServerAdapter) UserConfig(ctx context.Context) (Reply[models.UserConfig], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	return execute[models.UserConfig](h, req, resty.MethodGet, "/api/config", "user config request")
}

// UpdateUserConfig implements [ServerAdapter].
func (h *httpServerAdapter) UpdateUserConfig(ctx context.Context, cfg models.UserConfig) (Reply[models.UserConfig], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	req.SetHeader("Content-Type", "application/json").SetBody(cfg)
	return execute[models.UserConfig](h, req, resty.MethodPut, "/api/config", "update user config request")
}

// Cleanup implements [ServerAdapter].
func (h *httpServerAdapter) Cleanup(ctx context.Context, body models.CleanupRequest) (Reply[models.CleanupResult], error) {
	req, cancel := h.request(ctx, h.cleanupTimeout)
	defer cancel()

	if !body.Empty() {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return execute[models.CleanupResult](h, req, resty.MethodPost, "/api/config/cleanup", "cleanup request")
}

// ClearAll implements [ServerAdapter].
func (h *httpServerAdapter) ClearAll(ctx context.Context) (Reply[models.CleanupResult], error) {
	req, cancel := h.request(ctx, h.cleanupTimeout)
	defer cancel()

	return execute[models.CleanupResult](h, req, resty.MethodDelete, "/api/config/clear-all", "clear all request")
}

// StorageStats implements [ServerAdapter].
func (h *httpServerAdapter) StorageStats(ctx context.Context) (Reply[models.StorageStats], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	return execute[models.StorageStats](h, req, resty.MethodGet, "/api/config/stats", "storage stats request")
}

// FetchFile implements [ServerAdapter]. The body is not an envelope, so a 2xx
// answer is a success and the raw bytes are returned.
func (h *httpServerAdapter) FetchFile(ctx context.Context, file models.FileRequest, kind FileKind, legacy bool) (Reply[models.FileContent], error) {
	req, cancel := h.request(ctx, h.fileTimeout)
	defer cancel()

	req.SetHeader("Accept", "*/*")

	path := "/api/files/" + string(kind)
	if legacy {
		req.SetPathParam("id", file.ItemID.String())
		path = "/api/files/{id}"
		if kind == FilePreview {
			path += "/preview"
		}
	} else {
		req.SetQueryParam("id", file.ItemID.String())
		if file.FileName != "" {
			req.SetQueryParam("name", file.FileName)
		}
	}

	resp, err := req.Get(path)
	if err != nil {
		return Reply[models.FileContent]{}, mapTransportError("file "+string(kind)+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return Reply[models.FileContent]{StatusCode: resp.StatusCode()}, err
	}

	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	body := resp.Body()
	return Reply[models.FileContent]{
		Data: models.FileContent{
			Content:     body,
			ContentType: contentType,
			FileName:    fileNameFromDisposition(resp.Header().Get("Content-Disposition")),
			Size:        int64(len(body)),
		},
		Message:    fmt.Sprintf("file %s succeeded", kind),
		StatusCode: resp.StatusCode(),
	}, nil
}

// FileStats implements [ServerAdapter].
func (h *httpServerAdapter) FileStats(ctx context.Context) (Reply[models.FileStats], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	return execute[models.FileStats](h, req, resty.MethodGet, "/api/files/stats", "file stats request")
}

// CleanupFiles implements [ServerAdapter].
func (h *httpServerAdapter) CleanupFiles(ctx context.Context) (Reply[models.CleanupResult], error) {
	req, cancel := h.request(ctx, h.cleanupTimeout)
	defer cancel()

	return execute[models.CleanupResult](h, req, resty.MethodPost, "/api/files/cleanup", "file cleanup request")
}

// FileCleanupStatus implements [ServerAdapter].
func (h *httpServerAdapter) FileCleanupStatus(ctx context.Context) (Reply[models.CleanupStatus], error) {
	req, cancel := h.request(ctx, h.requestTimeout)
	defer cancel()

	return execute[models.CleanupStatus](h, req, resty.MethodGet, "/api/files/cleanup/status", "file cleanup status request")
}

const unknownFileName = "unknown_file"

// fileNameFromDisposition extracts the file name from a Content-Disposition
// header. filename* (RFC 5987) takes precedence over filename.
func fileNameFromDisposition(header string) string {
	if header == "" {
		return unknownFileName
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return cleanFileName(name)
		}
	}

	// fallback for headers mime rejects, e.g. unquoted names with spaces
	lower := strings.ToLower(header)
	for _, key := range []string{"filename*=", "filename="} {
		idx := strings.Index(lower, key)
		if idx < 0 {
			continue
		}
		value := header[idx+len(key):]
		if end := strings.Index(value, ";"); end >= 0 {
			value = value[:end]
		}
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if key == "filename*=" {
			if _, rest, ok := strings.Cut(value, "''"); ok {
				value = rest
			}
		}
		if name := cleanFileName(value); name != "" {
			return name
		}
	}

	return unknownFileName
}

func cleanFileName(name string) string {
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return unknownFileName
	}
	return name
}
